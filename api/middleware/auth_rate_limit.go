package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/haneulsoft/weddingmoa-backend/api/responses"
	"github.com/haneulsoft/weddingmoa-backend/pkg/config"
	pkgerrors "github.com/haneulsoft/weddingmoa-backend/pkg/errors"
	"github.com/haneulsoft/weddingmoa-backend/pkg/logger"
)

// RateLimitStore is the counter surface auth throttling needs from Redis.
type RateLimitStore interface {
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	RateLimitKey(scope string) string
}

// AuthRateLimitPolicy throttles an auth endpoint per client IP and per
// submitted email within a fixed window.
type AuthRateLimitPolicy struct {
	Name       string
	Window     time.Duration
	IPLimit    int
	EmailLimit int
}

// LoginPolicy builds the throttle policy for POST /auth/login.
func LoginPolicy(cfg config.AuthRateLimitConfig) AuthRateLimitPolicy {
	return AuthRateLimitPolicy{
		Name:       "login",
		Window:     cfg.LoginWindow,
		IPLimit:    cfg.LoginIPLimit,
		EmailLimit: cfg.LoginEmailLimit,
	}
}

// RegisterPolicy builds the throttle policy for vendor registration.
func RegisterPolicy(cfg config.AuthRateLimitConfig) AuthRateLimitPolicy {
	return AuthRateLimitPolicy{
		Name:       "register",
		Window:     cfg.RegisterWindow,
		IPLimit:    cfg.RegisterIPLimit,
		EmailLimit: cfg.RegisterEmailLimit,
	}
}

// AuthRateLimit enforces the policy before the handler runs. The store failing
// never blocks the request; the throttle is protection, not a dependency.
func AuthRateLimit(store RateLimitStore, policy AuthRateLimitPolicy, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store == nil || policy.Window <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()

			if policy.IPLimit > 0 {
				key := store.RateLimitKey(policy.Name + ":ip:" + clientIP(r))
				count, err := store.IncrWithTTL(ctx, key, policy.Window)
				if err != nil {
					if logg != nil {
						logg.Warn(logg.WithField(ctx, "rate_limit", policy.Name), "rate limit store unavailable")
					}
				} else if count > int64(policy.IPLimit) {
					respondRateLimited(ctx, logg, w)
					return
				}
			}

			if policy.EmailLimit > 0 {
				if email := extractEmail(r); email != "" {
					sum := sha256.Sum256([]byte(strings.ToLower(email)))
					key := store.RateLimitKey(policy.Name + ":email:" + hex.EncodeToString(sum[:]))
					count, err := store.IncrWithTTL(ctx, key, policy.Window)
					if err != nil {
						if logg != nil {
							logg.Warn(logg.WithField(ctx, "rate_limit", policy.Name), "rate limit store unavailable")
						}
					} else if count > int64(policy.EmailLimit) {
						respondRateLimited(ctx, logg, w)
						return
					}
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func respondRateLimited(ctx context.Context, logg *logger.Logger, w http.ResponseWriter) {
	responses.WriteError(ctx, logg, w,
		pkgerrors.New(pkgerrors.CodeRateLimit, "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."))
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	if real := strings.TrimSpace(r.Header.Get("X-Real-IP")); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// extractEmail peeks at the JSON body for an email field, then restores the
// body so the handler can decode it again.
func extractEmail(r *http.Request) string {
	if r.Body == nil {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(data))
	if err != nil {
		return ""
	}

	var probe struct {
		Email string `json:"email"`
		Owner struct {
			Email string `json:"email"`
		} `json:"owner"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return ""
	}
	if probe.Email != "" {
		return probe.Email
	}
	return probe.Owner.Email
}
