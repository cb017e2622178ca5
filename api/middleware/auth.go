package middleware

import (
	"net/http"
	"strings"

	"github.com/haneulsoft/weddingmoa-backend/api/responses"
	"github.com/haneulsoft/weddingmoa-backend/pkg/auth"
	"github.com/haneulsoft/weddingmoa-backend/pkg/auth/session"
	"github.com/haneulsoft/weddingmoa-backend/pkg/config"
	pkgerrors "github.com/haneulsoft/weddingmoa-backend/pkg/errors"
	"github.com/haneulsoft/weddingmoa-backend/pkg/logger"
)

const bearerPrefix = "Bearer "

// RequireAuth validates the bearer token, checks the session is still live,
// and seeds user identity onto the request context.
func RequireAuth(cfg config.JWTConfig, sessions session.AccessSessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeUnauthorized, "로그인이 필요합니다."))
				return
			}

			tokenString := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
			claims, err := auth.ParseAccessToken(cfg, tokenString)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "로그인이 필요합니다."))
				return
			}

			// A valid signature is not enough: logout revokes the session.
			if sessions != nil {
				alive, err := sessions.HasSession(r.Context(), claims.ID)
				if err != nil {
					responses.WriteError(r.Context(), logg, w,
						pkgerrors.Wrap(pkgerrors.CodeInternal, err, "session lookup failed"))
					return
				}
				if !alive {
					responses.WriteError(r.Context(), logg, w,
						pkgerrors.New(pkgerrors.CodeUnauthorized, "세션이 만료되었습니다. 다시 로그인해주세요."))
					return
				}
			}

			ctx := WithUserID(r.Context(), claims.UserID)
			ctx = WithRole(ctx, claims.Role)
			ctx = WithAccessID(ctx, claims.ID)
			if logg != nil {
				ctx = logg.WithUserID(ctx, claims.UserID.String())
				ctx = logg.WithActorRole(ctx, claims.Role.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth seeds user identity when a valid bearer token is present and
// serves the request anonymously otherwise. Missing, malformed, or revoked
// tokens never reject the request.
func OptionalAuth(cfg config.JWTConfig, sessions session.AccessSessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
			claims, err := auth.ParseAccessToken(cfg, tokenString)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			if sessions != nil {
				alive, err := sessions.HasSession(r.Context(), claims.ID)
				if err != nil || !alive {
					next.ServeHTTP(w, r)
					return
				}
			}

			ctx := WithUserID(r.Context(), claims.UserID)
			ctx = WithRole(ctx, claims.Role)
			ctx = WithAccessID(ctx, claims.ID)
			if logg != nil {
				ctx = logg.WithUserID(ctx, claims.UserID.String())
				ctx = logg.WithActorRole(ctx, claims.Role.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
