package middleware

import (
	"net/http"

	"github.com/haneulsoft/weddingmoa-backend/api/responses"
	"github.com/haneulsoft/weddingmoa-backend/pkg/enums"
	pkgerrors "github.com/haneulsoft/weddingmoa-backend/pkg/errors"
	"github.com/haneulsoft/weddingmoa-backend/pkg/logger"
)

// RequireRole gates a route to one of the allowed roles. Must run after RequireAuth.
func RequireRole(logg *logger.Logger, allowed ...enums.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := RoleFromContext(r.Context())
			if !ok {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeUnauthorized, "로그인이 필요합니다."))
				return
			}

			for _, candidate := range allowed {
				if role == candidate {
					next.ServeHTTP(w, r)
					return
				}
			}

			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeForbidden, "접근 권한이 없습니다."))
		})
	}
}
