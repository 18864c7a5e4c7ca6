package middleware

import (
	"net/http"

	"marketplace-admin/internal/data/repository"
	"marketplace-admin/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminSession validates the admin session cookie. The cookie value is the
// admin identifier; a request without a cookie that resolves to an existing
// admin is rejected.
func AdminSession(adminRepo repository.AdminRepository, cookieName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			adminID, err := uuid.Parse(cookie.Value)
			if err != nil {
				logger.Warn("Invalid session cookie format", zap.String("value", cookie.Value))
				utils.ResponseUnauthorized(w, "Invalid session")
				return
			}

			admin, err := adminRepo.FindByID(r.Context(), adminID)
			if err != nil {
				logger.Error("Failed to validate session",
					zap.String("admin_id", adminID.String()),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if admin == nil {
				logger.Warn("Session for unknown admin", zap.String("admin_id", adminID.String()))
				utils.ResponseUnauthorized(w, "Invalid session")
				return
			}

			ctx := utils.SetAdminContext(r.Context(), admin.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
