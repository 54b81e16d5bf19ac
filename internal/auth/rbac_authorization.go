package auth

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/document-management/internal"
	"github.com/frahmantamala/document-management/internal/transport"
)

// RBACAuthorization guards route groups by role capability.
type RBACAuthorization struct {
	*transport.BaseHandler
}

func NewRBACAuthorization(logger *slog.Logger) *RBACAuthorization {
	return &RBACAuthorization{BaseHandler: transport.NewBaseHandler(logger)}
}

func (ra *RBACAuthorization) Check(next http.HandlerFunc, capability internal.Capability) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := ra.CurrentUser(w, r)
		if !ok {
			return
		}

		if !user.Can(capability) {
			ra.Logger.WarnContext(r.Context(), "access denied: missing capability",
				"user_id", user.ID,
				"role", user.Role,
				"required_capability", capability)
			ra.WriteAppError(w, internal.ErrPermissionDenied)
			return
		}

		next.ServeHTTP(w, r)
	}
}

func (ra *RBACAuthorization) RequireCapability(capability internal.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return ra.Check(next.ServeHTTP, capability)
	}
}
