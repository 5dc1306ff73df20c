package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/spdf36/gts-hrms/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, response.ErrInvalidToken)
			return
		}

		admin, ok := claims["is_admin"].(bool)
		if !admin || !ok {
			response.HandleError(w, response.ErrAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
