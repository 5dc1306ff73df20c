package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/spdf36/gts-hrms/internal/handler/http/response"
)

type contextKey string

const employeeIDKey contextKey = "employee_id"

// AuthRequired accepts only access tokens that carry an employee_id claim and
// stores that employee on the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, response.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, response.ErrInvalidToken)
				return
			}

			employeeID, ok := claims["employee_id"].(string)
			if !ok || employeeID == "" {
				response.HandleError(w, response.ErrMissingEmployee)
				return
			}

			ctx := context.WithValue(r.Context(), employeeIDKey, employeeID)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// EmployeeID returns the employee resolved by AuthRequired.
func EmployeeID(ctx context.Context) (string, bool) {
	employeeID, ok := ctx.Value(employeeIDKey).(string)
	return employeeID, ok && employeeID != ""
}
