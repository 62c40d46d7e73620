package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/venuebook/VB-BookingService/internal/api/handlers"
	"github.com/venuebook/VB-BookingService/internal/domain"
	"github.com/venuebook/VB-BookingService/pkg/tokens"
)

const (
	msgMissingToken = "требуется токен авторизации"
	msgInvalidToken = "недействительный токен авторизации"
	msgCustomerOnly = "операция доступна только клиентам"
	msgOwnerOnly    = "операция доступна только владельцам площадок"
)

type contextKey string

const principalKey contextKey = "principal"

// Principal аутентифицированный пользователь запроса
type Principal struct {
	ID   string
	Role domain.Role
}

// TokenVerifier проверяет токен и возвращает его полезную нагрузку
type TokenVerifier interface {
	Verify(tokenStr string) (*tokens.Claims, error)
}

// Auth извлекает Bearer токен, проверяет его и кладет Principal в контекст.
// Отсутствующий или недействительный токен - 401.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")
			if tokenStr == header || tokenStr == "" {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			claims, err := verifier.Verify(tokenStr)
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			principal := Principal{
				ID:   claims.Subject,
				Role: domain.Role(claims.Role),
			}
			if principal.ID == "" || !principal.Role.IsValid() {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPrincipal возвращает Principal из контекста запроса
func GetPrincipal(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(principalKey).(Principal)
	return principal, ok
}

// CustomerOnly пропускает только пользователей с ролью customer
func CustomerOnly(next http.Handler) http.Handler {
	return requireRole(domain.RoleCustomer, msgCustomerOnly, next)
}

// OwnerOnly пропускает только пользователей с ролью owner
func OwnerOnly(next http.Handler) http.Handler {
	return requireRole(domain.RoleOwner, msgOwnerOnly, next)
}

func requireRole(role domain.Role, message string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := GetPrincipal(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}
		if principal.Role != role {
			handlers.RespondForbidden(w, message)
			return
		}
		next.ServeHTTP(w, r)
	})
}
