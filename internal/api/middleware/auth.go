package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
)

// Claims полезная нагрузка bearer-токена
type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

// Роли, которые выдает сервис авторизации
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Auth проверяет bearer-токен (HS256) и кладет subject и роли в контекст
// Пустой issuer не проверяется
func Auth(secret []byte, issuer string, logger Logger) func(http.Handler) http.Handler {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				logger.Warn("%s %s - missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w)
				return
			}

			claims := &Claims{}
			token, err := parser.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (interface{}, error) {
				return secret, nil
			})
			if err != nil || !token.Valid {
				logger.Warn("%s %s - invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w)
				return
			}

			subject, _ := claims.GetSubject()
			ctx := context.WithValue(r.Context(), ctxKeyUserID, subject)
			ctx = context.WithValue(ctx, ctxKeyRoles, claims.Roles)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пропускает запрос, только если у пользователя есть одна из ролей
// Должен стоять после Auth
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, have := range GetRoles(r.Context()) {
				for _, want := range roles {
					if have == want {
						next.ServeHTTP(w, r)
						return
					}
				}
			}
			handlers.RespondForbidden(w)
		})
	}
}

// GetUserID возвращает subject токена
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKeyUserID).(string)
	return id, ok && id != ""
}

// GetRoles возвращает роли пользователя
func GetRoles(ctx context.Context) []string {
	roles, _ := ctx.Value(ctxKeyRoles).([]string)
	return roles
}
