package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"helpflow/internal/entities"
)

type contextKey string

const actorCtxKey contextKey = "actor"

// ActorFromContext возвращает аутентифицированного актора, положенного
// Middleware. false - запрос прошел мимо auth-цепочки.
func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey).(entities.Actor)
	return actor, ok
}

// ContextWithActor используется в тестах хендлеров.
func ContextWithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey, actor)
}

func Middleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid token format", http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "invalid claims", http.StatusUnauthorized)
				return
			}

			userID, ok := claims["sub"].(string)
			if !ok || userID == "" {
				http.Error(w, "subject not found in token", http.StatusUnauthorized)
				return
			}

			role, ok := claims["role"].(string)
			if !ok || !entities.IsValidActorRole(role) {
				http.Error(w, "role not found in token", http.StatusUnauthorized)
				return
			}

			actor := entities.Actor{
				ID:   userID,
				Role: entities.ActorRoleType(role),
			}

			next.ServeHTTP(w, r.WithContext(ContextWithActor(r.Context(), actor)))
		})
	}
}
