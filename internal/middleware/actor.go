package middleware

import (
	"github.com/gin-gonic/gin"

	"tourbook/internal/domain"
)

// ActorFromContext rebuilds the authenticated principal from the values
// JWTAuth stored on the request context.
func ActorFromContext(c *gin.Context) domain.Actor {
	return domain.Actor{
		ID:    c.GetString("user_id"),
		Role:  domain.Role(c.GetString("role")),
		Email: c.GetString("email"),
		Name:  c.GetString("name"),
	}
}
