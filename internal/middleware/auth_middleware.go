package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialink/internal/services"
	"socialink/internal/transport/httpdto"
)

// AuthMiddleware verifies the bearer token and attaches the caller's user id
// to the request context. Requests without a valid token are rejected with
// 403 before any handler or store access runs.
func AuthMiddleware(service *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		if token == "" {
			c.JSON(http.StatusForbidden, httpdto.NewErrorResponse("access denied", "FORBIDDEN"))
			c.Abort()
			return
		}

		claims, err := service.ParseAccessToken(token)
		if err != nil {
			c.JSON(http.StatusForbidden, httpdto.NewErrorResponse("invalid token", "FORBIDDEN"))
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.JSON(http.StatusForbidden, httpdto.NewErrorResponse("invalid token", "FORBIDDEN"))
			c.Abort()
			return
		}

		ctx := services.WithUserContext(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
