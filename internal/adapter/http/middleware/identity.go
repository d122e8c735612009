package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/core/domain"
	"tasktrack/pkg/apierrors"
)

const userContextKey = "user_context"

// IdentityMiddleware maps the gateway-supplied identity headers onto a
// domain.UserContext. Authentication itself happens upstream; requests
// without a complete identity are rejected here.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		user := domain.UserContext{
			UserID:       c.GetHeader("X-User-Id"),
			Role:         domain.Role(c.GetHeader("X-User-Role")),
			DepartmentID: c.GetHeader("X-Department-Id"),
		}
		if user.UserID == "" || user.DepartmentID == "" || !user.Role.Valid() {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgMissingIdentity, lang),
			)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func GetUser(c *gin.Context) domain.UserContext {
	if value, exists := c.Get(userContextKey); exists {
		if user, ok := value.(domain.UserContext); ok {
			return user
		}
	}
	return domain.UserContext{}
}
