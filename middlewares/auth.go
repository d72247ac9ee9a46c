// file: middlewares/auth.go
package middlewares

import (
	"net/http"

	"PracticeCTF/services"

	"github.com/gin-gonic/gin"
)

// SessionAuthMiddleware 校验会话 cookie，未登录一律跳转登录页
func SessionAuthMiddleware(sessions *services.SessionService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// CurrentUserID 读取中间件放入上下文的用户 ID
func CurrentUserID(c *gin.Context) (uint32, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint32)
	return id, ok
}
