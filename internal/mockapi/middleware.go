package mockapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/storefront/pkg/model"
)

// Context keys set by the auth middleware.
// 由认证中间件设置的上下文键。
const (
	ctxUserID = "userID"
	ctxRole   = "role"
)

// currentUserID returns the authenticated user id set by authRequired.
// currentUserID 返回由authRequired设置的已认证用户ID。
func currentUserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

// requestLogger logs each request with method, path, status, and duration.
//
// requestLogger 记录每个请求的方法、路径、状态和持续时间。
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.WithField("method", c.Request.Method).
			WithField("path", c.Request.URL.Path).
			WithField("status", c.Writer.Status()).
			WithField("duration", time.Since(start)).
			Debug("request")
	}
}

// authRequired verifies the bearer token and stores the caller's identity
// on the context. Missing or bad tokens get HTTP 401; unlike business
// failures, auth failures are not wrapped in a success envelope.
//
// authRequired 验证承载令牌并将调用者的身份存储在上下文中。
// 缺失或错误的令牌得到HTTP 401；与业务失败不同，认证失败不包装在成功信封中。
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{Success: false, Message: "Missing bearer token"})
			return
		}
		claims, err := s.parseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{Success: false, Message: "Invalid bearer token"})
			return
		}
		c.Set(ctxUserID, claims.Subject)
		c.Set(ctxRole, string(claims.Role))
		c.Next()
	}
}

// adminRequired rejects callers whose token does not carry the admin role.
//
// adminRequired 拒绝令牌不携带管理员角色的调用者。
func (s *Server) adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxRole) != string(model.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, envelope{Success: false, Message: "Admin access required"})
			return
		}
		c.Next()
	}
}
