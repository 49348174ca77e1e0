package jwt

import (
	"strconv"
	"strings"

	"foodmap/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	// ContextUserIDKey 用户ID在gin.Context中的键名
	ContextUserIDKey = "user_id"
	// ContextClaimsKey JWT声明在gin.Context中的键名
	ContextClaimsKey = "jwt_claims"
)

// AuthMiddleware JWT认证中间件
// 从请求头中提取Authorization: Bearer <token>
// 验证token并将当前用户ID存入gin.Context
func (s *JWTService) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "缺少Authorization请求头")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Unauthorized(c, "Authorization格式错误，应为Bearer <token>")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			response.Unauthorized(c, "token不能为空")
			c.Abort()
			return
		}

		claims, err := s.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "token无效或已过期")
			c.Abort()
			return
		}

		userID, err := strconv.ParseUint(claims.Subject, 10, 32)
		if err != nil || userID == 0 {
			response.Unauthorized(c, "token无效")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, uint(userID))
		c.Set(ContextClaimsKey, claims)

		c.Next()
	}
}

// GetUserID 从gin.Context中获取当前用户ID
func GetUserID(c *gin.Context) uint {
	if userID, exists := c.Get(ContextUserIDKey); exists {
		if id, ok := userID.(uint); ok {
			return id
		}
	}
	return 0
}

// GetClaims 从gin.Context中获取JWT声明
func GetClaims(c *gin.Context) *CustomClaims {
	if claims, exists := c.Get(ContextClaimsKey); exists {
		if cc, ok := claims.(*CustomClaims); ok {
			return cc
		}
	}
	return nil
}
