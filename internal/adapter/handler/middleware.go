package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/srgjo27/scalable_parking/internal/platform/auth"
)

const callerKey = "caller"

func JWTAuth(v *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		claims, err := v.ParseValidate(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set("sub", claims.Sub)
		c.Set("role", claims.Role)
		c.Set(callerKey, domain.Caller{UserID: claims.Sub, Staff: claims.IsStaff(), Phone: claims.Phone})
		c.Next()
	}
}

func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !callerFrom(c).Staff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff only"})
			return
		}
		c.Next()
	}
}

func callerFrom(c *gin.Context) domain.Caller {
	v, _ := c.Get(callerKey)
	caller, _ := v.(domain.Caller)
	return caller
}
