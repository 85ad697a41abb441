package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS allows the local browser client to call the API from its dev
// origin. The API binds to localhost and has no auth, so the permissive
// origin is acceptable here.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
