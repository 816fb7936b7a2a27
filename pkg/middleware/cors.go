package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware applies the site-wide CORS policy: the configured origins
// (wildcard by default), all methods, all headers, credentials allowed.
// OPTIONS preflights are answered directly.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	wildcard := false
	allowed := map[string]bool{}
	for _, o := range origins {
		if o == "*" {
			wildcard = true
		}
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		h := c.Writer.Header()
		switch {
		case wildcard && origin != "":
			// echo the origin so credentialed requests keep working
			h.Set("Access-Control-Allow-Origin", origin)
		case wildcard:
			h.Set("Access-Control-Allow-Origin", "*")
		case allowed[origin]:
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Vary", "Origin")
		}
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		h.Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
