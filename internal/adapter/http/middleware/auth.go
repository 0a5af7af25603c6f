package middleware

import (
	"net/http"

	"maintup/pkg"

	"github.com/gin-gonic/gin"
)

// BearerAuth gates mutating routes behind a static bearer token. An empty
// token disables the gate entirely; GET routes are never gated.
func BearerAuth(token string) gin.HandlerFunc {
	expected := "Bearer " + token
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}
		if c.GetHeader("Authorization") != expected {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
