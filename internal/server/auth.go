package server

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// metricsAuthMiddleware guards the metrics endpoint with HTTP Basic Auth.
// An empty password leaves the endpoint open, which suits local development.
func metricsAuthMiddleware(username, password string) gin.HandlerFunc {
	protected := password != ""
	return func(c *gin.Context) {
		if protected {
			user, pass, ok := c.Request.BasicAuth()
			if !ok || !credentialsMatch(user, pass, username, password) {
				c.Header("WWW-Authenticate", `Basic realm="metrics"`)
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
		}
		c.Next()
	}
}

// credentialsMatch compares both fields in constant time.
func credentialsMatch(user, pass, wantUser, wantPass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(wantUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(wantPass)) == 1
	return userOK && passOK
}
