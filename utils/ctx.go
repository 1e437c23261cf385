package utils

import "github.com/gin-gonic/gin"

// CurrentSessionID reads the kiosk session id set by the session
// middleware; "" means the middleware did not run.
func CurrentSessionID(c *gin.Context) string {
	if v, ok := c.Get("sessionId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
