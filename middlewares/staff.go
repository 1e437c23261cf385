package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// StaffMiddleware gates counter administration behind the store PIN.
// The bcrypt hash of the PIN comes from the environment; with no hash
// configured the staff routes stay closed.
func StaffMiddleware(pinHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pinHash == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "staff PIN not configured"})
			c.Abort()
			return
		}
		pin := c.GetHeader("X-Staff-Pin")
		if pin == "" || bcrypt.CompareHashAndPassword([]byte(pinHash), []byte(pin)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid staff PIN"})
			c.Abort()
			return
		}
		c.Next()
	}
}
