package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const SessionCookie = "kiosk_session"

// SessionMiddleware attaches a kiosk session id to every request. The
// id travels in a signed cookie; a missing or tampered cookie gets a
// fresh session instead of an error, since a kiosk has no login.
func SessionMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sid, ok := readSession(c, secret); ok {
			c.Set("sessionId", sid)
			c.Next()
			return
		}

		sid := uuid.NewString()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sid": sid})
		signed, err := token.SignedString([]byte(secret))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "session init failed"})
			c.Abort()
			return
		}
		c.SetCookie(SessionCookie, signed, 0, "/", "", false, true)
		c.Set("sessionId", sid)
		c.Next()
	}
}

func readSession(c *gin.Context, secret string) (string, bool) {
	raw, err := c.Cookie(SessionCookie)
	if err != nil || raw == "" {
		return "", false
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sid, _ := claims["sid"].(string)
	return sid, sid != ""
}
