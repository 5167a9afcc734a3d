package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"product-describer/internal/shared/server/respond"
)

const (
	userIDKey  = "userId"
	guestIDKey = "X-Guest-Id"
	maxGuestID = 128
)

// Identity resolves the caller from the X-Guest-Id header, which the browser
// generates once and keeps locally. Paths in public skip the check.
func Identity(public ...string) gin.HandlerFunc {
	open := make(map[string]struct{}, len(public))
	for _, p := range public {
		open[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		if _, ok := open[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		guestID := strings.TrimSpace(c.GetHeader(guestIDKey))
		if guestID == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
			return
		}
		if len(guestID) > maxGuestID {
			respond.Error(c, http.StatusBadRequest, "invalid_request", "guest id too long", nil)
			return
		}

		c.Set(userIDKey, "guest:"+guestID)
		c.Set("isGuest", true)
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the identity middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
