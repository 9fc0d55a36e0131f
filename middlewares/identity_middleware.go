// middlewares/identity_middleware.go
package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raphaeljcm/daily-diet-api/utils"
)

// IdentityCookie carries the signed identity token between requests.
const IdentityCookie = "userId"

// ContextUserID is the gin context key holding the resolved identity.
const ContextUserID = "userID"

// RequireIdentity guards every owner-scoped operation. A missing or invalid
// cookie aborts with 401 before any store access happens; the handler never
// sees a request without a resolved identity.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(IdentityCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		identity, err := utils.ParseIdentity(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(ContextUserID, identity)
		c.Next()
	}
}

// ResolveIdentity runs in front of meal creation, the one operation allowed
// to self-issue an identity. A valid inbound cookie is reused; otherwise a
// fresh token is minted, signed and attached to the response so every later
// request carries it.
func ResolveIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(IdentityCookie); err == nil {
			if identity, err := utils.ParseIdentity(raw); err == nil {
				c.Set(ContextUserID, identity)
				c.Next()
				return
			}
		}

		identity := utils.NewIdentityToken()
		signed, err := utils.SignIdentity(identity)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.SetCookie(IdentityCookie, signed, int(utils.IdentityTokenTTL.Seconds()), "/", "", false, true)
		c.Set(ContextUserID, identity)
		c.Next()
	}
}
