package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/netvendor/creditintake/config"
	u "github.com/netvendor/creditintake/utils"
	cryptoUtils "github.com/netvendor/creditintake/utils/crypto"
	"github.com/netvendor/creditintake/utils/logger"
)

const (
	csrfCookieName = "csrf_token"
	csrfHeaderName = "X-CSRF-Token"
)

var mutatingMethods = map[string]bool{
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// CSRFMiddleware gates state-mutating browser requests and issues fresh
// tokens on safe ones. API paths authenticate by other means and are exempt.
func CSRFMiddleware() gin.HandlerFunc {
	authConf := config.AuthConfig()
	serverConf := config.ServerConfig()

	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/v1/") {
			c.Next()
			return
		}

		if mutatingMethods[c.Request.Method] {
			header := c.GetHeader(csrfHeaderName)
			cookie, _ := c.Cookie(csrfCookieName)

			if header == "" && cookie == "" {
				u.APIResponse(c, http.StatusForbidden, "error", "CSRF token missing", nil)
				c.Abort()
				return
			}

			token := header
			if token == "" {
				token = cookie
			}
			if !cryptoUtils.VerifyCSRFToken(authConf.Secret, token, authConf.CsrfLifespan) {
				u.APIResponse(c, http.StatusForbidden, "error", "CSRF token invalid", nil)
				c.Abort()
				return
			}

			c.Next()
			return
		}

		// Safe method: mint and deliver a fresh token
		token, err := cryptoUtils.MintCSRFToken(authConf.Secret)
		if err != nil {
			logger.Errorf("Failed to mint CSRF token: %v", err)
			c.Next()
			return
		}

		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(
			csrfCookieName,
			token,
			int(authConf.CsrfLifespan.Seconds()),
			"/",
			"",
			serverConf.Environment == "production",
			true,
		)
		c.Header(csrfHeaderName, token)

		c.Next()
	}
}
