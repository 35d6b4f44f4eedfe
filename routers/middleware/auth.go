package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/netvendor/creditintake/config"
	u "github.com/netvendor/creditintake/utils"
	cryptoUtils "github.com/netvendor/creditintake/utils/crypto"
)

// Paths under these prefixes require admin credentials.
var protectedPrefixes = []string{"/v1/admin", "/internal"}

// exportPath additionally accepts a token+signature query pair so report
// consumers can fetch exports without holding the admin token.
const exportPath = "/v1/admin/export"

// AuthGateMiddleware rejects unauthenticated requests to protected paths
func AuthGateMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !isProtectedPath(path) {
			c.Next()
			return
		}

		conf := config.AuthConfig()

		if hasAdminBearer(c, conf) || hasAdminSession(c, conf) {
			c.Next()
			return
		}

		if path == exportPath && hasValidExportSignature(c, conf) {
			c.Next()
			return
		}

		u.APIResponse(c, http.StatusUnauthorized, "error", "Authentication required", nil)
		c.Abort()
	}
}

func isProtectedPath(path string) bool {
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func hasAdminBearer(c *gin.Context, conf *config.AuthConfiguration) bool {
	if conf.AdminToken == "" {
		return false
	}

	token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !found {
		token = c.GetHeader("X-Admin-Token")
	}
	if token == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(conf.AdminToken)) == 1
}

// hasAdminSession verifies the admin session cookie as an HS256 JWT with an
// admin scope claim
func hasAdminSession(c *gin.Context, conf *config.AuthConfiguration) bool {
	cookie, err := c.Cookie("admin_session")
	if err != nil || cookie == "" {
		return false
	}

	token, err := jwt.Parse(cookie, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(conf.Secret), nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	scope, _ := claims["scope"].(string)
	return scope == "admin"
}

// hasValidExportSignature verifies the token+signature query pair with a
// keyed hash over the token
func hasValidExportSignature(c *gin.Context, conf *config.AuthConfiguration) bool {
	token := c.Query("token")
	signature := c.Query("signature")
	if token == "" || signature == "" || conf.ExportToken == "" {
		return false
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(conf.ExportToken)) != 1 {
		return false
	}
	return cryptoUtils.VerifyHMAC(conf.Secret, token, signature)
}

// MintAdminSession issues the JWT placed in the admin session cookie
func MintAdminSession(conf *config.AuthConfiguration) (string, error) {
	claims := jwt.MapClaims{
		"scope": "admin",
		"exp":   jwt.NewNumericDate(time.Now().Add(conf.SessionLifespan)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(conf.Secret))
}
