package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/netvendor/creditintake/config"
	"github.com/netvendor/creditintake/storage"
	cryptoUtils "github.com/netvendor/creditintake/utils/crypto"
)

func init() {
	// Config structs cache on first read, so test values go in before any
	// middleware constructor runs.
	viper.Set("SECRET", "test-secret")
	viper.Set("ADMIN_TOKEN", "test-admin-token")
	viper.Set("EXPORT_TOKEN", "test-export-token")
	viper.Set("RATE_LIMIT_API", 3)
	viper.Set("RATE_LIMIT_DEFAULT", 5)
	viper.Set("ENVIRONMENT", "test")

	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func performRequest(router *gin.Engine, method, path string, headers map[string]string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeadersMiddleware())
	router.GET("/", okHandler)

	res := performRequest(router, "GET", "/", nil, nil)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "DENY", res.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", res.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", res.Header().Get("Referrer-Policy"))
	assert.Equal(t, "1; mode=block", res.Header().Get("X-XSS-Protection"))
	assert.Equal(t, "camera=(), microphone=(), geolocation=()", res.Header().Get("Permissions-Policy"))
	assert.Contains(t, res.Header().Get("Content-Security-Policy"), "frame-ancestors 'none'")

	// HSTS stays off outside production
	assert.Empty(t, res.Header().Get("Strict-Transport-Security"))
}

func TestCSRFMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(CSRFMiddleware())
	router.GET("/form", okHandler)
	router.POST("/form", okHandler)
	router.POST("/v1/applications", okHandler)

	t.Run("safe methods mint a token", func(t *testing.T) {
		res := performRequest(router, "GET", "/form", nil, nil)

		assert.Equal(t, http.StatusOK, res.Code)
		assert.NotEmpty(t, res.Header().Get("X-CSRF-Token"))

		var cookie *http.Cookie
		for _, c := range res.Result().Cookies() {
			if c.Name == "csrf_token" {
				cookie = c
			}
		}
		assert.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("mutating request without a token is rejected", func(t *testing.T) {
		res := performRequest(router, "POST", "/form", nil, nil)
		assert.Equal(t, http.StatusForbidden, res.Code)
	})

	t.Run("mutating request with a minted token passes", func(t *testing.T) {
		token, err := cryptoUtils.MintCSRFToken(config.AuthConfig().Secret)
		assert.NoError(t, err)

		res := performRequest(router, "POST", "/form", map[string]string{
			"X-CSRF-Token": token,
		}, nil)
		assert.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("mutating request with a forged token is rejected", func(t *testing.T) {
		token, err := cryptoUtils.MintCSRFToken("some-other-secret")
		assert.NoError(t, err)

		res := performRequest(router, "POST", "/form", map[string]string{
			"X-CSRF-Token": token,
		}, nil)
		assert.Equal(t, http.StatusForbidden, res.Code)
	})

	t.Run("API paths are exempt", func(t *testing.T) {
		res := performRequest(router, "POST", "/v1/applications", nil, nil)
		assert.Equal(t, http.StatusOK, res.Code)
	})
}

func TestAuthGateMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(AuthGateMiddleware())
	router.GET("/v1/applications/123", okHandler)
	router.GET("/v1/admin/applications", okHandler)
	router.GET("/v1/admin/export", okHandler)
	router.GET("/internal/metrics", okHandler)

	t.Run("public paths pass without credentials", func(t *testing.T) {
		res := performRequest(router, "GET", "/v1/applications/123", nil, nil)
		assert.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("protected paths reject missing credentials", func(t *testing.T) {
		res := performRequest(router, "GET", "/v1/admin/applications", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)

		res = performRequest(router, "GET", "/internal/metrics", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("bearer token grants access", func(t *testing.T) {
		res := performRequest(router, "GET", "/v1/admin/applications", map[string]string{
			"Authorization": "Bearer test-admin-token",
		}, nil)
		assert.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("admin token header grants access", func(t *testing.T) {
		res := performRequest(router, "GET", "/internal/metrics", map[string]string{
			"X-Admin-Token": "test-admin-token",
		}, nil)
		assert.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("wrong bearer token is rejected", func(t *testing.T) {
		res := performRequest(router, "GET", "/v1/admin/applications", map[string]string{
			"Authorization": "Bearer wrong-token",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("admin session cookie grants access", func(t *testing.T) {
		session, err := MintAdminSession(config.AuthConfig())
		assert.NoError(t, err)

		res := performRequest(router, "GET", "/v1/admin/applications", nil, []*http.Cookie{
			{Name: "admin_session", Value: session},
		})
		assert.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("tampered session cookie is rejected", func(t *testing.T) {
		res := performRequest(router, "GET", "/v1/admin/applications", nil, []*http.Cookie{
			{Name: "admin_session", Value: "not-a-jwt"},
		})
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("export signature pair grants access to exports only", func(t *testing.T) {
		conf := config.AuthConfig()
		signature := cryptoUtils.SignHMAC(conf.Secret, conf.ExportToken)

		res := performRequest(router, "GET", "/v1/admin/export?token=test-export-token&signature="+signature, nil, nil)
		assert.Equal(t, http.StatusOK, res.Code)

		// The same pair does not open other admin paths
		res = performRequest(router, "GET", "/v1/admin/applications?token=test-export-token&signature="+signature, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("export pair with a bad signature is rejected", func(t *testing.T) {
		res := performRequest(router, "GET", "/v1/admin/export?token=test-export-token&signature=deadbeef", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	mr := miniredis.RunT(t)
	storage.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() {
		storage.RedisClient = nil
		ResetLimitersForTest()
	}()

	ResetLimitersForTest()

	router := gin.New()
	router.Use(RateLimitMiddleware())
	router.GET("/v1/applications", okHandler)
	router.GET("/health", okHandler)

	t.Run("API requests beyond the budget get 429", func(t *testing.T) {
		var last *httptest.ResponseRecorder
		for i := 0; i < 3; i++ {
			last = performRequest(router, "GET", "/v1/applications", nil, nil)
			assert.Equal(t, http.StatusOK, last.Code)
		}

		last = performRequest(router, "GET", "/v1/applications", nil, nil)
		assert.Equal(t, http.StatusTooManyRequests, last.Code)
		assert.NotEmpty(t, last.Header().Get("Retry-After"))
		assert.Equal(t, "3", last.Header().Get("X-RateLimit-Limit"))
	})

	t.Run("counters are per path", func(t *testing.T) {
		res := performRequest(router, "GET", "/health", nil, nil)
		assert.Equal(t, http.StatusOK, res.Code)
	})
}
