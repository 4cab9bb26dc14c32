package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func newLimitedRouter(ipLimiter *IPRateLimiter, quota *DailyQuota) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/gen", RateLimitMiddleware(ipLimiter, quota), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func hit(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/gen", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDailyQuotaCounts(t *testing.T) {
	q := NewDailyQuota(3)
	assert.Equal(t, int64(3), q.Remaining())
	for i := 0; i < 3; i++ {
		assert.True(t, q.Allow())
	}
	assert.False(t, q.Allow())
	assert.Equal(t, int64(0), q.Remaining())
	assert.Equal(t, int64(3), q.Count())
}

func TestRateLimitMiddlewareQuotaExhausted(t *testing.T) {
	r := newLimitedRouter(NewIPRateLimiter(rate.Inf, 1), NewDailyQuota(1))

	assert.Equal(t, http.StatusOK, hit(r).Code)

	w := hit(r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3600", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "DAILY_QUOTA_EXCEEDED")
}

func TestRateLimitMiddlewarePerIP(t *testing.T) {
	// Burst of 1 with a near-zero refill rate, so the second request
	// from the same IP is rejected.
	r := newLimitedRouter(NewIPRateLimiter(rate.Every(time.Hour), 1), NewDailyQuota(100))

	assert.Equal(t, http.StatusOK, hit(r).Code)

	w := hit(r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "10", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
}
