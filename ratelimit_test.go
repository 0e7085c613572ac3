package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(rl *userRateLimiter, userID pgtype.UUID) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID.Valid {
			c.Set(ctxUserID, userID)
		}
		c.Next()
	}, rl.middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestUserRateLimiter(t *testing.T) {
	t.Run("rejects requests beyond the burst", func(t *testing.T) {
		rl := newUserRateLimiter(0.001, 2)
		router := newLimitedRouter(rl, pgtype.UUID{Bytes: uuid.New(), Valid: true})

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
			codes = append(codes, rec.Code)
			if rec.Code == http.StatusTooManyRequests {
				assert.Equal(t, "1", rec.Header().Get("Retry-After"))
			}
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("keeps separate buckets per user", func(t *testing.T) {
		rl := newUserRateLimiter(0.001, 1)

		for i := 0; i < 2; i++ {
			router := newLimitedRouter(rl, pgtype.UUID{Bytes: uuid.New(), Valid: true})
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
		assert.Len(t, rl.visitors, 2)
	})

	t.Run("falls back to the client address", func(t *testing.T) {
		rl := newUserRateLimiter(0.001, 1)
		router := newLimitedRouter(rl, pgtype.UUID{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rl.visitors, "192.0.2.1")
	})

	t.Run("sweeps idle visitors", func(t *testing.T) {
		rl := newUserRateLimiter(1, 1)
		rl.limiter("stale")
		rl.limiter("fresh")
		rl.visitors["stale"].lastSeen = time.Now().Add(-2 * visitorIdleTimeout)

		rl.sweep(time.Now())

		assert.NotContains(t, rl.visitors, "stale")
		assert.Contains(t, rl.visitors, "fresh")
	})
}
