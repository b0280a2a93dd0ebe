//go:build unit
// +build unit

package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(cors.New(newCorsConfig(origins)))
	r.GET("/products", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestNewCorsConfig_ExplicitOriginsAllowCredentials(t *testing.T) {
	cfg := newCorsConfig([]string{"http://localhost:4200"})
	assert.True(t, cfg.AllowCredentials)
	assert.Contains(t, cfg.AllowHeaders, "Authorization")

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	w := httptest.NewRecorder()
	corsRouter([]string{"http://localhost:4200"}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:4200", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestNewCorsConfig_WildcardDisablesCredentials(t *testing.T) {
	cfg := newCorsConfig([]string{"*"})
	assert.False(t, cfg.AllowCredentials)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Origin", "http://anywhere.example")
	w := httptest.NewRecorder()
	corsRouter([]string{"*"}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}
