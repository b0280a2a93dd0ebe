//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"testing"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// recordingLogger captures log calls by level
type recordingLogger struct {
	info, warn, errorLines []string
}

func (l *recordingLogger) Debug(args ...interface{}) {}
func (l *recordingLogger) Info(args ...interface{})  { l.info = append(l.info, joinArgs(args)) }
func (l *recordingLogger) Warn(args ...interface{})  { l.warn = append(l.warn, joinArgs(args)) }
func (l *recordingLogger) Error(args ...interface{}) {
	l.errorLines = append(l.errorLines, joinArgs(args))
}
func (l *recordingLogger) Fatal(args ...interface{}) {}
func (l *recordingLogger) Panic(args ...interface{}) {}

func joinArgs(args []interface{}) string {
	out := ""
	for _, a := range args {
		if s, ok := a.(string); ok {
			out += s
		}
	}
	return out
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := &recordingLogger{}

	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/ok", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	r.GET("/missing", func(ctx *gin.Context) { abortWithMessage(ctx, http.StatusNotFound, "gone") })
	r.GET("/broken", func(ctx *gin.Context) { abortWithError(ctx, errors.New("disk on fire")) })

	testutil.PerformRequest(t, r, http.MethodGet, "/ok", nil, "")
	testutil.PerformRequest(t, r, http.MethodGet, "/missing", nil, "")
	testutil.PerformRequest(t, r, http.MethodGet, "/broken", nil, "")

	if assert.Len(t, log.info, 1) {
		assert.Contains(t, log.info[0], "GET /ok 200")
	}
	if assert.Len(t, log.warn, 1) {
		assert.Contains(t, log.warn[0], "GET /missing 404")
	}
	if assert.Len(t, log.errorLines, 1) {
		assert.Contains(t, log.errorLines[0], "GET /broken 500")
		assert.Contains(t, log.errorLines[0], "disk on fire")
	}
}
