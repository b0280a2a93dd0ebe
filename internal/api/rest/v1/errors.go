package v1

import (
	"net/http"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/errs"
	"github.com/gin-gonic/gin"
)

const msgInvalidBody = "Invalid request body"

func statusFor(kind errs.Kind) int {
	switch kind {
	case errs.KindInvalid:
		return http.StatusBadRequest
	case errs.KindUnauthorized:
		return http.StatusUnauthorized
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func newErrorResponses(messages ...string) []ErrorResponse {
	responses := make([]ErrorResponse, 0, len(messages))
	for _, msg := range messages {
		responses = append(responses, ErrorResponse{Message: msg})
	}
	return responses
}

// abortWithError ends the request with the status and messages of err.
// Internal errors are recorded on the context for the request logger.
func abortWithError(ctx *gin.Context, err error) {
	kind := errs.KindOf(err)
	if kind == errs.KindInternal {
		_ = ctx.Error(err)
	}
	ctx.AbortWithStatusJSON(statusFor(kind), newErrorResponses(errs.MessagesOf(err)...))
}

func abortWithMessage(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, newErrorResponses(message))
}
