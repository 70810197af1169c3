package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with the payload as-is (no envelope).
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Message sends 200 JSON with a plain message body.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Msg{Message: msg})
}

// NotFound sends 404 with a simple error message.
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, ErrResp{Error: msg})
}

// UnprocessableEntity sends 422 with field-level validation details.
func UnprocessableEntity(c *gin.Context, msg string, details []string) {
	c.JSON(http.StatusUnprocessableEntity, ErrResp{
		Error:   msg,
		Details: details,
	})
}

// InternalError sends 500 with a generic message. The underlying error is
// logged by the caller, never exposed on the wire.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrResp{Error: DefaultErrorMessage})
}

// TooManyRequests sends 429 when a client exceeds the rate limit.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrResp{Error: "too many requests"})
}
