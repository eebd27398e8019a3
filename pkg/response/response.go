package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{ErrorCode: CodeOK, Message: MessageSuccess, Data: data})
}

// Error sends 400 with the error text; the caller owns the message.
func Error(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Resp{ErrorCode: CodeBadRequest, Message: err.Error()})
}

// InternalError sends 500. The cause is not exposed to the client.
func InternalError(c *gin.Context, _ error) {
	c.JSON(http.StatusInternalServerError, Resp{ErrorCode: CodeInternal, Message: MessageInternal})
}

// BadGateway sends 502 when an upstream service failed the request.
func BadGateway(c *gin.Context, err error) {
	c.JSON(http.StatusBadGateway, Resp{ErrorCode: CodeBadGateway, Message: err.Error()})
}

// Unavailable sends 503 while the service cannot take traffic.
func Unavailable(c *gin.Context, err error) {
	c.JSON(http.StatusServiceUnavailable, Resp{ErrorCode: CodeUnavailable, Message: err.Error()})
}

// TooManyRequests aborts the chain with 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: CodeTooManyRequests,
		Message:   MessageTooManyRequests,
	})
}
