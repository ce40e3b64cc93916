package utils

import (
	"github.com/samuelr2112/portfolio/internal/api/dto/common"
	"github.com/samuelr2112/portfolio/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleAPIError logs the full error server-side and returns a generic
// response to the caller. Error detail is only included in the body
// outside of release mode.
func HandleAPIError(c *gin.Context, err error, status int, code common.ErrorCode, message string) {
	logger := logging.GetLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	var errorDetails interface{}
	if gin.Mode() != gin.ReleaseMode && err != nil {
		errorDetails = err.Error()
	}

	c.JSON(status, common.NewErrorResponse(code, message, errorDetails))
}
