package middleware

import (
	"log/slog"
	"net/http"

	"hotel-admin/internal/handler/httperr"
	"hotel-admin/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesLogged = 12

// ErrorHandler renders errors attached with c.Error when the handler wrote no body,
// and logs the cause of every 5xx with its stack.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		resp, public := lastPublicResponse(c)
		status := c.Writer.Status()
		if !c.Writer.Written() {
			status = http.StatusInternalServerError
			if public {
				status = resp.Status
			}
		}
		if status >= http.StatusInternalServerError {
			last := c.Errors.Last().Err
			slog.Error("request failed",
				"request_id", GetRequestID(c),
				"path", c.FullPath(),
				"error", last.Error(),
				"stack", errs.ExtractStackLines(last, stackLinesLogged),
			)
		}

		if c.Writer.Written() {
			return
		}
		if public {
			c.JSON(resp.Status, resp)
			return
		}
		fallback := httperr.Response{Status: http.StatusInternalServerError}
		fallback.Error.Message = "Internal server error"
		c.JSON(http.StatusInternalServerError, fallback)
	}
}

func lastPublicResponse(c *gin.Context) (httperr.Response, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		e := c.Errors[i]
		if !e.IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := e.Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"panic", rec,
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path,
				)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
