package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"mediashare/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request as a key=value line and recovers from
// panics. Error detail stays in the log; the response body only carries
// the normalized envelope.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequest(c, start, "panic", err.Error())
				log.Printf("panic_stack %s", debug.Stack())

				response.AbortError(c, http.StatusServiceUnavailable, "Service unavailable")
				return
			}

			status := c.Writer.Status()
			switch {
			case len(c.Errors) > 0:
				for _, err := range c.Errors {
					logRequest(c, start, "error", err.Error())
				}
			case status >= http.StatusInternalServerError:
				logRequest(c, start, "http_error", fmt.Sprintf("status=%d", status))
			default:
				logRequest(c, start, "ok", "")
			}
		}()

		c.Next()
	}
}

func logRequest(c *gin.Context, start time.Time, outcome, detail string) {
	log.Printf(
		"request outcome=%s status=%d method=%s path=%s client_ip=%s user_id=%d latency=%s detail=%q",
		outcome,
		c.Writer.Status(),
		c.Request.Method,
		c.Request.URL.Path,
		c.ClientIP(),
		c.GetInt64("user_id"),
		time.Since(start),
		detail,
	)
}
