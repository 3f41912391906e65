package response

import "github.com/gin-gonic/gin"

// ErrorBody is the single error envelope every endpoint uses.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error": ErrorBody{
			Message: message,
			Status:  status,
		},
	})
}

// AbortError writes the error envelope and stops the handler chain.
// Used from middleware.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": ErrorBody{
			Message: message,
			Status:  status,
		},
	})
}
