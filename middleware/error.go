package middleware

import (
	"github.com/WanderstayHolidays/crm_end/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns errors attached to the context into API error responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// A handler already wrote an error response.
		if c.Writer.Status() >= 400 {
			return
		}

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			utils.HandleError(c, err.Err)
			return
		}
	}
}
