package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListResponse is the envelope for collection endpoints: a human-readable
// detail line plus the data rows.
type ListResponse struct {
	Detail string      `json:"detail"`
	Data   interface{} `json:"data"`
}

// ErrorResponse carries a single detail message.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// List writes a detail+data envelope.
func List(c *gin.Context, statusCode int, detail string, data interface{}) {
	c.JSON(statusCode, ListResponse{
		Detail: detail,
		Data:   data,
	})
}

// Object writes a bare object body.
func Object(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Error responses
func Error(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, ErrorResponse{Detail: detail})
}

func BadRequest(c *gin.Context, detail string) {
	Error(c, http.StatusBadRequest, detail)
}

func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, detail)
}

// InternalServerError hides internal detail behind a generic message.
func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal Server Error")
}
