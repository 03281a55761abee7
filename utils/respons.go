package utils

import "github.com/gin-gonic/gin"

// ErrorBody is the wire shape of every failure response.
type ErrorBody struct {
	Error string `json:"error"`
}

// RespondJSON writes a success payload as-is.
func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// RespondError writes the single-line error body used across the API.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}
