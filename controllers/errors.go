package controllers

import "github.com/gin-gonic/gin"

// raise hands a failure to the error-handler middleware. Controllers never
// write error responses themselves.
func raise(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}
