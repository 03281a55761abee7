package middlewares

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/cleanease/cleanease-api/apperrors"
	"github.com/cleanease/cleanease-api/utils"
)

// ErrorHandler is the outermost wrap of every route. Handlers raise failures
// by attaching them to the gin context and returning; this middleware turns
// the first attached error into the `{"error": message}` response bound to
// its kind. Unclassified errors are logged for the operator and degrade to a
// generic 500 so internals never reach the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors[0].Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Kind == apperrors.KindDatabase {
				utils.ErrorLogger.Printf("database error on %s %s: %v",
					c.Request.Method, c.Request.URL.Path, err)
			}
			utils.RespondError(c, appErr.Status(), appErr.Message)
			return
		}

		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			utils.RespondError(c, http.StatusBadRequest, utils.FormatValidationError(err))
			return
		}

		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.EOF) {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		utils.ErrorLogger.Printf("unhandled error on %s %s: %v",
			c.Request.Method, c.Request.URL.Path, err)
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
