package httputil

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/aorbo/booking-api/pkg/errors"
)

// BindJSON decodes the request body into obj and turns binding-tag
// violations into a readable bad-request error listing each failed
// field.
func BindJSON(c *gin.Context, obj interface{}) *errors.AppError {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
		return errors.BadRequest(strings.Join(msgs, "; "), err)
	}
	return errors.BadRequest("invalid request body", err)
}
