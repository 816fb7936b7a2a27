package validate

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Report validation failures by wire name (json/form tag) instead of the Go
// struct field name.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
}

// FieldErrors extracts the offending field names from a gin binding error.
// Falls back to a single "body" entry when the error is not a field-level
// validation failure (e.g. malformed JSON).
func FieldErrors(err error) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return fields
	}
	return []string{"body"}
}

// AbortWithFieldErrors writes the uniform validation error response.
func AbortWithFieldErrors(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
		"error":  "validation failed",
		"fields": FieldErrors(err),
	})
}
