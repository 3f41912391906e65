package response

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationMessage turns a binding error into a client-safe message
// naming the offending fields by their json tag.
func ValidationMessage(req any, err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Invalid request body"
	}

	requestType := reflect.TypeOf(req)
	if requestType.Kind() == reflect.Pointer {
		requestType = requestType.Elem()
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		name := fieldError.Field()
		if requestType.Kind() == reflect.Struct {
			if field, ok := requestType.FieldByName(fieldError.StructField()); ok {
				for _, tag := range []string{"json", "form"} {
					if v := field.Tag.Get(tag); v != "" && v != "-" {
						name = strings.Split(v, ",")[0]
						break
					}
				}
			}
		}
		fields = append(fields, name)
	}

	return "Validation errors in: " + strings.Join(fields, ", ")
}
