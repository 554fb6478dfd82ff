// Package validator flattens gin binding failures into a field-keyed map
// for the standard error envelope.
package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ParseError turns a binding error into per-field messages. Errors that are
// not field validations (malformed JSON, type mismatches) land under a
// single "error" key.
func ParseError(err error) map[string]string {
	fields := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fmt.Sprintf("'%s' failed the '%s' rule", fe.Field(), fe.Tag())
		}
		return fields
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	return fields
}
