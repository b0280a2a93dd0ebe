package validators

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Messages maps each failed field of a validation error to a readable message.
// catalog is keyed by "Field.tag". Unlisted failures fall back to "Field: X, Tag: Y".
func Messages(err error, catalog map[string]string) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		if msg, ok := catalog[fieldErr.Field()+"."+fieldErr.Tag()]; ok {
			messages = append(messages, msg)
			continue
		}
		messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
	}
	return messages
}
