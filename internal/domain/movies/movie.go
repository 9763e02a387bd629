package movies

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrMovieNotFound is returned when no record matches a lookup by ID.
var ErrMovieNotFound = errors.New("movie not found")

// Movie entity
type Movie struct {
	ID              string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	Title           string    `validate:"required,min=1,max=255"`
	Description     string    `validate:"max=4000"`
	ImageURL        string    `validate:"omitempty,url,max=512"`
	URL             string    `validate:"omitempty,url,max=512"`
}

// Validate for validating Movie struct
func (m *Movie) Validate() error {
	validate := validator.New()

	err := validate.Struct(m)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
