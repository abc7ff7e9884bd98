package engine

import (
	"errors"
	"fmt"

	"github.com/tractionlens/plan-engine/internal/models"
)

// ValidationError reports an invalid goal or score mapping. It is always
// raised before any plan construction begins.
type ValidationError struct {
	Field string
	Axis  models.Axis
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Axis != "" {
		return fmt.Sprintf("invalid goal: %s (axis %s): %s", e.Field, e.Axis, e.Msg)
	}
	return fmt.Sprintf("invalid goal: %s: %s", e.Field, e.Msg)
}

// Is lets errors.Is match any ValidationError regardless of field detail.
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
