package log

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

// ErrDropped is returned by handlers which decided not to deliver a message, e.g. because they are throttled.
// The logger does not report it as a write failure.
var ErrDropped = errors.New("log message dropped")

//go:generate go run github.com/vektra/mockery/v2 --name Handler
type Handler interface {
	Level() int
	Log(ctx context.Context, timestamp time.Time, level int, msg string, args []any, err error, data Data) error
}

var settingsValidator = validator.New()

// ValidateHandlerSettings checks the validate tags of a handler settings struct and reports every violation at once.
func ValidateHandlerSettings(settings any) error {
	err := settingsValidator.Struct(settings)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("can not validate handler settings: %w", err)
	}

	var result error
	for _, fieldErr := range validationErrors {
		result = multierror.Append(result, fmt.Errorf("setting %s failed on the %q rule", fieldErr.Field(), fieldErr.Tag()))
	}

	return result
}

func handlerPriority(level string) (int, error) {
	priority, ok := LevelPriority(level)
	if !ok {
		return 0, fmt.Errorf("unknown log level %q", level)
	}

	return priority, nil
}
