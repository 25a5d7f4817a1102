package log

import "fmt"

type HandlerFileSettings struct {
	Path            string `validate:"required"`
	Level           string `validate:"required,oneof=trace debug info warn error fatal none"`
	Interval        string `validate:"required,oneof=infinite year month day hour minute"`
	TimestampFormat string `validate:"required"`
}

// NewHandlerFile writes json formatted messages to a rolling file.
func NewHandlerFile(settings HandlerFileSettings) (Handler, error) {
	if err := ValidateHandlerSettings(settings); err != nil {
		return nil, fmt.Errorf("invalid file handler settings: %w", err)
	}

	writer, err := NewRollingFileWriter(settings.Path, settings.Interval)
	if err != nil {
		return nil, fmt.Errorf("can not create rolling file writer: %w", err)
	}

	return NewHandlerIoWriter(HandlerIoWriterSettings{
		Level:           settings.Level,
		Formatter:       FormatterJson,
		TimestampFormat: settings.TimestampFormat,
	}, writer)
}
