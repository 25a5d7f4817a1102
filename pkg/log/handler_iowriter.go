package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type HandlerIoWriterSettings struct {
	Level           string `validate:"required,oneof=trace debug info warn error fatal none"`
	Formatter       string `validate:"required,oneof=console json"`
	TimestampFormat string `validate:"required"`
}

type handlerIoWriter struct {
	lck             sync.Mutex
	level           int
	formatter       Formatter
	timestampFormat string
	writer          io.Writer
}

// NewHandlerConsole writes every message with at least the given level to stdout.
func NewHandlerConsole(settings HandlerIoWriterSettings) (Handler, error) {
	return NewHandlerIoWriter(settings, os.Stdout)
}

func NewHandlerIoWriter(settings HandlerIoWriterSettings, writer io.Writer) (Handler, error) {
	if err := ValidateHandlerSettings(settings); err != nil {
		return nil, fmt.Errorf("invalid io writer handler settings: %w", err)
	}

	level, err := handlerPriority(settings.Level)
	if err != nil {
		return nil, err
	}

	formatter, err := FormatterByName(settings.Formatter)
	if err != nil {
		return nil, err
	}

	return &handlerIoWriter{
		level:           level,
		formatter:       formatter,
		timestampFormat: settings.TimestampFormat,
		writer:          writer,
	}, nil
}

func (h *handlerIoWriter) Level() int {
	return h.level
}

func (h *handlerIoWriter) Log(_ context.Context, timestamp time.Time, level int, msg string, args []any, logErr error, data Data) error {
	var err error
	var bytes []byte
	timestampStr := timestamp.Format(h.timestampFormat)

	if bytes, err = h.formatter(timestampStr, level, msg, args, logErr, data); err != nil {
		return fmt.Errorf("can not format log message: %w", err)
	}

	h.lck.Lock()
	defer h.lck.Unlock()

	if _, err = h.writer.Write(bytes); err != nil {
		return fmt.Errorf("can not write log message: %w", err)
	}

	return nil
}

// Close closes the underlying writer if it owns a resource. Stdout and stderr are left open.
func (h *handlerIoWriter) Close() error {
	if h.writer == os.Stdout || h.writer == os.Stderr {
		return nil
	}

	closer, ok := h.writer.(io.Closer)
	if !ok {
		return nil
	}

	return closer.Close()
}
