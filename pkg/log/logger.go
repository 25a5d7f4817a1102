package log

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/justtrackio/logsink/pkg/clock"
)

const (
	// LevelTrace is the lowest priority (most verbose) log level.
	LevelTrace = "trace"
	// LevelDebug indicates information useful for developers.
	LevelDebug = "debug"
	// LevelInfo is the default level for operational logs.
	LevelInfo = "info"
	// LevelWarn indicates recoverable issues.
	LevelWarn = "warn"
	// LevelError indicates failures requiring attention.
	LevelError = "error"
	// LevelFatal indicates failures the application can not recover from.
	LevelFatal = "fatal"
	// LevelNone disables logging.
	LevelNone = "none"

	PriorityTrace = 0
	PriorityDebug = 1
	PriorityInfo  = 2
	PriorityWarn  = 3
	PriorityError = 4
	PriorityFatal = 5
	// PriorityNone is greater than any other priority, so nothing passes it.
	PriorityNone = math.MaxInt

	ChannelDefault = "main"
)

var levelNames = map[int]string{
	PriorityTrace: LevelTrace,
	PriorityDebug: LevelDebug,
	PriorityInfo:  LevelInfo,
	PriorityWarn:  LevelWarn,
	PriorityError: LevelError,
	PriorityFatal: LevelFatal,
	PriorityNone:  LevelNone,
}

var levelPriorities = map[string]int{
	LevelTrace: PriorityTrace,
	LevelDebug: PriorityDebug,
	LevelInfo:  PriorityInfo,
	LevelWarn:  PriorityWarn,
	LevelError: PriorityError,
	LevelFatal: PriorityFatal,
	LevelNone:  PriorityNone,
}

// LevelName returns the string representation of a log level priority (e.g., 2 -> "info").
func LevelName(level int) string {
	return levelNames[level]
}

// LevelPriority returns the numeric priority for a given log level name (e.g., "info" -> 2).
// It returns false if the level name is unknown.
func LevelPriority(level string) (int, bool) {
	priority, ok := levelPriorities[strings.ToLower(level)]

	return priority, ok
}

// Data holds the structured context for a log entry, including channel, fields, and context-derived fields.
type Data struct {
	Channel       string
	ContextFields map[string]any
	Fields        map[string]any
}

// Fields is a map of key-value pairs to add structured data to a log entry.
type Fields map[string]any

// Logger is the main interface for logging. The channel names the component a message originates from, e.g.
// "Microsoft.Hosting.Lifetime", and is matched against the channel levels of the logger.
//
//go:generate go run github.com/vektra/mockery/v2 --name Logger
type Logger interface {
	Debug(ctx context.Context, format string, args ...any)
	Info(ctx context.Context, format string, args ...any)
	Warn(ctx context.Context, format string, args ...any)
	Error(ctx context.Context, format string, args ...any)

	WithChannel(channel string) Logger
	WithFields(Fields) Logger
}

// GosoLogger extends the Logger interface with the ability to apply functional options after creation and to
// release the resources held by its handlers.
type GosoLogger interface {
	Logger
	Option(opt ...Option) error
	Close() error
}

var _ GosoLogger = &gosoLogger{}

type gosoLogger struct {
	clock        clock.Clock
	data         Data
	ctxResolvers []ContextFieldsResolverFunction
	handlers     []Handler
	levels       *ChannelLevels
}

// NewLogger creates a new logger with a real clock and no handlers.
func NewLogger() *gosoLogger {
	return NewLoggerWithInterfaces(clock.Provider, []Handler{})
}

// NewLoggerWithInterfaces creates a new logger with the provided clock and handlers.
func NewLoggerWithInterfaces(clock clock.Clock, handlers []Handler) *gosoLogger {
	return &gosoLogger{
		clock: clock,
		data: Data{
			Channel:       ChannelDefault,
			ContextFields: make(map[string]any),
			Fields:        make(map[string]any),
		},
		ctxResolvers: []ContextFieldsResolverFunction{ContextFieldsResolver},
		handlers:     handlers,
		levels:       NewChannelLevels(PriorityTrace),
	}
}

func (l *gosoLogger) Option(options ...Option) error {
	for _, opt := range options {
		if err := opt(l); err != nil {
			return fmt.Errorf("can not apply option %T: %w", opt, err)
		}
	}

	return nil
}

func (l *gosoLogger) Debug(ctx context.Context, format string, args ...any) {
	l.log(ctx, PriorityDebug, format, args, nil)
}

func (l *gosoLogger) Info(ctx context.Context, format string, args ...any) {
	l.log(ctx, PriorityInfo, format, args, nil)
}

func (l *gosoLogger) Warn(ctx context.Context, format string, args ...any) {
	l.log(ctx, PriorityWarn, format, args, nil)
}

func (l *gosoLogger) Error(ctx context.Context, format string, args ...any) {
	err := fmt.Errorf(format, args...)
	msg := err.Error()

	l.log(ctx, PriorityError, "%s", []any{msg}, err)
}

func (l *gosoLogger) WithChannel(channel string) Logger {
	cpy := l.copy()
	cpy.data.Channel = channel

	return cpy
}

func (l *gosoLogger) WithFields(fields Fields) Logger {
	cpy := l.copy()
	cpy.data.Fields = mergeFields(l.data.Fields, fields)

	return cpy
}

// Close closes every handler which holds a resource, like an open log file.
func (l *gosoLogger) Close() error {
	var result error

	for _, handler := range l.handlers {
		closer, ok := handler.(io.Closer)
		if !ok {
			continue
		}

		if err := closer.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result
}

func (l *gosoLogger) copy() *gosoLogger {
	return &gosoLogger{
		clock:        l.clock,
		data:         l.data,
		ctxResolvers: l.ctxResolvers,
		handlers:     l.handlers,
		levels:       l.levels,
	}
}

func (l *gosoLogger) log(ctx context.Context, level int, msg string, args []any, loggedErr error) {
	if !l.levels.Enabled(l.data.Channel, level) {
		return
	}

	timestamp := l.clock.Now()

	data := &Data{
		Channel:       l.data.Channel,
		ContextFields: make(map[string]any),
		Fields:        l.data.Fields,
	}

	for _, r := range l.ctxResolvers {
		data.ContextFields = mergeFields(data.ContextFields, r(ctx))
	}

	l.executeHandlers(ctx, timestamp, level, msg, args, loggedErr, data)
}

func (l *gosoLogger) executeHandlers(ctx context.Context, timestamp time.Time, level int, msg string, args []any, loggedErr error, data *Data) {
	for _, handler := range l.handlers {
		if handler.Level() > level {
			continue
		}

		if handlerErr := handler.Log(ctx, timestamp, level, msg, args, loggedErr, *data); handlerErr != nil && !errors.Is(handlerErr, ErrDropped) {
			l.err(handlerErr)
		}
	}
}

func (l *gosoLogger) err(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Failed to write to log, %s\n", err)
}
