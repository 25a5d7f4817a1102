package log

import "fmt"

type Option func(logger *gosoLogger) error

// WithFields adds fields to every message written by the logger and the loggers derived from it.
func WithFields(fields map[string]any) Option {
	return func(logger *gosoLogger) error {
		logger.data.Fields = mergeFields(logger.data.Fields, fields)

		return nil
	}
}

// WithHandlers adds handlers to the logger, every message is passed to the handlers in the order they were added.
func WithHandlers(handlers ...Handler) Option {
	return func(logger *gosoLogger) error {
		logger.handlers = append(logger.handlers, handlers...)

		return nil
	}
}

// WithLevel sets the minimum priority of messages on channels without a level of their own.
func WithLevel(level string) Option {
	return func(logger *gosoLogger) error {
		priority, ok := LevelPriority(level)
		if !ok {
			return fmt.Errorf("unknown log level %q", level)
		}

		logger.levels.SetLevel(priority)

		return nil
	}
}

// WithChannelLevel sets the minimum priority of messages on the channel and every channel below it.
func WithChannelLevel(channel string, level string) Option {
	return func(logger *gosoLogger) error {
		priority, ok := LevelPriority(level)
		if !ok {
			return fmt.Errorf("unknown log level %q for channel %s", level, channel)
		}

		logger.levels.SetChannelLevel(channel, priority)

		return nil
	}
}
