package logsetup

import (
	"fmt"
	"maps"

	"github.com/justtrackio/logsink/pkg/clock"
	"github.com/justtrackio/logsink/pkg/log"
	"github.com/justtrackio/logsink/pkg/logsettings"
)

const (
	// the pipeline itself passes everything from debug on, overrides may lower or raise this per channel
	defaultPipelineLevel = log.LevelDebug

	consoleTimestampFormat = "15:04:05.000"
	fileTimestampFormat    = "2006-01-02T15:04:05.000Z07:00"
)

var levels = map[logsettings.Level]string{
	logsettings.LevelVerbose:     log.LevelTrace,
	logsettings.LevelDebug:       log.LevelDebug,
	logsettings.LevelInformation: log.LevelInfo,
	logsettings.LevelWarning:     log.LevelWarn,
	logsettings.LevelError:       log.LevelError,
	logsettings.LevelFatal:       log.LevelFatal,
}

var rollingIntervals = map[logsettings.RollingInterval]string{
	logsettings.RollingInfinite: log.RollingInfinite,
	logsettings.RollingYear:     log.RollingYear,
	logsettings.RollingMonth:    log.RollingMonth,
	logsettings.RollingDay:      log.RollingDay,
	logsettings.RollingHour:     log.RollingHour,
	logsettings.RollingMinute:   log.RollingMinute,
}

// HandlerFactories create the handlers of the sinks. They are replaced in tests to capture outgoing requests.
type HandlerFactories struct {
	Console          func(settings log.HandlerIoWriterSettings) (log.Handler, error)
	RemoteAggregator func(settings log.HandlerRemoteSettings) (log.Handler, error)
	Webhook          func(settings log.HandlerWebhookSettings) (log.Handler, error)
	File             func(settings log.HandlerFileSettings) (log.Handler, error)
}

func DefaultHandlerFactories() HandlerFactories {
	return HandlerFactories{
		Console:          log.NewHandlerConsole,
		RemoteAggregator: log.NewHandlerRemote,
		Webhook:          log.NewHandlerWebhook,
		File:             log.NewHandlerFile,
	}
}

type channelLevel struct {
	channel string
	level   string
}

// Builder collects the sinks, overrides and enrichment of a log pipeline and creates a logger from them.
type Builder struct {
	clock         clock.Clock
	factories     HandlerFactories
	fields        map[string]any
	channelLevels []channelLevel
	handlers      []log.Handler
	console       bool
}

var _ logsettings.Pipeline = &Builder{}

func NewBuilder() *Builder {
	return NewBuilderWithInterfaces(clock.Provider, DefaultHandlerFactories())
}

func NewBuilderWithInterfaces(clock clock.Clock, factories HandlerFactories) *Builder {
	return &Builder{
		clock:     clock,
		factories: factories,
		fields:    make(map[string]any),
	}
}

func (b *Builder) AttachConsole(minLevel logsettings.Level) error {
	level, err := mapLevel(minLevel)
	if err != nil {
		return err
	}

	handler, err := b.factories.Console(log.HandlerIoWriterSettings{
		Level:           level,
		Formatter:       log.FormatterConsole,
		TimestampFormat: consoleTimestampFormat,
	})
	if err != nil {
		return fmt.Errorf("can not create console handler: %w", err)
	}

	b.handlers = append(b.handlers, handler)
	b.console = true

	return nil
}

func (b *Builder) AttachRemoteAggregator(endpoint string, token string, minLevel logsettings.Level) error {
	level, err := mapLevel(minLevel)
	if err != nil {
		return err
	}

	handler, err := b.factories.RemoteAggregator(log.HandlerRemoteSettings{
		Endpoint: endpoint,
		Token:    token,
		Level:    level,
	})
	if err != nil {
		return fmt.Errorf("can not create remote aggregator handler: %w", err)
	}

	b.handlers = append(b.handlers, handler)

	return nil
}

func (b *Builder) AttachWebhook(url string, useWorkflowFormat bool, titleTemplate string, minLevel logsettings.Level) error {
	level, err := mapLevel(minLevel)
	if err != nil {
		return err
	}

	handler, err := b.factories.Webhook(log.HandlerWebhookSettings{
		Url:               url,
		Level:             level,
		UseWorkflowFormat: useWorkflowFormat,
		TitleTemplate:     titleTemplate,
	})
	if err != nil {
		return fmt.Errorf("can not create webhook handler: %w", err)
	}

	b.handlers = append(b.handlers, handler)

	return nil
}

func (b *Builder) AttachFile(path string, minLevel logsettings.Level, interval logsettings.RollingInterval) error {
	level, err := mapLevel(minLevel)
	if err != nil {
		return err
	}

	rolling, ok := rollingIntervals[interval]
	if !ok {
		return fmt.Errorf("unknown rolling interval %s", interval)
	}

	handler, err := b.factories.File(log.HandlerFileSettings{
		Path:            path,
		Level:           level,
		Interval:        rolling,
		TimestampFormat: fileTimestampFormat,
	})
	if err != nil {
		return fmt.Errorf("can not create file handler: %w", err)
	}

	b.handlers = append(b.handlers, handler)

	return nil
}

// ApplyOverride ignores levels it does not know, which ReadSettings never produces.
func (b *Builder) ApplyOverride(component string, minLevel logsettings.Level) {
	level, err := mapLevel(minLevel)
	if err != nil {
		return
	}

	b.channelLevels = append(b.channelLevels, channelLevel{
		channel: component,
		level:   level,
	})
}

func (b *Builder) EnrichWith(property string, value any) {
	b.fields[property] = value
}

// HasConsole reports whether the console sink has been attached.
func (b *Builder) HasConsole() bool {
	return b.console
}

// Logger creates a logger writing to every attached sink.
func (b *Builder) Logger() (log.GosoLogger, error) {
	options := []log.Option{
		log.WithHandlers(b.handlers...),
		log.WithLevel(defaultPipelineLevel),
		log.WithFields(maps.Clone(b.fields)),
	}

	for _, override := range b.channelLevels {
		options = append(options, log.WithChannelLevel(override.channel, override.level))
	}

	logger := log.NewLoggerWithInterfaces(b.clock, []log.Handler{})

	if err := logger.Option(options...); err != nil {
		return nil, fmt.Errorf("can not configure logger: %w", err)
	}

	return logger, nil
}

func mapLevel(level logsettings.Level) (string, error) {
	mapped, ok := levels[level]
	if !ok {
		return "", fmt.Errorf("unknown log level %s", level)
	}

	return mapped, nil
}
