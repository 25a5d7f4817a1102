package logsetup

import (
	"context"

	"github.com/justtrackio/logsink/pkg/cfg"
	"github.com/justtrackio/logsink/pkg/log"
	"github.com/justtrackio/logsink/pkg/logsettings"
	"go.uber.org/fx"
)

// FXModule provides the logger built from the cfg.Config of the container and closes its sinks when the application
// stops.
//
// Usage:
//
//	app := fx.New(
//	    fx.Provide(func() (cfg.Config, error) {
//	        config := cfg.New()
//
//	        return config, config.Option(cfg.WithEnvironment(""))
//	    }),
//	    logsetup.FXModule,
//	)
var FXModule = fx.Module("logsetup",
	fx.Provide(
		NewLoggerWithDI,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

type LoggerParams struct {
	fx.In

	Config  cfg.Config
	Process logsettings.ProcessInfo `optional:"true"`
}

type LoggerResult struct {
	fx.Out

	GosoLogger log.GosoLogger
	Logger     log.Logger
	Settings   *logsettings.Settings
}

func NewLoggerWithDI(params LoggerParams) (LoggerResult, error) {
	process := params.Process
	if process == nil {
		process = logsettings.NewProcessInfo()
	}

	logger, settings, err := BuildWithInterfaces(params.Config, logsettings.NewKeyResolver(params.Config), process, NewBuilder())
	if err != nil {
		return LoggerResult{}, err
	}

	return LoggerResult{
		GosoLogger: logger,
		Logger:     logger,
		Settings:   settings,
	}, nil
}

// RegisterLoggerLifecycle closes the sinks holding resources, like open log files, on shutdown.
func RegisterLoggerLifecycle(lc fx.Lifecycle, logger log.GosoLogger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return logger.Close()
		},
	})
}
