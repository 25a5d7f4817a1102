package logsetup

import (
	"context"
	"fmt"

	"github.com/justtrackio/logsink/pkg/cfg"
	"github.com/justtrackio/logsink/pkg/log"
	"github.com/justtrackio/logsink/pkg/logsettings"
)

const channelLogSetup = "logsetup"

// Build reads the log settings from the config and creates a logger for them. Optional sinks which can not be
// created are skipped and reported as warning on the console. Build fails for a *logsettings.ConfigurationError and
// if the console sink can not be created.
func Build(config cfg.Config) (log.GosoLogger, *logsettings.Settings, error) {
	return BuildWithInterfaces(config, logsettings.NewKeyResolver(config), logsettings.NewProcessInfo(), NewBuilder())
}

func BuildWithInterfaces(config cfg.Config, resolver *logsettings.KeyResolver, process logsettings.ProcessInfo, builder *Builder) (log.GosoLogger, *logsettings.Settings, error) {
	settings, err := logsettings.ReadSettingsWithInterfaces(config, resolver, process)
	if err != nil {
		return nil, nil, fmt.Errorf("can not read log settings: %w", err)
	}

	applyErr := settings.Apply(builder)

	if !builder.HasConsole() {
		return nil, nil, fmt.Errorf("can not build log pipeline: %w", applyErr)
	}

	logger, err := builder.Logger()
	if err != nil {
		return nil, nil, err
	}

	if applyErr != nil {
		logger.WithChannel(channelLogSetup).Warn(context.Background(), "skipped log sinks which could not be attached: %s", applyErr)
	}

	return logger, settings, nil
}
