package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/justtrackio/logsink/pkg/cfg"
	"github.com/justtrackio/logsink/pkg/logsettings"
	"github.com/justtrackio/logsink/pkg/logsetup"
)

const redacted = "***"

func main() {
	app := kingpin.New("logcheck", "Reads the log settings of an application and prints the resulting log pipeline")
	configFiles := app.Flag("config", "Path to a json or yaml config file, can be repeated").Short('c').ExistingFiles()
	envPrefix := app.Flag("env-prefix", "Only read environment variables starting with this prefix").Default("").String()
	noEnv := app.Flag("no-env", "Do not read environment variables").Bool()
	showSecrets := app.Flag("show-secrets", "Print the source token of the remote aggregator").Bool()
	sendTest := app.Flag("send-test", "Build the pipeline and write a test message to every sink").Bool()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	options := []cfg.Option{cfg.WithConfigFiles(*configFiles...)}
	if !*noEnv {
		options = append(options, cfg.WithEnvironment(*envPrefix))
	}

	config := cfg.New()
	if err := config.Option(options...); err != nil {
		app.Fatalf("can not load config: %s", err)
	}

	resolver := logsettings.NewKeyResolver(config)
	if syntax, ok := resolver.Active(); ok {
		fmt.Fprintf(os.Stderr, "using %s key syntax, marker %s is set\n", syntax.Name, syntax.MarkerKey)
	}

	settings, err := logsettings.ReadSettingsWithInterfaces(config, resolver, logsettings.NewProcessInfo())
	if err != nil {
		app.Fatalf("can not read log settings: %s", err)
	}

	if err := printSettings(*settings, *showSecrets); err != nil {
		app.Fatalf("can not print log settings: %s", err)
	}

	if !*sendTest {
		return
	}

	if err := sendTestMessages(config); err != nil {
		app.Fatalf("%s", err)
	}
}

func printSettings(settings logsettings.Settings, showSecrets bool) error {
	if settings.RemoteAggregator != nil && !showSecrets {
		remote := *settings.RemoteAggregator
		remote.Token = redacted
		settings.RemoteAggregator = &remote
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(settings)
}

func sendTestMessages(config cfg.Config) error {
	ctx := context.Background()

	logger, _, err := logsetup.Build(config)
	if err != nil {
		return fmt.Errorf("can not build log pipeline: %w", err)
	}

	channel := logger.WithChannel("logcheck")
	channel.Debug(ctx, "test message with level debug")
	channel.Info(ctx, "test message with level info")
	channel.Warn(ctx, "test message with level warn")
	channel.Error(ctx, "test message with level error")

	if err := logger.Close(); err != nil {
		return fmt.Errorf("can not close log pipeline: %w", err)
	}

	return nil
}
