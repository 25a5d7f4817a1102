package logsettings

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

const (
	PropertyAppName         = "AppName"
	PropertyVersion         = "Version"
	PropertyEnvironmentName = "EnvironmentName"
)

// Pipeline builds the actual log pipeline from the settings.
//
//go:generate go run github.com/vektra/mockery/v2 --name Pipeline
type Pipeline interface {
	AttachConsole(minLevel Level) error
	AttachRemoteAggregator(endpoint string, token string, minLevel Level) error
	AttachWebhook(url string, useWorkflowFormat bool, titleTemplate string, minLevel Level) error
	AttachFile(path string, minLevel Level, interval RollingInterval) error
	ApplyOverride(component string, minLevel Level)
	EnrichWith(property string, value any)
}

// Apply enriches the pipeline with the identity of the application, applies the overrides and attaches the console
// followed by every configured optional sink. A sink which can not be attached does not keep the others from being
// attached, all errors are returned together.
func (s *Settings) Apply(pipeline Pipeline) error {
	var result error

	pipeline.EnrichWith(PropertyAppName, s.AppName)
	pipeline.EnrichWith(PropertyVersion, s.Version)
	pipeline.EnrichWith(PropertyEnvironmentName, s.EnvironmentName)

	for _, override := range s.Overrides {
		pipeline.ApplyOverride(override.Component, override.MinimumLevel)
	}

	if err := pipeline.AttachConsole(s.Console.MinimumLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("can not attach console sink: %w", err))
	}

	if remote := s.RemoteAggregator; remote != nil {
		if err := pipeline.AttachRemoteAggregator(remote.Endpoint, remote.Token, remote.MinimumLevel); err != nil {
			result = multierror.Append(result, fmt.Errorf("can not attach remote aggregator sink: %w", err))
		}
	}

	if webhook := s.Webhook; webhook != nil {
		if err := pipeline.AttachWebhook(webhook.Url, webhook.UseWorkflowFormat, webhook.TitleTemplate, webhook.MinimumLevel); err != nil {
			result = multierror.Append(result, fmt.Errorf("can not attach webhook sink: %w", err))
		}
	}

	if file := s.File; file != nil {
		if err := pipeline.AttachFile(file.Path, file.MinimumLevel, file.RollingInterval); err != nil {
			result = multierror.Append(result, fmt.Errorf("can not attach file sink: %w", err))
		}
	}

	return result
}
