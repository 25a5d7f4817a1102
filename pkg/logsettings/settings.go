package logsettings

import (
	"strings"

	"github.com/justtrackio/logsink/pkg/cfg"
	"github.com/spf13/cast"
)

const (
	DefaultConsoleLevel          = LevelDebug
	DefaultRemoteAggregatorLevel = LevelInformation
	DefaultWebhookLevel          = LevelWarning
	DefaultFileLevel             = LevelWarning
	DefaultRollingInterval       = RollingDay
	DefaultEnvironmentName       = "Production"
)

type ConsoleSettings struct {
	MinimumLevel Level `json:"minimum_level"`
}

type RemoteAggregatorSettings struct {
	Endpoint     string `json:"endpoint"`
	Token        string `json:"token"`
	MinimumLevel Level  `json:"minimum_level"`
}

type WebhookSettings struct {
	Url               string `json:"url"`
	UseWorkflowFormat bool   `json:"use_workflow_format"`
	TitleTemplate     string `json:"title_template"`
	MinimumLevel      Level  `json:"minimum_level"`
}

type FileSettings struct {
	Path            string          `json:"path"`
	MinimumLevel    Level           `json:"minimum_level"`
	RollingInterval RollingInterval `json:"rolling_interval"`
}

// Override sets the minimum level of a component and everything below it, e.g. "Microsoft.Hosting".
type Override struct {
	Component    string `json:"component"`
	MinimumLevel Level  `json:"minimum_level"`
}

// Settings describes the complete log pipeline of an application. The optional sinks are nil if their config is
// missing or incomplete.
type Settings struct {
	AppName          string                    `json:"app_name"`
	Version          string                    `json:"version"`
	EnvironmentName  string                    `json:"environment_name"`
	Overrides        []Override                `json:"overrides"`
	Console          ConsoleSettings           `json:"console"`
	RemoteAggregator *RemoteAggregatorSettings `json:"remote_aggregator,omitempty"`
	Webhook          *WebhookSettings          `json:"webhook,omitempty"`
	File             *FileSettings             `json:"file,omitempty"`
}

// ReadSettings reads the log settings from the config. The key syntax of Azure Functions is detected automatically
// and the running executable provides the fallbacks for the application name and version.
func ReadSettings(config cfg.Config) (*Settings, error) {
	return ReadSettingsWithInterfaces(config, NewKeyResolver(config), NewProcessInfo())
}

// ReadSettingsWithInterfaces fails with a *ConfigurationError if neither config nor process provide the name or
// version of the application, or if an override has an invalid level. Every other setting falls back to its default.
func ReadSettingsWithInterfaces(config cfg.Config, resolver *KeyResolver, process ProcessInfo) (*Settings, error) {
	var err error

	reader := &settingsReader{
		config:   config,
		resolver: resolver,
	}

	settings := &Settings{}

	if settings.AppName, err = reader.appName(process); err != nil {
		return nil, err
	}

	if settings.Version, err = reader.version(process); err != nil {
		return nil, err
	}

	if settings.Overrides, err = reader.overrides(); err != nil {
		return nil, err
	}

	settings.EnvironmentName = reader.environmentName()
	settings.Console = ConsoleSettings{
		MinimumLevel: reader.level(SettingConsoleMinimumLevel, DefaultConsoleLevel),
	}
	settings.RemoteAggregator = reader.remoteAggregator()
	settings.Webhook = reader.webhook()
	settings.File = reader.file()

	return settings, nil
}

type settingsReader struct {
	config   cfg.Config
	resolver *KeyResolver
}

// lookup treats empty and blank values like missing ones.
func (r *settingsReader) lookup(setting Setting) (string, bool) {
	value, ok := r.config.Lookup(r.resolver.Resolve(setting))
	if !ok {
		return "", false
	}

	value = strings.TrimSpace(value)

	return value, value != ""
}

func (r *settingsReader) appName(process ProcessInfo) (string, error) {
	if name, ok := r.lookup(SettingAppName); ok {
		return name, nil
	}

	if name, ok := process.ProgramName(); ok && name != "" {
		return name, nil
	}

	return "", newConfigurationError(r.resolver.Resolve(SettingAppName), "missing application name")
}

func (r *settingsReader) version(process ProcessInfo) (string, error) {
	if version, ok := r.lookup(SettingVersion); ok {
		return version, nil
	}

	if version, ok := process.Version(); ok && version != "" {
		return version, nil
	}

	return "", newConfigurationError(r.resolver.Resolve(SettingVersion), "missing application version")
}

func (r *settingsReader) overrides() ([]Override, error) {
	prefix := r.resolver.Resolve(SettingOverridePrefix)
	overrides := make([]Override, 0)

	for _, setting := range r.config.AllSettings() {
		if len(setting.Key) <= len(prefix) || !strings.EqualFold(setting.Key[:len(prefix)], prefix) {
			continue
		}

		level, err := ParseLevel(setting.Value)
		if err != nil {
			return nil, newConfigurationError(setting.Key, "invalid override level for %s", setting.Key)
		}

		overrides = append(overrides, Override{
			Component:    r.resolver.NormalizeComponentName(setting.Key[len(prefix):]),
			MinimumLevel: level,
		})
	}

	return overrides, nil
}

func (r *settingsReader) environmentName() string {
	for _, setting := range []Setting{SettingEnvironmentName, SettingAspNetCoreEnvironmentName} {
		if name, ok := r.lookup(setting); ok {
			return name
		}
	}

	return DefaultEnvironmentName
}

func (r *settingsReader) remoteAggregator() *RemoteAggregatorSettings {
	endpoint, hasEndpoint := r.lookup(SettingRemoteSinkEndpoint)
	token, hasToken := r.lookup(SettingRemoteSinkToken)

	if !hasEndpoint || !hasToken {
		return nil
	}

	return &RemoteAggregatorSettings{
		Endpoint:     endpoint,
		Token:        token,
		MinimumLevel: r.level(SettingRemoteSinkMinimumLevel, DefaultRemoteAggregatorLevel),
	}
}

func (r *settingsReader) webhook() *WebhookSettings {
	url, ok := r.lookup(SettingWebhookUrl)
	if !ok {
		return nil
	}

	// the template is taken as it is, surrounding blanks included
	titleTemplate, _ := r.config.Lookup(r.resolver.Resolve(SettingWebhookTitleTemplate))

	return &WebhookSettings{
		Url:               url,
		UseWorkflowFormat: r.bool(SettingWebhookUseWorkflowFormat, true),
		TitleTemplate:     titleTemplate,
		MinimumLevel:      r.level(SettingWebhookMinimumLevel, DefaultWebhookLevel),
	}
}

func (r *settingsReader) file() *FileSettings {
	path, ok := r.lookup(SettingFilePath)
	if !ok {
		return nil
	}

	return &FileSettings{
		Path:            path,
		MinimumLevel:    r.level(SettingFileMinimumLevel, DefaultFileLevel),
		RollingInterval: r.rollingInterval(SettingFileRollingInterval, DefaultRollingInterval),
	}
}

func (r *settingsReader) level(setting Setting, def Level) Level {
	value, ok := r.lookup(setting)
	if !ok {
		return def
	}

	level, err := ParseLevel(value)
	if err != nil {
		return def
	}

	return level
}

func (r *settingsReader) rollingInterval(setting Setting, def RollingInterval) RollingInterval {
	value, ok := r.lookup(setting)
	if !ok {
		return def
	}

	interval, err := ParseRollingInterval(value)
	if err != nil {
		return def
	}

	return interval
}

func (r *settingsReader) bool(setting Setting, def bool) bool {
	value, ok := r.lookup(setting)
	if !ok {
		return def
	}

	b, err := cast.ToBoolE(value)
	if err != nil {
		return def
	}

	return b
}
