package logsettings

import (
	"fmt"
	"strings"

	"github.com/justtrackio/logsink/pkg/cfg"
)

// Setting identifies a logical setting independent of the key syntax it is stored with.
type Setting int

const (
	SettingAppName Setting = iota
	SettingVersion
	SettingConsoleMinimumLevel
	SettingOverridePrefix
	SettingRemoteSinkToken
	SettingRemoteSinkEndpoint
	SettingRemoteSinkMinimumLevel
	SettingWebhookUrl
	SettingWebhookUseWorkflowFormat
	SettingWebhookTitleTemplate
	SettingWebhookMinimumLevel
	SettingFilePath
	SettingFileMinimumLevel
	SettingFileRollingInterval
	SettingEnvironmentName
	SettingAspNetCoreEnvironmentName
)

type settingDefinition struct {
	name string
	key  string
}

var settingDefinitions = [...]settingDefinition{
	SettingAppName:                   {name: "AppName", key: "AppName"},
	SettingVersion:                   {name: "Version", key: "Version"},
	SettingConsoleMinimumLevel:       {name: "ConsoleMinimumLevel", key: "Serilog:Console:MinimumLevel"},
	SettingOverridePrefix:            {name: "OverridePrefix", key: "Serilog:MinimumLevel:Override:"},
	SettingRemoteSinkToken:           {name: "RemoteSinkToken", key: "RemoteAggregator:SourceToken"},
	SettingRemoteSinkEndpoint:        {name: "RemoteSinkEndpoint", key: "RemoteAggregator:Endpoint"},
	SettingRemoteSinkMinimumLevel:    {name: "RemoteSinkMinimumLevel", key: "RemoteAggregator:MinimumLevel"},
	SettingWebhookUrl:                {name: "WebhookUrl", key: "Webhook:Url"},
	SettingWebhookUseWorkflowFormat:  {name: "WebhookUseWorkflowFormat", key: "Webhook:UseWorkflows"},
	SettingWebhookTitleTemplate:      {name: "WebhookTitleTemplate", key: "Webhook:TitleTemplate"},
	SettingWebhookMinimumLevel:       {name: "WebhookMinimumLevel", key: "Webhook:MinimumLevel"},
	SettingFilePath:                  {name: "FilePath", key: "File:Path"},
	SettingFileMinimumLevel:          {name: "FileMinimumLevel", key: "File:MinimumLevel"},
	SettingFileRollingInterval:       {name: "FileRollingInterval", key: "File:RollingInterval"},
	SettingEnvironmentName:           {name: "EnvironmentName", key: "DOTNET_ENVIRONMENT"},
	SettingAspNetCoreEnvironmentName: {name: "AspNetCoreEnvironmentName", key: "ASPNETCORE_ENVIRONMENT"},
}

// AllSettings returns every logical setting in declaration order.
func AllSettings() []Setting {
	settings := make([]Setting, len(settingDefinitions))
	for i := range settingDefinitions {
		settings[i] = Setting(i)
	}

	return settings
}

func (s Setting) String() string {
	if !s.valid() {
		return fmt.Sprintf("Setting(%d)", int(s))
	}

	return settingDefinitions[s].name
}

// CanonicalKey is the hierarchical key of the setting, e.g. "Serilog:Console:MinimumLevel".
func (s Setting) CanonicalKey() string {
	if !s.valid() {
		return ""
	}

	return settingDefinitions[s].key
}

func (s Setting) valid() bool {
	return s >= 0 && int(s) < len(settingDefinitions)
}

// KeySyntax describes a hosting platform which can not store hierarchical keys as they are. If the marker key is
// present in the config, every key delimiter is replaced by the separator.
type KeySyntax struct {
	Name      string
	MarkerKey string
	Separator string
}

// AzureFunctionsKeySyntax matches Azure Functions, which only allows underscores in app setting names.
var AzureFunctionsKeySyntax = KeySyntax{
	Name:      "azure_functions",
	MarkerKey: "FUNCTIONS_WORKER_RUNTIME",
	Separator: "_",
}

// KeyResolver maps logical settings onto the keys they are stored with in a config. The active key syntax is
// determined once on creation and never changes afterward.
type KeyResolver struct {
	syntaxes []KeySyntax
	active   *KeySyntax
}

// NewKeyResolver creates a resolver for the given key syntaxes, AzureFunctionsKeySyntax if none is given. The first
// syntax whose marker key is set in the config is active, regardless of the value of the marker.
func NewKeyResolver(config cfg.Config, syntaxes ...KeySyntax) *KeyResolver {
	if len(syntaxes) == 0 {
		syntaxes = []KeySyntax{AzureFunctionsKeySyntax}
	}

	resolver := &KeyResolver{
		syntaxes: syntaxes,
	}

	for i := range syntaxes {
		if config.IsSet(syntaxes[i].MarkerKey) {
			resolver.active = &syntaxes[i]

			break
		}
	}

	return resolver
}

func (r *KeyResolver) Active() (KeySyntax, bool) {
	if r.active == nil {
		return KeySyntax{}, false
	}

	return *r.active, true
}

func (r *KeyResolver) Resolve(setting Setting) string {
	key := setting.CanonicalKey()

	if r.active == nil {
		return key
	}

	return strings.ReplaceAll(key, cfg.KeyDelimiter, r.active.Separator)
}

// NormalizeComponentName turns a component name stored with a key syntax back into its dotted form, e.g.
// "Microsoft_Hosting" becomes "Microsoft.Hosting". Separators of every known syntax are replaced, whether a syntax
// is active or not, as override entries can be stored in either form.
func (r *KeyResolver) NormalizeComponentName(raw string) string {
	name := raw

	for _, syntax := range r.syntaxes {
		if syntax.Separator == "" {
			continue
		}

		name = strings.ReplaceAll(name, syntax.Separator, ".")
	}

	return name
}
