package cfg_test

import (
	"strings"
	"testing"

	"github.com/justtrackio/logsink/pkg/cfg"
	"github.com/stretchr/testify/suite"
)

type OptionsTestSuite struct {
	suite.Suite
	envProvider cfg.EnvProvider
	config      cfg.GosoConf
}

func (s *OptionsTestSuite) SetupTest() {
	s.envProvider = cfg.NewMemoryEnvProvider(map[string]string{
		"Serilog__Console__MinimumLevel":                  "Warning",
		"Serilog_MinimumLevel_Override_Microsoft_Hosting": "Error",
		"APP_Webhook__Url":                                "https://hooks.example.com",
		"PATH":                                            "/usr/bin",
	})
	s.config = cfg.NewWithInterfaces(s.envProvider)
}

func (s *OptionsTestSuite) apply(options ...cfg.Option) {
	if err := s.config.Option(options...); err != nil {
		s.FailNowf(err.Error(), "can not apply options")
	}
}

func (s *OptionsTestSuite) lookup(key string) string {
	value, ok := s.config.Lookup(key)
	s.True(ok, "key %s should be set", key)

	return value
}

func (s *OptionsTestSuite) TestWithConfigMap() {
	s.apply(cfg.WithConfigMap(map[string]any{
		"b": true,
		"Webhook": map[string]any{
			"Url": "https://hooks.example.com",
		},
	}))

	s.Equal("true", s.lookup("b"))
	s.Equal("https://hooks.example.com", s.lookup("Webhook:Url"))
}

func (s *OptionsTestSuite) TestWithConfigSetting() {
	s.apply(cfg.WithConfigSetting("File", map[string]any{
		"Path":            "logs.txt",
		"RollingInterval": "Hour",
	}))
	s.apply(cfg.WithConfigSetting("File:MinimumLevel", "Error"))

	s.Equal([]cfg.Setting{
		{Key: "File:MinimumLevel", Value: "Error"},
		{Key: "File:Path", Value: "logs.txt"},
		{Key: "File:RollingInterval", Value: "Hour"},
	}, s.config.AllSettings())
}

func (s *OptionsTestSuite) TestWithConfigFileYaml() {
	s.apply(cfg.WithConfigFile("testdata/config.yml", "yml"))

	s.Equal("Test", s.lookup("AppName"))
	s.Equal("Information", s.lookup("Serilog:Console:MinimumLevel"))
	s.Equal("Error", s.lookup("Serilog:MinimumLevel:Override:Microsoft.Hosting"))
	s.Equal("false", s.lookup("Webhook:UseWorkflows"))

	retries, err := s.config.GetInt("Webhook:Retries")
	s.NoError(err)
	s.Equal(3, retries)
}

func (s *OptionsTestSuite) TestWithConfigFileJson() {
	s.apply(cfg.WithConfigFile("testdata/config.json", "json"))

	s.Equal("1.2.3", s.lookup("Version"))
	s.Equal("https://foo.example.com", s.lookup("RemoteAggregator:Endpoint"))
	s.False(s.config.IsSet("Empty"))
}

func (s *OptionsTestSuite) TestWithConfigFileYamlKeepsScalarText() {
	s.apply(cfg.WithConfigFile("testdata/scalars.yml", "yml"))

	s.Equal("1.10", s.lookup("Version"))
	s.Equal("2.0", s.lookup("Build"))
	s.Equal("08080", s.lookup("Port"))
	s.Equal("yes", s.lookup("Enabled"))
	s.Equal("0.50", s.lookup("Anchors:Base"))
	s.Equal("0.50", s.lookup("Anchors:Copy"))
	s.False(s.config.IsSet("Nothing"))
}

func (s *OptionsTestSuite) TestWithConfigFileJsonKeepsNumberText() {
	s.apply(cfg.WithConfigFile("testdata/scalars.json", "json"))

	s.Equal("1.10", s.lookup("Version"))
	s.Equal("2.0", s.lookup("Build"))
	s.Equal("12345678901234567890", s.lookup("Large"))
}

func (s *OptionsTestSuite) TestWithConfigFiles() {
	s.apply(cfg.WithConfigFiles("testdata/config.yml", "testdata/config.json"))

	s.Equal("Test", s.lookup("AppName"))
	s.Equal("1.2.3", s.lookup("Version"))
	s.Equal("false", s.lookup("Webhook:UseWorkflows"))
	s.Equal("2s", s.lookup("RemoteAggregator:Timeout"))
}

func (s *OptionsTestSuite) TestWithConfigFileMissing() {
	err := s.config.Option(cfg.WithConfigFile("testdata/missing.yml", "yml"))
	s.ErrorContains(err, "can not read config file testdata/missing.yml")
}

func (s *OptionsTestSuite) TestWithConfigFileUnknownType() {
	err := s.config.Option(cfg.WithConfigFile("testdata/config.yml", "toml"))
	s.EqualError(err, `unknown config file type "toml" for file testdata/config.yml`)
}

func (s *OptionsTestSuite) TestWithEnvironment() {
	s.apply(cfg.WithEnvironment(""))

	s.Equal("Warning", s.lookup("Serilog:Console:MinimumLevel"))
	s.Equal("Error", s.lookup("Serilog_MinimumLevel_Override_Microsoft_Hosting"))
	s.Equal("/usr/bin", s.lookup("PATH"))
}

func (s *OptionsTestSuite) TestWithEnvironmentPrefixed() {
	s.apply(cfg.WithEnvironment("app_"))

	s.Equal([]cfg.Setting{
		{Key: "Webhook:Url", Value: "https://hooks.example.com"},
	}, s.config.AllSettings())
}

func (s *OptionsTestSuite) TestWithEnvironmentOverridesFile() {
	s.apply(
		cfg.WithConfigFile("testdata/config.yml", "yml"),
		cfg.WithEnvironment(""),
	)

	s.Equal("Warning", s.lookup("Serilog:Console:MinimumLevel"))
}

func (s *OptionsTestSuite) TestWithEnvKeyReplacer() {
	s.apply(
		cfg.WithEnvKeyReplacer(strings.NewReplacer("__", ".")),
		cfg.WithEnvironment("Serilog__"),
	)

	s.Equal([]cfg.Setting{
		{Key: "Console.MinimumLevel", Value: "Warning"},
	}, s.config.AllSettings())
}

func TestOptionsTestSuite(t *testing.T) {
	suite.Run(t, new(OptionsTestSuite))
}
