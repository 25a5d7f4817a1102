package logsettings

import "fmt"

// ConfigurationError is returned by ReadSettings if the config misses the identity of the application or contains
// an override which can not be parsed. It is never returned for a malformed optional setting.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

func newConfigurationError(key string, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{
		Key:    key,
		Reason: fmt.Sprintf(format, args...),
	}
}
