// Package logsettings reads the log settings of an application from its config.
//
// The settings are stored with hierarchical keys like "Serilog:Console:MinimumLevel". Some hosting platforms can not
// store these keys and replace the delimiter, Azure Functions for example reads "Serilog_Console_MinimumLevel"
// instead. A KeyResolver detects such a platform by a marker setting and resolves every key accordingly.
//
// ReadSettings returns a Settings bundle which attaches the configured sinks to a Pipeline:
//
//	settings, err := logsettings.ReadSettings(config)
//	if err != nil {
//		return err
//	}
//
//	return settings.Apply(pipeline)
package logsettings
