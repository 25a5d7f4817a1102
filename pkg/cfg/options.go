package cfg

import (
	"sort"
	"strings"
)

type Option func(cfg *config) error

func WithConfigFile(filePath string, fileType string) Option {
	return func(cfg *config) error {
		return readConfigFromFile(cfg, filePath, fileType)
	}
}

// WithConfigFiles reads every file in the given order, the type of a file is taken from its extension.
func WithConfigFiles(filePaths ...string) Option {
	return func(cfg *config) error {
		for _, filePath := range filePaths {
			if err := readConfigFromFile(cfg, filePath, fileTypeFromPath(filePath)); err != nil {
				return err
			}
		}

		return nil
	}
}

func WithConfigMap(settings map[string]any) Option {
	return func(cfg *config) error {
		return cfg.mergeMsi("", settings)
	}
}

func WithConfigSetting(key string, setting any) Option {
	return func(cfg *config) error {
		if msi, ok := setting.(map[string]any); ok {
			return cfg.mergeMsi(key, msi)
		}

		return cfg.mergeValue(key, setting)
	}
}

// WithEnvironment merges every environment variable starting with prefix into the config. The prefix is stripped and
// the remaining name is mapped onto a key with the env key replacer. An empty prefix merges the whole environment.
func WithEnvironment(prefix string) Option {
	return func(cfg *config) error {
		environ := cfg.envProvider.Environ()
		names := make([]string, 0, len(environ))

		for name := range environ {
			if len(name) > len(prefix) && strings.EqualFold(name[:len(prefix)], prefix) {
				names = append(names, name)
			}
		}

		sort.Strings(names)

		for _, name := range names {
			key := name[len(prefix):]
			if cfg.envKeyReplacer != nil {
				key = cfg.envKeyReplacer.Replace(key)
			}

			if err := cfg.mergeValue(key, environ[name]); err != nil {
				return err
			}
		}

		return nil
	}
}

func WithEnvKeyReplacer(replacer *strings.Replacer) Option {
	return func(cfg *config) error {
		cfg.envKeyReplacer = replacer

		return nil
	}
}
