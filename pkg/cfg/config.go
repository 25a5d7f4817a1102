package cfg

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// KeyDelimiter separates the sections of a hierarchical config key, e.g. "Serilog:Console:MinimumLevel".
const KeyDelimiter = ":"

// Setting is a single flattened config entry. The key keeps the casing it was first merged with.
type Setting struct {
	Key   string
	Value string
}

//go:generate go run github.com/vektra/mockery/v2 --name Config
type Config interface {
	AllKeys() []string
	AllSettings() []Setting
	GetBool(key string, optionalDefault ...bool) (bool, error)
	GetDuration(key string, optionalDefault ...time.Duration) (time.Duration, error)
	GetInt(key string, optionalDefault ...int) (int, error)
	GetString(key string, optionalDefault ...string) (string, error)
	HasPrefix(prefix string) bool
	IsSet(key string) bool
	Lookup(key string) (string, bool)
}

//go:generate go run github.com/vektra/mockery/v2 --name GosoConf
type GosoConf interface {
	Config
	Option(options ...Option) error
}

type config struct {
	envProvider    EnvProvider
	envKeyReplacer *strings.Replacer
	settings       map[string]Setting
}

// DefaultEnvKeyReplacer maps environment variable names onto hierarchical keys: "Serilog__Console__MinimumLevel"
// becomes "Serilog:Console:MinimumLevel". Single underscores are kept as they are.
var DefaultEnvKeyReplacer = strings.NewReplacer("__", KeyDelimiter)

func New(msis ...map[string]any) GosoConf {
	return NewWithInterfaces(NewOsEnvProvider(), msis...)
}

func NewWithInterfaces(envProvider EnvProvider, msis ...map[string]any) GosoConf {
	cfg := &config{
		envProvider:    envProvider,
		envKeyReplacer: DefaultEnvKeyReplacer,
		settings:       make(map[string]Setting),
	}

	for _, msi := range msis {
		if err := cfg.mergeMsi("", msi); err != nil {
			panic(fmt.Errorf("can not merge initial settings: %w", err))
		}
	}

	return cfg
}

func (c *config) AllKeys() []string {
	settings := c.AllSettings()
	keys := make([]string, len(settings))

	for i, setting := range settings {
		keys[i] = setting.Key
	}

	return keys
}

// AllSettings returns every entry ordered by its normalized key, so two calls against the same config yield the same order.
func (c *config) AllSettings() []Setting {
	normalized := make([]string, 0, len(c.settings))
	for key := range c.settings {
		normalized = append(normalized, key)
	}

	sort.Strings(normalized)

	settings := make([]Setting, len(normalized))
	for i, key := range normalized {
		settings[i] = c.settings[key]
	}

	return settings
}

func (c *config) GetBool(key string, optionalDefault ...bool) (b bool, err error) {
	var data any
	if data, err = get(c, key, optionalDefault); err != nil {
		return false, err
	}

	if b, err = cast.ToBoolE(data); err != nil {
		return false, fmt.Errorf("can not cast value %v[%T] of key %s to bool: %w", data, data, key, err)
	}

	return b, nil
}

func (c *config) GetDuration(key string, optionalDefault ...time.Duration) (duration time.Duration, err error) {
	var data any
	if data, err = get(c, key, optionalDefault); err != nil {
		return time.Duration(0), err
	}

	if duration, err = cast.ToDurationE(data); err != nil {
		return time.Duration(0), fmt.Errorf("can not cast value %v[%T] of key %s to duration: %w", data, data, key, err)
	}

	return duration, nil
}

func (c *config) GetInt(key string, optionalDefault ...int) (i int, err error) {
	var data any
	if data, err = get(c, key, optionalDefault); err != nil {
		return 0, err
	}

	if i, err = cast.ToIntE(data); err != nil {
		return 0, fmt.Errorf("can not cast value %v[%T] of key %s to int: %w", data, data, key, err)
	}

	return i, nil
}

func (c *config) GetString(key string, optionalDefault ...string) (str string, err error) {
	var data any
	if data, err = get(c, key, optionalDefault); err != nil {
		return "", err
	}

	if str, err = cast.ToStringE(data); err != nil {
		return "", fmt.Errorf("can not cast value %v[%T] of key %s to string: %w", data, data, key, err)
	}

	return str, nil
}

func (c *config) HasPrefix(prefix string) bool {
	prefix = normalizeKey(prefix)

	for key := range c.settings {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}

	return false
}

// IsSet reports whether the key is present, regardless of its value. An empty string is still set.
func (c *config) IsSet(key string) bool {
	_, ok := c.settings[normalizeKey(key)]

	return ok
}

func (c *config) Lookup(key string) (string, bool) {
	setting, ok := c.settings[normalizeKey(key)]

	return setting.Value, ok
}

func (c *config) Option(options ...Option) error {
	for _, opt := range options {
		if err := opt(c); err != nil {
			return err
		}
	}

	return nil
}

func get[T any](c *config, key string, optionalDefault []T) (any, error) {
	if setting, ok := c.settings[normalizeKey(key)]; ok {
		return setting.Value, nil
	}

	if len(optionalDefault) > 0 {
		return optionalDefault[0], nil
	}

	return nil, fmt.Errorf("there is no config setting or default for key %q", key)
}

func (c *config) mergeMsi(prefix string, settings map[string]any) error {
	flattened, err := flattenSettings(prefix, settings)
	if err != nil {
		return err
	}

	for key, value := range flattened {
		if err := c.mergeValue(key, value); err != nil {
			return err
		}
	}

	return nil
}

// mergeValue overwrites the value of an existing key but keeps the casing of its first occurrence.
func (c *config) mergeValue(key string, value any) error {
	if value == nil {
		return nil
	}

	str, err := cast.ToStringE(value)
	if err != nil {
		return fmt.Errorf("can not cast value %v[%T] of key %s to string: %w", value, value, key, err)
	}

	normalized := normalizeKey(key)
	if existing, ok := c.settings[normalized]; ok {
		key = existing.Key
	}

	c.settings[normalized] = Setting{
		Key:   key,
		Value: str,
	}

	return nil
}

func normalizeKey(key string) string {
	return strings.ToLower(key)
}

// JoinKey builds a hierarchical key from its sections.
func JoinKey(sections ...string) string {
	return strings.Join(sections, KeyDelimiter)
}
