package cfg

import (
	"maps"
	"os"
	"strings"
)

type EnvProvider interface {
	Environ() map[string]string
}

type osEnvProvider struct{}

func NewOsEnvProvider() *osEnvProvider {
	return &osEnvProvider{}
}

func (o *osEnvProvider) Environ() map[string]string {
	envs := os.Environ()
	values := make(map[string]string, len(envs))

	for _, env := range envs {
		key, value, _ := strings.Cut(env, "=")
		values[key] = value
	}

	return values
}

type memoryEnvProvider struct {
	values map[string]string
}

func NewMemoryEnvProvider(initialValues ...map[string]string) *memoryEnvProvider {
	values := make(map[string]string)
	for _, initial := range initialValues {
		maps.Copy(values, initial)
	}

	return &memoryEnvProvider{
		values: values,
	}
}

func (m *memoryEnvProvider) Environ() map[string]string {
	return maps.Clone(m.values)
}
