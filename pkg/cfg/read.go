package cfg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeremywohl/flatten"
	"gopkg.in/yaml.v3"
)

const (
	FileTypeJson = "json"
	FileTypeYaml = "yml"
)

var keyDelimiterStyle = flatten.SeparatorStyle{Middle: KeyDelimiter}

func readConfigFromFile(cfg *config, filePath string, fileType string) error {
	if filePath == "" {
		return nil
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("can not read config file %s: %w", filePath, err)
	}

	var settings map[string]any

	switch fileType {
	case FileTypeJson:
		settings, err = decodeJson(content)
	case FileTypeYaml, "yaml":
		settings, err = decodeYaml(content)
	default:
		return fmt.Errorf("unknown config file type %q for file %s", fileType, filePath)
	}

	if err != nil {
		return fmt.Errorf("can not unmarshal config file %s: %w", filePath, err)
	}

	return cfg.mergeMsi("", settings)
}

// decodeJson keeps numbers as json.Number, so "1.10" stays "1.10" instead of becoming a float.
func decodeJson(content []byte) (map[string]any, error) {
	settings := make(map[string]any)

	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.UseNumber()

	if err := decoder.Decode(&settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// decodeYaml keeps every scalar as the text written in the file.
func decodeYaml(content []byte) (map[string]any, error) {
	var document yaml.Node

	if err := yaml.Unmarshal(content, &document); err != nil {
		return nil, err
	}

	if len(document.Content) == 0 {
		return map[string]any{}, nil
	}

	value, err := yamlNodeValue(document.Content[0])
	if err != nil {
		return nil, err
	}

	settings, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("the root of a yaml config has to be a mapping, got %s", document.Content[0].Tag)
	}

	return settings, nil
}

func yamlNodeValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return yamlNodeValue(node.Alias)
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return nil, nil
		}

		return node.Value, nil
	case yaml.SequenceNode:
		values := make([]any, 0, len(node.Content))

		for _, item := range node.Content {
			value, err := yamlNodeValue(item)
			if err != nil {
				return nil, err
			}

			values = append(values, value)
		}

		return values, nil
	case yaml.MappingNode:
		values := make(map[string]any, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("only scalar keys are supported in yaml configs, line %d", node.Content[i].Line)
			}

			value, err := yamlNodeValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}

			values[node.Content[i].Value] = value
		}

		return values, nil
	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d at line %d", node.Kind, node.Line)
	}
}

func fileTypeFromPath(filePath string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filePath)), ".")

	if ext == "yaml" {
		return FileTypeYaml
	}

	return ext
}

// flattenSettings turns nested maps and slices into ":" delimited keys, e.g. {"a": {"b": 1}} becomes {"a:b": 1}.
func flattenSettings(prefix string, settings map[string]any) (map[string]any, error) {
	if prefix != "" {
		prefix += KeyDelimiter
	}

	flattened, err := flatten.Flatten(settings, prefix, keyDelimiterStyle)
	if err != nil {
		return nil, fmt.Errorf("can not flatten settings with prefix %q: %w", prefix, err)
	}

	return flattened, nil
}
