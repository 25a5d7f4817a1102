package log

import (
	"encoding/json"
	"fmt"
	"maps"

	"github.com/fatih/color"
)

const (
	FormatterConsole = "console"
	FormatterJson    = "json"
)

type Formatter func(timestamp string, level int, format string, args []any, err error, data Data) ([]byte, error)

var formatters = map[string]Formatter{
	FormatterConsole: formatterConsole,
	FormatterJson:    formatterJson,
}

func FormatterByName(name string) (Formatter, error) {
	formatter, ok := formatters[name]
	if !ok {
		return nil, fmt.Errorf("there is no log formatter with name %s", name)
	}

	return formatter, nil
}

func formatterConsole(timestamp string, level int, format string, args []any, err error, data Data) ([]byte, error) {
	fieldString := fieldsAsString(data.Fields)
	contextString := fieldsAsString(data.ContextFields)

	levelStr := fmt.Sprintf("%-7s", LevelName(level))
	channel := fmt.Sprintf("%-7s", data.Channel)
	msg := fmt.Sprintf(format, args...)

	output := fmt.Sprintf("%s %s %s %s", color.YellowString(timestamp), color.GreenString(channel), levelColor(level).Sprint(levelStr), msg)

	if contextString != "" {
		output = fmt.Sprintf("%s %s", output, color.GreenString(contextString))
	}

	if fieldString != "" {
		output = fmt.Sprintf("%s %s", output, color.BlueString(fieldString))
	}

	if err != nil {
		output = fmt.Sprintf("%s %s", output, color.RedString("ERR: %s", err.Error()))
	}

	return append([]byte(output), '\n'), nil
}

func levelColor(level int) *color.Color {
	switch {
	case level >= PriorityError:
		return color.New(color.FgRed)
	case level == PriorityWarn:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func formatterJson(timestamp string, level int, format string, args []any, err error, data Data) ([]byte, error) {
	msg := fmt.Sprintf(format, args...)
	jsn := make(map[string]any, 8)

	if err != nil {
		jsn["err"] = err.Error()
	}

	jsn["channel"] = data.Channel
	jsn["context"] = mapOrEmpty(data.ContextFields)
	jsn["fields"] = mapOrEmpty(data.Fields)
	jsn["level"] = level
	jsn["level_name"] = LevelName(level)
	jsn["message"] = msg
	jsn["timestamp"] = timestamp

	serialized, marshalErr := json.Marshal(jsn)
	if marshalErr != nil {
		return nil, fmt.Errorf("failed to marshal fields to JSON: %w", marshalErr)
	}

	return append(serialized, '\n'), nil
}

func mapOrEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}

	return maps.Clone(m)
}
