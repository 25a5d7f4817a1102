package logsettings

import (
	"fmt"
	"strings"
)

// Level is the minimum severity of events a sink or component accepts.
type Level int

const (
	LevelVerbose Level = iota
	LevelDebug
	LevelInformation
	LevelWarning
	LevelError
	LevelFatal
)

var levelNames = map[Level]string{
	LevelVerbose:     "Verbose",
	LevelDebug:       "Debug",
	LevelInformation: "Information",
	LevelWarning:     "Warning",
	LevelError:       "Error",
	LevelFatal:       "Fatal",
}

var levelAliases = map[string]Level{
	"verbose":     LevelVerbose,
	"trace":       LevelVerbose,
	"0":           LevelVerbose,
	"debug":       LevelDebug,
	"1":           LevelDebug,
	"information": LevelInformation,
	"info":        LevelInformation,
	"2":           LevelInformation,
	"warning":     LevelWarning,
	"warn":        LevelWarning,
	"3":           LevelWarning,
	"error":       LevelError,
	"4":           LevelError,
	"fatal":       LevelFatal,
	"critical":    LevelFatal,
	"5":           LevelFatal,
}

// ParseLevel parses a level name case-insensitively. Besides the names of the levels it accepts trace, info, warn
// and critical as well as the numeric values 0 to 5.
func ParseLevel(value string) (Level, error) {
	level, ok := levelAliases[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return LevelVerbose, fmt.Errorf("unknown level %q", value)
	}

	return level, nil
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}

	return fmt.Sprintf("Level(%d)", int(l))
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*l = level

	return nil
}

// RollingInterval is the period after which a file sink starts a new file.
type RollingInterval int

const (
	RollingInfinite RollingInterval = iota
	RollingYear
	RollingMonth
	RollingDay
	RollingHour
	RollingMinute
)

var rollingIntervalNames = map[RollingInterval]string{
	RollingInfinite: "Infinite",
	RollingYear:     "Year",
	RollingMonth:    "Month",
	RollingDay:      "Day",
	RollingHour:     "Hour",
	RollingMinute:   "Minute",
}

var rollingIntervalAliases = map[string]RollingInterval{
	"infinite": RollingInfinite,
	"none":     RollingInfinite,
	"year":     RollingYear,
	"yearly":   RollingYear,
	"month":    RollingMonth,
	"monthly":  RollingMonth,
	"day":      RollingDay,
	"daily":    RollingDay,
	"hour":     RollingHour,
	"hourly":   RollingHour,
	"minute":   RollingMinute,
	"minutely": RollingMinute,
}

func ParseRollingInterval(value string) (RollingInterval, error) {
	interval, ok := rollingIntervalAliases[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return RollingInfinite, fmt.Errorf("unknown rolling interval %q", value)
	}

	return interval, nil
}

func (i RollingInterval) String() string {
	if name, ok := rollingIntervalNames[i]; ok {
		return name
	}

	return fmt.Sprintf("RollingInterval(%d)", int(i))
}

func (i RollingInterval) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *RollingInterval) UnmarshalText(text []byte) error {
	interval, err := ParseRollingInterval(string(text))
	if err != nil {
		return err
	}

	*i = interval

	return nil
}
