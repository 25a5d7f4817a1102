package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/justtrackio/logsink/pkg/clock"
)

const (
	RollingInfinite = "infinite"
	RollingYear     = "year"
	RollingMonth    = "month"
	RollingDay      = "day"
	RollingHour     = "hour"
	RollingMinute   = "minute"
)

var rollingPeriodFormats = map[string]string{
	RollingInfinite: "",
	RollingYear:     "2006",
	RollingMonth:    "200601",
	RollingDay:      "20060102",
	RollingHour:     "2006010215",
	RollingMinute:   "200601021504",
}

// RollingFileWriter appends to a file named after the period the current time falls into. "logs/app.txt" rolled
// daily is written to "logs/app20240301.txt" on the first of March and to "logs/app20240302.txt" one day later.
type RollingFileWriter struct {
	lck      sync.Mutex
	clock    clock.Clock
	path     string
	interval string
	current  string
	file     *os.File
}

func NewRollingFileWriter(path string, interval string) (*RollingFileWriter, error) {
	return NewRollingFileWriterWithInterfaces(clock.Provider, path, interval)
}

func NewRollingFileWriterWithInterfaces(clock clock.Clock, path string, interval string) (*RollingFileWriter, error) {
	if path == "" {
		return nil, fmt.Errorf("the path of a rolling file writer can not be empty")
	}

	if _, ok := rollingPeriodFormats[interval]; !ok {
		return nil, fmt.Errorf("unknown rolling interval %q", interval)
	}

	return &RollingFileWriter{
		clock:    clock,
		path:     path,
		interval: interval,
	}, nil
}

// RollingFileName returns the name of the file the path rolls to at the given time.
func RollingFileName(path string, interval string, t time.Time) string {
	layout := rollingPeriodFormats[interval]
	if layout == "" {
		return path
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	return base + t.Format(layout) + ext
}

func (w *RollingFileWriter) Write(p []byte) (int, error) {
	w.lck.Lock()
	defer w.lck.Unlock()

	name := RollingFileName(w.path, w.interval, w.clock.Now())

	if name != w.current || w.file == nil {
		if err := w.open(name); err != nil {
			return 0, err
		}
	}

	return w.file.Write(p)
}

func (w *RollingFileWriter) CurrentFile() string {
	w.lck.Lock()
	defer w.lck.Unlock()

	return w.current
}

func (w *RollingFileWriter) Close() error {
	w.lck.Lock()
	defer w.lck.Unlock()

	if w.file == nil {
		return nil
	}

	err := w.file.Close()
	w.file = nil

	if err != nil {
		return fmt.Errorf("can not close log file %s: %w", w.current, err)
	}

	return nil
}

func (w *RollingFileWriter) open(name string) error {
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			return fmt.Errorf("can not close log file %s: %w", w.current, err)
		}

		w.file = nil
	}

	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("can not create directory %s for log file: %w", dir, err)
		}
	}

	file, err := os.OpenFile(name, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o600)
	if err != nil {
		return fmt.Errorf("can not open file %s to write logs to: %w", name, err)
	}

	w.file = file
	w.current = name

	return nil
}
