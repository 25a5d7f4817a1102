package log_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/justtrackio/logsink/pkg/clock"
	"github.com/justtrackio/logsink/pkg/log"
	"github.com/stretchr/testify/assert"
)

func TestRollingFileName(t *testing.T) {
	at := time.Date(2024, time.March, 1, 13, 7, 0, 0, time.UTC)

	for interval, expected := range map[string]string{
		log.RollingInfinite: "logs/app.txt",
		log.RollingYear:     "logs/app2024.txt",
		log.RollingMonth:    "logs/app202403.txt",
		log.RollingDay:      "logs/app20240301.txt",
		log.RollingHour:     "logs/app2024030113.txt",
		log.RollingMinute:   "logs/app202403011307.txt",
	} {
		assert.Equal(t, expected, log.RollingFileName("logs/app.txt", interval, at), interval)
	}

	assert.Equal(t, "app20240301", log.RollingFileName("app", log.RollingDay, at))
}

func TestRollingFileWriter_RollsOver(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "app.log")
	cl := clock.NewFakeClockAt(time.Date(2024, time.March, 1, 23, 59, 0, 0, time.UTC))

	writer, err := log.NewRollingFileWriterWithInterfaces(cl, path, log.RollingDay)
	assert.NoError(t, err)

	_, err = writer.Write([]byte("first\n"))
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "app20240301.log"), writer.CurrentFile())

	cl.Advance(time.Minute)

	_, err = writer.Write([]byte("second\n"))
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "app20240302.log"), writer.CurrentFile())

	assert.NoError(t, writer.Close())

	first, err := os.ReadFile(filepath.Join(dir, "nested", "app20240301.log"))
	assert.NoError(t, err)
	assert.Equal(t, "first\n", string(first))

	second, err := os.ReadFile(filepath.Join(dir, "nested", "app20240302.log"))
	assert.NoError(t, err)
	assert.Equal(t, "second\n", string(second))
}

func TestRollingFileWriter_InvalidSettings(t *testing.T) {
	_, err := log.NewRollingFileWriter("", log.RollingDay)
	assert.EqualError(t, err, "the path of a rolling file writer can not be empty")

	_, err = log.NewRollingFileWriter("app.log", "weekly")
	assert.EqualError(t, err, `unknown rolling interval "weekly"`)
}

func TestHandlerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	handler, err := log.NewHandlerFile(log.HandlerFileSettings{
		Path:            path,
		Level:           log.LevelWarn,
		Interval:        log.RollingInfinite,
		TimestampFormat: time.RFC3339,
	})
	assert.NoError(t, err)

	timestamp := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	err = handler.Log(context.Background(), timestamp, log.PriorityWarn, "disk almost full", nil, nil, log.Data{Channel: "main"})
	assert.NoError(t, err)

	logger := log.NewLoggerWithInterfaces(clock.NewFakeClock(), []log.Handler{handler})
	assert.NoError(t, logger.Close())

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"channel":"main","context":{},"fields":{},"level":3,"level_name":"warn","message":"disk almost full","timestamp":"2024-03-01T12:00:00Z"}`, string(content))
}
