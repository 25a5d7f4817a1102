package log_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/justtrackio/logsink/pkg/clock"
	"github.com/justtrackio/logsink/pkg/log"
	"github.com/justtrackio/logsink/pkg/log/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LoggerTestSuite struct {
	suite.Suite

	ctx    context.Context
	clock  clock.FakeClock
	buf    *bytes.Buffer
	logger log.GosoLogger
}

func (s *LoggerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFakeClockAt(time.Date(1984, time.April, 4, 0, 0, 0, 0, time.UTC))
	s.buf = &bytes.Buffer{}

	handler, err := log.NewHandlerIoWriter(log.HandlerIoWriterSettings{
		Level:           log.LevelTrace,
		Formatter:       log.FormatterJson,
		TimestampFormat: time.RFC3339,
	}, s.buf)
	s.NoError(err)

	s.logger = log.NewLoggerWithInterfaces(s.clock, []log.Handler{handler})
}

func (s *LoggerTestSuite) TestIoWriterJson() {
	s.NoError(s.logger.Option(log.WithLevel(log.LevelInfo)))

	s.logger.Info(s.ctx, "foo")

	s.clock.Advance(time.Minute)
	s.logger.Info(s.ctx, "bar")
	s.logger.Debug(s.ctx, "some debug")
	s.logger.WithChannel("other channel").Info(s.ctx, "something in another channel")

	s.clock.Advance(time.Minute)
	s.logger.Error(s.ctx, "something went wrong: %w", fmt.Errorf("random error"))

	lines := getLogLines(s.buf)
	s.Len(lines, 4)

	s.JSONEq(`{"channel":"main","context":{},"fields":{},"level":2,"level_name":"info","message":"foo","timestamp":"1984-04-04T00:00:00Z"}`, lines[0])
	s.JSONEq(`{"channel":"main","context":{},"fields":{},"level":2,"level_name":"info","message":"bar","timestamp":"1984-04-04T00:01:00Z"}`, lines[1])
	s.JSONEq(`{"channel":"other channel","context":{},"fields":{},"level":2,"level_name":"info","message":"something in another channel","timestamp":"1984-04-04T00:01:00Z"}`, lines[2])
	s.JSONEq(`{"channel":"main","context":{},"err":"something went wrong: random error","fields":{},"level":4,"level_name":"error","message":"something went wrong: random error","timestamp":"1984-04-04T00:02:00Z"}`, lines[3])
}

func (s *LoggerTestSuite) TestGlobalFields() {
	s.NoError(s.logger.Option(log.WithFields(map[string]any{
		"AppName": "Test",
		"Version": "1.2.3",
	})))

	s.logger.WithFields(log.Fields{"request": 1}).Info(s.ctx, "handled")

	lines := getLogLines(s.buf)
	s.Len(lines, 1)
	s.JSONEq(`{"channel":"main","context":{},"fields":{"AppName":"Test","Version":"1.2.3","request":1},"level":2,"level_name":"info","message":"handled","timestamp":"1984-04-04T00:00:00Z"}`, lines[0])
}

func (s *LoggerTestSuite) TestContextFields() {
	ctx := log.AppendContextFields(s.ctx, map[string]any{"local": "value"})
	ctx = log.AppendGlobalContextFields(ctx, map[string]any{"global": "value"})

	s.logger.Warn(ctx, "with context")

	lines := getLogLines(s.buf)
	s.Len(lines, 1)
	s.JSONEq(`{"channel":"main","context":{"global":"value","local":"value"},"fields":{},"level":3,"level_name":"warn","message":"with context","timestamp":"1984-04-04T00:00:00Z"}`, lines[0])
}

func (s *LoggerTestSuite) TestChannelLevels() {
	s.NoError(s.logger.Option(
		log.WithLevel(log.LevelDebug),
		log.WithChannelLevel("Microsoft", log.LevelWarn),
		log.WithChannelLevel("Microsoft.Hosting", log.LevelError),
		log.WithChannelLevel("System", log.LevelTrace),
	))

	s.logger.WithChannel("Microsoft.Extensions").Info(s.ctx, "dropped")
	s.logger.WithChannel("Microsoft.Extensions").Warn(s.ctx, "kept 1")
	s.logger.WithChannel("Microsoft.Hosting.Lifetime").Warn(s.ctx, "dropped")
	s.logger.WithChannel("Microsoft.Hosting.Lifetime").Error(s.ctx, "kept 2")
	s.logger.WithChannel("MicrosoftX").Debug(s.ctx, "kept 3")
	s.logger.Debug(s.ctx, "kept 4")

	lines := getLogLines(s.buf)
	s.Len(lines, 4)

	for i, line := range lines {
		s.Contains(line, fmt.Sprintf(`"message":"kept %d"`, i+1))
	}
}

func (s *LoggerTestSuite) TestUnknownLevelOption() {
	err := s.logger.Option(log.WithChannelLevel("Microsoft", "loud"))
	s.EqualError(err, `can not apply option log.Option: unknown log level "loud" for channel Microsoft`)
}

func TestLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func TestLogger_HandlerLevelFilters(t *testing.T) {
	ctx := context.Background()
	cl := clock.NewFakeClock()

	warnHandler := mocks.NewHandler(t)
	warnHandler.EXPECT().Level().Return(log.PriorityWarn)
	warnHandler.EXPECT().Log(ctx, cl.Now(), log.PriorityError, "%s", []any{"broken"}, mock.Anything, mock.AnythingOfType("log.Data")).Return(nil).Once()

	debugHandler := mocks.NewHandler(t)
	debugHandler.EXPECT().Level().Return(log.PriorityDebug)
	debugHandler.EXPECT().Log(ctx, cl.Now(), log.PriorityInfo, "started", []any(nil), nil, mock.AnythingOfType("log.Data")).Return(nil).Once()
	debugHandler.EXPECT().Log(ctx, cl.Now(), log.PriorityError, "%s", []any{"broken"}, mock.Anything, mock.AnythingOfType("log.Data")).Return(log.ErrDropped).Once()

	logger := log.NewLoggerWithInterfaces(cl, []log.Handler{warnHandler, debugHandler})
	logger.Info(ctx, "started")
	logger.Error(ctx, "broken")
}

func TestLogger_WithHandlers(t *testing.T) {
	ctx := context.Background()
	cl := clock.NewFakeClock()

	handler := mocks.NewHandler(t)
	handler.EXPECT().Level().Return(log.PriorityInfo)
	handler.EXPECT().Log(ctx, cl.Now(), log.PriorityWarn, "disk almost full", []any(nil), nil, mock.AnythingOfType("log.Data")).Return(nil).Once()

	logger := log.NewLoggerWithInterfaces(cl, []log.Handler{})
	logger.Warn(ctx, "not handled yet")

	assert.NoError(t, logger.Option(log.WithHandlers(handler)))
	logger.Debug(ctx, "below the handler level")
	logger.Warn(ctx, "disk almost full")
}

type closingHandler struct {
	*mocks.Handler
	closed bool
}

func (h *closingHandler) Close() error {
	h.closed = true

	return fmt.Errorf("close failed")
}

func TestLogger_Close(t *testing.T) {
	closer := &closingHandler{Handler: mocks.NewHandler(t)}
	plain := mocks.NewHandler(t)

	logger := log.NewLoggerWithInterfaces(clock.NewFakeClock(), []log.Handler{closer, plain})
	err := logger.Close()

	assert.True(t, closer.closed)
	assert.ErrorContains(t, err, "close failed")
}

func TestLevelPriority(t *testing.T) {
	priority, ok := log.LevelPriority("WARN")
	assert.True(t, ok)
	assert.Equal(t, log.PriorityWarn, priority)

	_, ok = log.LevelPriority("loud")
	assert.False(t, ok)

	assert.Equal(t, log.LevelFatal, log.LevelName(log.PriorityFatal))
}

func getLogLines(buf *bytes.Buffer) []string {
	lines := make([]string, 0)

	for _, line := range strings.Split(buf.String(), "\n") {
		if len(line) == 0 {
			continue
		}

		lines = append(lines, line)
	}

	return lines
}
