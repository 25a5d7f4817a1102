package log

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultHttpTimeout = 5 * time.Second

type HandlerRemoteSettings struct {
	Endpoint string        `validate:"required,url"`
	Token    string        `validate:"required"`
	Level    string        `validate:"required,oneof=trace debug info warn error fatal none"`
	Timeout  time.Duration `validate:"gte=0"`
}

type RemoteEvent struct {
	Dt      string         `json:"dt"`
	Level   string         `json:"level"`
	Message string         `json:"message"`
	Channel string         `json:"channel"`
	Fields  map[string]any `json:"fields,omitempty"`
	Context map[string]any `json:"context,omitempty"`
	Error   string         `json:"error,omitempty"`
}

type handlerRemote struct {
	client   *resty.Client
	endpoint string
	level    int
}

// NewHandlerRemote posts every message with at least the configured level as a json event to a log aggregation
// service. The source token is sent as bearer token.
func NewHandlerRemote(settings HandlerRemoteSettings) (Handler, error) {
	return NewHandlerRemoteWithInterfaces(resty.New(), settings)
}

func NewHandlerRemoteWithInterfaces(client *resty.Client, settings HandlerRemoteSettings) (Handler, error) {
	if err := ValidateHandlerSettings(settings); err != nil {
		return nil, fmt.Errorf("invalid remote handler settings: %w", err)
	}

	level, err := handlerPriority(settings.Level)
	if err != nil {
		return nil, err
	}

	timeout := settings.Timeout
	if timeout == 0 {
		timeout = defaultHttpTimeout
	}

	client.
		SetTimeout(timeout).
		SetRetryCount(0).
		SetAuthToken(settings.Token).
		SetHeader("Content-Type", "application/json")

	return &handlerRemote{
		client:   client,
		endpoint: settings.Endpoint,
		level:    level,
	}, nil
}

func (h *handlerRemote) Level() int {
	return h.level
}

func (h *handlerRemote) Log(ctx context.Context, timestamp time.Time, level int, msg string, args []any, logErr error, data Data) error {
	event := RemoteEvent{
		Dt:      timestamp.UTC().Format(time.RFC3339Nano),
		Level:   LevelName(level),
		Message: fmt.Sprintf(msg, args...),
		Channel: data.Channel,
		Fields:  data.Fields,
		Context: data.ContextFields,
	}

	if logErr != nil {
		event.Error = logErr.Error()
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(event).
		Post(h.endpoint)
	if err != nil {
		return fmt.Errorf("can not send log event to %s: %w", h.endpoint, err)
	}

	if resp.IsError() {
		return fmt.Errorf("log event was rejected by %s with status %d", h.endpoint, resp.StatusCode())
	}

	return nil
}
