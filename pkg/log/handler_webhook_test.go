package log_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/justtrackio/logsink/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const webhookUrl = "https://hooks.example.com/webhook/abc"

type HandlerWebhookTestSuite struct {
	suite.Suite

	ctx       context.Context
	transport *httpmock.MockTransport
	bodies    []string
	data      log.Data
}

func (s *HandlerWebhookTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.transport = httpmock.NewMockTransport()
	s.bodies = nil
	s.data = log.Data{
		Channel:       "Orders",
		Fields:        map[string]any{"AppName": "Test"},
		ContextFields: map[string]any{"order": 42},
	}

	s.transport.RegisterResponder(http.MethodPost, webhookUrl, func(req *http.Request) (*http.Response, error) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}

		s.bodies = append(s.bodies, string(body))

		return httpmock.NewStringResponse(http.StatusOK, "1"), nil
	})
}

func (s *HandlerWebhookTestSuite) newHandler(useWorkflowFormat bool, titleTemplate string) log.Handler {
	handler, err := log.NewHandlerWebhookWithInterfaces(resty.New().SetTransport(s.transport), log.HandlerWebhookSettings{
		Url:               webhookUrl,
		Level:             log.LevelWarn,
		UseWorkflowFormat: useWorkflowFormat,
		TitleTemplate:     titleTemplate,
		RatePerSec:        1,
	})
	s.NoError(err)

	return handler
}

func (s *HandlerWebhookTestSuite) TestMessageCard() {
	handler := s.newHandler(false, "{AppName} {Level}")

	err := handler.Log(s.ctx, time.Now(), log.PriorityWarn, "order %d stuck", []any{42}, nil, s.data)
	s.NoError(err)

	s.Len(s.bodies, 1)
	s.JSONEq(`{
		"@type": "MessageCard",
		"@context": "https://schema.org/extensions",
		"themeColor": "FFA500",
		"summary": "Test warn",
		"title": "Test warn",
		"text": "order 42 stuck",
		"sections": [{"facts": [{"name": "AppName", "value": "Test"}, {"name": "order", "value": "42"}]}]
	}`, s.bodies[0])
}

func (s *HandlerWebhookTestSuite) TestFieldsWinOverContextFields() {
	handler := s.newHandler(false, "{order}")
	data := log.Data{
		Channel:       "Orders",
		Fields:        map[string]any{"order": "from fields"},
		ContextFields: map[string]any{"order": "from context"},
	}

	err := handler.Log(s.ctx, time.Now(), log.PriorityWarn, "stuck", nil, nil, data)
	s.NoError(err)

	s.Len(s.bodies, 1)
	s.JSONEq(`{
		"@type": "MessageCard",
		"@context": "https://schema.org/extensions",
		"themeColor": "FFA500",
		"summary": "from fields",
		"title": "from fields",
		"text": "stuck",
		"sections": [{"facts": [{"name": "order", "value": "from fields"}]}]
	}`, s.bodies[0])
}

func (s *HandlerWebhookTestSuite) TestWorkflowCard() {
	handler := s.newHandler(true, "")

	err := handler.Log(s.ctx, time.Now(), log.PriorityError, "%s", []any{"payment failed"}, nil, log.Data{Channel: "Payments"})
	s.NoError(err)

	s.Len(s.bodies, 1)
	s.JSONEq(`{
		"type": "message",
		"attachments": [{
			"contentType": "application/vnd.microsoft.card.adaptive",
			"content": {
				"$schema": "http://adaptivecards.io/schemas/adaptive-card.json",
				"type": "AdaptiveCard",
				"version": "1.4",
				"body": [
					{"type": "TextBlock", "text": "error: Payments", "weight": "Bolder", "size": "Medium", "wrap": true},
					{"type": "TextBlock", "text": "payment failed", "wrap": true}
				]
			}
		}]
	}`, s.bodies[0])
}

func (s *HandlerWebhookTestSuite) TestThrottled() {
	handler := s.newHandler(true, "")

	s.NoError(handler.Log(s.ctx, time.Now(), log.PriorityError, "first", nil, nil, s.data))
	s.ErrorIs(handler.Log(s.ctx, time.Now(), log.PriorityError, "second", nil, nil, s.data), log.ErrDropped)

	s.Equal(1, s.transport.GetTotalCallCount())
}

func (s *HandlerWebhookTestSuite) TestInvalidUrl() {
	_, err := log.NewHandlerWebhook(log.HandlerWebhookSettings{
		Url:   "",
		Level: log.LevelWarn,
	})

	s.ErrorContains(err, `setting Url failed on the "required" rule`)
}

func TestHandlerWebhookTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerWebhookTestSuite))
}

func TestRenderTitle(t *testing.T) {
	data := log.Data{
		Channel: "Microsoft.Hosting",
		Fields:  map[string]any{"AppName": "Test"},
	}

	assert.Equal(t, "[Test] error in Microsoft.Hosting: boom", log.RenderTitle("[{AppName}] {Level} in {Channel}: {Message}", log.PriorityError, "boom", data))
	assert.Equal(t, "warn: Microsoft.Hosting", log.RenderTitle("", log.PriorityWarn, "boom", data))
	assert.Equal(t, "{Unknown}", log.RenderTitle("{Unknown}", log.PriorityWarn, "boom", data))

	data.ContextFields = map[string]any{"AppName": "Context"}
	assert.Equal(t, "[Test]", log.RenderTitle("[{AppName}]", log.PriorityWarn, "boom", data))
}
