package log

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const defaultWebhookRatePerSec = 1

type HandlerWebhookSettings struct {
	Url               string        `validate:"required,url"`
	Level             string        `validate:"required,oneof=trace debug info warn error fatal none"`
	Timeout           time.Duration `validate:"gte=0"`
	RatePerSec        int           `validate:"gte=0"`
	UseWorkflowFormat bool
	TitleTemplate     string
}

type handlerWebhook struct {
	client            *resty.Client
	url               string
	useWorkflowFormat bool
	titleTemplate     string
	level             int
	limiter           *rate.Limiter
}

// NewHandlerWebhook posts messages as cards to a chat webhook. Either the legacy connector message card or an
// adaptive card wrapped for workflow webhooks is sent. Messages exceeding the rate limit are dropped.
func NewHandlerWebhook(settings HandlerWebhookSettings) (Handler, error) {
	return NewHandlerWebhookWithInterfaces(resty.New(), settings)
}

func NewHandlerWebhookWithInterfaces(client *resty.Client, settings HandlerWebhookSettings) (Handler, error) {
	if err := ValidateHandlerSettings(settings); err != nil {
		return nil, fmt.Errorf("invalid webhook handler settings: %w", err)
	}

	level, err := handlerPriority(settings.Level)
	if err != nil {
		return nil, err
	}

	timeout := settings.Timeout
	if timeout == 0 {
		timeout = defaultHttpTimeout
	}

	rps := settings.RatePerSec
	if rps == 0 {
		rps = defaultWebhookRatePerSec
	}

	client.
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json")

	return &handlerWebhook{
		client:            client,
		url:               settings.Url,
		useWorkflowFormat: settings.UseWorkflowFormat,
		titleTemplate:     settings.TitleTemplate,
		level:             level,
		limiter:           rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

func (h *handlerWebhook) Level() int {
	return h.level
}

func (h *handlerWebhook) Log(ctx context.Context, _ time.Time, level int, msg string, args []any, logErr error, data Data) error {
	if !h.limiter.Allow() {
		return ErrDropped
	}

	message := fmt.Sprintf(msg, args...)
	if logErr != nil && logErr.Error() != message {
		message = fmt.Sprintf("%s: %s", message, logErr.Error())
	}

	title := RenderTitle(h.titleTemplate, level, message, data)
	facts := webhookFacts(data)

	var body any
	if h.useWorkflowFormat {
		body = newAdaptiveCardMessage(title, message, facts)
	} else {
		body = newMessageCard(title, message, level, facts)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(h.url)
	if err != nil {
		return fmt.Errorf("can not send log message to webhook: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("log message was rejected by webhook with status %d", resp.StatusCode())
	}

	return nil
}

// RenderTitle replaces the placeholders {Level}, {Channel} and {Message} as well as {<field>} for every field of the
// message. An empty template yields "<level>: <channel>".
func RenderTitle(template string, level int, message string, data Data) string {
	if template == "" {
		return fmt.Sprintf("%s: %s", LevelName(level), data.Channel)
	}

	replacements := []string{
		"{Level}", LevelName(level),
		"{Channel}", data.Channel,
		"{Message}", message,
	}

	// fields win over context fields of the same name, like in the facts of the message
	for k, v := range mergeFields(data.ContextFields, data.Fields) {
		replacements = append(replacements, "{"+k+"}", fmt.Sprint(v))
	}

	return strings.NewReplacer(replacements...).Replace(template)
}

type webhookFact struct {
	Name  string
	Value string
}

func webhookFacts(data Data) []webhookFact {
	merged := mergeFields(data.ContextFields, data.Fields)

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	facts := make([]webhookFact, 0, len(keys))
	for _, k := range keys {
		facts = append(facts, webhookFact{Name: k, Value: fmt.Sprint(merged[k])})
	}

	return facts
}

type messageCard struct {
	Type       string               `json:"@type"`
	Context    string               `json:"@context"`
	ThemeColor string               `json:"themeColor"`
	Summary    string               `json:"summary"`
	Title      string               `json:"title"`
	Text       string               `json:"text"`
	Sections   []messageCardSection `json:"sections,omitempty"`
}

type messageCardSection struct {
	Facts []messageCardFact `json:"facts"`
}

type messageCardFact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func newMessageCard(title string, message string, level int, facts []webhookFact) messageCard {
	card := messageCard{
		Type:       "MessageCard",
		Context:    "https://schema.org/extensions",
		ThemeColor: themeColor(level),
		Summary:    title,
		Title:      title,
		Text:       message,
	}

	if len(facts) == 0 {
		return card
	}

	section := messageCardSection{}
	for _, fact := range facts {
		section.Facts = append(section.Facts, messageCardFact{Name: fact.Name, Value: fact.Value})
	}

	card.Sections = []messageCardSection{section}

	return card
}

func themeColor(level int) string {
	switch {
	case level >= PriorityError:
		return "D70000"
	case level == PriorityWarn:
		return "FFA500"
	default:
		return "0078D7"
	}
}

type adaptiveCardMessage struct {
	Type        string                   `json:"type"`
	Attachments []adaptiveCardAttachment `json:"attachments"`
}

type adaptiveCardAttachment struct {
	ContentType string       `json:"contentType"`
	Content     adaptiveCard `json:"content"`
}

type adaptiveCard struct {
	Schema  string           `json:"$schema"`
	Type    string           `json:"type"`
	Version string           `json:"version"`
	Body    []map[string]any `json:"body"`
}

func newAdaptiveCardMessage(title string, message string, facts []webhookFact) adaptiveCardMessage {
	body := []map[string]any{
		{
			"type":   "TextBlock",
			"text":   title,
			"weight": "Bolder",
			"size":   "Medium",
			"wrap":   true,
		},
		{
			"type": "TextBlock",
			"text": message,
			"wrap": true,
		},
	}

	if len(facts) > 0 {
		factSet := make([]map[string]string, 0, len(facts))
		for _, fact := range facts {
			factSet = append(factSet, map[string]string{"title": fact.Name, "value": fact.Value})
		}

		body = append(body, map[string]any{
			"type":  "FactSet",
			"facts": factSet,
		})
	}

	return adaptiveCardMessage{
		Type: "message",
		Attachments: []adaptiveCardAttachment{
			{
				ContentType: "application/vnd.microsoft.card.adaptive",
				Content: adaptiveCard{
					Schema:  "http://adaptivecards.io/schemas/adaptive-card.json",
					Type:    "AdaptiveCard",
					Version: "1.4",
					Body:    body,
				},
			},
		},
	}
}
