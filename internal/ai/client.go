// Package ai wraps the remote model API behind the three calls the
// application consumes: structured generation, conversational completion
// with optional web search, and speech synthesis.
package ai

import (
	"context"
	"github.com/myrjola/thejury/internal/errors"
	"github.com/myrjola/thejury/internal/models"
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"io"
	"log/slog"
)

// ErrRemoteCall means a remote call failed: network error, timeout or
// non-success response.
var ErrRemoteCall = errors.NewSentinel("remote call failed")

const MaxTokens = 4096

type Config struct {
	APIKey string
	// AnalysisModel handles pitch analysis with structured output.
	AnalysisModel string
	// ChatModel handles plain follow-up chat.
	ChatModel string
	// SearchModel handles cross-examination turns that need web search.
	SearchModel string
	SpeechModel string
}

type Client struct {
	api    *openai.Client
	config Config
}

func NewClient(config Config) *Client {
	if config.AnalysisModel == "" {
		config.AnalysisModel = openai.GPT4o
	}
	if config.ChatModel == "" {
		config.ChatModel = openai.GPT4o
	}
	if config.SearchModel == "" {
		config.SearchModel = "gpt-4o-search-preview"
	}
	if config.SpeechModel == "" {
		config.SpeechModel = string(openai.TTSModel1)
	}
	return &Client{
		api:    openai.NewClient(config.APIKey),
		config: config,
	}
}

// GenerationRequest is a single structured-output generation call.
type GenerationRequest struct {
	// Instruction is the persona-defining system instruction.
	Instruction string
	// PitchText may be empty when Image is present.
	PitchText string
	// Image may be nil when PitchText is present.
	Image *models.Image
	// Schema constrains the output shape. SchemaName labels it for the API.
	Schema     jsonschema.Definition
	SchemaName string
}

// GenerateAnalysis invokes the structured generation call and returns the raw
// JSON text. Callers must validate the result before consuming it.
func (c *Client) GenerateAnalysis(ctx context.Context, request GenerationRequest) ([]byte, error) {
	var parts []openai.ChatMessagePart
	if request.Image != nil {
		parts = append(parts, openai.ChatMessagePart{ //nolint:exhaustruct
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{ //nolint:exhaustruct
				URL:    request.Image.DataURL(),
				Detail: openai.ImageURLDetailAuto,
			},
		})
	}
	if request.PitchText != "" {
		parts = append(parts, openai.ChatMessagePart{ //nolint:exhaustruct
			Type: openai.ChatMessagePartTypeText,
			Text: request.PitchText,
		})
	}

	completion, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{ //nolint:exhaustruct
		Model:     c.config.AnalysisModel,
		MaxTokens: MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: request.Instruction},    //nolint:exhaustruct
			{Role: openai.ChatMessageRoleUser, MultiContent: parts},               //nolint:exhaustruct
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{ //nolint:exhaustruct
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   request.SchemaName,
				Schema: &request.Schema,
				Strict: true,
			},
		},
	})
	if err != nil {
		return nil, errors.Wrap(ErrRemoteCall, "create analysis completion", errors.SlogError(err))
	}
	if len(completion.Choices) == 0 {
		return nil, errors.Wrap(ErrRemoteCall, "analysis completion has no choices")
	}
	return []byte(completion.Choices[0].Message.Content), nil
}

// ChatRequest is one conversational turn against the remote model.
type ChatRequest struct {
	// Instruction is the moderator system instruction including the context summary.
	Instruction string
	// History holds the prior turns of the conversation, oldest first.
	History []models.ChatTurn
	// Message is the new user message.
	Message string
	// WebSearch requests the web-search capability for this turn.
	WebSearch bool
}

// ChatReply is the assistant's reply together with any grounding citations
// the remote side attached.
type ChatReply struct {
	Text    string
	Sources []models.GroundingSource
}

// ChatCompletion forwards one conversational turn and maps URL-citation
// annotations to grounding sources in the order the remote side returned them.
func (c *Client) ChatCompletion(ctx context.Context, request ChatRequest) (ChatReply, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(request.History)+2)
	messages = append(messages, openai.ChatCompletionMessage{ //nolint:exhaustruct
		Role:    openai.ChatMessageRoleSystem,
		Content: request.Instruction,
	})
	for _, turn := range request.History {
		role := openai.ChatMessageRoleUser
		if turn.Role == models.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Text}) //nolint:exhaustruct
	}
	messages = append(messages, openai.ChatCompletionMessage{ //nolint:exhaustruct
		Role:    openai.ChatMessageRoleUser,
		Content: request.Message,
	})

	completionRequest := openai.ChatCompletionRequest{ //nolint:exhaustruct
		Model:     c.config.ChatModel,
		MaxTokens: MaxTokens,
		Messages:  messages,
	}
	if request.WebSearch {
		completionRequest.Model = c.config.SearchModel
		completionRequest.WebSearchOptions = &openai.WebSearchOptions{} //nolint:exhaustruct
	}

	completion, err := c.api.CreateChatCompletion(ctx, completionRequest)
	if err != nil {
		return ChatReply{}, errors.Wrap(ErrRemoteCall, "create chat completion",
			slog.Bool("web_search", request.WebSearch), errors.SlogError(err))
	}
	if len(completion.Choices) == 0 {
		return ChatReply{}, errors.Wrap(ErrRemoteCall, "chat completion has no choices")
	}

	message := completion.Choices[0].Message
	reply := ChatReply{Text: message.Content} //nolint:exhaustruct
	for _, annotation := range message.Annotations {
		if annotation.URLCitation == nil {
			continue
		}
		reply.Sources = append(reply.Sources, models.GroundingSource{
			Title: annotation.URLCitation.Title,
			URI:   annotation.URLCitation.URL,
		})
	}
	return reply, nil
}

// Speak synthesizes text to MP3 audio bytes.
func (c *Client) Speak(ctx context.Context, text string, voice openai.SpeechVoice, speed float64) ([]byte, error) {
	response, err := c.api.CreateSpeech(ctx, openai.CreateSpeechRequest{ //nolint:exhaustruct
		Model:          openai.SpeechModel(c.config.SpeechModel),
		Input:          text,
		Voice:          voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
		Speed:          speed,
	})
	if err != nil {
		return nil, errors.Wrap(ErrRemoteCall, "create speech", errors.SlogError(err))
	}
	defer func() {
		_ = response.Close()
	}()
	audio, err := io.ReadAll(response)
	if err != nil {
		return nil, errors.Wrap(ErrRemoteCall, "read speech audio", errors.SlogError(err))
	}
	return audio, nil
}
