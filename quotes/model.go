package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/kodesoul/motivation/lib"
	"github.com/tidwall/gjson"
)

const (
	Prompt = "You are an expert in leadership, team development, and motivational coaching. " +
		"Write a brief, powerful, and unique phrase that inspires a technology development team to start their day with motivation."

	anthropicVersion = "bedrock-2023-05-31"
	maxTokens        = 100
	temperature      = 0.9
	topP             = 0.9

	// path of the first generated text block in an anthropic messages response
	textPath = "content.0.text"
)

// ModelAPI is the subset of the bedrock runtime client the model needs.
type ModelAPI interface {
	InvokeModel(ctx context.Context, input *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type Model struct {
	api ModelAPI
	id  string
}

func NewModel(api ModelAPI, id string) *Model {
	return &Model{api: api, id: id}
}

func (m *Model) ID() string {
	return m.id
}

type modelMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type modelRequest struct {
	AnthropicVersion string         `json:"anthropic_version"`
	Messages         []modelMessage `json:"messages"`
	MaxTokens        int            `json:"max_tokens"`
	Temperature      float64        `json:"temperature"`
	TopP             float64        `json:"top_p"`
}

func requestBody(prompt string) ([]byte, error) {
	return json.Marshal(modelRequest{
		AnthropicVersion: anthropicVersion,
		Messages:         []modelMessage{{Role: "user", Content: prompt}},
		MaxTokens:        maxTokens,
		Temperature:      temperature,
		TopP:             topP,
	})
}

// Complete sends a single user message and returns the trimmed text of the
// first content block.
func (m *Model) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := requestBody(prompt)
	if err != nil {
		lib.Logger.Println("error:", err)
		return "", err
	}
	out, err := m.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(m.id),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		err = serviceError("bedrock", "InvokeModel", err)
		lib.Logger.Println("error:", err)
		return "", err
	}
	text, err := ExtractText(out.Body)
	if err != nil {
		lib.Logger.Println("error:", err)
		return "", err
	}
	return text, nil
}

func ExtractText(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("%w: invalid json", ErrMalformedResponse)
	}
	result := gjson.GetBytes(body, textPath)
	if !result.Exists() {
		return "", fmt.Errorf("%w: missing %s", ErrMalformedResponse, textPath)
	}
	if result.Type != gjson.String {
		return "", fmt.Errorf("%w: %s is %s", ErrMalformedResponse, textPath, result.Type)
	}
	return strings.TrimSpace(result.String()), nil
}
