package gemini

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/response"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/voicerouter"
)

type IGemini interface {
	Generate(ctx context.Context, history []voicerouter.Turn) (string, error)
	Close()
}

type geminiClient struct {
	modelName string
	client    *genai.Client
}

func NewGeminiClient() (IGemini, error) {

	apiKey := os.Getenv("GEMINI_API_KEY")

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		modelName: modelName,
		client:    client,
	}, nil
}

// Generate sends the conversation to the model and returns its reply.
// A leading "system" turn becomes the model's system instruction; the
// final turn is sent as the live message, everything between is replayed
// as chat history. Quota exhaustion is surfaced as a response.Error with
// code 429 so callers can degrade instead of retrying.
func (g *geminiClient) Generate(ctx context.Context, history []voicerouter.Turn) (string, error) {
	if len(history) == 0 {
		return "", errors.New("empty conversation")
	}

	model := g.client.GenerativeModel(g.modelName)

	turns := history
	if turns[0].Role == "system" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(turns[0].Text)},
		}
		turns = turns[1:]
	}
	if len(turns) == 0 {
		return "", errors.New("conversation has no user turns")
	}

	session := model.StartChat()
	for _, turn := range turns[:len(turns)-1] {
		role := "user"
		if turn.Role == "assistant" {
			role = "model"
		}
		session.History = append(session.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	res, err := session.SendMessage(ctx, genai.Text(turns[len(turns)-1].Text))
	if err != nil {
		return "", wrapAPIError(err)
	}

	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Gemini API")
	}

	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("unexpected response format from Gemini API")
	}

	return strings.TrimSpace(sb.String()), nil
}

func (g *geminiClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

func wrapAPIError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == 429 {
		return response.NewError(429, "gemini quota exceeded")
	}
	return err
}
