package whisper

import (
	"context"
	"mime/multipart"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// ITranscriber turns an uploaded audio clip into text. Used by browsers
// without a native speech recognition engine, which record locally and
// post the clip instead.
type ITranscriber interface {
	Transcribe(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type transcriber struct {
	client *openai.Client
}

func NewTranscriber() ITranscriber {
	return &transcriber{client: openai.NewClient(os.Getenv("OPENAI_API_KEY"))}
}

func (t *transcriber) Transcribe(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   src,
		FilePath: file.Filename,
		Language: "en",
	})
	if err != nil {
		return "", err
	}

	return resp.Text, nil
}
