package transcribe

import (
	"context"
	"errors"
	"io"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
)

// AssemblyAIClient calls AssemblyAI's hosted transcription API.
// Implements the Provider interface.
type AssemblyAIClient struct {
	client *aai.Client
}

// NewAssemblyAIClient creates a client authenticated with the given API key.
func NewAssemblyAIClient(apiKey string) *AssemblyAIClient {
	return &AssemblyAIClient{client: aai.NewClient(apiKey)}
}

// Transcribe uploads the audio and polls until AssemblyAI reports a
// terminal status. Speaker labels are always requested so multi-speaker
// audio can be rendered as a dialogue.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio io.Reader, language string) (*Result, error) {
	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(true),
	}
	if language != "" && language != LanguageAuto {
		params.LanguageCode = aai.TranscriptLanguageCode(language)
	} else {
		params.LanguageDetection = aai.Bool(true)
	}

	transcript, err := c.client.Transcripts.TranscribeFromReader(ctx, audio, params)
	if err != nil {
		return nil, err
	}
	if transcript.Status == aai.TranscriptStatusError {
		detail := aai.ToString(transcript.Error)
		if detail == "" {
			detail = "transcription failed"
		}
		return nil, errors.New(detail)
	}

	result := &Result{Text: aai.ToString(transcript.Text)}
	for _, u := range transcript.Utterances {
		result.Utterances = append(result.Utterances, Utterance{
			Speaker: aai.ToString(u.Speaker),
			Text:    aai.ToString(u.Text),
		})
	}
	return result, nil
}
