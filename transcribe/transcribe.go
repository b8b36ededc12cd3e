// Package transcribe wraps the hosted speech-to-text provider behind a
// small interface so handlers can take a test double.
package transcribe

import (
	"context"
	"io"
	"strings"
)

// LanguageAuto asks the provider to detect the spoken language itself.
const LanguageAuto = "auto"

// Provider is the interface for speech-to-text backends.
type Provider interface {
	// Transcribe submits audio and awaits the terminal result. language is
	// an ISO code or LanguageAuto.
	Transcribe(ctx context.Context, audio io.Reader, language string) (*Result, error)
}

// Result is the terminal transcription result from a provider.
type Result struct {
	Text       string
	Utterances []Utterance // nil when the provider found no speaker turns
}

// Utterance is one contiguous speech segment attributed to a single speaker.
type Utterance struct {
	Speaker string
	Text    string
}

// Format renders a result for storage and display. With two or more
// utterances it produces one "Speaker: text" block per utterance,
// blank-line separated, in provider order; otherwise the plain transcript.
func Format(r *Result) string {
	if len(r.Utterances) < 2 {
		return r.Text
	}
	lines := make([]string, 0, len(r.Utterances))
	for _, u := range r.Utterances {
		lines = append(lines, u.Speaker+": "+u.Text)
	}
	return strings.Join(lines, "\n\n")
}
