// Package speech wraps the platform speech-to-text capability used for
// voice input. Recognition is single-shot: one listen, one transcript, no
// interim results.
package speech

import (
	"context"
	"errors"
	"strings"
)

// ErrUnavailable is returned when no recognizer is configured or the
// configured transcriber cannot be found.
var ErrUnavailable = errors.New("speech recognition is not available")

// ErrNoSpeech is returned when the transcriber produced no transcript.
var ErrNoSpeech = errors.New("no speech detected")

// Recognizer converts one utterance of speech into text.
type Recognizer interface {
	// Available reports whether recognition can be started at all.
	Available() bool

	// Listen records a single utterance and returns its transcript.
	// It blocks until the transcriber finishes or ctx is done.
	Listen(ctx context.Context) (string, error)
}

// firstLine extracts the first non-empty line of transcriber output.
func firstLine(output string) string {
	for _, line := range strings.Split(output, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
