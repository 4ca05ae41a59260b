package speech

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// DefaultListenTimeout bounds how long one utterance may take.
const DefaultListenTimeout = 30 * time.Second

// CommandRecognizer runs an external transcriber command (for example a
// whisper or vosk wrapper script) and takes the first non-empty stdout
// line as the transcript. The command string is split on whitespace; no
// shell quoting is supported.
type CommandRecognizer struct {
	command string
	timeout time.Duration
}

// NewCommandRecognizer creates a recognizer backed by the given command.
// An empty command yields a permanently unavailable recognizer.
func NewCommandRecognizer(command string) *CommandRecognizer {
	return &CommandRecognizer{
		command: strings.TrimSpace(command),
		timeout: DefaultListenTimeout,
	}
}

// WithTimeout sets the per-listen timeout.
func (r *CommandRecognizer) WithTimeout(timeout time.Duration) *CommandRecognizer {
	r.timeout = timeout
	return r
}

// Available reports whether the transcriber command is configured and its
// binary can be resolved.
func (r *CommandRecognizer) Available() bool {
	args := strings.Fields(r.command)
	if len(args) == 0 {
		return false
	}
	_, err := exec.LookPath(args[0])
	return err == nil
}

// Listen runs the transcriber once and returns the first line it prints.
func (r *CommandRecognizer) Listen(ctx context.Context) (string, error) {
	if !r.Available() {
		return "", ErrUnavailable
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	args := strings.Fields(r.command)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	output, err := cmd.Output()
	if err != nil {
		return "", err
	}

	transcript := firstLine(string(output))
	if transcript == "" {
		return "", ErrNoSpeech
	}

	return transcript, nil
}
