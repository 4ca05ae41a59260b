package commands

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/dincharya-ai/cli/internal/api"
	"github.com/dincharya-ai/cli/internal/config"
	apierrors "github.com/dincharya-ai/cli/internal/errors"
	"github.com/dincharya-ai/cli/internal/models"
)

// withMockClient swaps the client factory for the duration of a test.
func withMockClient(t *testing.T, mock *api.MockClient) {
	t.Helper()

	old := clientFactory
	clientFactory = func(cfg config.Config) (api.ClientInterface, error) {
		return mock, nil
	}
	t.Cleanup(func() { clientFactory = old })
}

// captureStdout runs fn and returns everything it printed to stdout.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	originalStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = originalStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), runErr
}

func TestRunQuery_EmptyPrompt(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name   string
		prompt string
		raw    bool
	}{
		{"empty raw", "", true},
		{"empty decorated", "", false},
		{"whitespace raw", "   \t\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &api.MockClient{}
			withMockClient(t, mock)

			err := runQuery(tt.prompt, tt.raw)
			if err == nil {
				t.Fatal("expected error for empty prompt")
			}
			if !strings.Contains(err.Error(), "cannot be empty") {
				t.Errorf("expected 'cannot be empty' error, got: %v", err)
			}
			if mock.SendMessageCalls != 0 {
				t.Errorf("expected no request for empty prompt, got %d", mock.SendMessageCalls)
			}
		})
	}
}

func TestRunQuery_RawOutput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	mock := &api.MockClient{
		SendMessageVal: &models.ChatEntry{
			ID:       "e1",
			Message:  "hello",
			Response: "namaste, how was your morning?",
		},
	}
	withMockClient(t, mock)

	output, err := captureStdout(t, func() error {
		return runQuery("hello", true)
	})
	if err != nil {
		t.Fatalf("runQuery failed: %v", err)
	}

	if output != "namaste, how was your morning?" {
		t.Errorf("raw output mismatch: %q", output)
	}
	if mock.SendMessageCalls != 1 {
		t.Errorf("expected exactly one request, got %d", mock.SendMessageCalls)
	}
	if mock.LastMessage != "hello" {
		t.Errorf("expected trimmed prompt, got %q", mock.LastMessage)
	}
}

func TestRunQuery_TrimsPrompt(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	mock := &api.MockClient{
		SendMessageVal: &models.ChatEntry{Response: "ok"},
	}
	withMockClient(t, mock)

	_, err := captureStdout(t, func() error {
		return runQuery("  hello there  \n", true)
	})
	if err != nil {
		t.Fatalf("runQuery failed: %v", err)
	}

	if mock.LastMessage != "hello there" {
		t.Errorf("expected trimmed prompt, got %q", mock.LastMessage)
	}
}

func TestRunQuery_SendError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	mock := &api.MockClient{
		SendMessageErr: errors.New("backend exploded"),
	}
	withMockClient(t, mock)

	err := runQuery("hello", true)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "backend exploded") {
		t.Errorf("expected underlying error in message, got: %v", err)
	}
}

func TestRunQuery_OutputToFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	outputFile := t.TempDir() + "/response.md"

	oldOutputFlag := outputFlag
	defer func() { outputFlag = oldOutputFlag }()
	outputFlag = outputFile

	mock := &api.MockClient{
		SendMessageVal: &models.ChatEntry{Response: "drink more water"},
	}
	withMockClient(t, mock)

	if err := runQuery("advice", true); err != nil {
		t.Fatalf("runQuery failed: %v", err)
	}

	content, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if string(content) != "drink more water" {
		t.Errorf("unexpected file content: %q", string(content))
	}
}

func TestFormatErrorMessage(t *testing.T) {
	if got := formatErrorMessage(nil, "ctx"); got != "" {
		t.Errorf("expected empty string for nil error, got %q", got)
	}

	apiErr := apierrors.NewAPIError(503, "/api/chat", "service unavailable").
		WithBody(`{"detail":"overloaded"}`)
	msg := formatErrorMessage(apiErr, "Request failed")

	if !strings.Contains(msg, "Request failed") {
		t.Errorf("expected context in message, got: %s", msg)
	}
	if !strings.Contains(msg, "503") {
		t.Errorf("expected HTTP status in message, got: %s", msg)
	}
	if !strings.Contains(msg, "/api/chat") {
		t.Errorf("expected endpoint in message, got: %s", msg)
	}
	if !strings.Contains(msg, "overloaded") {
		t.Errorf("expected response body in message, got: %s", msg)
	}
}

func TestFormatErrorMessageHints(t *testing.T) {
	netErr := apierrors.NewNetworkError("/api/weather", errors.New("connection refused"))
	msg := formatErrorMessage(netErr, "Weather unavailable")
	if !strings.Contains(msg, "backend is running") {
		t.Errorf("expected network hint, got: %s", msg)
	}

	timeoutErr := apierrors.NewTimeoutError("/api/chat")
	msg = formatErrorMessage(timeoutErr, "Request failed")
	if !strings.Contains(msg, "timed out") {
		t.Errorf("expected timeout hint, got: %s", msg)
	}
}

func TestGetTerminalWidth(t *testing.T) {
	width := getTerminalWidth()
	if width <= 0 {
		t.Errorf("getTerminalWidth() = %d, want > 0", width)
	}
}

func TestNewSpinner(t *testing.T) {
	spin := newSpinner("Test message")

	if spin.message != "Test message" {
		t.Errorf("expected message 'Test message', got %s", spin.message)
	}
	if spin.stop == nil {
		t.Error("stop channel is nil")
	}
	if spin.done == nil {
		t.Error("done channel is nil")
	}
	if spin.frame != 0 {
		t.Errorf("expected frame 0, got %d", spin.frame)
	}
}

func TestSpinnerStartStop(t *testing.T) {
	spin := newSpinner("Test")
	spin.start()
	time.Sleep(10 * time.Millisecond)
	spin.stopWithSuccess("Done")

	select {
	case <-spin.done:
	case <-time.After(100 * time.Millisecond):
		t.Error("spinner did not stop within expected time")
	}
}

func TestSpinnerStopWithError(t *testing.T) {
	spin := newSpinner("Test")
	spin.start()
	spin.stopWithError()

	select {
	case <-spin.done:
	case <-time.After(100 * time.Millisecond):
		t.Error("spinner did not stop within expected time")
	}

	// A second stop must not panic
	spin.stopOnce()
}

func TestSpinnerRender(t *testing.T) {
	spin := newSpinner("Test")

	for i := 0; i < 10; i++ {
		spin.frame = i
		spin.render()
	}
}
