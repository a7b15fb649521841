package voicerouter

import (
	"context"
	"errors"
)

// State is the voice session phase. StateStopped and StateError are
// terminal; recovery requires a fresh session.
type State string

const (
	StateIdle           State = "idle"
	StateInitializing   State = "initializing"
	StateListening      State = "listening"
	StateSpeechDetected State = "speech_detected"
	StateProcessing     State = "processing"
	StateSpeaking       State = "speaking"
	StateStopped        State = "stopped"
	StateError          State = "error"
)

var (
	ErrPermissionDenied = errors.New("microphone permission denied")
	ErrUnsupported      = errors.New("speech recognition not supported")
	ErrSessionActive    = errors.New("session already started")
)

type EventType string

const (
	EventStarted     EventType = "start"
	EventResult      EventType = "result"
	EventSpeechStart EventType = "speechstart"
	EventError       EventType = "error"
	EventEnded       EventType = "end"
)

// Event is one recognition-engine callback, normalized to a value the
// session loop can consume from a channel.
type Event struct {
	Type       EventType
	Transcript string
	IsFinal    bool
	Code       string
}

// Recognizer is the continuous speech-to-text capability. Events must be
// delivered on the returned channel until Stop closes it.
type Recognizer interface {
	Start() error
	Stop() error
	Events() <-chan Event
	Label() string
}

// Synthesizer plays one utterance at a time. Speak blocks until playback
// completes or ctx is cancelled; Cancel aborts any in-flight utterance.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
	Cancel()
}

type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Generator is the remote text-generation fallback. Quota exhaustion must
// surface as a response.Error with code 429.
type Generator interface {
	Generate(ctx context.Context, history []Turn) (string, error)
}

// Resolution describes how one final transcript was answered: by the
// keyword table or by the remote generator.
type Resolution struct {
	Transcript string
	Source     string // "local" or "generated"
	Keyword    string
	Route      string
	Reply      string
}

// CommandEntry maps a transcript keyword to a navigation target and a
// canned spoken confirmation.
type CommandEntry struct {
	Keyword string
	Route   string
	Speech  string
}

// DebugState is a diagnostic snapshot for UI display; it carries no
// correctness-relevant state.
type DebugState struct {
	Status             State  `json:"status"`
	RecognizerLabel    string `json:"recognizer_label"`
	SpeechAPISupported bool   `json:"speech_api_supported"`
	LastError          string `json:"last_error,omitempty"`
}
