package voicerouter

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/response"
)

type fakeRecognizer struct {
	mu       sync.Mutex
	events   chan Event
	starts   int
	stops    int
	startErr error
}

func newFakeRecognizer() *fakeRecognizer {
	return &fakeRecognizer{events: make(chan Event, 16)}
}

func (f *fakeRecognizer) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return f.startErr
	}
	f.starts++
	return nil
}

func (f *fakeRecognizer) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
	return nil
}

func (f *fakeRecognizer) Events() <-chan Event { return f.events }
func (f *fakeRecognizer) Label() string       { return "fake" }

func (f *fakeRecognizer) startCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.starts
}

type fakeSynth struct {
	utterances chan string
	cancels    int32
}

func newFakeSynth() *fakeSynth {
	return &fakeSynth{utterances: make(chan string, 16)}
}

func (f *fakeSynth) Speak(ctx context.Context, text string) error {
	f.utterances <- text
	return nil
}

func (f *fakeSynth) Cancel() { atomic.AddInt32(&f.cancels, 1) }

type fakeGenerator struct {
	reply   string
	err     error
	calls   int32
	entered chan struct{}
	block   bool
}

func (f *fakeGenerator) Generate(ctx context.Context, history []Turn) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.reply, f.err
}

func (f *fakeGenerator) callCount() int32 { return atomic.LoadInt32(&f.calls) }

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

type harness struct {
	rec    *fakeRecognizer
	synth  *fakeSynth
	gen    *fakeGenerator
	clock  *fakeClock
	routes chan string
	errs   chan error
	sess   *Session
}

func newHarness(t *testing.T, gen *fakeGenerator) *harness {
	t.Helper()

	h := &harness{
		rec:    newFakeRecognizer(),
		synth:  newFakeSynth(),
		gen:    gen,
		clock:  &fakeClock{now: time.Unix(1_700_000_000, 0)},
		routes: make(chan string, 16),
		errs:   make(chan error, 16),
	}
	h.sess = NewSession(Config{
		Recognizer:  h.rec,
		Synthesizer: h.synth,
		Generator:   gen,
		Navigate:    func(route string) { h.routes <- route },
		OnError:     func(err error) { h.errs <- err },
		Clock:       h.clock.Now,
		SettleDelay: -1,
	})
	return h
}

// start runs the session, consumes the greeting utterance and waits for
// the loop to settle back into listening, so tests can advance the fake
// clock without racing the echo-window bookkeeping.
func (h *harness) start(t *testing.T) {
	t.Helper()
	if err := h.sess.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got := h.waitUtterance(t); got != Greeting {
		t.Fatalf("expected greeting, got %q", got)
	}
	h.waitState(t, StateListening)
}

func (h *harness) waitState(t *testing.T, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.sess.State() != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected state %s, got %s", want, h.sess.State())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func (h *harness) hear(transcript string) {
	h.rec.events <- Event{Type: EventResult, Transcript: transcript, IsFinal: true}
}

func (h *harness) waitUtterance(t *testing.T) string {
	t.Helper()
	select {
	case u := <-h.synth.utterances:
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for utterance")
		return ""
	}
}

func (h *harness) waitRoute(t *testing.T) string {
	t.Helper()
	select {
	case r := <-h.routes:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for navigation")
		return ""
	}
}

func (h *harness) waitDone(t *testing.T) {
	t.Helper()
	select {
	case <-h.sess.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for session to end")
	}
}

func TestLocalCommandShortCircuitsGenerator(t *testing.T) {
	gen := &fakeGenerator{reply: "should never be used"}
	h := newHarness(t, gen)
	h.start(t)

	h.clock.Advance(5 * time.Second)
	h.hear("I need a plumber right now")

	if route := h.waitRoute(t); route != "/emergency-plumber" {
		t.Errorf("expected /emergency-plumber, got %q", route)
	}
	if got := h.waitUtterance(t); got != "Taking you to emergency plumbers." {
		t.Errorf("unexpected confirmation %q", got)
	}
	if gen.callCount() != 0 {
		t.Errorf("generator called %d times for a local match", gen.callCount())
	}
	h.sess.Stop()
}

func TestLockedOutRoutesToLocksmith(t *testing.T) {
	gen := &fakeGenerator{}
	h := newHarness(t, gen)
	h.start(t)

	h.clock.Advance(5 * time.Second)
	h.hear("help me, I need a locksmith")

	// "locksmith" appears before "help" in the command table, so the
	// first-match scan picks the trade route over /contact.
	if route := h.waitRoute(t); route != "/emergency-locksmith" {
		t.Errorf("expected /emergency-locksmith, got %q", route)
	}
	if got := h.waitUtterance(t); got != "Taking you to emergency locksmiths." {
		t.Errorf("unexpected confirmation %q", got)
	}
	h.sess.Stop()
}

func TestEchoWindowDiscardsTranscript(t *testing.T) {
	gen := &fakeGenerator{}
	h := newHarness(t, gen)
	h.start(t)

	// Heard one second after the greeting finished: inside the window.
	h.clock.Advance(1 * time.Second)
	h.hear("plumber")

	// Sentinel event: once it has taken effect the echoed transcript is
	// fully handled and the clock can be advanced safely.
	h.rec.events <- Event{Type: EventSpeechStart}
	h.waitState(t, StateSpeechDetected)

	h.clock.Advance(5 * time.Second)
	h.hear("electrician")

	// Only the second transcript should have produced a navigation.
	if route := h.waitRoute(t); route != "/emergency-electrician" {
		t.Errorf("expected /emergency-electrician, got %q", route)
	}
	select {
	case route := <-h.routes:
		t.Errorf("echoed transcript produced navigation to %q", route)
	default:
	}
	h.sess.Stop()
}

func TestGreetingEchoDiscardedOutsideWindow(t *testing.T) {
	gen := &fakeGenerator{}
	h := newHarness(t, gen)
	h.start(t)

	h.clock.Advance(5 * time.Second)
	h.hear("hi I'm the emergency tradesmen assistant tell me")

	h.clock.Advance(time.Second)
	h.hear("plumber")

	if route := h.waitRoute(t); route != "/emergency-plumber" {
		t.Errorf("expected /emergency-plumber, got %q", route)
	}
	if gen.callCount() != 0 {
		t.Error("greeting echo reached the generator")
	}
	h.sess.Stop()
}

func TestGeneratorDirectiveNavigates(t *testing.T) {
	gen := &fakeGenerator{reply: "Opening plumbers in Leeds for you. [NAVIGATE: /emergency-plumber/leeds]"}
	h := newHarness(t, gen)
	h.start(t)

	h.clock.Advance(5 * time.Second)
	h.hear("my sink exploded and everything is soaked")

	if route := h.waitRoute(t); route != "/emergency-plumber/leeds" {
		t.Errorf("expected directive route, got %q", route)
	}
	if got := h.waitUtterance(t); got != "Opening plumbers in Leeds for you." {
		t.Errorf("directive not stripped from speech: %q", got)
	}
	h.sess.Stop()
}

func TestGeneratorReplyWithoutDirective(t *testing.T) {
	gen := &fakeGenerator{reply: "Could you tell me which city you're in?"}
	h := newHarness(t, gen)
	h.start(t)

	h.clock.Advance(5 * time.Second)
	h.hear("something smells odd upstairs")

	if got := h.waitUtterance(t); got != "Could you tell me which city you're in?" {
		t.Errorf("unexpected speech %q", got)
	}
	select {
	case route := <-h.routes:
		t.Errorf("unexpected navigation to %q", route)
	default:
	}
	if h.sess.State() == StateError {
		t.Error("successful generation should not end the session")
	}
	h.sess.Stop()
}

func TestQuotaExhaustionDegradesToContactPage(t *testing.T) {
	gen := &fakeGenerator{err: response.NewError(429, "resource exhausted")}
	h := newHarness(t, gen)
	h.start(t)

	h.clock.Advance(5 * time.Second)
	h.hear("the ceiling is doing something strange")

	if route := h.waitRoute(t); route != "/contact" {
		t.Errorf("expected /contact, got %q", route)
	}
	if got := h.waitUtterance(t); got != degradedMessage {
		t.Errorf("expected degraded message, got %q", got)
	}
	h.waitDone(t)
	if h.sess.State() != StateError {
		t.Errorf("quota exhaustion should be terminal, state %s", h.sess.State())
	}
}

func TestGeneratorFailureFallsBackToHome(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection reset")}
	h := newHarness(t, gen)
	h.start(t)

	h.clock.Advance(5 * time.Second)
	h.hear("the ceiling is doing something strange")

	if route := h.waitRoute(t); route != "/" {
		t.Errorf("expected /, got %q", route)
	}
	if got := h.waitUtterance(t); got != failureMessage {
		t.Errorf("expected failure message, got %q", got)
	}
	h.waitDone(t)
	if h.sess.State() != StateError {
		t.Errorf("generator failure should be terminal, state %s", h.sess.State())
	}
}

func TestStopAbortsInFlightGeneration(t *testing.T) {
	gen := &fakeGenerator{block: true, entered: make(chan struct{}, 1)}
	h := newHarness(t, gen)
	h.start(t)

	h.clock.Advance(5 * time.Second)
	h.hear("the ceiling is doing something strange")

	select {
	case <-gen.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("generator never invoked")
	}

	h.sess.Stop()
	h.waitDone(t)

	if h.sess.State() != StateStopped {
		t.Errorf("expected stopped, got %s", h.sess.State())
	}
	select {
	case route := <-h.routes:
		t.Errorf("aborted generation navigated to %q", route)
	default:
	}
}

func TestPermissionDeniedIsTerminal(t *testing.T) {
	gen := &fakeGenerator{}
	h := newHarness(t, gen)
	h.start(t)

	h.rec.events <- Event{Type: EventError, Code: "not-allowed"}
	h.waitDone(t)

	if h.sess.State() != StateError {
		t.Errorf("expected error state, got %s", h.sess.State())
	}
	select {
	case err := <-h.errs:
		if !errors.Is(err, ErrPermissionDenied) {
			t.Errorf("expected permission error, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("OnError never fired")
	}
}

func TestRecognizerEndRestartsListening(t *testing.T) {
	gen := &fakeGenerator{}
	h := newHarness(t, gen)
	h.start(t)

	before := h.rec.startCount()
	h.rec.events <- Event{Type: EventEnded}

	deadline := time.Now().Add(2 * time.Second)
	for h.rec.startCount() <= before {
		if time.Now().After(deadline) {
			t.Fatal("recognizer never restarted after end event")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if st := h.sess.State(); st != StateListening {
		t.Errorf("expected listening after restart, got %s", st)
	}
	h.sess.Stop()
}

func TestStartWithoutRecognizerIsUnsupported(t *testing.T) {
	s := NewSession(Config{
		Synthesizer: newFakeSynth(),
		Generator:   &fakeGenerator{},
	})
	if err := s.Start(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected unsupported error, got %v", err)
	}
	if s.State() != StateError {
		t.Errorf("expected error state, got %s", s.State())
	}
}

func TestDoubleStartRejected(t *testing.T) {
	gen := &fakeGenerator{}
	h := newHarness(t, gen)
	h.start(t)

	if err := h.sess.Start(); !errors.Is(err, ErrSessionActive) {
		t.Errorf("expected session-active error, got %v", err)
	}
	h.sess.Stop()
}

func TestStopIsIdempotent(t *testing.T) {
	gen := &fakeGenerator{}
	h := newHarness(t, gen)
	h.start(t)

	h.sess.Stop()
	h.sess.Stop()
	h.waitDone(t)

	if h.sess.State() != StateStopped {
		t.Errorf("expected stopped, got %s", h.sess.State())
	}
}

func TestSpeechStartTransition(t *testing.T) {
	gen := &fakeGenerator{}
	h := newHarness(t, gen)
	h.start(t)

	h.rec.events <- Event{Type: EventSpeechStart}

	deadline := time.Now().Add(2 * time.Second)
	for h.sess.State() != StateSpeechDetected {
		if time.Now().After(deadline) {
			t.Fatalf("expected speech_detected, got %s", h.sess.State())
		}
		time.Sleep(5 * time.Millisecond)
	}
	h.sess.Stop()
}

func TestInterimResultsIgnored(t *testing.T) {
	gen := &fakeGenerator{}
	h := newHarness(t, gen)
	h.start(t)

	h.clock.Advance(5 * time.Second)
	h.rec.events <- Event{Type: EventResult, Transcript: "plumb", IsFinal: false}
	h.hear("electrician")

	if route := h.waitRoute(t); route != "/emergency-electrician" {
		t.Errorf("expected /emergency-electrician, got %q", route)
	}
	select {
	case route := <-h.routes:
		t.Errorf("interim result produced navigation to %q", route)
	default:
	}
	h.sess.Stop()
}

func TestResolutionHook(t *testing.T) {
	gen := &fakeGenerator{reply: "Done. [NAVIGATE: /blog]"}
	h := newHarness(t, gen)
	resolutions := make(chan Resolution, 4)
	h.sess.cfg.OnResolved = func(r Resolution) { resolutions <- r }
	h.start(t)

	h.clock.Advance(5 * time.Second)
	h.hear("I need an electrician")
	h.waitRoute(t)

	select {
	case r := <-resolutions:
		if r.Source != "local" || r.Keyword != "electrician" || r.Route != "/emergency-electrician" {
			t.Errorf("unexpected local resolution %+v", r)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no resolution for local match")
	}

	h.waitUtterance(t)
	h.waitState(t, StateListening)
	h.clock.Advance(5 * time.Second)
	h.hear("what about the thing from before")
	h.waitRoute(t)

	select {
	case r := <-resolutions:
		if r.Source != "generated" || r.Route != "/blog" || r.Reply != "Done." {
			t.Errorf("unexpected generated resolution %+v", r)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no resolution for generated reply")
	}
	h.sess.Stop()
}

func TestExtractDirective(t *testing.T) {
	tests := []struct {
		name   string
		reply  string
		spoken string
		route  string
	}{
		{
			name:   "trailing directive",
			reply:  "On it. [NAVIGATE: /emergency-plumber/leeds]",
			spoken: "On it.",
			route:  "/emergency-plumber/leeds",
		},
		{
			name:   "no directive",
			reply:  "Which city are you in?",
			spoken: "Which city are you in?",
			route:  "",
		},
		{
			name:   "directive with padding",
			reply:  "[NAVIGATE:   /contact  ] I'll open the contact page.",
			spoken: "I'll open the contact page.",
			route:  "/contact",
		},
		{
			name:   "directive only",
			reply:  "[NAVIGATE: /blog]",
			spoken: "",
			route:  "/blog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spoken, route := ExtractDirective(tt.reply)
			if spoken != tt.spoken {
				t.Errorf("spoken = %q, want %q", spoken, tt.spoken)
			}
			if route != tt.route {
				t.Errorf("route = %q, want %q", route, tt.route)
			}
		})
	}
}

func TestHistorySeededWithPreambleOnce(t *testing.T) {
	gen := &fakeGenerator{reply: "Noted."}
	h := newHarness(t, gen)
	h.start(t)

	h.clock.Advance(5 * time.Second)
	h.hear("something weird is happening")
	h.waitUtterance(t)
	h.waitState(t, StateListening)

	h.clock.Advance(5 * time.Second)
	h.hear("it's getting weirder")
	h.waitUtterance(t)

	h.sess.Stop()
	h.waitDone(t)

	if len(h.sess.history) != 5 {
		t.Fatalf("expected 5 turns (system + 2 exchanges), got %d", len(h.sess.history))
	}
	if h.sess.history[0].Role != "system" {
		t.Errorf("first turn should be the system preamble, got %s", h.sess.history[0].Role)
	}
	if h.sess.history[1].Role != "user" || h.sess.history[2].Role != "assistant" {
		t.Error("history should alternate user and assistant after the preamble")
	}
}
