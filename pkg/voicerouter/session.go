package voicerouter

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/response"
)

const (
	// Greeting spoken when the session starts. Transcripts containing it
	// are discarded as echoes of the system's own voice.
	Greeting = "Hi, I'm the Emergency Tradesmen assistant. Tell me what's gone wrong and where you are."

	greetingEchoPhrase = "emergency tradesmen assistant"

	degradedMessage = "I'm getting a lot of requests right now. Let me take you to our contact page instead."
	failureMessage  = "Sorry, I'm having trouble connecting. Taking you back to the home page."

	systemPreamble = "You are the voice assistant for a UK emergency tradespeople directory. " +
		"Users describe household emergencies; work out which trade they need and where they are. " +
		"Keep replies to one or two short sentences. When you know the page to open, embed the " +
		"directive [NAVIGATE: /emergency-{trade}/{city}] in your reply; it is stripped before speaking."

	defaultEchoWindow  = 3 * time.Second
	defaultSettleDelay = 400 * time.Millisecond
)

var navigateDirective = regexp.MustCompile(`\[NAVIGATE:\s*([^\]]+)\]`)

// Config wires a Session's capabilities. Recognizer, Synthesizer,
// Generator and Navigate are required; the rest have defaults.
type Config struct {
	Recognizer  Recognizer
	Synthesizer Synthesizer
	Generator   Generator
	Navigate    func(route string)
	Commands    []CommandEntry
	OnStatus    func(State)
	OnError     func(error)
	OnResolved  func(Resolution)
	Log         *logrus.Logger
	Clock       func() time.Time
	EchoWindow  time.Duration
	SettleDelay time.Duration
}

// Session is the voice intent router: a single microphone session modeled
// as an explicit state machine driven by recognizer events. All decisions
// run on one event-loop goroutine; Stop may be called from any goroutine.
type Session struct {
	cfg Config

	mu          sync.Mutex
	state       State
	lastSpokeAt time.Time
	lastError   string

	history []Turn

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSession(cfg Config) *Session {
	if cfg.Commands == nil {
		cfg.Commands = DefaultCommands()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.EchoWindow == 0 {
		cfg.EchoWindow = defaultEchoWindow
	}
	if cfg.SettleDelay == 0 {
		cfg.SettleDelay = defaultSettleDelay
	}
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}
	if cfg.Navigate == nil {
		cfg.Navigate = func(string) {}
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		cfg:    cfg,
		state:  StateIdle,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Start acquires the recognizer and begins the event loop. Permission and
// capability failures are terminal; the caller must build a fresh session
// to retry.
func (s *Session) Start() error {
	if s.State() != StateIdle {
		return ErrSessionActive
	}

	s.setState(StateInitializing)

	if s.cfg.Recognizer == nil {
		s.fail(ErrUnsupported)
		return ErrUnsupported
	}

	if err := s.cfg.Recognizer.Start(); err != nil {
		s.fail(err)
		return err
	}

	go s.loop()
	return nil
}

// Stop ends the session: cancels any in-flight synthesis and remote
// generation, and stops the recognizer without letting the auto-restart
// logic resurrect it. Idempotent.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.state == StateStopped || s.state == StateError {
		s.mu.Unlock()
		return
	}
	s.state = StateStopped
	s.mu.Unlock()

	s.cancel()
	s.cfg.Synthesizer.Cancel()
	if err := s.cfg.Recognizer.Stop(); err != nil {
		s.cfg.Log.WithField("error", err.Error()).Warn("Failed to stop recognizer")
	}
	s.notify(StateStopped)
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Debug() DebugState {
	s.mu.Lock()
	defer s.mu.Unlock()

	label := ""
	if s.cfg.Recognizer != nil {
		label = s.cfg.Recognizer.Label()
	}
	return DebugState{
		Status:             s.state,
		RecognizerLabel:    label,
		SpeechAPISupported: s.cfg.Recognizer != nil,
		LastError:          s.lastError,
	}
}

// Done is closed when the event loop exits.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) loop() {
	defer close(s.done)

	s.speak(Greeting)

	events := s.cfg.Recognizer.Events()
	for {
		select {
		case <-s.ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			s.handle(ev)
			if st := s.State(); st == StateStopped || st == StateError {
				return
			}
		}
	}
}

func (s *Session) handle(ev Event) {
	switch ev.Type {
	case EventStarted:
		if st := s.State(); st == StateInitializing || st == StateProcessing {
			s.setState(StateListening)
		}

	case EventSpeechStart:
		if s.State() == StateListening {
			s.setState(StateSpeechDetected)
		}

	case EventResult:
		// Interim results never drive actions.
		if !ev.IsFinal {
			return
		}
		s.onFinalTranscript(ev.Transcript)

	case EventError:
		switch ev.Code {
		case "no-speech", "aborted":
			// Transient; the recognizer's end event triggers a restart.
			s.cfg.Log.WithField("code", ev.Code).Debug("Transient recognition error")
		case "not-allowed", "service-not-allowed":
			s.fail(ErrPermissionDenied)
		default:
			s.cfg.Log.WithField("code", ev.Code).Warn("Recognition error")
		}

	case EventEnded:
		st := s.State()
		if st == StateSpeaking || st == StateStopped || st == StateError {
			return
		}
		if err := s.cfg.Recognizer.Start(); err != nil {
			s.fail(err)
			return
		}
		s.setState(StateListening)
	}
}

func (s *Session) onFinalTranscript(transcript string) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return
	}

	// Echo gate: anything heard inside the cool-down window after the
	// system finished speaking is assumed to be our own voice.
	s.mu.Lock()
	sinceSpoke := s.cfg.Clock().Sub(s.lastSpokeAt)
	spokeAt := s.lastSpokeAt
	s.mu.Unlock()

	if !spokeAt.IsZero() && sinceSpoke < s.cfg.EchoWindow {
		s.cfg.Log.WithFields(logrus.Fields{
			"transcript":  transcript,
			"since_spoke": sinceSpoke.String(),
		}).Debug("Discarding transcript inside echo window")
		return
	}

	lower := strings.ToLower(transcript)
	if strings.Contains(lower, greetingEchoPhrase) {
		s.cfg.Log.WithField("transcript", transcript).Debug("Discarding greeting echo")
		return
	}

	s.setState(StateProcessing)

	// Local keyword matches always short-circuit the remote fallback.
	for _, cmd := range s.cfg.Commands {
		if strings.Contains(lower, cmd.Keyword) {
			s.cfg.Log.WithFields(logrus.Fields{
				"keyword": cmd.Keyword,
				"route":   cmd.Route,
			}).Info("Voice command matched")
			s.cfg.Navigate(cmd.Route)
			s.resolved(Resolution{
				Transcript: transcript,
				Source:     "local",
				Keyword:    cmd.Keyword,
				Route:      cmd.Route,
				Reply:      cmd.Speech,
			})
			s.speak(cmd.Speech)
			return
		}
	}

	s.fallback(transcript)
}

// fallback hands the transcript to the remote generator along with the
// accumulated conversation. The first call is seeded with the fixed
// system preamble.
func (s *Session) fallback(transcript string) {
	if len(s.history) == 0 {
		s.history = append(s.history, Turn{Role: "system", Text: systemPreamble})
	}
	s.history = append(s.history, Turn{Role: "user", Text: transcript})

	reply, err := s.cfg.Generator.Generate(s.ctx, s.history)
	if err != nil {
		if s.ctx.Err() != nil {
			// Session torn down while the request was in flight.
			return
		}
		if response.CodeOf(err) == 429 {
			s.cfg.Log.WithField("error", err.Error()).Warn("Generation quota exceeded")
			s.cfg.Navigate("/contact")
			s.speak(degradedMessage)
			s.fail(err)
			return
		}
		s.cfg.Log.WithField("error", err.Error()).Error("Generation failed")
		s.cfg.Navigate("/")
		s.speak(failureMessage)
		s.fail(err)
		return
	}

	s.history = append(s.history, Turn{Role: "assistant", Text: reply})

	spoken, route := ExtractDirective(reply)
	if route != "" {
		s.cfg.Navigate(route)
	}
	s.resolved(Resolution{
		Transcript: transcript,
		Source:     "generated",
		Route:      route,
		Reply:      spoken,
	})
	s.speak(spoken)
}

func (s *Session) resolved(r Resolution) {
	if s.cfg.OnResolved != nil {
		s.cfg.OnResolved(r)
	}
}

// speak is an exclusive critical section: the recognizer is paused for
// the duration of the utterance plus a settle delay so it never hears
// the system's own voice, and the echo-window clock starts when playback
// finishes.
func (s *Session) speak(text string) {
	if text == "" {
		return
	}

	s.cfg.Synthesizer.Cancel()
	s.setState(StateSpeaking)

	if err := s.cfg.Recognizer.Stop(); err != nil {
		s.cfg.Log.WithField("error", err.Error()).Warn("Failed to pause recognizer")
	}

	if err := s.cfg.Synthesizer.Speak(s.ctx, text); err != nil && s.ctx.Err() == nil {
		s.cfg.Log.WithField("error", err.Error()).Warn("Speech synthesis failed")
	}

	s.mu.Lock()
	s.lastSpokeAt = s.cfg.Clock()
	s.mu.Unlock()

	if s.cfg.SettleDelay > 0 {
		select {
		case <-time.After(s.cfg.SettleDelay):
		case <-s.ctx.Done():
			return
		}
	}

	if st := s.State(); st == StateStopped || st == StateError {
		return
	}
	if err := s.cfg.Recognizer.Start(); err != nil {
		s.fail(err)
		return
	}
	s.setState(StateListening)
}

// ExtractDirective splits a generated reply into the text to speak and an
// embedded [NAVIGATE: <route>] target, if present.
func ExtractDirective(reply string) (spoken, route string) {
	m := navigateDirective.FindStringSubmatch(reply)
	if m != nil {
		route = strings.TrimSpace(m[1])
	}
	spoken = strings.TrimSpace(navigateDirective.ReplaceAllString(reply, ""))
	return spoken, route
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	if s.state == StateStopped || s.state == StateError {
		s.mu.Unlock()
		return
	}
	s.state = st
	s.mu.Unlock()
	s.notify(st)
}

func (s *Session) fail(err error) {
	s.mu.Lock()
	if s.state == StateStopped || s.state == StateError {
		s.mu.Unlock()
		return
	}
	s.state = StateError
	s.lastError = err.Error()
	s.mu.Unlock()

	s.cancel()
	if s.cfg.Recognizer != nil {
		_ = s.cfg.Recognizer.Stop()
	}
	s.notify(StateError)
	if s.cfg.OnError != nil {
		s.cfg.OnError(err)
	}
}

func (s *Session) notify(st State) {
	if s.cfg.OnStatus != nil {
		s.cfg.OnStatus(st)
	}
}
