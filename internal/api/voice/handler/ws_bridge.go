package voiceHandler

import (
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	voiceDomain "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/voice"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/voicerouter"
)

// speakAckTimeout caps how long a session waits for the browser's
// playback-finished acknowledgement before moving on.
const speakAckTimeout = 15 * time.Second

// wsBridge adapts a websocket connection to the router's Recognizer and
// Synthesizer interfaces: recognition runs in the browser, so Start and
// Stop are directives rather than local operations. Writes are serialized
// because the session loop and the read loop both send directives.
type wsBridge struct {
	conn   *websocket.Conn
	log    *logrus.Logger
	mu     sync.Mutex
	events chan voicerouter.Event
	spoken chan struct{}
}

func newWSBridge(conn *websocket.Conn, log *logrus.Logger) *wsBridge {
	return &wsBridge{
		conn:   conn,
		log:    log,
		events: make(chan voicerouter.Event, 32),
		spoken: make(chan struct{}, 1),
	}
}

func (b *wsBridge) Start() error {
	return b.send(voiceDomain.ServerDirective{Type: "listen"})
}

func (b *wsBridge) Stop() error {
	return b.send(voiceDomain.ServerDirective{Type: "pause"})
}

func (b *wsBridge) Events() <-chan voicerouter.Event {
	return b.events
}

func (b *wsBridge) Label() string {
	return "browser"
}

// Speak asks the browser to synthesize the phrase and blocks until the
// playback acknowledgement arrives, so the echo window opens when audio
// actually stops.
func (b *wsBridge) Speak(ctx context.Context, text string) error {
	// Drain a stale ack from a cancelled utterance.
	select {
	case <-b.spoken:
	default:
	}

	if err := b.send(voiceDomain.ServerDirective{Type: "speak", Text: text}); err != nil {
		return err
	}

	select {
	case <-b.spoken:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(speakAckTimeout):
		b.log.WithField("text", text).Warn("Speech acknowledgement timed out")
		return nil
	}
}

func (b *wsBridge) Cancel() {
	_ = b.send(voiceDomain.ServerDirective{Type: "cancel_speech"})
}

func (b *wsBridge) Navigate(route string) {
	_ = b.send(voiceDomain.ServerDirective{Type: "navigate", Route: route})
}

func (b *wsBridge) SendStatus(st voicerouter.State) {
	_ = b.send(voiceDomain.ServerDirective{Type: "status", Status: string(st)})
}

func (b *wsBridge) SendError(err error) {
	_ = b.send(voiceDomain.ServerDirective{Type: "error", Error: err.Error()})
}

// Push forwards a client event to the session loop. Events are dropped
// rather than blocking the read loop when the session has fallen behind.
func (b *wsBridge) Push(ev voicerouter.Event) {
	select {
	case b.events <- ev:
	default:
		b.log.WithField("type", string(ev.Type)).Warn("Dropping voice event, session backlog full")
	}
}

func (b *wsBridge) AckSpoken() {
	select {
	case b.spoken <- struct{}{}:
	default:
	}
}

func (b *wsBridge) send(d voiceDomain.ServerDirective) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conn.WriteJSON(d)
}
