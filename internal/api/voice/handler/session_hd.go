package voiceHandler

import (
	"time"

	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"

	voiceDomain "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/voice"
	contextPkg "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/context"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/log"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/voicerouter"
)

// Session runs one voice session over a websocket. The browser owns the
// microphone and the speakers; this side owns the state machine. Client
// events feed the router as recognizer events, and router decisions go
// back as directives: listen, pause, speak, navigate, status.
func (h *VoiceHandler) Session(conn *websocket.Conn) {
	sessionID, err := h.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		h.log.WithField("error", err.Error()).Error("Failed to generate voice session ID")
		_ = conn.Close()
		return
	}

	h.log.WithFields(log.Fields{
		"session_id": sessionID,
	}).Info("Voice session opened")

	bridge := newWSBridge(conn, h.log)

	sess := voicerouter.NewSession(voicerouter.Config{
		Recognizer:  bridge,
		Synthesizer: bridge,
		Generator:   h.voiceService.Generator(),
		Navigate:    bridge.Navigate,
		Log:         h.log,
		OnStatus:    bridge.SendStatus,
		OnError:     bridge.SendError,
		OnResolved: func(res voicerouter.Resolution) {
			c, cancel := context.WithTimeout(
				contextPkg.WithRequestID(context.Background(), sessionID), 5*time.Second)
			defer cancel()
			if err := h.voiceService.LogResolution(c, sessionID, res); err != nil {
				h.log.WithFields(log.Fields{
					"session_id": sessionID,
					"error":      err.Error(),
				}).Warn("Failed to log voice resolution")
			}
		},
	})

	if err := sess.Start(); err != nil {
		h.log.WithFields(log.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to start voice session")
		_ = conn.Close()
		return
	}

	for {
		var ev voiceDomain.ClientEvent
		if err := conn.ReadJSON(&ev); err != nil {
			break
		}

		switch ev.Type {
		case "stop":
			sess.Stop()
		case "spoken":
			bridge.AckSpoken()
		case "result":
			bridge.Push(voicerouter.Event{
				Type:       voicerouter.EventResult,
				Transcript: ev.Transcript,
				IsFinal:    ev.IsFinal,
			})
		case "speechstart":
			bridge.Push(voicerouter.Event{Type: voicerouter.EventSpeechStart})
		case "start":
			bridge.Push(voicerouter.Event{Type: voicerouter.EventStarted})
		case "error":
			bridge.Push(voicerouter.Event{Type: voicerouter.EventError, Code: ev.Code})
		case "end":
			bridge.Push(voicerouter.Event{Type: voicerouter.EventEnded})
		default:
			h.log.WithFields(log.Fields{
				"session_id": sessionID,
				"type":       ev.Type,
			}).Debug("Ignoring unknown client event")
		}

		if st := sess.State(); st == voicerouter.StateStopped || st == voicerouter.StateError {
			break
		}
	}

	sess.Stop()
	<-sess.Done()

	h.log.WithFields(log.Fields{
		"session_id": sessionID,
		"state":      string(sess.State()),
	}).Info("Voice session closed")
}
