package triage

import (
	"strings"
	"testing"
	"time"

	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/catalog"
)

func newTestEngine() *Engine {
	return NewEngine(catalog.Trades(), catalog.Cities())
}

func TestProcessMessageSingleTurnBothSlots(t *testing.T) {
	e := newTestEngine()

	state, reply := e.ProcessMessage("My pipe burst, I'm in Leeds", NewState())

	if state.DetectedTrade == nil || state.DetectedTrade.Slug != "plumber" {
		t.Fatalf("expected plumber, got %+v", state.DetectedTrade)
	}
	if state.DetectedCity != "Leeds" {
		t.Errorf("expected Leeds, got %q", state.DetectedCity)
	}
	if state.Step != StepReadyToNavigate {
		t.Errorf("expected ready_to_navigate, got %s", state.Step)
	}
	if reply.Action != ActionNavigate {
		t.Errorf("expected navigate action, got %s", reply.Action)
	}
	if reply.Target != "/emergency-plumber/leeds" {
		t.Errorf("unexpected target %q", reply.Target)
	}
}

func TestProcessMessageTradeOnly(t *testing.T) {
	e := newTestEngine()

	state, reply := e.ProcessMessage("power cut", NewState())

	if state.DetectedTrade == nil || state.DetectedTrade.Slug != "electrician" {
		t.Fatalf("expected electrician, got %+v", state.DetectedTrade)
	}
	if state.DetectedCity != "" {
		t.Errorf("expected no city, got %q", state.DetectedCity)
	}
	if state.Step != StepAwaitingLocation {
		t.Errorf("expected awaiting_location, got %s", state.Step)
	}
	if reply.Action != ActionNone {
		t.Errorf("expected no action, got %s", reply.Action)
	}
	if !strings.Contains(strings.ToLower(reply.Content), "city") {
		t.Errorf("reply should ask for a location, got %q", reply.Content)
	}
}

func TestProcessMessageAccumulatesAcrossTurns(t *testing.T) {
	e := newTestEngine()

	state, _ := e.ProcessMessage("electrician", NewState())
	if state.DetectedTrade == nil || state.DetectedTrade.Slug != "electrician" {
		t.Fatalf("turn 1: expected electrician, got %+v", state.DetectedTrade)
	}
	if state.DetectedCity != "" {
		t.Fatalf("turn 1: expected no city, got %q", state.DetectedCity)
	}

	state, reply := e.ProcessMessage("Bristol", state)
	if state.DetectedTrade == nil || state.DetectedTrade.Slug != "electrician" {
		t.Errorf("turn 2: trade should persist, got %+v", state.DetectedTrade)
	}
	if state.DetectedCity != "Bristol" {
		t.Errorf("turn 2: expected Bristol, got %q", state.DetectedCity)
	}
	if reply.Action != ActionNavigate || reply.Target != "/emergency-electrician/bristol" {
		t.Errorf("turn 2: expected navigation to /emergency-electrician/bristol, got %s %q", reply.Action, reply.Target)
	}
}

func TestMonotonicAccumulation(t *testing.T) {
	e := newTestEngine()

	state, _ := e.ProcessMessage("I need a plumber in Manchester", NewState())
	state, reply := e.ProcessMessage("how long will it take?", state)

	if state.DetectedTrade == nil || state.DetectedTrade.Slug != "plumber" {
		t.Errorf("trade cleared by unrelated turn: %+v", state.DetectedTrade)
	}
	if state.DetectedCity != "Manchester" {
		t.Errorf("city cleared by unrelated turn: %q", state.DetectedCity)
	}
	if reply.Action != ActionNavigate {
		t.Errorf("both slots filled, expected navigate, got %s", reply.Action)
	}
}

func TestIdempotentRedetection(t *testing.T) {
	e := newTestEngine()

	state, _ := e.ProcessMessage("need a locksmith", NewState())
	first := state.DetectedTrade.Slug

	state, _ = e.ProcessMessage("need a locksmith", state)
	if state.DetectedTrade == nil || state.DetectedTrade.Slug != first {
		t.Errorf("re-detection toggled trade: %+v", state.DetectedTrade)
	}
}

func TestCaseInsensitivity(t *testing.T) {
	e := newTestEngine()

	inputs := []string{
		"I need a PLUMBER in MANCHESTER",
		"plumber in manchester",
		"Plumber In Manchester",
	}

	for _, input := range inputs {
		state, _ := e.ProcessMessage(input, NewState())
		if state.DetectedTrade == nil || state.DetectedTrade.Slug != "plumber" {
			t.Errorf("%q: expected plumber, got %+v", input, state.DetectedTrade)
		}
		if state.DetectedCity != "Manchester" {
			t.Errorf("%q: expected Manchester, got %q", input, state.DetectedCity)
		}
	}
}

func TestHistoryAppendOnly(t *testing.T) {
	e := newTestEngine()

	state := NewState()
	var prev []Message

	turns := []string{"hello", "I have a leak", "Sheffield"}
	for i, text := range turns {
		before := len(state.History)
		state, _ = e.ProcessMessage(text, state)

		if len(state.History) != before+2 {
			t.Fatalf("turn %d: history grew by %d, want 2", i+1, len(state.History)-before)
		}
		for j, msg := range prev {
			if state.History[j] != msg {
				t.Fatalf("turn %d: prior history entry %d changed", i+1, j)
			}
		}
		prev = append([]Message{}, state.History...)
	}

	if state.History[0].Role != RoleUser || state.History[1].Role != RoleAssistant {
		t.Error("history should alternate user then assistant")
	}
}

func TestInputStateNotMutated(t *testing.T) {
	e := newTestEngine()

	orig, _ := e.ProcessMessage("hello there", NewState())
	histLen := len(orig.History)
	hist0 := orig.History[0]

	e.ProcessMessage("plumber in Leeds", orig)

	if len(orig.History) != histLen || orig.History[0] != hist0 {
		t.Error("input state was mutated")
	}
	if orig.DetectedTrade != nil {
		t.Error("input state trade was mutated")
	}
}

func TestUnrecognizedTextAsksClarifyingQuestion(t *testing.T) {
	e := newTestEngine()

	state, reply := e.ProcessMessage("xyzzy frobnicate", NewState())

	if state.DetectedTrade != nil || state.DetectedCity != "" {
		t.Error("nothing should be extracted from gibberish")
	}
	if state.Step != StepAwaitingTrade {
		t.Errorf("expected awaiting_trade, got %s", state.Step)
	}
	if reply.Action != ActionNone {
		t.Errorf("expected no action, got %s", reply.Action)
	}
}

func TestGasLeakRoutesToGasEngineer(t *testing.T) {
	e := newTestEngine()

	// "gas leak" must reach the gas engineer before the plumber's bare
	// "leak" synonym can claim it; catalog order is load-bearing here.
	state, _ := e.ProcessMessage("I can smell a gas leak", NewState())
	if state.DetectedTrade == nil || state.DetectedTrade.Slug != "gas-engineer" {
		t.Errorf("expected gas-engineer, got %+v", state.DetectedTrade)
	}

	state, _ = e.ProcessMessage("there is a leak under the sink", NewState())
	if state.DetectedTrade == nil || state.DetectedTrade.Slug != "plumber" {
		t.Errorf("plain leak should still be a plumber, got %+v", state.DetectedTrade)
	}
}

func TestMultiWordCityMatching(t *testing.T) {
	e := newTestEngine()

	state, reply := e.ProcessMessage("locked out of my house in Milton Keynes", NewState())

	if state.DetectedTrade == nil || state.DetectedTrade.Slug != "locksmith" {
		t.Fatalf("expected locksmith, got %+v", state.DetectedTrade)
	}
	if state.DetectedCity != "Milton Keynes" {
		t.Errorf("expected Milton Keynes, got %q", state.DetectedCity)
	}
	if reply.Target != "/emergency-locksmith/milton-keynes" {
		t.Errorf("unexpected target %q", reply.Target)
	}
}

func TestSubstringMatching(t *testing.T) {
	e := newTestEngine()

	// Containment, not whole-word matching: "pipes" still mentions "pipe".
	state, _ := e.ProcessMessage("frozen pipes everywhere", NewState())
	if state.DetectedTrade == nil || state.DetectedTrade.Slug != "plumber" {
		t.Errorf("expected plumber via substring, got %+v", state.DetectedTrade)
	}
}

func TestReset(t *testing.T) {
	e := newTestEngine()

	state, _ := e.ProcessMessage("plumber in Leeds", NewState())
	state = Reset()

	if state.Step != StepInitial {
		t.Errorf("expected initial step, got %s", state.Step)
	}
	if state.DetectedTrade != nil || state.DetectedCity != "" {
		t.Error("detected slots should be cleared on reset")
	}
	if len(state.History) != 0 {
		t.Errorf("history should be empty on reset, got %d entries", len(state.History))
	}
}

func TestUniqueMessageIDs(t *testing.T) {
	e := newTestEngine()

	state := NewState()
	for _, text := range []string{"hello", "plumber", "Leeds"} {
		state, _ = e.ProcessMessage(text, state)
	}

	seen := map[string]bool{}
	for _, msg := range state.History {
		if msg.ID == "" {
			t.Fatal("message without id")
		}
		if seen[msg.ID] {
			t.Fatalf("duplicate message id %s", msg.ID)
		}
		seen[msg.ID] = true
	}
}

func TestNavigationDelayBounds(t *testing.T) {
	short := NavigationDelay(Message{Content: "ok"})
	long := NavigationDelay(Message{Content: strings.Repeat("x", 500)})

	if short < 1200*time.Millisecond {
		t.Errorf("delay below floor: %v", short)
	}
	if long > 4*time.Second {
		t.Errorf("delay above ceiling: %v", long)
	}
	if short > long {
		t.Error("delay should grow with message length")
	}
}
