package triage

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/catalog"
)

// Engine turns free-text user messages into conversation state updates and
// canned assistant replies. It is a pure function over its arguments: no
// I/O, no clock, no mutation of the input state. Callers own persistence
// and the actual navigation side effect.
type Engine struct {
	trades []catalog.Trade
	cities []catalog.City
}

func NewEngine(trades []catalog.Trade, cities []catalog.City) *Engine {
	return &Engine{
		trades: trades,
		cities: cities,
	}
}

// ProcessMessage runs one conversation turn. Trade and city extraction both
// run on every turn regardless of the current step, so a single message can
// fill both slots. Unrecognized text changes nothing except the history,
// which grows by exactly one user and one assistant message.
func (e *Engine) ProcessMessage(text string, state ConversationState) (ConversationState, Message) {
	next := state
	next.History = make([]Message, len(state.History), len(state.History)+2)
	copy(next.History, state.History)

	next.History = append(next.History, Message{
		ID:      uuid.NewString(),
		Role:    RoleUser,
		Content: text,
	})

	clean := cleanText(text)

	if trade, ok := e.matchTrade(clean); ok {
		t := trade
		next.DetectedTrade = &t
	}
	if city, ok := e.matchCity(clean); ok {
		next.DetectedCity = city
	}

	switch {
	case next.DetectedTrade != nil && next.DetectedCity != "":
		next.Step = StepReadyToNavigate
	case next.DetectedTrade != nil:
		next.Step = StepAwaitingLocation
	default:
		next.Step = StepAwaitingTrade
	}

	reply := e.buildReply(next)
	next.History = append(next.History, reply)

	return next, reply
}

func (e *Engine) buildReply(state ConversationState) Message {
	reply := Message{
		ID:     uuid.NewString(),
		Role:   RoleAssistant,
		Action: ActionNone,
	}

	switch {
	case state.DetectedTrade == nil:
		reply.Content = "Sorry to hear you're having trouble. Which trade do you need — " +
			tradeChoices(e.trades) + "?"

	case state.DetectedCity == "":
		reply.Content = fmt.Sprintf(
			"Got it, you need an emergency %s. Which town or city are you in?",
			strings.ToLower(state.DetectedTrade.DisplayName),
		)

	default:
		reply.Content = fmt.Sprintf(
			"Great — connecting you with emergency %ss in %s now.",
			strings.ToLower(state.DetectedTrade.DisplayName),
			state.DetectedCity,
		)
		reply.Action = ActionNavigate
		reply.Target = catalog.ListingPath(state.DetectedTrade.Slug, state.DetectedCity)
	}

	return reply
}

// matchTrade scans the trade catalog in declared order and returns the
// first entry whose slug, display name or any synonym appears in the
// cleaned text. Substring containment, not whole-word matching: "pipes"
// matches "pipe". Earlier catalog entries shadow later ones.
func (e *Engine) matchTrade(clean string) (catalog.Trade, bool) {
	for _, trade := range e.trades {
		candidates := make([]string, 0, len(trade.Synonyms)+2)
		candidates = append(candidates, cleanText(trade.Slug), cleanText(trade.DisplayName))
		for _, syn := range trade.Synonyms {
			candidates = append(candidates, cleanText(syn))
		}

		for _, cand := range candidates {
			if cand != "" && strings.Contains(clean, cand) {
				return trade, true
			}
		}
	}
	return catalog.Trade{}, false
}

// matchCity returns the catalog-cased name of the first city mentioned in
// the cleaned text. Multi-word and hyphenated names are handled because
// both sides go through the same normalization.
func (e *Engine) matchCity(clean string) (string, bool) {
	for _, city := range e.cities {
		if strings.Contains(clean, cleanText(city.Name)) {
			return city.Name, true
		}
	}
	return "", false
}

// NavigationDelay is how long callers should wait before performing a
// requested navigation, so a typewriter-style rendering of the reply can
// finish. Proportional to message length, clamped to a sane range.
func NavigationDelay(reply Message) time.Duration {
	d := time.Duration(len(reply.Content)) * 30 * time.Millisecond
	if d < 1200*time.Millisecond {
		d = 1200 * time.Millisecond
	}
	if d > 4*time.Second {
		d = 4 * time.Second
	}
	return d
}

func tradeChoices(trades []catalog.Trade) string {
	names := make([]string, 0, len(trades))
	for _, t := range trades {
		names = append(names, strings.ToLower(t.DisplayName))
	}
	if len(names) <= 1 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

// cleanText lowercases, strips diacritics and collapses punctuation to
// single spaces so catalog entries and user text compare on equal terms.
func cleanText(text string) string {
	text = strings.ToLower(text)

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, _ := transform.String(t, text)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, result)

	words := strings.Fields(result)
	return strings.Join(words, " ")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
