package voice

// ClientEvent is one message from the browser over the session socket.
// "result", "speechstart", "start", "error" and "end" mirror the client
// recognition engine's callbacks; "spoken" acknowledges finished speech
// playback and "stop" tears the session down.
type ClientEvent struct {
	Type       string `json:"type"`
	Transcript string `json:"transcript,omitempty"`
	IsFinal    bool   `json:"is_final,omitempty"`
	Code       string `json:"code,omitempty"`
}

// ServerDirective is one instruction to the browser: start or pause the
// microphone, speak a phrase, navigate, or surface a status change.
type ServerDirective struct {
	Type   string `json:"type"`
	Text   string `json:"text,omitempty"`
	Route  string `json:"route,omitempty"`
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

type TranscribeResponse struct {
	Transcript string `json:"transcript"`
}

type CommandPayload struct {
	Keyword string `json:"keyword"`
	Route   string `json:"route"`
	Speech  string `json:"speech"`
}

type CommandListResponse struct {
	Commands []CommandPayload `json:"commands"`
}

type LogResponse struct {
	ID         string `json:"id"`
	SessionID  string `json:"session_id"`
	Transcript string `json:"transcript"`
	Source     string `json:"source"`
	Keyword    string `json:"keyword,omitempty"`
	Route      string `json:"route,omitempty"`
	Reply      string `json:"reply,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type LogListResponse struct {
	Logs  []LogResponse `json:"logs"`
	Total int           `json:"total"`
}
