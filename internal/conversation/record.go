package conversation

import (
	"encoding/json"
	"time"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one stored conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Record is the per-session state persisted to the store. CreatedAt is epoch
// milliseconds and doubles as a last-touched timestamp, refreshed on every
// assistant turn.
type Record struct {
	CreatedAt int64     `json:"createdAt"`
	History   []Message `json:"history"`
}

func NewRecord() *Record {
	return &Record{CreatedAt: time.Now().UnixMilli()}
}

// Touch refreshes the last-touched timestamp.
func (r *Record) Touch() {
	r.CreatedAt = time.Now().UnixMilli()
}

// decodeRecord is deliberately lenient: a record that fails to parse, or
// whose history is not a sequence, is repaired to an empty history instead of
// failing the request.
func decodeRecord(data []byte) *Record {
	var raw struct {
		CreatedAt int64           `json:"createdAt"`
		History   json.RawMessage `json:"history"`
	}
	rec := NewRecord()
	if err := json.Unmarshal(data, &raw); err != nil {
		return rec
	}
	if raw.CreatedAt > 0 {
		rec.CreatedAt = raw.CreatedAt
	}
	var history []Message
	if err := json.Unmarshal(raw.History, &history); err == nil {
		rec.History = history
	}
	return rec
}

// MergeSystemPrompt returns history with exactly one system message, placed
// first and carrying prompt as its content. Any system messages already in
// the input are dropped; relative order of the other messages is preserved.
// Idempotent: applying it twice with the same prompt equals applying it once.
func MergeSystemPrompt(history []Message, prompt string) []Message {
	out := make([]Message, 0, len(history)+1)
	out = append(out, Message{Role: RoleSystem, Content: prompt})
	for _, m := range history {
		if m.Role == RoleSystem {
			continue
		}
		out = append(out, m)
	}
	return out
}

// AppendTurn appends one message without mutating or reordering earlier
// entries.
func AppendTurn(history []Message, role, content string) []Message {
	out := append([]Message(nil), history...)
	return append(out, Message{Role: role, Content: content})
}
