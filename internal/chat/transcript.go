// Package chat holds the conversation transcript and the interactive
// session loop.
package chat

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

// Transcript is the ordered list of messages exchanged in one session.
// It lives only for the lifetime of the process. Appends happen after each
// user turn and each assistant reply; a failed turn rolls the pending user
// message back so the transcript only contains turns the remote service
// actually acknowledged.
type Transcript struct {
	messages []Message
}

func NewTranscript(systemPrompt string) *Transcript {
	t := &Transcript{}
	if systemPrompt != "" {
		t.Append(RoleSystem, systemPrompt)
	}
	return t
}

func (t *Transcript) Append(role Role, content string) {
	t.messages = append(t.messages, Message{Role: role, Content: content})
}

// Rollback removes the most recent message.
func (t *Transcript) Rollback() {
	if len(t.messages) > 0 {
		t.messages = t.messages[:len(t.messages)-1]
	}
}

func (t *Transcript) Len() int {
	return len(t.messages)
}

// Messages returns a copy so callers cannot mutate the transcript.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}
