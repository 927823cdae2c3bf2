package models

// ChatRole is the author of a chat turn.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatTurn is one message in the follow-up conversation. Chat history is
// transient and scoped to a single active analysis or restoration; only the
// end-to-end case file is durable.
type ChatTurn struct {
	Role ChatRole
	Text string
}

// GroundingSource is a citation returned by a conversational call that used
// the web-search capability.
type GroundingSource struct {
	Title string
	URI   string
}
