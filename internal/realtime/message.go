package realtime

import (
	"bytes"
	"encoding/json"
)

// MessageKind tags an inbound message after it has been decoded once at the
// transport boundary. Handlers switch on the kind instead of re-inspecting
// raw JSON shapes.
type MessageKind string

const (
	MessageAuth    MessageKind = "auth"
	MessageEcho    MessageKind = "echo"
	MessageUnknown MessageKind = "unknown"
)

type Message struct {
	Kind MessageKind

	// Token is set for MessageAuth; empty means the client sent an auth
	// message without a usable credential.
	Token string

	// Data carries the raw payload for MessageEcho and MessageUnknown.
	Data json.RawMessage

	// Event is the original event name for MessageUnknown.
	Event string
}

type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// DecodeMessage resolves the inbound wire shapes to a tagged message:
//
//   - `"<token>"`            bare JSON string, treated as auth
//   - `{"token": "..."}`     bare auth object
//   - `{"event": "...", "data": ...}`  client-library envelope, redispatched
//     to the named handler (auth, echo)
//
// Anything else comes back as MessageUnknown and is ignored by the session.
func DecodeMessage(raw []byte) Message {
	raw = bytes.TrimSpace(raw)

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return Message{Kind: MessageAuth, Token: str}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Message{Kind: MessageUnknown, Data: raw}
	}

	if env.Event != "" {
		switch env.Event {
		case "auth":
			return Message{Kind: MessageAuth, Token: extractToken(env.Data)}
		case "echo":
			return Message{Kind: MessageEcho, Data: env.Data}
		default:
			return Message{Kind: MessageUnknown, Event: env.Event, Data: env.Data}
		}
	}

	if token := extractToken(raw); token != "" {
		return Message{Kind: MessageAuth, Token: token}
	}

	return Message{Kind: MessageUnknown, Data: raw}
}

type tokenPayload struct {
	Token string `json:"token"`
}

// extractToken accepts a bare string, a {"token": ...} object, or an array
// whose first element is a {"token": ...} object.
func extractToken(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}

	var obj tokenPayload
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Token != "" {
		return obj.Token
	}

	var arr []tokenPayload
	if err := json.Unmarshal(raw, &arr); err == nil && len(arr) > 0 {
		return arr[0].Token
	}

	return ""
}
