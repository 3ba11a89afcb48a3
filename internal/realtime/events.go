package realtime

// EventType names an outbound realtime event.
type EventType string

const (
	EventWelcome           EventType = "welcome"
	EventAuthResult        EventType = "auth_result"
	EventTimeout           EventType = "timeout"
	EventEchoResponse      EventType = "echo_response"
	EventNewOrder          EventType = "new_order"
	EventOrderUpdated      EventType = "order_updated"
	EventNewOrderAvailable EventType = "new_order_available"
	EventOrderAssigned     EventType = "order_assigned"
)

func (e EventType) String() string {
	return string(e)
}

type WelcomePayload struct {
	Message   string `json:"message"`
	ClientID  string `json:"clientId"`
	Timestamp string `json:"timestamp"`
}

type AuthResultPayload struct {
	Success bool             `json:"success"`
	User    *AuthResultUser  `json:"user,omitempty"`
	Error   string           `json:"error,omitempty"`
	Message string           `json:"message,omitempty"`
}

type AuthResultUser struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

type TimeoutPayload struct {
	Message string `json:"message"`
}

type EchoResponsePayload struct {
	Received  interface{} `json:"received"`
	Status    string      `json:"status"`
	Timestamp string      `json:"timestamp"`
}
