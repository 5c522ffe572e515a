package messages

import (
	"encoding/json"
	"fmt"

	"github.com/cbodonnell/flagmaster/pkg/countries"
	"github.com/cbodonnell/flagmaster/pkg/game/types"
)

const (
	// MessageBufferSize is the capacity of the client's UI event queue
	MessageBufferSize = 256
)

// Event types consumed by the client each frame
const (
	EventTypeToast           = "toast"
	EventTypeSubmitAnswer    = "submit"
	EventTypeNewGame         = "new_game"
	EventTypeEndGame         = "end_game"
	EventTypeChangeMode      = "mode"
	EventTypeHint            = "hint"
	EventTypeScratchComplete = "scratched"
	EventTypeCue             = "cue"
	EventTypeStartFailed     = "start_failed"
)

// Event is a UI event produced by widgets or game sinks and handled on the update loop.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Toast is the payload of EventTypeToast and EventTypeStartFailed.
type Toast struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// SubmitAnswer is the payload of EventTypeSubmitAnswer.
type SubmitAnswer struct {
	CountryID int    `json:"country_id"`
	Text      string `json:"text"`
}

// CardRef is the payload of EventTypeHint and EventTypeScratchComplete.
type CardRef struct {
	Key types.CardKey `json:"key"`
}

// ChangeMode is the payload of EventTypeNewGame and EventTypeChangeMode.
type ChangeMode struct {
	Mode types.Mode `json:"mode"`
}

// Cue is the payload of EventTypeCue.
type Cue struct {
	Name string `json:"name"`
}

// NewEvent builds an event with the payload JSON encoded.
func NewEvent(eventType string, payload interface{}) (Event, error) {
	if payload == nil {
		return Event{Type: eventType}, nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal %s payload: %v", eventType, err)
	}
	return Event{Type: eventType, Payload: b}, nil
}

// Decode unmarshals the event payload into v.
func (e Event) Decode(v interface{}) error {
	if len(e.Payload) == 0 {
		return fmt.Errorf("event %s has no payload", e.Type)
	}
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s payload: %v", e.Type, err)
	}
	return nil
}

// CountriesResponse is the body of GET /countries.
type CountriesResponse struct {
	Countries []countries.Country `json:"countries"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}
