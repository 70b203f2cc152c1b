// Package messaging is the bridge between pane-embedded scripts and the
// split orchestrator in the top-level host. Child panes forward raw events
// as JSON envelopes; the handler decodes, debounces and dispatches them.
package messaging

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/splitframe/internal/layout"
)

// Message is the envelope a pane script sends upward. One struct covers all
// events; unused fields stay empty.
type Message struct {
	Type      string           `json:"type"`
	Event     string           `json:"event"`
	PaneID    string           `json:"paneId"`
	URL       string           `json:"url"`
	Text      string           `json:"text"`
	Modifiers layout.Modifiers `json:"modifiers"`
	// Request tracking
	RequestID string `json:"requestId"`
	Timestamp int64  `json:"timestamp"`
}

// Message types and events understood by the handler.
const (
	TypeWorkspace = "workspace"

	EventClick = "click"
	EventClose = "close"
	EventHover = "hover"
)

// NewClick builds a click envelope the way a pane script would, stamped with
// a fresh request ID and the current time.
func NewClick(paneID layout.NodeID, href, text string, mods layout.Modifiers) Message {
	return Message{
		Type:      TypeWorkspace,
		Event:     EventClick,
		PaneID:    string(paneID),
		URL:       href,
		Text:      text,
		Modifiers: mods,
		RequestID: uuid.NewString(),
		Timestamp: time.Now().UnixMilli(),
	}
}

// NewClose builds a close envelope for the given pane.
func NewClose(paneID layout.NodeID) Message {
	return Message{
		Type:      TypeWorkspace,
		Event:     EventClose,
		PaneID:    string(paneID),
		RequestID: uuid.NewString(),
		Timestamp: time.Now().UnixMilli(),
	}
}

// NewHover builds a hover envelope for the given pane.
func NewHover(paneID layout.NodeID) Message {
	return Message{
		Type:      TypeWorkspace,
		Event:     EventHover,
		PaneID:    string(paneID),
		Timestamp: time.Now().UnixMilli(),
	}
}

// Encode marshals the envelope to the wire form.
func (m Message) Encode() (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
