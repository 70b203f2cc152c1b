package messaging

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/splitframe/internal/layout"
)

// Orchestrator is the slice of the split orchestrator the bridge depends on.
// These two calls, plus the hover poke, are the only interface points
// between a child pane and the top-level host.
type Orchestrator interface {
	HandleClick(anchor layout.Anchor, mods layout.Modifiers) (*layout.SplitResult, error)
	CloseFrame(id layout.NodeID) error
}

// HoverFunc receives hover pokes for a pane, typically wired to the overlay
// visibility controller.
type HoverFunc func(paneID layout.NodeID)

// DefaultClickDebounce is the window within which repeated clicks from the
// same pane are treated as duplicates of one user action.
const DefaultClickDebounce = 200 * time.Millisecond

// Handler decodes envelopes from pane scripts and drives the orchestrator.
type Handler struct {
	orchestrator Orchestrator
	hover        HoverFunc
	debounce     time.Duration
	lastClick    map[layout.NodeID]time.Time
	now          func() time.Time
	log          zerolog.Logger
}

// NewHandler builds a bridge handler for the given orchestrator.
func NewHandler(orch Orchestrator, log zerolog.Logger) *Handler {
	return &Handler{
		orchestrator: orch,
		debounce:     DefaultClickDebounce,
		lastClick:    make(map[layout.NodeID]time.Time),
		now:          time.Now,
		log:          log,
	}
}

// SetHoverFunc wires hover events to the overlay controller.
func (h *Handler) SetHoverFunc(fn HoverFunc) { h.hover = fn }

// SetClickDebounce overrides the duplicate-click window. Zero disables it.
func (h *Handler) SetClickDebounce(d time.Duration) { h.debounce = d }

// SetClock overrides the time source used for debouncing. Tests pin it.
func (h *Handler) SetClock(now func() time.Time) {
	if now != nil {
		h.now = now
	}
}

// Handle processes one raw envelope from a pane script. Unknown types and
// events are logged and dropped; the bridge never fails the sender.
func (h *Handler) Handle(payload string) error {
	var msg Message
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		h.log.Error().Err(err).Msg("bridge: failed to unmarshal message")
		return fmt.Errorf("messaging: decode: %w", err)
	}
	return h.Dispatch(msg)
}

// Dispatch routes an already-decoded envelope.
func (h *Handler) Dispatch(msg Message) error {
	if msg.Type != "" && msg.Type != TypeWorkspace {
		h.log.Debug().Str("type", msg.Type).Msg("bridge: ignoring non-workspace message")
		return nil
	}

	paneID := layout.NodeID(msg.PaneID)
	switch event := strings.ToLower(msg.Event); event {
	case EventClick:
		if h.isDuplicateClick(paneID) {
			h.log.Debug().Str("pane", msg.PaneID).Msg("bridge: click dropped by debounce")
			return nil
		}
		anchor := layout.Anchor{URL: msg.URL, Text: msg.Text, PaneID: paneID}
		res, err := h.orchestrator.HandleClick(anchor, msg.Modifiers)
		if err != nil {
			h.log.Error().Err(err).Str("pane", msg.PaneID).Msg("bridge: split failed")
			return err
		}
		if res == nil {
			h.log.Debug().Str("pane", msg.PaneID).Msg("bridge: click without split modifier")
		}
		return nil
	case EventClose:
		if err := h.orchestrator.CloseFrame(paneID); err != nil {
			h.log.Error().Err(err).Str("pane", msg.PaneID).Msg("bridge: close failed")
			return err
		}
		return nil
	case EventHover:
		if h.hover != nil {
			h.hover(paneID)
		}
		return nil
	default:
		h.log.Warn().Str("event", msg.Event).Msg("bridge: unhandled workspace event")
		return nil
	}
}

func (h *Handler) isDuplicateClick(paneID layout.NodeID) bool {
	if h.debounce <= 0 {
		return false
	}
	now := h.now()
	if last, ok := h.lastClick[paneID]; ok && now.Sub(last) < h.debounce {
		return true
	}
	h.lastClick[paneID] = now
	return false
}
