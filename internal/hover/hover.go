// Package hover implements the control-overlay visibility timer: the
// overlay shows while the pointer moves inside a pane and hides a fixed
// interval after it stops.
package hover

import (
	"sync"
	"time"
)

// DefaultTimeout is how long the overlay stays visible after the last
// pointer movement.
const DefaultTimeout = 3 * time.Second

// Controller drives one pane's overlay visibility. Poke on every pointer
// movement; the hide fires at most once per idle period. The timer callback
// runs off the host's event loop, so the controller locks internally, but it
// never touches the layout tree itself.
type Controller struct {
	mu       sync.Mutex
	timeout  time.Duration
	timer    *time.Timer
	visible  bool
	onChange func(visible bool)
}

// NewController builds a controller with the given idle timeout; zero or
// negative falls back to DefaultTimeout. onChange may be nil.
func NewController(timeout time.Duration, onChange func(visible bool)) *Controller {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Controller{
		timeout:  timeout,
		onChange: onChange,
	}
}

// Poke records pointer activity: the overlay becomes visible and the hide
// timer restarts.
func (c *Controller) Poke() {
	c.mu.Lock()
	wasVisible := c.visible
	c.visible = true
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.timeout, c.expire)
	c.mu.Unlock()

	if !wasVisible && c.onChange != nil {
		c.onChange(true)
	}
}

func (c *Controller) expire() {
	c.mu.Lock()
	if !c.visible {
		c.mu.Unlock()
		return
	}
	c.visible = false
	c.timer = nil
	c.mu.Unlock()

	if c.onChange != nil {
		c.onChange(false)
	}
}

// Visible reports whether the overlay is currently shown.
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Stop cancels the pending hide and leaves the overlay hidden. Used when
// the pane closes.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.visible = false
	c.mu.Unlock()
}

// Registry tracks one controller per pane for a host.
type Registry struct {
	mu          sync.Mutex
	timeout     time.Duration
	controllers map[string]*Controller
	onChange    func(paneID string, visible bool)
}

// NewRegistry builds a per-pane controller registry.
func NewRegistry(timeout time.Duration, onChange func(paneID string, visible bool)) *Registry {
	return &Registry{
		timeout:     timeout,
		controllers: make(map[string]*Controller),
		onChange:    onChange,
	}
}

// Poke forwards pointer activity for a pane, creating its controller on
// first use.
func (r *Registry) Poke(paneID string) {
	r.mu.Lock()
	ctrl, ok := r.controllers[paneID]
	if !ok {
		id := paneID
		var change func(bool)
		if r.onChange != nil {
			change = func(visible bool) { r.onChange(id, visible) }
		}
		ctrl = NewController(r.timeout, change)
		r.controllers[paneID] = ctrl
	}
	r.mu.Unlock()
	ctrl.Poke()
}

// Visible reports overlay visibility for a pane.
func (r *Registry) Visible(paneID string) bool {
	r.mu.Lock()
	ctrl := r.controllers[paneID]
	r.mu.Unlock()
	return ctrl != nil && ctrl.Visible()
}

// Drop stops and forgets a pane's controller.
func (r *Registry) Drop(paneID string) {
	r.mu.Lock()
	ctrl := r.controllers[paneID]
	delete(r.controllers, paneID)
	r.mu.Unlock()
	if ctrl != nil {
		ctrl.Stop()
	}
}
