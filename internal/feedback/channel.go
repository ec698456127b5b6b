/**
 * @description
 * Transient user feedback channel. At most one notice is visible at a time;
 * a new Show pre-empts the current notice immediately rather than queueing.
 * Notices auto-hide after a fixed delay — detail notices (read-only "view
 * details" content) stay longer than success/error outcomes. Manual dismiss
 * is available at any time.
 */

package feedback

import (
	"sync"
	"time"
)

// Kind classifies a notice.
type Kind int

const (
	Success Kind = iota
	Error
	Detail
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Error:
		return "error"
	case Detail:
		return "detail"
	default:
		return "unknown"
	}
}

// Notice is one visible feedback message.
type Notice struct {
	Message string
	Kind    Kind
	ShownAt time.Time
}

// Channel owns the single visible notice and its auto-hide timers.
type Channel struct {
	mu          sync.Mutex
	current     *Notice
	seq         uint64
	hideAfter   time.Duration
	detailAfter time.Duration
	timer       *time.Timer
}

// NewChannel creates a channel with the given auto-hide delays. Non-positive
// delays fall back to the observed defaults (3s outcome, 8s detail).
func NewChannel(hideAfter, detailAfter time.Duration) *Channel {
	if hideAfter <= 0 {
		hideAfter = 3 * time.Second
	}
	if detailAfter <= 0 {
		detailAfter = 8 * time.Second
	}
	return &Channel{hideAfter: hideAfter, detailAfter: detailAfter}
}

// Show replaces any visible notice with the given one and arms its
// auto-hide timer. The previous notice's timer can no longer clear the new
// notice.
func (c *Channel) Show(message string, kind Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	seq := c.seq
	c.current = &Notice{Message: message, Kind: kind, ShownAt: time.Now()}

	if c.timer != nil {
		c.timer.Stop()
	}
	delay := c.hideAfter
	if kind == Detail {
		delay = c.detailAfter
	}
	c.timer = time.AfterFunc(delay, func() {
		c.hide(seq)
	})
}

// hide clears the notice only if it is still the one the timer was armed for.
func (c *Channel) hide(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seq != seq {
		return
	}
	c.current = nil
}

// Dismiss clears the visible notice immediately.
func (c *Channel) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.current = nil
}

// Current returns the visible notice, if any.
func (c *Channel) Current() (Notice, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return Notice{}, false
	}
	return *c.current, true
}
