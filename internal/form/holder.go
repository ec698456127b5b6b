/**
 * @description
 * Generic form state holder. A Holder stages the draft fields of one record
 * kind, tracks whether the draft is a "create" (no editing id) or an "edit"
 * (editing id set), and exposes reset / load-from-record operations.
 *
 * The reference pre-selection behaviour is an explicit deferred default: a
 * defaults function may decline to apply (reference collection still empty),
 * in which case the holder remembers the pending default and re-applies it
 * once ApplyDeferredDefault is called after the references arrive. This keeps
 * the observed first-element pre-selection independent of fetch ordering.
 */

package form

import "sync"

// Holder stages one draft of type D.
type Holder[D any] struct {
	mu             sync.Mutex
	draft          D
	editingID      *int64
	defaults       func(*D) bool
	defaultPending bool
}

// NewHolder creates a holder whose drafts start from the zero value of D.
func NewHolder[D any]() *Holder[D] {
	return &Holder[D]{}
}

// SetDefaults installs the pre-selection function. It must return false when
// it cannot apply yet (no reference loaded); the holder will retry it on
// ApplyDeferredDefault.
func (h *Holder[D]) SetDefaults(apply func(*D) bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.defaults = apply
}

// Reset clears every field to its zero value, drops the editing id, and
// attempts the default pre-selection.
func (h *Holder[D]) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	var zero D
	h.draft = zero
	h.editingID = nil
	h.applyDefaultsLocked()
}

func (h *Holder[D]) applyDefaultsLocked() {
	if h.defaults == nil {
		h.defaultPending = false
		return
	}
	h.defaultPending = !h.defaults(&h.draft)
}

// ApplyDeferredDefault retries a pre-selection that could not be applied at
// reset time. It is a no-op when no default is pending.
func (h *Holder[D]) ApplyDeferredDefault() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.defaultPending {
		return
	}
	h.applyDefaultsLocked()
}

// DefaultPending reports whether a reference pre-selection is still waiting
// for its collection to load.
func (h *Holder[D]) DefaultPending() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.defaultPending
}

// Load copies a record's fields into the draft and marks it as an edit of
// the given record id.
func (h *Holder[D]) Load(id int64, draft D) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.draft = draft
	h.editingID = &id
}

// Mutate applies a single-field mutation to the draft. No cross-field
// validation happens at this layer.
func (h *Holder[D]) Mutate(fn func(*D)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn(&h.draft)
}

// Draft returns a copy of the current draft.
func (h *Holder[D]) Draft() D {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.draft
}

// EditingID returns the id of the record being edited, or nil for a create
// draft.
func (h *Holder[D]) EditingID() *int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.editingID == nil {
		return nil
	}
	id := *h.editingID
	return &id
}
