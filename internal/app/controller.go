/**
 * @description
 * Generic record lifecycle controller. One controller instance owns the full
 * client-side state of one entity screen: the fetched collection, the draft
 * form, the transient feedback notice and the staged delete target. The same
 * load → edit/create → validate → submit → re-fetch → feedback cycle is
 * shared by every record kind; per-kind behaviour is injected through the
 * Config (gateway, validator, draft mapping, status-lock predicate).
 *
 * @notes
 * - The collection is replaced wholesale after every successful mutation or
 *   load; nothing is patched in place.
 * - Submissions are serialized by the submitting flag: a second Submit while
 *   one is in flight is rejected, not queued.
 * - A closed controller discards any in-flight result instead of applying it.
 */

package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/CodeLearner2024/ziganya-client/internal/feedback"
	"github.com/CodeLearner2024/ziganya-client/internal/form"
	"github.com/CodeLearner2024/ziganya-client/internal/i18n"
	"github.com/CodeLearner2024/ziganya-client/pkg/apiclient"
)

// Phase is the coarse screen state.
type Phase int

const (
	Loading Phase = iota
	Ready
)

var (
	// ErrNotReady is returned when an operation needs the Ready phase.
	ErrNotReady = errors.New("controller: not ready")
	// ErrNotEditing is returned when Submit is called outside edit mode.
	ErrNotEditing = errors.New("controller: no draft being edited")
	// ErrEditingInProgress is returned when BeginCreate is called while a
	// draft is already open.
	ErrEditingInProgress = errors.New("controller: edit already in progress")
	// ErrSubmitInFlight is returned when a submission is already running.
	ErrSubmitInFlight = errors.New("controller: submit already in flight")
	// ErrRecordLocked is returned for edit/delete attempts on a record whose
	// status has left its mutable initial value.
	ErrRecordLocked = errors.New("controller: record is status-locked")
	// ErrNothingStaged is returned when ConfirmDelete runs without a staged
	// target.
	ErrNothingStaged = errors.New("controller: no deletion staged")
	// ErrClosed is returned once the controller has been closed.
	ErrClosed = errors.New("controller: closed")
)

// Gateway is the remote collection surface a controller drives.
type Gateway[R any] interface {
	List(ctx context.Context) ([]R, error)
	Create(ctx context.Context, payload any) (*R, error)
	Update(ctx context.Context, id int64, payload any) (*R, error)
	Delete(ctx context.Context, id int64) error
}

// Config wires one record kind into the generic controller.
type Config[R any, D any] struct {
	Gateway  Gateway[R]
	Form     *form.Holder[D]
	Feedback *feedback.Channel
	Tr       i18n.Translator

	// Validate returns nil or the first violated rule for a draft.
	Validate func(D) error
	// Payload shapes a validated draft into the API request body.
	Payload func(D) any
	// DraftFrom copies a record's fields back into draft text for editing.
	DraftFrom func(R) D
	// RecordID extracts the server-assigned identity.
	RecordID func(R) int64
	// Label names a record in feedback messages.
	Label func(R) string
	// Locked reports whether the record rejects edit/delete. Nil means
	// records of this kind are always mutable.
	Locked func(R) bool
	// EditLockedKey and DeleteLockedKey are the rejection messages for the
	// two guarded operations.
	EditLockedKey   i18n.Key
	DeleteLockedKey i18n.Key
}

// Controller orchestrates the lifecycle of one entity screen.
type Controller[R any, D any] struct {
	cfg Config[R, D]

	mu               sync.Mutex
	phase            Phase
	editing          bool
	submitting       bool
	confirmingDelete bool
	collection       []R
	pending          *R
	closed           bool
}

// NewController creates a controller in the Loading phase.
func NewController[R any, D any](cfg Config[R, D]) *Controller[R, D] {
	return &Controller[R, D]{cfg: cfg, phase: Loading}
}

// Load hydrates the collection and any companion reference collections
// concurrently. The controller always settles in Ready, even when individual
// fetches fail; failures surface through the feedback channel and partial
// data remains usable.
func (c *Controller[R, D]) Load(ctx context.Context, companions ...func(context.Context) error) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.phase = Loading
	c.mu.Unlock()

	// A failing companion must not cancel the sibling fetches: the screen
	// settles in Ready with whatever data arrived.
	var (
		g       errgroup.Group
		records []R
		listErr error
	)
	g.Go(func() error {
		records, listErr = c.cfg.Gateway.List(ctx)
		return nil
	})
	for _, companion := range companions {
		companion := companion
		g.Go(func() error {
			return companion(ctx)
		})
	}
	companionErr := g.Wait()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if listErr == nil {
		c.collection = records
	}
	c.phase = Ready
	c.mu.Unlock()

	// References may only now be available for the first-element
	// pre-selection; retry the deferred default explicitly.
	if c.cfg.Form != nil {
		c.cfg.Form.ApplyDeferredDefault()
	}

	if listErr != nil {
		c.showError(apiclient.UserMessage(listErr))
		return listErr
	}
	if companionErr != nil {
		c.showError(apiclient.UserMessage(companionErr))
	}
	return nil
}

// refresh replaces the collection with one fresh list result.
func (c *Controller[R, D]) refresh(ctx context.Context) error {
	records, err := c.cfg.Gateway.List(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.collection = records
	return nil
}

// Collection returns a copy of the last fetched snapshot.
func (c *Controller[R, D]) Collection() []R {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]R, len(c.collection))
	copy(out, c.collection)
	return out
}

// Phase returns the coarse screen state.
func (c *Controller[R, D]) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Editing reports whether a draft is open.
func (c *Controller[R, D]) Editing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editing
}

// Submitting reports whether a submission is in flight.
func (c *Controller[R, D]) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// ConfirmingDelete reports whether a deletion is staged.
func (c *Controller[R, D]) ConfirmingDelete() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirmingDelete
}

// PendingDeletion returns the staged delete target, if any.
func (c *Controller[R, D]) PendingDeletion() (R, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		var zero R
		return zero, false
	}
	return *c.pending, true
}

// Form exposes the draft holder for field mutation.
func (c *Controller[R, D]) Form() *form.Holder[D] {
	return c.cfg.Form
}

// BeginCreate resets the draft and opens create mode. Allowed only from
// Ready with no draft open.
func (c *Controller[R, D]) BeginCreate() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.phase != Ready {
		c.mu.Unlock()
		return ErrNotReady
	}
	if c.editing {
		c.mu.Unlock()
		return ErrEditingInProgress
	}
	c.editing = true
	c.mu.Unlock()

	c.cfg.Form.Reset()
	return nil
}

// BeginEdit loads a record into the draft and opens edit mode. A
// status-locked record is rejected before any state change, with an error
// notice and no network call.
func (c *Controller[R, D]) BeginEdit(record R) error {
	if c.isLocked(record) {
		c.showError(c.cfg.Tr(c.cfg.EditLockedKey))
		return ErrRecordLocked
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.phase != Ready {
		c.mu.Unlock()
		return ErrNotReady
	}
	c.editing = true
	c.mu.Unlock()

	c.cfg.Form.Load(c.cfg.RecordID(record), c.cfg.DraftFrom(record))
	return nil
}

// Submit validates the draft and, when valid, creates or updates the record
// depending on the editing id. Validation failures never reach the network
// and leave the draft untouched for correction. Gateway failures keep edit
// mode open with the draft intact.
func (c *Controller[R, D]) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if !c.editing {
		c.mu.Unlock()
		return ErrNotEditing
	}
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}

	draft := c.cfg.Form.Draft()
	if err := c.cfg.Validate(draft); err != nil {
		c.mu.Unlock()
		c.showError(err.Error())
		return err
	}
	c.submitting = true
	c.mu.Unlock()

	payload := c.cfg.Payload(draft)
	editingID := c.cfg.Form.EditingID()

	var submitErr error
	if editingID == nil {
		_, submitErr = c.cfg.Gateway.Create(ctx, payload)
	} else {
		_, submitErr = c.cfg.Gateway.Update(ctx, *editingID, payload)
	}

	if submitErr != nil {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
		c.showError(apiclient.UserMessage(submitErr))
		return submitErr
	}

	refreshErr := c.refresh(ctx)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.submitting = false
	c.editing = false
	c.mu.Unlock()

	c.cfg.Form.Reset()
	c.showSuccess(c.cfg.Tr(i18n.KeySaveSuccess))
	return refreshErr
}

// CancelEdit discards the draft and re-fetches the collection so external
// changes are reflected. Calling it without an open draft is a no-op, as is
// calling it twice.
func (c *Controller[R, D]) CancelEdit(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if !c.editing {
		c.mu.Unlock()
		return nil
	}
	c.editing = false
	c.mu.Unlock()

	c.cfg.Form.Reset()
	return c.refresh(ctx)
}

// RequestDelete stages a record for deletion without side effects. The same
// status-lock guard as BeginEdit applies; a locked record leaves the staging
// slot unset.
func (c *Controller[R, D]) RequestDelete(record R) error {
	if c.isLocked(record) {
		c.showError(c.cfg.Tr(c.cfg.DeleteLockedKey))
		return ErrRecordLocked
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.pending = &record
	c.confirmingDelete = true
	return nil
}

// ConfirmDelete performs the staged destructive call. The staging slot and
// the confirming flag are always cleared, whatever the outcome.
func (c *Controller[R, D]) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if !c.confirmingDelete || c.pending == nil {
		c.mu.Unlock()
		return ErrNothingStaged
	}
	target := *c.pending
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.pending = nil
		c.confirmingDelete = false
		c.mu.Unlock()
	}()

	if err := c.cfg.Gateway.Delete(ctx, c.cfg.RecordID(target)); err != nil {
		c.showError(apiclient.UserMessage(err))
		return err
	}

	refreshErr := c.refresh(ctx)
	c.showSuccess(fmt.Sprintf(c.cfg.Tr(i18n.KeyDeleteSuccess), c.cfg.Label(target)))
	return refreshErr
}

// CancelDelete clears the staged target without any network call. Calling it
// twice has the same effect as calling it once.
func (c *Controller[R, D]) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
	c.confirmingDelete = false
}

// Close marks the controller as unmounted. In-flight results are discarded
// rather than applied.
func (c *Controller[R, D]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *Controller[R, D]) isLocked(record R) bool {
	return c.cfg.Locked != nil && c.cfg.Locked(record)
}

func (c *Controller[R, D]) showError(message string) {
	if c.cfg.Feedback != nil {
		c.cfg.Feedback.Show(message, feedback.Error)
	}
}

func (c *Controller[R, D]) showSuccess(message string) {
	if c.cfg.Feedback != nil {
		c.cfg.Feedback.Show(message, feedback.Success)
	}
}
