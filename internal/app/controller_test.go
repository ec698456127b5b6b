package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/CodeLearner2024/ziganya-client/internal/feedback"
	"github.com/CodeLearner2024/ziganya-client/internal/form"
	"github.com/CodeLearner2024/ziganya-client/internal/i18n"
	"github.com/CodeLearner2024/ziganya-client/internal/validate"
	"github.com/CodeLearner2024/ziganya-client/pkg/apiclient"
)

type testRecord struct {
	ID      int64
	Name    string
	Decided bool
}

type testDraft struct {
	Name string
}

type fakeGateway struct {
	mu sync.Mutex

	records []testRecord
	nextID  int64

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	blockCreate chan struct{}

	lastPayload  any
	lastUpdateID int64
}

func (g *fakeGateway) List(ctx context.Context) ([]testRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listCalls++
	if g.listErr != nil {
		return nil, g.listErr
	}
	out := make([]testRecord, len(g.records))
	copy(out, g.records)
	return out, nil
}

func (g *fakeGateway) Create(ctx context.Context, payload any) (*testRecord, error) {
	g.mu.Lock()
	g.createCalls++
	g.lastPayload = payload
	block := g.blockCreate
	g.mu.Unlock()
	if block != nil {
		<-block
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.nextID++
	record := testRecord{ID: g.nextID, Name: payload.(testDraft).Name}
	g.records = append(g.records, record)
	return &record, nil
}

func (g *fakeGateway) Update(ctx context.Context, id int64, payload any) (*testRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updateCalls++
	g.lastUpdateID = id
	g.lastPayload = payload
	if g.updateErr != nil {
		return nil, g.updateErr
	}
	for i := range g.records {
		if g.records[i].ID == id {
			g.records[i].Name = payload.(testDraft).Name
			record := g.records[i]
			return &record, nil
		}
	}
	record := testRecord{ID: id, Name: payload.(testDraft).Name}
	return &record, nil
}

func (g *fakeGateway) Delete(ctx context.Context, id int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deleteCalls++
	if g.deleteErr != nil {
		return g.deleteErr
	}
	kept := g.records[:0]
	for _, r := range g.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	g.records = kept
	return nil
}

func (g *fakeGateway) calls() (list, create, update, del int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.listCalls, g.createCalls, g.updateCalls, g.deleteCalls
}

func newTestController(gw *fakeGateway) (*Controller[testRecord, testDraft], *feedback.Channel) {
	fb := feedback.NewChannel(time.Minute, time.Minute)
	tr := i18n.NewBundle(i18n.LangEnglish).Translator()
	holder := form.NewHolder[testDraft]()
	cfg := Config[testRecord, testDraft]{
		Gateway:  gw,
		Form:     holder,
		Feedback: fb,
		Tr:       tr,
		Validate: func(d testDraft) error {
			if d.Name == "" {
				return &validate.Error{Key: i18n.KeyNameRequired, Message: tr(i18n.KeyNameRequired)}
			}
			return nil
		},
		Payload:         func(d testDraft) any { return d },
		DraftFrom:       func(r testRecord) testDraft { return testDraft{Name: r.Name} },
		RecordID:        func(r testRecord) int64 { return r.ID },
		Label:           func(r testRecord) string { return r.Name },
		Locked:          func(r testRecord) bool { return r.Decided },
		EditLockedKey:   i18n.KeyAlreadyDecidedEdit,
		DeleteLockedKey: i18n.KeyAlreadyDecidedDelete,
	}
	return NewController(cfg), fb
}

func mustLoad(t *testing.T, c *Controller[testRecord, testDraft]) {
	t.Helper()
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Phase() != Ready {
		t.Fatalf("expected Ready phase after load")
	}
}

func TestSubmit_ValidationFailureIssuesNoNetworkCall(t *testing.T) {
	gw := &fakeGateway{}
	c, fb := newTestController(gw)
	mustLoad(t, c)

	if err := c.BeginCreate(); err != nil {
		t.Fatalf("BeginCreate returned error: %v", err)
	}

	err := c.Submit(context.Background())
	var vErr *validate.Error
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, create, update, _ := gw.calls()
	if create != 0 || update != 0 {
		t.Fatalf("expected zero mutation calls on validation failure, got create=%d update=%d", create, update)
	}
	if !c.Editing() {
		t.Fatal("expected edit mode to survive validation failure")
	}
	notice, visible := fb.Current()
	if !visible || notice.Kind != feedback.Error {
		t.Fatalf("expected error feedback, got %+v visible=%t", notice, visible)
	}
}

func TestSubmit_CreateRefreshesCollectionAndResetsDraft(t *testing.T) {
	gw := &fakeGateway{}
	c, fb := newTestController(gw)
	mustLoad(t, c)

	if err := c.BeginCreate(); err != nil {
		t.Fatalf("BeginCreate returned error: %v", err)
	}
	c.Form().Mutate(func(d *testDraft) { d.Name = "Jeanne" })

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	collection := c.Collection()
	if len(collection) != 1 || collection[0].Name != "Jeanne" {
		t.Fatalf("expected collection to equal fresh list result, got %+v", collection)
	}
	if c.Editing() || c.Submitting() {
		t.Fatal("expected editing and submitting cleared after success")
	}
	if draft := c.Form().Draft(); draft.Name != "" {
		t.Fatalf("expected draft reset after success, got %+v", draft)
	}
	if id := c.Form().EditingID(); id != nil {
		t.Fatalf("expected create mode after reset, got editing id %d", *id)
	}
	notice, visible := fb.Current()
	if !visible || notice.Kind != feedback.Success {
		t.Fatalf("expected success feedback, got %+v visible=%t", notice, visible)
	}
}

func TestSubmit_EditUsesUpdateWithEditingID(t *testing.T) {
	gw := &fakeGateway{records: []testRecord{{ID: 7, Name: "old"}}, nextID: 7}
	c, _ := newTestController(gw)
	mustLoad(t, c)

	if err := c.BeginEdit(c.Collection()[0]); err != nil {
		t.Fatalf("BeginEdit returned error: %v", err)
	}
	c.Form().Mutate(func(d *testDraft) { d.Name = "new" })

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	_, create, update, _ := gw.calls()
	if create != 0 || update != 1 {
		t.Fatalf("expected one update and no create, got create=%d update=%d", create, update)
	}
	if gw.lastUpdateID != 7 {
		t.Fatalf("expected update of record 7, got %d", gw.lastUpdateID)
	}
}

func TestSubmit_GatewayFailureKeepsDraftForCorrection(t *testing.T) {
	gw := &fakeGateway{createErr: &apiclient.ServerError{StatusCode: 400, Message: "amount exceeds shares"}}
	c, fb := newTestController(gw)
	mustLoad(t, c)

	if err := c.BeginCreate(); err != nil {
		t.Fatalf("BeginCreate returned error: %v", err)
	}
	c.Form().Mutate(func(d *testDraft) { d.Name = "Jeanne" })

	if err := c.Submit(context.Background()); err == nil {
		t.Fatal("expected submit to propagate gateway failure")
	}

	if !c.Editing() {
		t.Fatal("expected edit mode kept after gateway failure")
	}
	if c.Submitting() {
		t.Fatal("expected submitting flag cleared after gateway failure")
	}
	if draft := c.Form().Draft(); draft.Name != "Jeanne" {
		t.Fatalf("expected draft unchanged after failure, got %+v", draft)
	}
	notice, visible := fb.Current()
	if !visible || notice.Kind != feedback.Error || notice.Message != "amount exceeds shares" {
		t.Fatalf("expected normalized server message in feedback, got %+v visible=%t", notice, visible)
	}
}

func TestSubmit_SecondSubmitWhileInFlightIsRejected(t *testing.T) {
	gw := &fakeGateway{blockCreate: make(chan struct{})}
	c, _ := newTestController(gw)
	mustLoad(t, c)

	if err := c.BeginCreate(); err != nil {
		t.Fatalf("BeginCreate returned error: %v", err)
	}
	c.Form().Mutate(func(d *testDraft) { d.Name = "Jeanne" })

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background()) }()

	// Wait for the first submission to reach the gateway.
	deadline := time.After(2 * time.Second)
	for {
		_, create, _, _ := gw.calls()
		if create == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("first submission never reached the gateway")
		case <-time.After(time.Millisecond):
		}
	}

	if err := c.Submit(context.Background()); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("expected ErrSubmitInFlight, got %v", err)
	}

	close(gw.blockCreate)
	if err := <-done; err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
}

func TestBeginEdit_StatusLockedRecordIsRejectedWithoutNetworkCall(t *testing.T) {
	gw := &fakeGateway{records: []testRecord{{ID: 1, Name: "decided", Decided: true}}}
	c, fb := newTestController(gw)
	mustLoad(t, c)
	listBefore, _, _, _ := gw.calls()

	if err := c.BeginEdit(c.Collection()[0]); !errors.Is(err, ErrRecordLocked) {
		t.Fatalf("expected ErrRecordLocked, got %v", err)
	}
	if c.Editing() {
		t.Fatal("expected edit mode not entered for locked record")
	}

	listAfter, create, update, del := gw.calls()
	if listAfter != listBefore || create != 0 || update != 0 || del != 0 {
		t.Fatal("expected zero network calls for locked edit attempt")
	}
	notice, visible := fb.Current()
	if !visible || notice.Message != "already decided, cannot be modified" {
		t.Fatalf("expected locked-edit message, got %+v visible=%t", notice, visible)
	}
}

func TestRequestDelete_StatusLockedRecordLeavesNothingStaged(t *testing.T) {
	gw := &fakeGateway{records: []testRecord{{ID: 1, Name: "decided", Decided: true}}}
	c, fb := newTestController(gw)
	mustLoad(t, c)

	if err := c.RequestDelete(c.Collection()[0]); !errors.Is(err, ErrRecordLocked) {
		t.Fatalf("expected ErrRecordLocked, got %v", err)
	}
	if _, staged := c.PendingDeletion(); staged {
		t.Fatal("expected no staged deletion for locked record")
	}
	if c.ConfirmingDelete() {
		t.Fatal("expected confirmingDelete to stay false")
	}
	_, _, _, del := gw.calls()
	if del != 0 {
		t.Fatalf("expected zero delete calls, got %d", del)
	}
	notice, visible := fb.Current()
	if !visible || notice.Message != "already treated, cannot delete" {
		t.Fatalf("expected locked-delete message, got %+v visible=%t", notice, visible)
	}
}

func TestConfirmDelete_SuccessNamesRecordAndClearsStaging(t *testing.T) {
	gw := &fakeGateway{records: []testRecord{{ID: 3, Name: "Jeanne Doe"}}, nextID: 3}
	c, fb := newTestController(gw)
	mustLoad(t, c)

	if err := c.RequestDelete(c.Collection()[0]); err != nil {
		t.Fatalf("RequestDelete returned error: %v", err)
	}
	if !c.ConfirmingDelete() {
		t.Fatal("expected deletion staged")
	}

	if err := c.ConfirmDelete(context.Background()); err != nil {
		t.Fatalf("ConfirmDelete returned error: %v", err)
	}

	if len(c.Collection()) != 0 {
		t.Fatalf("expected collection re-fetched after delete, got %+v", c.Collection())
	}
	if _, staged := c.PendingDeletion(); staged || c.ConfirmingDelete() {
		t.Fatal("expected staging cleared after confirm")
	}
	notice, visible := fb.Current()
	if !visible || notice.Message != "Jeanne Doe deleted" {
		t.Fatalf("expected delete feedback naming the record, got %+v visible=%t", notice, visible)
	}
}

func TestConfirmDelete_FailureStillClearsStaging(t *testing.T) {
	gw := &fakeGateway{
		records:   []testRecord{{ID: 3, Name: "Jeanne Doe"}},
		nextID:    3,
		deleteErr: &apiclient.ServerError{StatusCode: 409, Message: "refunds exist for this credit"},
	}
	c, fb := newTestController(gw)
	mustLoad(t, c)

	if err := c.RequestDelete(c.Collection()[0]); err != nil {
		t.Fatalf("RequestDelete returned error: %v", err)
	}
	if err := c.ConfirmDelete(context.Background()); err == nil {
		t.Fatal("expected delete failure to propagate")
	}

	if _, staged := c.PendingDeletion(); staged || c.ConfirmingDelete() {
		t.Fatal("expected staging cleared even on failure")
	}
	notice, visible := fb.Current()
	if !visible || notice.Kind != feedback.Error || notice.Message != "refunds exist for this credit" {
		t.Fatalf("expected error feedback with server message, got %+v visible=%t", notice, visible)
	}
}

func TestCancelEdit_IsIdempotent(t *testing.T) {
	gw := &fakeGateway{}
	c, _ := newTestController(gw)
	mustLoad(t, c)

	if err := c.BeginCreate(); err != nil {
		t.Fatalf("BeginCreate returned error: %v", err)
	}
	c.Form().Mutate(func(d *testDraft) { d.Name = "abandoned" })

	if err := c.CancelEdit(context.Background()); err != nil {
		t.Fatalf("CancelEdit returned error: %v", err)
	}
	listAfterFirst, _, _, _ := gw.calls()

	if err := c.CancelEdit(context.Background()); err != nil {
		t.Fatalf("second CancelEdit returned error: %v", err)
	}
	listAfterSecond, _, _, _ := gw.calls()

	if listAfterSecond != listAfterFirst {
		t.Fatal("expected second CancelEdit to be a no-op without a re-fetch")
	}
	if c.Editing() {
		t.Fatal("expected editing cleared")
	}
	if draft := c.Form().Draft(); draft.Name != "" {
		t.Fatalf("expected draft discarded, got %+v", draft)
	}
}

func TestCancelDelete_IsIdempotentAndSilent(t *testing.T) {
	gw := &fakeGateway{records: []testRecord{{ID: 3, Name: "x"}}, nextID: 3}
	c, fb := newTestController(gw)
	mustLoad(t, c)
	fb.Dismiss()

	if err := c.RequestDelete(c.Collection()[0]); err != nil {
		t.Fatalf("RequestDelete returned error: %v", err)
	}
	c.CancelDelete()
	c.CancelDelete()

	if _, staged := c.PendingDeletion(); staged || c.ConfirmingDelete() {
		t.Fatal("expected staging cleared")
	}
	_, _, _, del := gw.calls()
	if del != 0 {
		t.Fatalf("expected zero delete calls, got %d", del)
	}
	if _, visible := fb.Current(); visible {
		t.Fatal("expected cancel paths to stay silent")
	}
}

func TestLoad_ListFailureStillSettlesReady(t *testing.T) {
	gw := &fakeGateway{listErr: &apiclient.ServerError{StatusCode: 500, Message: "boom"}}
	c, fb := newTestController(gw)

	if err := c.Load(context.Background()); err == nil {
		t.Fatal("expected load error to propagate")
	}
	if c.Phase() != Ready {
		t.Fatal("expected Ready phase despite list failure")
	}
	notice, visible := fb.Current()
	if !visible || notice.Kind != feedback.Error {
		t.Fatalf("expected error feedback after load failure, got %+v visible=%t", notice, visible)
	}
}

func TestClosedControllerRejectsOperations(t *testing.T) {
	gw := &fakeGateway{}
	c, _ := newTestController(gw)
	mustLoad(t, c)
	c.Close()

	if err := c.Load(context.Background()); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed from Load, got %v", err)
	}
	if err := c.BeginCreate(); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed from BeginCreate, got %v", err)
	}
}
