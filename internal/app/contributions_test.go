package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/CodeLearner2024/ziganya-client/internal/domain"
)

func newContributionsBackend(t *testing.T, members []domain.Member, contributions []domain.Contribution) *ContributionsController {
	t.Helper()
	client := newAPIServer(t, func(r chi.Router) {
		r.Get("/members", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, members)
		})
		r.Get("/contributions", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, contributions)
		})
	})
	fb, tr := newTestFeedback()
	return NewContributionsController(client, fb, tr)
}

func TestContributionBeginCreate_PreselectsFirstMember(t *testing.T) {
	cc := newContributionsBackend(t,
		[]domain.Member{
			{ID: 11, Firstname: "Aline", Lastname: "Irakoze"},
			{ID: 12, Firstname: "Eric", Lastname: "Nkurunziza"},
		},
		nil,
	)
	if err := cc.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if err := cc.BeginCreate(); err != nil {
		t.Fatalf("BeginCreate returned error: %v", err)
	}
	if draft := cc.Form().Draft(); draft.MemberID != "11" {
		t.Fatalf("expected first member pre-selected, got %q", draft.MemberID)
	}
}

func TestContributionBeginCreate_EmptyReferenceLeavesSelectionDeferred(t *testing.T) {
	cc := newContributionsBackend(t, nil, nil)
	if err := cc.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if err := cc.BeginCreate(); err != nil {
		t.Fatalf("BeginCreate returned error: %v", err)
	}
	if draft := cc.Form().Draft(); draft.MemberID != "" {
		t.Fatalf("expected no selection with empty reference collection, got %q", draft.MemberID)
	}
	if !cc.Form().DefaultPending() {
		t.Fatal("expected the default to stay pending until members arrive")
	}
}

func TestContributionBeginEdit_KeepsRecordSelection(t *testing.T) {
	cc := newContributionsBackend(t,
		[]domain.Member{{ID: 11, Firstname: "Aline", Lastname: "Irakoze"}},
		[]domain.Contribution{{ID: 5, Amount: 2000, Description: "January", Date: "2025-01-05", MemberID: 12}},
	)
	if err := cc.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if err := cc.BeginEdit(cc.Collection()[0]); err != nil {
		t.Fatalf("BeginEdit returned error: %v", err)
	}
	draft := cc.Form().Draft()
	if draft.MemberID != "12" {
		t.Fatalf("expected record's own member kept, got %q", draft.MemberID)
	}
	if draft.Amount != "2000" || draft.Date != "2025-01-05" {
		t.Fatalf("expected record fields copied as text, got %+v", draft)
	}
	id := cc.Form().EditingID()
	if id == nil || *id != 5 {
		t.Fatalf("expected editing id 5, got %v", id)
	}
}
