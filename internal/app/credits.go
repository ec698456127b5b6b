/**
 * @description
 * Lifecycle controller instantiation for the credits screen, plus the credit
 * treatment flow. A credit is created in IN_TREATMENT — the decision field is
 * never exposed on the draft and is injected into the create payload. Once a
 * treatment moves the decision to GRANTED or REFUSED the record is locked
 * against edit, delete and any further treatment; the transition is one-way.
 */

package app

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/CodeLearner2024/ziganya-client/internal/domain"
	"github.com/CodeLearner2024/ziganya-client/internal/feedback"
	"github.com/CodeLearner2024/ziganya-client/internal/form"
	"github.com/CodeLearner2024/ziganya-client/internal/i18n"
	"github.com/CodeLearner2024/ziganya-client/internal/validate"
	"github.com/CodeLearner2024/ziganya-client/pkg/apiclient"
)

// creditPayload is the request body for credit create/update. The decision
// is always IN_TREATMENT from the client: edits are only permitted while the
// credit is undecided.
type creditPayload struct {
	Amount         float64               `json:"amount"`
	InterestRate   float64               `json:"interestRate"`
	DurationMonths int64                 `json:"durationMonths"`
	RequestDate    string                `json:"requestDate"`
	MemberID       int64                 `json:"memberId"`
	CreditDecision domain.CreditDecision `json:"creditDecision"`
}

// TreatmentOption is one selectable decision in the treatment flow.
type TreatmentOption struct {
	Value domain.CreditDecision
	Label string
}

// TreatmentOptions lists the decisions a treatment can apply.
var TreatmentOptions = []TreatmentOption{
	{Value: domain.DecisionGranted, Label: "Granted"},
	{Value: domain.DecisionRefused, Label: "Refused"},
}

// DefaultTreatmentDecision returns the pre-selected decision for a new
// treatment: the first option whose value is granted or refused, falling
// back to granted.
func DefaultTreatmentDecision() domain.CreditDecision {
	for _, opt := range TreatmentOptions {
		if opt.Value == domain.DecisionGranted || opt.Value == domain.DecisionRefused {
			return domain.DecisionGranted
		}
	}
	return domain.DecisionGranted
}

// CreditsController drives the credits screen and the treatment flow.
type CreditsController struct {
	*Controller[domain.Credit, domain.CreditDraft]

	membersGw    *apiclient.Resource[domain.Member]
	treatmentsGw *apiclient.Resource[domain.CreditTreatment]

	mu       sync.Mutex
	members  []domain.Member
	treating bool
}

// NewCreditsController wires the credits resource, its member reference
// collection and the credit-treatments resource into the generic controller.
func NewCreditsController(client *apiclient.Client, fb *feedback.Channel, tr i18n.Translator) *CreditsController {
	holder := form.NewHolder[domain.CreditDraft]()

	cc := &CreditsController{
		membersGw:    apiclient.NewResource[domain.Member](client, "/members"),
		treatmentsGw: apiclient.NewResource[domain.CreditTreatment](client, "/credit-treatments"),
	}

	holder.SetDefaults(func(d *domain.CreditDraft) bool {
		if d.MemberID != "" {
			return true
		}
		members := cc.Members()
		if len(members) == 0 {
			return false
		}
		d.MemberID = domain.FormatID(members[0].ID)
		return true
	})

	cfg := Config[domain.Credit, domain.CreditDraft]{
		Gateway:  apiclient.NewResource[domain.Credit](client, "/credits"),
		Form:     holder,
		Feedback: fb,
		Tr:       tr,
		Validate: validate.Credit(tr),
		Payload: func(d domain.CreditDraft) any {
			amount, _ := strconv.ParseFloat(d.Amount, 64)
			rate, _ := strconv.ParseFloat(d.InterestRate, 64)
			duration, _ := strconv.ParseInt(d.DurationMonths, 10, 64)
			memberID, _ := strconv.ParseInt(d.MemberID, 10, 64)
			return creditPayload{
				Amount:         amount,
				InterestRate:   rate,
				DurationMonths: duration,
				RequestDate:    d.RequestDate,
				MemberID:       memberID,
				CreditDecision: domain.DecisionInTreatment,
			}
		},
		DraftFrom: func(c domain.Credit) domain.CreditDraft {
			return domain.CreditDraft{
				Amount:         domain.FormatAmount(c.Amount),
				InterestRate:   domain.FormatAmount(c.InterestRate),
				DurationMonths: domain.FormatCount(c.DurationMonths),
				RequestDate:    c.RequestDate,
				MemberID:       domain.FormatID(c.MemberID),
			}
		},
		RecordID:        func(c domain.Credit) int64 { return c.ID },
		Label:           func(c domain.Credit) string { return "credit " + domain.FormatID(c.ID) },
		Locked:          func(c domain.Credit) bool { return c.CreditDecision.Decided() },
		EditLockedKey:   i18n.KeyAlreadyDecidedEdit,
		DeleteLockedKey: i18n.KeyAlreadyDecidedDelete,
	}
	cc.Controller = NewController(cfg)
	return cc
}

// Load hydrates credits and the member reference collection concurrently.
func (cc *CreditsController) Load(ctx context.Context) error {
	return cc.Controller.Load(ctx, cc.loadMembers)
}

func (cc *CreditsController) loadMembers(ctx context.Context) error {
	members, err := cc.membersGw.List(ctx)
	if err != nil {
		return err
	}
	cc.mu.Lock()
	cc.members = members
	cc.mu.Unlock()
	return nil
}

// Members returns the reference collection used for the member selection.
func (cc *CreditsController) Members() []domain.Member {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	out := make([]domain.Member, len(cc.members))
	copy(out, cc.members)
	return out
}

// Treating reports whether a treatment submission is in flight.
func (cc *CreditsController) Treating() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.treating
}

// SubmitTreatment applies a decision to an undecided credit through the
// dedicated treatment resource. A decided credit is rejected with an error
// notice and zero network calls; on success the collection is re-fetched so
// the locked record is rendered from fresh server state.
func (cc *CreditsController) SubmitTreatment(ctx context.Context, credit domain.Credit, decision domain.CreditDecision) error {
	if credit.CreditDecision.Decided() {
		cc.cfg.Feedback.Show(cc.cfg.Tr(i18n.KeyAlreadyDecidedTreat), feedback.Error)
		return ErrRecordLocked
	}
	if !decision.Decided() {
		return ErrNotEditing
	}

	cc.mu.Lock()
	if cc.treating {
		cc.mu.Unlock()
		return ErrSubmitInFlight
	}
	cc.treating = true
	cc.mu.Unlock()

	defer func() {
		cc.mu.Lock()
		cc.treating = false
		cc.mu.Unlock()
	}()

	treatment := domain.CreditTreatment{
		CreditID:      credit.ID,
		Decision:      decision,
		TreatmentDate: time.Now().Format("2006-01-02"),
	}
	if _, err := cc.treatmentsGw.Create(ctx, treatment); err != nil {
		cc.cfg.Feedback.Show(apiclient.UserMessage(err), feedback.Error)
		return err
	}

	refreshErr := cc.refresh(ctx)
	cc.cfg.Feedback.Show(cc.cfg.Tr(i18n.KeyTreatmentSuccess), feedback.Success)
	return refreshErr
}
