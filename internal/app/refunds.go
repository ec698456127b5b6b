/**
 * @description
 * Lifecycle controller instantiation for the refunds screen. Refunds
 * reference a credit; only GRANTED credits are eligible targets. List rows
 * are derived client-side by joining each refund to its nested credit and
 * member data.
 */

package app

import (
	"context"
	"strconv"
	"sync"

	"github.com/CodeLearner2024/ziganya-client/internal/domain"
	"github.com/CodeLearner2024/ziganya-client/internal/feedback"
	"github.com/CodeLearner2024/ziganya-client/internal/form"
	"github.com/CodeLearner2024/ziganya-client/internal/i18n"
	"github.com/CodeLearner2024/ziganya-client/internal/validate"
	"github.com/CodeLearner2024/ziganya-client/pkg/apiclient"
)

// refundPayload is the request body for refund create/update.
type refundPayload struct {
	Amount     float64 `json:"amount"`
	RefundDate string  `json:"refundDate"`
	CreditID   int64   `json:"creditId"`
}

// RefundsController drives the refunds screen.
type RefundsController struct {
	*Controller[domain.Refund, domain.RefundDraft]

	creditsGw *apiclient.Resource[domain.Credit]

	mu      sync.Mutex
	credits []domain.Credit
}

// NewRefundsController wires the refunds resource and its credit reference
// collection into the generic lifecycle controller.
func NewRefundsController(client *apiclient.Client, fb *feedback.Channel, tr i18n.Translator) *RefundsController {
	holder := form.NewHolder[domain.RefundDraft]()

	rc := &RefundsController{
		creditsGw: apiclient.NewResource[domain.Credit](client, "/credits"),
	}

	holder.SetDefaults(func(d *domain.RefundDraft) bool {
		if d.CreditID != "" {
			return true
		}
		credits := rc.EligibleCredits()
		if len(credits) == 0 {
			return false
		}
		d.CreditID = domain.FormatID(credits[0].ID)
		return true
	})

	cfg := Config[domain.Refund, domain.RefundDraft]{
		Gateway:  apiclient.NewResource[domain.Refund](client, "/refunds"),
		Form:     holder,
		Feedback: fb,
		Tr:       tr,
		Validate: validate.Refund(tr),
		Payload: func(d domain.RefundDraft) any {
			amount, _ := strconv.ParseFloat(d.Amount, 64)
			creditID, _ := strconv.ParseInt(d.CreditID, 10, 64)
			return refundPayload{
				Amount:     amount,
				RefundDate: d.RefundDate,
				CreditID:   creditID,
			}
		},
		DraftFrom: func(r domain.Refund) domain.RefundDraft {
			return domain.RefundDraft{
				Amount:     domain.FormatAmount(r.Amount),
				RefundDate: r.RefundDate,
				CreditID:   domain.FormatID(r.CreditID),
			}
		},
		RecordID: func(r domain.Refund) int64 { return r.ID },
		Label:    func(r domain.Refund) string { return "refund " + domain.FormatID(r.ID) },
	}
	rc.Controller = NewController(cfg)
	return rc
}

// Load hydrates refunds and the credit reference collection concurrently.
func (rc *RefundsController) Load(ctx context.Context) error {
	return rc.Controller.Load(ctx, rc.loadCredits)
}

func (rc *RefundsController) loadCredits(ctx context.Context) error {
	credits, err := rc.creditsGw.List(ctx)
	if err != nil {
		return err
	}
	rc.mu.Lock()
	rc.credits = credits
	rc.mu.Unlock()
	return nil
}

// EligibleCredits returns the reference collection filtered to GRANTED
// credits, the only valid refund targets.
func (rc *RefundsController) EligibleCredits() []domain.Credit {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	out := make([]domain.Credit, 0, len(rc.credits))
	for _, c := range rc.credits {
		if c.CreditDecision == domain.DecisionGranted {
			out = append(out, c)
		}
	}
	return out
}

// Rows derives the display projection of the current collection.
func (rc *RefundsController) Rows() []domain.RefundRow {
	records := rc.Collection()
	rows := make([]domain.RefundRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, domain.DeriveRefundRow(r))
	}
	return rows
}
