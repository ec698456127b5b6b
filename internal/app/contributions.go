/**
 * @description
 * Lifecycle controller instantiation for the contributions screen.
 * Contributions reference a member; the members collection is fetched as a
 * companion on load and feeds the draft's first-element pre-selection.
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

// contributionPayload is the request body for contribution create/update.
type contributionPayload struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	MemberID    int64   `json:"memberId"`
}

// ContributionsController drives the contributions screen.
type ContributionsController struct {
	*Controller[domain.Contribution, domain.ContributionDraft]

	membersGw *apiclient.Resource[domain.Member]

	mu      sync.Mutex
	members []domain.Member
}

// NewContributionsController wires the contributions resource and its member
// reference collection into the generic lifecycle controller.
func NewContributionsController(client *apiclient.Client, fb *feedback.Channel, tr i18n.Translator) *ContributionsController {
	holder := form.NewHolder[domain.ContributionDraft]()

	cc := &ContributionsController{
		membersGw: apiclient.NewResource[domain.Member](client, "/members"),
	}

	holder.SetDefaults(func(d *domain.ContributionDraft) bool {
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

	cfg := Config[domain.Contribution, domain.ContributionDraft]{
		Gateway:  apiclient.NewResource[domain.Contribution](client, "/contributions"),
		Form:     holder,
		Feedback: fb,
		Tr:       tr,
		Validate: validate.Contribution(tr),
		Payload: func(d domain.ContributionDraft) any {
			amount, _ := strconv.ParseFloat(d.Amount, 64)
			memberID, _ := strconv.ParseInt(d.MemberID, 10, 64)
			return contributionPayload{
				Amount:      amount,
				Description: d.Description,
				Date:        d.Date,
				MemberID:    memberID,
			}
		},
		DraftFrom: func(c domain.Contribution) domain.ContributionDraft {
			return domain.ContributionDraft{
				Amount:      domain.FormatAmount(c.Amount),
				Description: c.Description,
				Date:        c.Date,
				MemberID:    domain.FormatID(c.MemberID),
			}
		},
		RecordID: func(c domain.Contribution) int64 { return c.ID },
		Label:    func(c domain.Contribution) string { return c.Description },
	}
	cc.Controller = NewController(cfg)
	return cc
}

// Load hydrates contributions and the member reference collection
// concurrently.
func (cc *ContributionsController) Load(ctx context.Context) error {
	return cc.Controller.Load(ctx, cc.loadMembers)
}

func (cc *ContributionsController) loadMembers(ctx context.Context) error {
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
func (cc *ContributionsController) Members() []domain.Member {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	out := make([]domain.Member, len(cc.members))
	copy(out, cc.members)
	return out
}
