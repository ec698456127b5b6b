/**
 * @description
 * Lifecycle controller instantiation for the members screen. Members have no
 * reference collection and no status lock.
 */

package app

import (
	"strconv"

	"github.com/CodeLearner2024/ziganya-client/internal/domain"
	"github.com/CodeLearner2024/ziganya-client/internal/feedback"
	"github.com/CodeLearner2024/ziganya-client/internal/form"
	"github.com/CodeLearner2024/ziganya-client/internal/i18n"
	"github.com/CodeLearner2024/ziganya-client/internal/validate"
	"github.com/CodeLearner2024/ziganya-client/pkg/apiclient"
)

// memberPayload is the request body for member create/update.
type memberPayload struct {
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	PhoneNumber string `json:"phoneNumber"`
	Shares      int64  `json:"shares"`
}

// MembersController drives the members screen.
type MembersController struct {
	*Controller[domain.Member, domain.MemberDraft]
}

// NewMembersController wires the members resource into the generic
// lifecycle controller.
func NewMembersController(client *apiclient.Client, fb *feedback.Channel, tr i18n.Translator) *MembersController {
	holder := form.NewHolder[domain.MemberDraft]()

	cfg := Config[domain.Member, domain.MemberDraft]{
		Gateway:  apiclient.NewResource[domain.Member](client, "/members"),
		Form:     holder,
		Feedback: fb,
		Tr:       tr,
		Validate: validate.Member(tr),
		Payload: func(d domain.MemberDraft) any {
			shares, _ := strconv.ParseInt(d.Shares, 10, 64)
			return memberPayload{
				Firstname:   d.Firstname,
				Lastname:    d.Lastname,
				PhoneNumber: d.PhoneNumber,
				Shares:      shares,
			}
		},
		DraftFrom: func(m domain.Member) domain.MemberDraft {
			return domain.MemberDraft{
				Firstname:   m.Firstname,
				Lastname:    m.Lastname,
				PhoneNumber: m.PhoneNumber,
				Shares:      domain.FormatCount(m.Shares),
			}
		},
		RecordID: func(m domain.Member) int64 { return m.ID },
		Label:    func(m domain.Member) string { return m.FullName() },
	}

	return &MembersController{Controller: NewController(cfg)}
}
