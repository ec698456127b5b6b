/**
 * @description
 * Lifecycle controller instantiations for the association screens: the
 * association detail card and the association settings (rates). Both follow
 * the same controller shape as the entity screens; neither has a reference
 * collection or a status lock.
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

type settingPayload struct {
	SharesValue  float64 `json:"sharesValue"`
	InterestRate float64 `json:"interestRate"`
	PenaltyRate  float64 `json:"penaltyRate"`
	MeetingDay   string  `json:"meetingDay"`
}

type detailPayload struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// SettingsController drives the association settings screen.
type SettingsController struct {
	*Controller[domain.AssociationSetting, domain.SettingDraft]
}

// NewSettingsController wires the association-settings resource into the
// generic lifecycle controller.
func NewSettingsController(client *apiclient.Client, fb *feedback.Channel, tr i18n.Translator) *SettingsController {
	cfg := Config[domain.AssociationSetting, domain.SettingDraft]{
		Gateway:  apiclient.NewResource[domain.AssociationSetting](client, "/association-settings"),
		Form:     form.NewHolder[domain.SettingDraft](),
		Feedback: fb,
		Tr:       tr,
		Validate: validate.Setting(tr),
		Payload: func(d domain.SettingDraft) any {
			sharesValue, _ := strconv.ParseFloat(d.SharesValue, 64)
			interest, _ := strconv.ParseFloat(d.InterestRate, 64)
			penalty, _ := strconv.ParseFloat(d.PenaltyRate, 64)
			return settingPayload{
				SharesValue:  sharesValue,
				InterestRate: interest,
				PenaltyRate:  penalty,
				MeetingDay:   d.MeetingDay,
			}
		},
		DraftFrom: func(s domain.AssociationSetting) domain.SettingDraft {
			return domain.SettingDraft{
				SharesValue:  domain.FormatAmount(s.SharesValue),
				InterestRate: domain.FormatAmount(s.InterestRate),
				PenaltyRate:  domain.FormatAmount(s.PenaltyRate),
				MeetingDay:   s.MeetingDay,
			}
		},
		RecordID: func(s domain.AssociationSetting) int64 { return s.ID },
		Label:    func(s domain.AssociationSetting) string { return "settings " + domain.FormatID(s.ID) },
	}
	return &SettingsController{Controller: NewController(cfg)}
}

// DetailsController drives the association detail screen.
type DetailsController struct {
	*Controller[domain.AssociationDetail, domain.DetailDraft]
}

// NewDetailsController wires the association-details resource into the
// generic lifecycle controller.
func NewDetailsController(client *apiclient.Client, fb *feedback.Channel, tr i18n.Translator) *DetailsController {
	cfg := Config[domain.AssociationDetail, domain.DetailDraft]{
		Gateway:  apiclient.NewResource[domain.AssociationDetail](client, "/association-details"),
		Form:     form.NewHolder[domain.DetailDraft](),
		Feedback: fb,
		Tr:       tr,
		Validate: validate.Detail(tr),
		Payload: func(d domain.DetailDraft) any {
			return detailPayload{
				Name:        d.Name,
				Address:     d.Address,
				Description: d.Description,
			}
		},
		DraftFrom: func(a domain.AssociationDetail) domain.DetailDraft {
			return domain.DetailDraft{
				Name:        a.Name,
				Address:     a.Address,
				Description: a.Description,
			}
		},
		RecordID: func(a domain.AssociationDetail) int64 { return a.ID },
		Label:    func(a domain.AssociationDetail) string { return a.Name },
	}
	return &DetailsController{Controller: NewController(cfg)}
}
