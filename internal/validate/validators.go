/**
 * @description
 * Per-record-kind validators. Each validator is a pure function over one
 * draft: it returns nil for a valid draft or the first violated rule. The
 * rule order is a contract — required text fields and selections first, then
 * numeric sign constraints, then date format — and later rules are not
 * evaluated once one fails.
 */

package validate

import (
	"github.com/CodeLearner2024/ziganya-client/internal/domain"
	"github.com/CodeLearner2024/ziganya-client/internal/i18n"
)

// Member returns the validator for member drafts.
func Member(tr i18n.Translator) func(domain.MemberDraft) error {
	return func(d domain.MemberDraft) error {
		return chain(d,
			func(d domain.MemberDraft) *Error {
				if !present(d.Firstname) {
					return fail(tr, i18n.KeyFirstnameRequired)
				}
				return nil
			},
			func(d domain.MemberDraft) *Error {
				if !present(d.Lastname) {
					return fail(tr, i18n.KeyLastnameRequired)
				}
				return nil
			},
			func(d domain.MemberDraft) *Error {
				if !present(d.PhoneNumber) {
					return fail(tr, i18n.KeyPhoneRequired)
				}
				return nil
			},
			func(d domain.MemberDraft) *Error {
				if !positiveCount(d.Shares) {
					return fail(tr, i18n.KeySharesPositive)
				}
				return nil
			},
		)
	}
}

// Contribution returns the validator for contribution drafts.
func Contribution(tr i18n.Translator) func(domain.ContributionDraft) error {
	return func(d domain.ContributionDraft) error {
		return chain(d,
			func(d domain.ContributionDraft) *Error {
				if !present(d.Description) {
					return fail(tr, i18n.KeyDescriptionRequired)
				}
				return nil
			},
			func(d domain.ContributionDraft) *Error {
				if !selectedID(d.MemberID) {
					return fail(tr, i18n.KeyMemberRequired)
				}
				return nil
			},
			func(d domain.ContributionDraft) *Error {
				if !present(d.Amount) {
					return fail(tr, i18n.KeyAmountRequired)
				}
				return nil
			},
			func(d domain.ContributionDraft) *Error {
				if !positiveNumber(d.Amount) {
					return fail(tr, i18n.KeyAmountPositive)
				}
				return nil
			},
			func(d domain.ContributionDraft) *Error {
				if !present(d.Date) {
					return fail(tr, i18n.KeyDateRequired)
				}
				return nil
			},
			func(d domain.ContributionDraft) *Error {
				if !validDate(d.Date) {
					return fail(tr, i18n.KeyDateFormat)
				}
				return nil
			},
		)
	}
}

// Credit returns the validator for credit drafts.
func Credit(tr i18n.Translator) func(domain.CreditDraft) error {
	return func(d domain.CreditDraft) error {
		return chain(d,
			func(d domain.CreditDraft) *Error {
				if !selectedID(d.MemberID) {
					return fail(tr, i18n.KeyMemberRequired)
				}
				return nil
			},
			func(d domain.CreditDraft) *Error {
				if !present(d.Amount) {
					return fail(tr, i18n.KeyAmountRequired)
				}
				return nil
			},
			func(d domain.CreditDraft) *Error {
				if !positiveNumber(d.Amount) {
					return fail(tr, i18n.KeyAmountPositive)
				}
				return nil
			},
			func(d domain.CreditDraft) *Error {
				if !nonNegativeNumber(d.InterestRate) {
					return fail(tr, i18n.KeyInterestNonNegative)
				}
				return nil
			},
			func(d domain.CreditDraft) *Error {
				if !positiveCount(d.DurationMonths) {
					return fail(tr, i18n.KeyDurationPositive)
				}
				return nil
			},
			func(d domain.CreditDraft) *Error {
				if !present(d.RequestDate) {
					return fail(tr, i18n.KeyDateRequired)
				}
				return nil
			},
			func(d domain.CreditDraft) *Error {
				if !validDate(d.RequestDate) {
					return fail(tr, i18n.KeyDateFormat)
				}
				return nil
			},
		)
	}
}

// Refund returns the validator for refund drafts.
func Refund(tr i18n.Translator) func(domain.RefundDraft) error {
	return func(d domain.RefundDraft) error {
		return chain(d,
			func(d domain.RefundDraft) *Error {
				if !selectedID(d.CreditID) {
					return fail(tr, i18n.KeyCreditRequired)
				}
				return nil
			},
			func(d domain.RefundDraft) *Error {
				if !present(d.Amount) {
					return fail(tr, i18n.KeyAmountRequired)
				}
				return nil
			},
			func(d domain.RefundDraft) *Error {
				if !positiveNumber(d.Amount) {
					return fail(tr, i18n.KeyAmountPositive)
				}
				return nil
			},
			func(d domain.RefundDraft) *Error {
				if !present(d.RefundDate) {
					return fail(tr, i18n.KeyDateRequired)
				}
				return nil
			},
			func(d domain.RefundDraft) *Error {
				if !validDate(d.RefundDate) {
					return fail(tr, i18n.KeyDateFormat)
				}
				return nil
			},
		)
	}
}

// Setting returns the validator for association setting drafts.
func Setting(tr i18n.Translator) func(domain.SettingDraft) error {
	return func(d domain.SettingDraft) error {
		return chain(d,
			func(d domain.SettingDraft) *Error {
				if !present(d.MeetingDay) {
					return fail(tr, i18n.KeyMeetingDayRequired)
				}
				return nil
			},
			func(d domain.SettingDraft) *Error {
				if !positiveNumber(d.SharesValue) {
					return fail(tr, i18n.KeySharesValuePositive)
				}
				return nil
			},
			func(d domain.SettingDraft) *Error {
				if !nonNegativeNumber(d.InterestRate) {
					return fail(tr, i18n.KeyInterestNonNegative)
				}
				return nil
			},
			func(d domain.SettingDraft) *Error {
				if !nonNegativeNumber(d.PenaltyRate) {
					return fail(tr, i18n.KeyPenaltyNonNegative)
				}
				return nil
			},
		)
	}
}

// Detail returns the validator for association detail drafts.
func Detail(tr i18n.Translator) func(domain.DetailDraft) error {
	return func(d domain.DetailDraft) error {
		return chain(d,
			func(d domain.DetailDraft) *Error {
				if !present(d.Name) {
					return fail(tr, i18n.KeyNameRequired)
				}
				return nil
			},
			func(d domain.DetailDraft) *Error {
				if !present(d.Address) {
					return fail(tr, i18n.KeyAddressRequired)
				}
				return nil
			},
		)
	}
}
