/**
 * @description
 * Draft types for every editable record kind. A draft is the local,
 * possibly-invalid staging copy of a record: every field is free-form text
 * (numeric values included) and is only parsed at submit time by the
 * validators. Selections reference other records by id, held as text so an
 * absent selection is distinguishable from id zero.
 */

package domain

import "strconv"

// MemberDraft stages a member record for create or edit.
type MemberDraft struct {
	Firstname   string
	Lastname    string
	PhoneNumber string
	Shares      string
}

// ContributionDraft stages a contribution record.
type ContributionDraft struct {
	Amount      string
	Description string
	Date        string
	MemberID    string
}

// CreditDraft stages a credit request. The decision is server-owned and is
// never exposed on the draft; creation injects IN_TREATMENT on the payload.
type CreditDraft struct {
	Amount         string
	InterestRate   string
	DurationMonths string
	RequestDate    string
	MemberID       string
}

// RefundDraft stages a refund against a granted credit.
type RefundDraft struct {
	Amount     string
	RefundDate string
	CreditID   string
}

// SettingDraft stages the association settings record.
type SettingDraft struct {
	SharesValue  string
	InterestRate string
	PenaltyRate  string
	MeetingDay   string
}

// DetailDraft stages the association detail record.
type DetailDraft struct {
	Name        string
	Address     string
	Description string
}

// FormatID renders a record id for a draft selection field.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// FormatAmount renders a numeric record field back into draft text.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatCount renders an integer record field back into draft text.
func FormatCount(v int64) string {
	return strconv.FormatInt(v, 10)
}
