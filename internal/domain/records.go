/**
 * @description
 * This file defines the core domain models for the Ziganya client. These
 * structs mirror the JSON shapes returned by the association's REST API and
 * are the records rendered and edited by the lifecycle controllers.
 *
 * @notes
 * - Record identities are server-assigned numeric ids; the client never
 *   fabricates them.
 * - A credit carries a decision status with a closed value set. Once the
 *   decision leaves IN_TREATMENT the record is locked against edit, delete
 *   and further treatment.
 */

package domain

// CreditDecision is the closed status set of a credit record.
type CreditDecision string

const (
	DecisionInTreatment CreditDecision = "IN_TREATMENT"
	DecisionGranted     CreditDecision = "GRANTED"
	DecisionRefused     CreditDecision = "REFUSED"
)

// Decided reports whether the decision has left its initial mutable value.
func (d CreditDecision) Decided() bool {
	return d == DecisionGranted || d == DecisionRefused
}

// Member represents one registered association member.
type Member struct {
	ID          int64  `json:"id"`
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	PhoneNumber string `json:"phoneNumber"`
	Shares      int64  `json:"shares"`
}

// FullName returns the display name used in feedback messages and report rows.
func (m Member) FullName() string {
	return m.Firstname + " " + m.Lastname
}

// Contribution represents one periodic payment made by a member.
type Contribution struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // YYYY-MM-DD
	MemberID    int64   `json:"memberId"`
	Member      *Member `json:"member,omitempty"`
}

// Credit represents a credit request and its decision state.
type Credit struct {
	ID             int64          `json:"id"`
	Amount         float64        `json:"amount"`
	InterestRate   float64        `json:"interestRate"`
	DurationMonths int64          `json:"durationMonths"`
	RequestDate    string         `json:"requestDate"` // YYYY-MM-DD
	CreditDecision CreditDecision `json:"creditDecision"`
	MemberID       int64          `json:"memberId"`
	Member         *Member        `json:"member,omitempty"`
}

// CreditTreatment is the payload posted to the credit-treatments resource to
// move a credit out of IN_TREATMENT. The transition is one-way.
type CreditTreatment struct {
	ID            int64          `json:"id,omitempty"`
	CreditID      int64          `json:"creditId"`
	Decision      CreditDecision `json:"decision"`
	TreatmentDate string         `json:"treatmentDate,omitempty"`
}

// Refund represents one repayment against a granted credit. The API nests the
// credit (and through it the member) so list rows can be derived client-side.
type Refund struct {
	ID         int64   `json:"id"`
	Amount     float64 `json:"amount"`
	RefundDate string  `json:"refundDate"` // YYYY-MM-DD
	CreditID   int64   `json:"creditId"`
	Credit     *Credit `json:"credit,omitempty"`
}

// RefundRow is the display projection of a refund joined to its nested
// credit and member data.
type RefundRow struct {
	ID           int64
	Amount       float64
	RefundDate   string
	CreditID     int64
	CreditAmount float64
	MemberName   string
}

// DeriveRefundRow joins a refund record to its nested credit/member fields.
// Missing nesting degrades to zero values rather than failing the row.
func DeriveRefundRow(r Refund) RefundRow {
	row := RefundRow{
		ID:         r.ID,
		Amount:     r.Amount,
		RefundDate: r.RefundDate,
		CreditID:   r.CreditID,
	}
	if r.Credit != nil {
		row.CreditAmount = r.Credit.Amount
		if row.CreditID == 0 {
			row.CreditID = r.Credit.ID
		}
		if r.Credit.Member != nil {
			row.MemberName = r.Credit.Member.FullName()
		}
	}
	return row
}

// AssociationDetail holds the association's identity card.
type AssociationDetail struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// AssociationSetting holds the tunable rates of the association.
type AssociationSetting struct {
	ID           int64   `json:"id"`
	SharesValue  float64 `json:"sharesValue"`
	InterestRate float64 `json:"interestRate"`
	PenaltyRate  float64 `json:"penaltyRate"`
	MeetingDay   string  `json:"meetingDay"`
}

// Report is the dashboard snapshot served by the reports resource and
// partially updated through the real-time channel.
type Report struct {
	MemberCount        int64   `json:"memberCount"`
	TotalShares        int64   `json:"totalShares"`
	TotalContributions float64 `json:"totalContributions"`
	TotalCredits       float64 `json:"totalCredits"`
	TotalRefunds       float64 `json:"totalRefunds"`
	AvailableBalance   float64 `json:"availableBalance"`
	GeneratedAt        string  `json:"generatedAt"`
}
