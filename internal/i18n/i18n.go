/**
 * @description
 * Typed message catalogue for the client's user-facing strings. Every string
 * shown through the feedback channel or produced by a validator resolves
 * through an enumerated key and a per-language table, replacing dynamic
 * string-key-path lookup with compile-time checked keys.
 */

package i18n

// Key identifies one translatable message.
type Key string

const (
	KeyFirstnameRequired    Key = "validation.firstname_required"
	KeyLastnameRequired     Key = "validation.lastname_required"
	KeyPhoneRequired        Key = "validation.phone_required"
	KeySharesPositive       Key = "validation.shares_positive"
	KeyAmountRequired       Key = "validation.amount_required"
	KeyAmountPositive       Key = "validation.amount_positive"
	KeyDateRequired         Key = "validation.date_required"
	KeyDateFormat           Key = "validation.date_format"
	KeyMemberRequired       Key = "validation.member_required"
	KeyCreditRequired       Key = "validation.credit_required"
	KeyInterestNonNegative  Key = "validation.interest_non_negative"
	KeyPenaltyNonNegative   Key = "validation.penalty_non_negative"
	KeyDurationPositive     Key = "validation.duration_positive"
	KeySharesValuePositive  Key = "validation.shares_value_positive"
	KeyMeetingDayRequired   Key = "validation.meeting_day_required"
	KeyNameRequired         Key = "validation.name_required"
	KeyAddressRequired      Key = "validation.address_required"
	KeyDescriptionRequired  Key = "validation.description_required"
	KeySaveSuccess          Key = "feedback.save_success"
	KeyDeleteSuccess        Key = "feedback.delete_success"
	KeyTreatmentSuccess     Key = "feedback.treatment_success"
	KeyAlreadyDecidedEdit   Key = "feedback.already_decided_edit"
	KeyAlreadyDecidedDelete Key = "feedback.already_decided_delete"
	KeyAlreadyDecidedTreat  Key = "feedback.already_decided_treat"
)

// Language selects one translation table.
type Language string

const (
	LangEnglish Language = "en"
	LangFrench  Language = "fr"
)

// Bundle resolves keys for one display language, falling back to English for
// any hole in the selected table.
type Bundle struct {
	lang Language
}

// NewBundle creates a bundle for the given language. Unknown languages fall
// back to English.
func NewBundle(lang Language) *Bundle {
	if _, ok := tables[lang]; !ok {
		lang = LangEnglish
	}
	return &Bundle{lang: lang}
}

// Language returns the bundle's active language.
func (b *Bundle) Language() Language { return b.lang }

// Resolve returns the message for the key in the bundle's language.
func (b *Bundle) Resolve(key Key) string {
	if msg, ok := tables[b.lang][key]; ok {
		return msg
	}
	if msg, ok := tables[LangEnglish][key]; ok {
		return msg
	}
	return string(key)
}

// Translator is the resolution function injected into validators.
type Translator func(Key) string

// Translator returns the bundle's resolution function.
func (b *Bundle) Translator() Translator {
	return b.Resolve
}
