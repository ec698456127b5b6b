package i18n

// tables holds the per-language message catalogues. The delete and treatment
// success messages take the record label as a fmt argument.
var tables = map[Language]map[Key]string{
	LangEnglish: {
		KeyFirstnameRequired:    "first name required",
		KeyLastnameRequired:     "last name required",
		KeyPhoneRequired:        "phone number required",
		KeySharesPositive:       "shares must be a positive number",
		KeyAmountRequired:       "amount required",
		KeyAmountPositive:       "amount must be positive",
		KeyDateRequired:         "date required",
		KeyDateFormat:           "date must use the YYYY-MM-DD format",
		KeyMemberRequired:       "a member must be selected",
		KeyCreditRequired:       "a credit must be selected",
		KeyInterestNonNegative:  "interest rate must not be negative",
		KeyPenaltyNonNegative:   "penalty rate must not be negative",
		KeyDurationPositive:     "duration must be a positive number",
		KeySharesValuePositive:  "share value must be positive",
		KeyMeetingDayRequired:   "meeting day required",
		KeyNameRequired:         "name required",
		KeyAddressRequired:      "address required",
		KeyDescriptionRequired:  "description required",
		KeySaveSuccess:          "saved successfully",
		KeyDeleteSuccess:        "%s deleted",
		KeyTreatmentSuccess:     "credit decision recorded",
		KeyAlreadyDecidedEdit:   "already decided, cannot be modified",
		KeyAlreadyDecidedDelete: "already treated, cannot delete",
		KeyAlreadyDecidedTreat:  "already treated",
	},
	LangFrench: {
		KeyFirstnameRequired:    "le prénom est obligatoire",
		KeyLastnameRequired:     "le nom est obligatoire",
		KeyPhoneRequired:        "le numéro de téléphone est obligatoire",
		KeySharesPositive:       "le nombre de parts doit être positif",
		KeyAmountRequired:       "le montant est obligatoire",
		KeyAmountPositive:       "le montant doit être positif",
		KeyDateRequired:         "la date est obligatoire",
		KeyDateFormat:           "la date doit suivre le format AAAA-MM-JJ",
		KeyMemberRequired:       "un membre doit être sélectionné",
		KeyCreditRequired:       "un crédit doit être sélectionné",
		KeyInterestNonNegative:  "le taux d'intérêt ne peut pas être négatif",
		KeyPenaltyNonNegative:   "le taux de pénalité ne peut pas être négatif",
		KeyDurationPositive:     "la durée doit être positive",
		KeySharesValuePositive:  "la valeur de la part doit être positive",
		KeyMeetingDayRequired:   "le jour de réunion est obligatoire",
		KeyNameRequired:         "le nom est obligatoire",
		KeyAddressRequired:      "l'adresse est obligatoire",
		KeyDescriptionRequired:  "la description est obligatoire",
		KeySaveSuccess:          "enregistré avec succès",
		KeyDeleteSuccess:        "%s supprimé",
		KeyTreatmentSuccess:     "décision de crédit enregistrée",
		KeyAlreadyDecidedEdit:   "déjà décidé, modification impossible",
		KeyAlreadyDecidedDelete: "déjà traité, suppression impossible",
		KeyAlreadyDecidedTreat:  "déjà traité",
	},
}
