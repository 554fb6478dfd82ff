package models

// Gender values. Sports additionally allow Mixed; players do not.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderMixed  = "Mixed"
)

// Player PCr confirmation status.
const (
	PlayerStatusConfirmed   = "pcr_confirmed"
	PlayerStatusUnconfirmed = "pcr_unconfirmed"
)

// TeamPlayer PCr approval status.
const (
	TeamPlayerApproved   = "pcr_approved"
	TeamPlayerUnapproved = "pcr_unapproved"
)

// Transaction status.
const (
	TxnPending = "PENDING"
	TxnSuccess = "SUCCESS"
	TxnFailed  = "FAILED"
	TxnTimeout = "TIMEOUT"
)

// Transaction type, identifying who initiated the payment.
const (
	TxnTypePCR         = "PCR"
	TxnTypeSWD         = "SWD"
	TxnTypeCR          = "CR"
	TxnTypeTeamCaptain = "TEAM_CAPTAIN"
	TxnTypePlayer      = "PLAYER"
)

// ValidSportGender reports whether g is an allowed sport gender category.
func ValidSportGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderMixed
}

// ValidPlayerGender reports whether g is an allowed player gender.
func ValidPlayerGender(g string) bool {
	return g == GenderMale || g == GenderFemale
}
