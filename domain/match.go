package domain

type MatchStatus string

const (
	Matched MatchStatus = "MATCHED"
	Waiting MatchStatus = "WAITING"
)

// MatchOutcome is the immediate result of a match request.
// Session and Partner are only meaningful when Status is Matched.
type MatchOutcome struct {
	Status  MatchStatus
	Session SessionID
	Partner ParticipantID
}
