package models

// Outcome is the classification of a DynHost update response.
type Outcome string

const (
	// OutcomeGood is a record changed to the IP address sent.
	OutcomeGood Outcome = "good"
	// OutcomeNoChange is a record already pointing to the IP address sent.
	OutcomeNoChange Outcome = "nochg"
	// OutcomeOther is a successful response with an unrecognized status.
	OutcomeOther Outcome = "other"
	// OutcomeFailure is an HTTP or transport error.
	OutcomeFailure Outcome = "failure"
)

func (o Outcome) Succeeded() bool {
	return o != OutcomeFailure
}

// UpdateResult is the parsed response of a DynHost update.
type UpdateResult struct {
	Outcome Outcome
	// Status is the first token of the response body.
	Status string
	// IP is the IP address echoed back by the provider, if any.
	IP string
	// Raw is the trimmed response body.
	Raw string
}
