package domain

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrSecretNotFound      = errors.New("secret not found")
	ErrUnsupportedPushType = errors.New("unsupported push type")

	ErrAuthentication = errors.New("authentication failed")
	ErrPlanResolution = errors.New("plan resolution failed")
	ErrRemote         = errors.New("remote request failed")
	ErrSubmission     = errors.New("check-in submission rejected")
	ErrUnexpected     = errors.New("unexpected failure")
)

type ErrorKind string

const (
	KindAuthentication ErrorKind = "authentication"
	KindPlanResolution ErrorKind = "plan_resolution"
	KindRemote         ErrorKind = "remote"
	KindSubmission     ErrorKind = "submission"
	KindUnexpected     ErrorKind = "unexpected"
)

// KindOf classifies a run failure. Errors outside the taxonomy are unexpected.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrAuthentication):
		return KindAuthentication
	case errors.Is(err, ErrPlanResolution):
		return KindPlanResolution
	case errors.Is(err, ErrSubmission):
		return KindSubmission
	case errors.Is(err, ErrRemote):
		return KindRemote
	default:
		return KindUnexpected
	}
}
