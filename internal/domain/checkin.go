package domain

type CheckInType string

const (
	CheckInStart CheckInType = "START"
	CheckInEnd   CheckInType = "END"
)

// Next toggles the check-in type. Anything other than START, including an
// empty type for accounts without history, yields START.
func (t CheckInType) Next() CheckInType {
	if t == CheckInStart {
		return CheckInEnd
	}
	return CheckInStart
}

// CheckInRecord is the latest attendance entry as reported by the remote service.
type CheckInRecord struct {
	Type       CheckInType
	Address    string
	CreateTime string
}
