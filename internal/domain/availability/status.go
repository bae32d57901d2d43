package availability

// Status reports whether a domain can be registered.
type Status string

const (
	StatusAvailable Status = "available"
	StatusTaken     Status = "taken"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusTaken:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
