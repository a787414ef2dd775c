package appointment

// Status is one of three unordered labels. There is no transition guard:
// the salon staff move appointments freely between labels, including back
// from finished to scheduled.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusFinished  Status = "finished"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusFinished, StatusCancelled:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusScheduled
}
