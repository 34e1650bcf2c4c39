package domain

// StatusCounts holds the number of services per status.
type StatusCounts map[ServiceStatus]int64

// Total sums every status.
func (c StatusCounts) Total() int64 {
	var n int64
	for _, v := range c {
		n += v
	}
	return n
}

// Active sums the statuses in which work is still open.
func (c StatusCounts) Active() int64 {
	var n int64
	for _, st := range ActiveStatuses {
		n += c[st]
	}
	return n
}

// MechanicWorkload is one row of the manager's per-mechanic breakdown.
type MechanicWorkload struct {
	MechanicID         uint
	Name               string
	AwaitingQuote      int64
	InProgress         int64
	CompletedThisMonth int64
	Total              int64
}
