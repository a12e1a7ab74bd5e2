package enum

// SequencerStrategy selects how the next receipt serial is derived
type SequencerStrategy string

const (
	// SequencerCounter increments a per fiscal year counter row
	SequencerCounter SequencerStrategy = "counter"
	// SequencerScan reads the most recently inserted receipt of the fiscal year
	SequencerScan SequencerStrategy = "scan"
)

func (s SequencerStrategy) IsValid() bool {
	return s == SequencerCounter || s == SequencerScan
}

// WithdrawalDatePolicy selects the day a cash handover is recorded against
type WithdrawalDatePolicy string

const (
	// WithdrawalDateToday always records against the server's current date
	WithdrawalDateToday WithdrawalDatePolicy = "today"
	// WithdrawalDateViewed records against the date the caller is viewing
	WithdrawalDateViewed WithdrawalDatePolicy = "viewed"
)

func (p WithdrawalDatePolicy) IsValid() bool {
	return p == WithdrawalDateToday || p == WithdrawalDateViewed
}
