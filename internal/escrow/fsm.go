package escrow

// Status constants for the protected-payment transaction state machine.
const (
	StatusCreated  = "created"
	StatusFunded   = "funded"
	StatusDisputed = "disputed"
	StatusReleased = "released"
	StatusRefunded = "refunded"
	StatusCanceled = "canceled"
)

var transitions = map[string]map[string]struct{}{
	StatusCreated: {
		StatusFunded:   {},
		StatusCanceled: {},
	},
	StatusFunded: {
		StatusReleased: {},
		StatusRefunded: {},
		StatusDisputed: {},
	},
	StatusDisputed: {
		StatusReleased: {},
		StatusRefunded: {},
	},
}

func CanTransition(from, to string) bool {
	next, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}

// Terminal reports whether a transaction can no longer move.
func Terminal(status string) bool {
	return len(transitions[status]) == 0
}
