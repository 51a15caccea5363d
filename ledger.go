package payrun

// Ledger stores, for every transaction id ever accepted, the signed amount
// that was applied (positive for deposits, negative for withdrawals) and a
// per-transaction dispute flag. It is a pure data structure with no policy.
//
// Storage is sparse: the 32-bit id space is indexed by maps so memory grows
// with the input, not with the addressable space.
type Ledger struct {
	amounts  map[TxID]Amount
	disputed map[TxID]bool
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		amounts:  make(map[TxID]Amount),
		disputed: make(map[TxID]bool),
	}
}

// Record stores the signed amount for a transaction id, overwriting any prior
// value for that id. Uniqueness is not enforced at this layer.
func (l *Ledger) Record(tx TxID, amount Amount) {
	l.amounts[tx] = amount
}

// AmountOf returns the signed amount stored for a transaction id, if known.
func (l *Ledger) AmountOf(tx TxID) (Amount, bool) {
	amount, ok := l.amounts[tx]
	return amount, ok
}

// MarkDisputed sets or clears the dispute flag for a transaction id.
func (l *Ledger) MarkDisputed(tx TxID, disputed bool) {
	if disputed {
		l.disputed[tx] = true
		return
	}
	delete(l.disputed, tx)
}

// Disputed reports whether a transaction id is currently under dispute.
// An absent id reads as false.
func (l *Ledger) Disputed(tx TxID) bool { return l.disputed[tx] }

// Len returns the number of recorded transactions.
func (l *Ledger) Len() int { return len(l.amounts) }

// Disputes returns the number of transactions currently under dispute.
func (l *Ledger) Disputes() int { return len(l.disputed) }
