package payrun

// EventType is a typed string identifying event kinds.
type EventType string

// Event types used on the wire and for dispatch.
const (
	EvDeposit    EventType = "deposit"
	EvWithdrawal EventType = "withdrawal"
	EvDispute    EventType = "dispute"
	EvResolve    EventType = "resolve"
	EvChargeback EventType = "chargeback"
)

// ClientID identifies an account. The addressable id space is 16-bit.
type ClientID uint16

// TxID identifies a transaction. The addressable id space is 32-bit; ids are
// expected to be unique within one input stream but uniqueness is not
// enforced (see Ledger.Record).
type TxID uint32

// Event defines the common interface for all financial events the engine
// consumes.
type Event interface {
	What() EventType  // What returns the event kind (e.g. "deposit").
	Client() ClientID // Client returns the account the event targets.
	Tx() TxID         // Tx returns the transaction the event creates or references.
}

type baseEvent struct {
	Type     EventType `json:"type"`   // Type specifies the event kind.
	ClientID ClientID  `json:"client"` // ClientID is the targeted account.
	TxID     TxID      `json:"tx"`     // TxID is the created or referenced transaction.
}

func (e baseEvent) What() EventType  { return e.Type }
func (e baseEvent) Client() ClientID { return e.ClientID }
func (e baseEvent) Tx() TxID         { return e.TxID }

// Deposit credits an account with funds.
type Deposit struct {
	baseEvent
	Amount Amount `json:"amount"` // Amount is the credited value, always positive.
}

// NewDeposit creates a deposit event.
func NewDeposit(client ClientID, tx TxID, amount Amount) Deposit {
	return Deposit{baseEvent{EvDeposit, client, tx}, amount}
}

// Withdrawal debits an account. The engine stores its amount negated.
type Withdrawal struct {
	baseEvent
	Amount Amount `json:"amount"` // Amount is the debited value, always positive.
}

// NewWithdrawal creates a withdrawal event.
func NewWithdrawal(client ClientID, tx TxID, amount Amount) Withdrawal {
	return Withdrawal{baseEvent{EvWithdrawal, client, tx}, amount}
}

// Dispute claims that a prior transaction was erroneous and freezes its amount.
type Dispute struct {
	baseEvent
}

// NewDispute creates a dispute event referencing a prior transaction.
func NewDispute(client ClientID, tx TxID) Dispute {
	return Dispute{baseEvent{EvDispute, client, tx}}
}

// Resolve rejects a dispute's claim; held funds return to available.
type Resolve struct {
	baseEvent
}

// NewResolve creates a resolve event referencing a disputed transaction.
func NewResolve(client ClientID, tx TxID) Resolve {
	return Resolve{baseEvent{EvResolve, client, tx}}
}

// Chargeback upholds a dispute's claim; the transaction is reversed and the
// account is permanently locked.
type Chargeback struct {
	baseEvent
}

// NewChargeback creates a chargeback event referencing a disputed transaction.
func NewChargeback(client ClientID, tx TxID) Chargeback {
	return Chargeback{baseEvent{EvChargeback, client, tx}}
}
