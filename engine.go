package payrun

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Engine owns the per-account balances and the transaction ledger for one
// run. Events are applied strictly in the order received; an event whose
// preconditions do not hold is a silent no-op, never queued or retried.
//
// The engine is single-threaded: there is exactly one mutator and no locking.
type Engine struct {
	ledger   *Ledger
	accounts map[ClientID]*Account
}

// NewEngine creates an engine with an empty ledger and no accounts.
func NewEngine() *Engine {
	return &Engine{
		ledger:   NewLedger(),
		accounts: make(map[ClientID]*Account),
	}
}

// Ledger exposes the engine's transaction store.
func (e *Engine) Ledger() *Ledger { return e.ledger }

// Account returns a copy of the account state for a client id.
func (e *Engine) Account(id ClientID) (Account, bool) {
	account, ok := e.accounts[id]
	if !ok {
		return Account{}, false
	}
	return *account, true
}

// Apply dispatches one event to the account state machine.
func (e *Engine) Apply(ev Event) {
	switch v := ev.(type) {
	case Deposit:
		e.credit(v.Client(), v.Tx(), v.Amount)
	case Withdrawal:
		e.credit(v.Client(), v.Tx(), v.Amount.Neg())
	case Dispute:
		e.dispute(v.Client(), v.Tx())
	case Resolve:
		e.resolve(v.Client(), v.Tx())
	case Chargeback:
		e.chargeback(v.Client(), v.Tx())
	}
}

// Run applies every event from src in order. It stops at the first source
// error and returns it; everything applied so far is kept.
func (e *Engine) Run(src iter.Seq2[Event, error]) error {
	for ev, err := range src {
		if err != nil {
			return fmt.Errorf("reading events: %w", err)
		}
		e.Apply(ev)
	}
	return nil
}

// credit applies a signed amount to an account and records the transaction;
// withdrawals arrive negated. The account is lazily created on first use. A
// locked account drops the event before anything is recorded.
//
// There is no insufficient-funds check: a withdrawal may drive available
// negative.
func (e *Engine) credit(id ClientID, tx TxID, amount Amount) {
	account, ok := e.accounts[id]
	if !ok {
		account = NewAccount(id)
		e.accounts[id] = account
	}
	if account.Locked {
		return
	}
	account.Available = account.Available.Add(amount)
	account.Total = account.Total.Add(amount)
	e.ledger.Record(tx, amount)
}

// dispute moves the transaction's signed amount from available to held and
// marks it disputed. Preconditions: the account exists and the transaction id
// has a stored amount; otherwise no-op. Total is unchanged. Dispute-path
// operations are not gated on the account lock.
func (e *Engine) dispute(id ClientID, tx TxID) {
	account, ok := e.accounts[id]
	if !ok {
		return
	}
	amount, ok := e.ledger.AmountOf(tx)
	if !ok {
		return
	}
	account.Available = account.Available.Sub(amount)
	account.Held = account.Held.Add(amount)
	e.ledger.MarkDisputed(tx, true)
}

// resolve reverses a hold and clears the dispute flag. Preconditions: the
// account exists, the transaction id has a stored amount, and the transaction
// is currently disputed; otherwise no-op.
func (e *Engine) resolve(id ClientID, tx TxID) {
	account, ok := e.accounts[id]
	if !ok {
		return
	}
	amount, ok := e.ledger.AmountOf(tx)
	if !ok || !e.ledger.Disputed(tx) {
		return
	}
	account.Available = account.Available.Add(amount)
	account.Held = account.Held.Sub(amount)
	e.ledger.MarkDisputed(tx, false)
}

// chargeback reverses the disputed transaction and permanently locks the
// account. Preconditions: the account exists, the transaction id has a stored
// amount, and the transaction is currently disputed; otherwise no-op.
func (e *Engine) chargeback(id ClientID, tx TxID) {
	account, ok := e.accounts[id]
	if !ok {
		return
	}
	amount, ok := e.ledger.AmountOf(tx)
	if !ok || !e.ledger.Disputed(tx) {
		return
	}
	account.Total = account.Total.Sub(amount)
	account.Held = account.Held.Sub(amount)
	account.Locked = true
	e.ledger.MarkDisputed(tx, false)
}

// Snapshot returns the state of every account that received at least one
// event, in ascending client id order.
func (e *Engine) Snapshot() []Account {
	ids := slices.Collect(maps.Keys(e.accounts))
	slices.Sort(ids)
	accounts := make([]Account, 0, len(ids))
	for _, id := range ids {
		accounts = append(accounts, *e.accounts[id])
	}
	return accounts
}
