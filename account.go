package payrun

import "fmt"

// Account is the balance state of a single client. The invariant
// Total == Available + Held holds after every applied event.
type Account struct {
	ID        ClientID
	Available Amount // funds the client can freely use
	Held      Amount // funds frozen pending dispute resolution
	Total     Amount // Available + Held
	Locked    bool   // true once a chargeback has occurred
}

// NewAccount creates a zero-balance, unlocked account.
func NewAccount(id ClientID) *Account {
	return &Account{ID: id}
}

// String renders the account as a snapshot row:
// "id, available, held, total, locked" with 4 fractional digits per amount.
func (a Account) String() string {
	return fmt.Sprintf("%d, %s, %s, %s, %t", a.ID, a.Available, a.Held, a.Total, a.Locked)
}
