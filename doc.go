// Package payrun implements a payments clearing engine.
//
// It ingests an ordered stream of financial events (deposits, withdrawals,
// disputes, resolves, chargebacks) for many accounts, applies them in arrival
// order, and produces a final per-account balance snapshot.
//
// The package is split in two layers: the [Ledger] store, which remembers the
// signed amount applied by every accepted transaction and its dispute flag,
// and the [Engine], which owns the account balances and enforces the dispute
// state machine and the locked-account rule. Event sources ([Events],
// [JSONLEvents], [JSONEvents]) are thin adapters feeding the engine.
package payrun
