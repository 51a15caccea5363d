package payrun

import (
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectEvents(t *testing.T, src iter.Seq2[Event, error]) []Event {
	t.Helper()
	var events []Event
	for ev, err := range src {
		require.NoError(t, err)
		events = append(events, ev)
	}
	return events
}

func TestEvents(t *testing.T) {
	csv := `type, client, tx, amount
deposit, 1, 1, 1.0
withdrawal, 1, 2, 0.5
dispute, 1, 1
resolve, 1, 1
chargeback, 1, 1`

	events := collectEvents(t, Events(strings.NewReader(csv)))
	require.Len(t, events, 5)

	deposit, ok := events[0].(Deposit)
	require.True(t, ok, "first event should be a Deposit, got %T", events[0])
	assert.Equal(t, ClientID(1), deposit.Client())
	assert.Equal(t, TxID(1), deposit.Tx())
	assert.True(t, deposit.Amount.Equal(A(1.0)), "deposit amount = %s", deposit.Amount)

	withdrawal, ok := events[1].(Withdrawal)
	require.True(t, ok, "second event should be a Withdrawal, got %T", events[1])
	assert.Equal(t, TxID(2), withdrawal.Tx())
	assert.True(t, withdrawal.Amount.Equal(A(0.5)), "withdrawal amount = %s", withdrawal.Amount)

	assert.IsType(t, Dispute{}, events[2])
	assert.IsType(t, Resolve{}, events[3])
	assert.IsType(t, Chargeback{}, events[4])
	for _, ev := range events[2:] {
		assert.Equal(t, ClientID(1), ev.Client())
		assert.Equal(t, TxID(1), ev.Tx())
	}
}

func TestEventsSkipsMalformedRows(t *testing.T) {
	csv := `type, client, tx, amount
transfer, 1, 1, 1.0
deposit, x, 1, 1.0
deposit, 1, 1
deposit, 1, 1, -1.0
withdrawal, 1, 1, zero
deposit, 2, 7, 3.0`

	events := collectEvents(t, Events(strings.NewReader(csv)))
	require.Len(t, events, 1)
	assert.Equal(t, EvDeposit, events[0].What())
	assert.Equal(t, ClientID(2), events[0].Client())
	assert.Equal(t, TxID(7), events[0].Tx())
}

func TestEventsHeaderOnly(t *testing.T) {
	events := collectEvents(t, Events(strings.NewReader("type, client, tx, amount\n")))
	assert.Empty(t, events)

	events = collectEvents(t, Events(strings.NewReader("")))
	assert.Empty(t, events)
}

func TestJSONLEvents(t *testing.T) {
	jsonl := `{"type":"deposit","client":1,"tx":1,"amount":2.0}
not json at all
{"type":"dispute","client":1,"tx":1}
`

	events := collectEvents(t, JSONLEvents(strings.NewReader(jsonl)))
	require.Len(t, events, 2)

	deposit, ok := events[0].(Deposit)
	require.True(t, ok, "first event should be a Deposit, got %T", events[0])
	assert.True(t, deposit.Amount.Equal(A(2.0)), "deposit amount = %s", deposit.Amount)
	assert.IsType(t, Dispute{}, events[1])
}

func TestJSONEvents(t *testing.T) {
	doc := `{"export": "2024-01-31", "events": [
		{"type":"deposit","client":1,"tx":1,"amount":2.0},
		{"type":"chargeback","client":1,"tx":1},
		{"type":"teleport","client":1,"tx":2}
	]}`

	events := collectEvents(t, JSONEvents(strings.NewReader(doc), "$.events"))
	require.Len(t, events, 2)
	assert.Equal(t, EvDeposit, events[0].What())
	assert.Equal(t, EvChargeback, events[1].What())
}

func TestJSONEventsBareArray(t *testing.T) {
	doc := `[{"type":"deposit","client":1,"tx":1,"amount":2.0}]`

	events := collectEvents(t, JSONEvents(strings.NewReader(doc), ""))
	require.Len(t, events, 1)
}

func TestJSONEventsBadSelection(t *testing.T) {
	doc := `{"events": {"nope": true}}`

	var firstErr error
	for _, err := range JSONEvents(strings.NewReader(doc), "$.events") {
		if err != nil {
			firstErr = err
			break
		}
	}
	require.Error(t, firstErr)
	assert.Contains(t, firstErr.Error(), "does not select an array")
}
