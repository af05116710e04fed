package ledger_test

import (
	"testing"

	"inventaris/internal/ledger"

	"github.com/stretchr/testify/assert"
)

func TestMovementType_Valid(t *testing.T) {
	assert.True(t, ledger.MovementIn.Valid())
	assert.True(t, ledger.MovementOut.Valid())
	assert.False(t, ledger.MovementType("").Valid())
	assert.False(t, ledger.MovementType("masuk").Valid())
	assert.False(t, ledger.MovementType("in").Valid())
	assert.False(t, ledger.MovementType("BOTH").Valid())
}

func TestDelta(t *testing.T) {
	tests := []struct {
		name     string
		typ      ledger.MovementType
		quantity int
		want     int
	}{
		{"stock-in adds", ledger.MovementIn, 5, 5},
		{"stock-out subtracts", ledger.MovementOut, 5, -5},
		{"stock-in single unit", ledger.MovementIn, 1, 1},
		{"stock-out single unit", ledger.MovementOut, 1, -1},
		{"large stock-in", ledger.MovementIn, 1_000_000, 1_000_000},
		{"large stock-out", ledger.MovementOut, 1_000_000, -1_000_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledger.Delta(tt.typ, tt.quantity))
		})
	}
}

func TestInverse(t *testing.T) {
	assert.Equal(t, -5, ledger.Inverse(ledger.MovementIn, 5))
	assert.Equal(t, 5, ledger.Inverse(ledger.MovementOut, 5))
}

// Applying a movement's delta and then its inverse must always net to zero.
func TestDeltaInverseNetsToZero(t *testing.T) {
	for _, typ := range []ledger.MovementType{ledger.MovementIn, ledger.MovementOut} {
		for _, quantity := range []int{1, 2, 3, 10, 99, 12345} {
			assert.Zero(t, ledger.Delta(typ, quantity)+ledger.Inverse(typ, quantity),
				"type=%s quantity=%d", typ, quantity)
		}
	}
}
