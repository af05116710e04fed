// Package ledger holds the stock-movement rules shared by the repositories,
// services, and handlers: how a movement translates into a signed stock delta,
// and the error kinds every inventory mutation can surface.
package ledger

// MovementType tells whether a transaction adds stock to a product or takes it out.
type MovementType string

const (
	// MovementIn is a stock-in transaction: the quantity is added to the product.
	MovementIn MovementType = "IN"
	// MovementOut is a stock-out transaction: the quantity is subtracted.
	MovementOut MovementType = "OUT"
)

// Valid reports whether t is one of the known movement types.
func (t MovementType) Valid() bool {
	return t == MovementIn || t == MovementOut
}

// Delta returns the signed stock change a movement causes: +quantity for IN,
// -quantity for OUT.
func Delta(t MovementType, quantity int) int {
	if t == MovementOut {
		return -quantity
	}
	return quantity
}

// Inverse returns the delta that undoes a movement. Applying Delta and then
// Inverse for the same (type, quantity) nets to zero.
func Inverse(t MovementType, quantity int) int {
	return -Delta(t, quantity)
}
