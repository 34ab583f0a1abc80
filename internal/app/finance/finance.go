// Package finance derives payment status for expense and tuition records.
package finance

// PaymentStatus is the derived settlement state of a record
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "paid"
	StatusPartial PaymentStatus = "partial"
	StatusUnpaid  PaymentStatus = "unpaid"
)

// ExpenseRecord is a billed amount and what has been paid against it.
// Amounts are in the smallest currency unit.
type ExpenseRecord struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Total int64  `json:"total"`
	Paid  int64  `json:"paid"`
}

// Status derives the settlement state: fully covered totals are paid,
// anything in between is partial, untouched records are unpaid.
func (r ExpenseRecord) Status() PaymentStatus {
	switch {
	case r.Total > 0 && r.Paid >= r.Total:
		return StatusPaid
	case r.Paid > 0:
		return StatusPartial
	default:
		return StatusUnpaid
	}
}

// Remaining returns the outstanding amount, never negative
func (r ExpenseRecord) Remaining() int64 {
	remaining := r.Total - r.Paid
	if remaining < 0 {
		return 0
	}
	return remaining
}
