// README: Payment ledger records. No gateway integration; rows record the
// outcome of payments settled out of band.
package payment

import (
	"time"

	"gari/internal/types"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusPaid     Status = "paid"
	StatusFailed   Status = "failed"
	StatusRefunded Status = "refunded"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusPaid, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

type Payment struct {
	ID          types.ID    `json:"id"`
	BookingID   types.ID    `json:"booking_id"`
	UserID      types.ID    `json:"user_id"`
	Amount      types.Money `json:"amount"`
	Method      string      `json:"method,omitempty"`
	Status      Status      `json:"status"`
	PaymentDate time.Time   `json:"payment_date"`
}
