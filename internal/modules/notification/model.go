// README: In-app notification records.
package notification

import (
	"time"

	"gari/internal/types"
)

type Notification struct {
	ID        types.ID  `json:"id"`
	Recipient types.ID  `json:"recipient"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sent_at"`
	IsRead    bool      `json:"is_read"`
}
