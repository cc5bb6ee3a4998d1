// README: User profile records (auth/token issuance lives elsewhere).
package account

import "gari/internal/types"

type User struct {
	ID         types.ID `json:"id"`
	Username   string   `json:"username"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	IsCustomer bool     `json:"is_customer"`
	IsAdmin    bool     `json:"is_admin"`
}
