// README: Shared identity and geo value objects.
package types

type ID string

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Caller identifies the authenticated principal for a request. Services take
// it explicitly instead of pulling user state out of ambient request context.
type Caller struct {
	UserID     ID
	Privileged bool
}
