package newsletter

// Subscriber is one newsletter signup. Unsubscribed addresses stay in
// the table with Active=false so a later signup reactivates them
// instead of creating a duplicate row.
type Subscriber struct {
	ID           int     `json:"id"`
	Email        string  `json:"email"`
	Name         *string `json:"name"`
	Active       bool    `json:"active"`
	SubscribedAt string  `json:"subscribed_at"`
}
