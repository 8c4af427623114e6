package captain

import "time"

// Card numbers are 16 digits and may not start with 0.
const (
	MinCardNumber = 1000000000000000
	MaxCardNumber = 9999999999999999
)

type Captain struct {
	PlayerID       int
	BillingAddress string
	CardNumber     int64
	CardHolder     string
	// Expiry is the first day of the expiry month.
	Expiry   time.Time
	CardType string
}
