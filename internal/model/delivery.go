package model

import "time"

// Delivery status constants.
const (
	DeliveryDelivered = "delivered"
	DeliveryFailed    = "failed"
)

// Delivery is a journal record of one forum relay attempt. The message
// body is never recorded.
type Delivery struct {
	ID        string    `db:"id"`
	Backend   string    `db:"backend"`
	Category  string    `db:"category"`
	Subject   string    `db:"subject"`
	Sender    string    `db:"sender"`
	Status    string    `db:"status"`
	Error     string    `db:"error"`
	CreatedAt time.Time `db:"created_at"`
}
