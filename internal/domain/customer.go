package domain

import "time"

// Customer is the person an appointment is booked for.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	CreatedAt time.Time
}
