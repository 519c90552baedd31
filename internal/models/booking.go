package models

import "time"

type Booking struct {
	ID            string    `json:"id"`
	BarberID      string    `json:"barberId"`
	CustomerEmail string    `json:"customerEmail"`
	DateTime      time.Time `json:"dateTime"`
	CreatedAt     time.Time `json:"createdAt"`
	Status        string    `json:"status"`
}
