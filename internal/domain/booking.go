package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "Credit Card"
	PaymentMethodUPI        PaymentMethod = "UPI"
	PaymentMethodNetBanking PaymentMethod = "Net Banking"
	PaymentMethodWallet     PaymentMethod = "Wallet"
)

// Booking snapshots the flight at purchase time. Apart from the one-way
// status transition Confirmed -> Cancelled it is immutable.
type Booking struct {
	ID            string        `json:"id"`
	Flight        Flight        `json:"flight"`
	PassengerName string        `json:"passenger_name"`
	SeatNumber    string        `json:"seat_number"`
	Status        BookingStatus `json:"status"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	BookingDate   time.Time     `json:"booking_date"`
}
