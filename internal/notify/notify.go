package notify

import (
	"context"
	"fmt"

	"github.com/Domenick1991/fastflight/internal/kafka"
	"github.com/Domenick1991/fastflight/pkg/currency"
	"github.com/sirupsen/logrus"
)

// Sender renders notification events as console messages. A real mail or
// push integration would slot in behind the same method.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.Event) error {
	switch event.Type {
	case kafka.EventBookingCreated:
		logrus.WithFields(logrus.Fields{
			"booking_id": event.BookingID,
			"flight_id":  event.FlightID,
			"seat":       event.SeatNumber,
		}).Infof("notify %s: booking confirmed, seat %s", event.PassengerName, event.SeatNumber)
	case kafka.EventBookingCancelled:
		logrus.WithFields(logrus.Fields{
			"booking_id": event.BookingID,
			"flight_id":  event.FlightID,
		}).Infof("notify %s: booking cancelled", event.PassengerName)
	case kafka.EventAlertTriggered:
		logrus.WithFields(logrus.Fields{
			"alert_id": event.AlertID,
			"route":    fmt.Sprintf("%s-%s", event.Origin, event.Destination),
		}).Infof("notify: fare for %s to %s dropped to %s (target %s)",
			event.Origin, event.Destination,
			currency.FormatINR(event.CurrentPrice), currency.FormatINR(event.TargetPrice))
	default:
		logrus.WithField("type", event.Type).Warn("unknown notification event")
	}
	return nil
}
