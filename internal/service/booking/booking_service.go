package booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Domenick1991/fastflight/internal/domain"
	"github.com/Domenick1991/fastflight/internal/kafka"
	"github.com/Domenick1991/fastflight/internal/store"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id string) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateBookingInput struct {
	Flight        domain.Flight        `json:"flight"`
	PassengerName string               `json:"passenger_name"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
}

type BookingService struct {
	bookings           store.BookingRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(bookings store.BookingRepository, producer Producer, bookingTopic string, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if strings.TrimSpace(input.PassengerName) == "" {
		return nil, errors.New("passenger name is required")
	}
	if input.Flight.ID == "" {
		return nil, errors.New("flight is required")
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = domain.PaymentMethodCreditCard
	}

	booking := domain.Booking{
		ID:            "BK-" + strings.ToUpper(uuid.NewString()[:8]),
		Flight:        input.Flight,
		PassengerName: input.PassengerName,
		SeatNumber:    randomSeat(),
		Status:        domain.BookingStatusConfirmed,
		PaymentMethod: input.PaymentMethod,
		BookingDate:   time.Now(),
	}

	if err := s.bookings.Append(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.EventBookingCreated, booking)
	return &booking, nil
}

// CancelBooking flips Confirmed to Cancelled; the transition is one-way.
// Cancelling an already cancelled booking returns it unchanged; an unknown
// id returns store.ErrNotFound and leaves the collection untouched.
func (s *BookingService) CancelBooking(ctx context.Context, id string) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.BookingStatusCancelled {
		return current, nil
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.EventBookingCancelled, *updated)
	return updated, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

// randomSeat picks a row 1-30 and letter A-F uniformly. There is no
// collision check against other bookings on the same flight.
func randomSeat() string {
	row := rand.Intn(30) + 1
	letter := "ABCDEF"[rand.Intn(6)]
	return fmt.Sprintf("%d%c", row, letter)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.Event{
		Type:          eventType,
		BookingID:     booking.ID,
		FlightID:      booking.Flight.ID,
		PassengerName: booking.PassengerName,
		SeatNumber:    booking.SeatNumber,
		Status:        string(booking.Status),
		OccurredAt:    time.Now(),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		logrus.WithError(err).WithField("booking_id", booking.ID).Warnf("failed to publish %s event", eventType)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event); err != nil {
			logrus.WithError(err).WithField("booking_id", booking.ID).Warn("failed to publish notification event")
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
