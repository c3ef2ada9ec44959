package alerts

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Domenick1991/fastflight/internal/domain"
	"github.com/Domenick1991/fastflight/internal/kafka"
	"github.com/Domenick1991/fastflight/internal/store"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AlertUseCase interface {
	CreateAlert(ctx context.Context, input CreateAlertInput) (*domain.PriceAlert, error)
	CheckAlerts(ctx context.Context, flights []domain.Flight) (bool, error)
	Alerts(ctx context.Context) ([]domain.PriceAlert, error)
	RemoveAlert(ctx context.Context, id string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateAlertInput struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	TargetPrice int    `json:"target_price"`
}

type AlertService struct {
	alerts             store.AlertRepository
	producer           Producer
	notificationsTopic string
}

func NewAlertService(alerts store.AlertRepository, producer Producer, notificationsTopic string) *AlertService {
	return &AlertService{
		alerts:             alerts,
		producer:           producer,
		notificationsTopic: notificationsTopic,
	}
}

func (s *AlertService) CreateAlert(ctx context.Context, input CreateAlertInput) (*domain.PriceAlert, error) {
	if strings.TrimSpace(input.Origin) == "" {
		return nil, errors.New("origin is required")
	}
	if strings.TrimSpace(input.Destination) == "" {
		return nil, errors.New("destination is required")
	}
	if input.TargetPrice <= 0 {
		return nil, errors.New("target price must be positive")
	}

	alert := domain.PriceAlert{
		ID:          "AL-" + strings.ToUpper(uuid.NewString()[:8]),
		Origin:      input.Origin,
		Destination: input.Destination,
		Date:        input.Date,
		TargetPrice: input.TargetPrice,
		IsTriggered: false,
		CreatedAt:   time.Now(),
	}

	if err := s.alerts.Append(ctx, alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

// CheckAlerts scans the search results against every un-triggered alert.
// The first flight in list order whose route matches case-insensitively and
// whose fare is at or below the target trigger the alert; later, cheaper
// matches do not change it. Returns whether any alert newly triggered.
func (s *AlertService) CheckAlerts(ctx context.Context, flights []domain.Flight) (bool, error) {
	alerts, err := s.alerts.List(ctx)
	if err != nil {
		return false, err
	}

	triggeredAny := false
	for _, alert := range alerts {
		if alert.IsTriggered {
			continue
		}

		match := firstMatch(flights, alert)
		if match == nil {
			continue
		}

		alert.IsTriggered = true
		alert.CurrentPrice = match.Price
		if err := s.alerts.Update(ctx, alert); err != nil {
			return triggeredAny, err
		}
		triggeredAny = true

		s.publishTriggered(ctx, alert)
	}

	return triggeredAny, nil
}

func (s *AlertService) Alerts(ctx context.Context) ([]domain.PriceAlert, error) {
	return s.alerts.List(ctx)
}

func (s *AlertService) RemoveAlert(ctx context.Context, id string) error {
	return s.alerts.Remove(ctx, id)
}

func firstMatch(flights []domain.Flight, alert domain.PriceAlert) *domain.Flight {
	for i := range flights {
		f := &flights[i]
		if strings.EqualFold(f.Origin, alert.Origin) &&
			strings.EqualFold(f.Destination, alert.Destination) &&
			f.Price <= alert.TargetPrice {
			return f
		}
	}
	return nil
}

func (s *AlertService) publishTriggered(ctx context.Context, alert domain.PriceAlert) {
	if s.producer == nil || s.notificationsTopic == "" {
		return
	}
	event := kafka.Event{
		Type:         kafka.EventAlertTriggered,
		AlertID:      alert.ID,
		Origin:       alert.Origin,
		Destination:  alert.Destination,
		TargetPrice:  alert.TargetPrice,
		CurrentPrice: alert.CurrentPrice,
		OccurredAt:   time.Now(),
	}
	if err := s.producer.Publish(ctx, s.notificationsTopic, alert.ID, event); err != nil {
		logrus.WithError(err).WithField("alert_id", alert.ID).Warn("failed to publish alert_triggered event")
	}
}

var _ AlertUseCase = (*AlertService)(nil)
