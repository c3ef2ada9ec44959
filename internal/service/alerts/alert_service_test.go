package alerts

import (
	"context"
	"testing"

	"github.com/Domenick1991/fastflight/internal/domain"
	"github.com/Domenick1991/fastflight/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) Append(ctx context.Context, alert domain.PriceAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAlertRepository) Update(ctx context.Context, alert domain.PriceAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAlertRepository) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAlertRepository) List(ctx context.Context) ([]domain.PriceAlert, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PriceAlert), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func flightsFixture() []domain.Flight {
	return []domain.Flight{
		{ID: "FL-1", Origin: "Delhi", Destination: "Mumbai", Price: 5200},
		{ID: "FL-2", Origin: "Delhi", Destination: "Mumbai", Price: 4100},
		{ID: "FL-3", Origin: "Delhi", Destination: "Mumbai", Price: 3900},
	}
}

func TestCreateAlert_Success(t *testing.T) {
	repo := new(MockAlertRepository)
	repo.On("Append", mock.Anything, mock.AnythingOfType("domain.PriceAlert")).Return(nil)

	service := NewAlertService(repo, nil, "")

	alert, err := service.CreateAlert(context.Background(), CreateAlertInput{
		Origin:      "Delhi",
		Destination: "Mumbai",
		Date:        "2026-10-15",
		TargetPrice: 4500,
	})

	require.NoError(t, err)
	assert.Regexp(t, `^AL-[0-9A-F-]{8}$`, alert.ID)
	assert.False(t, alert.IsTriggered)
	assert.False(t, alert.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestCreateAlert_Validation(t *testing.T) {
	testCases := []struct {
		name  string
		input CreateAlertInput
	}{
		{"empty origin", CreateAlertInput{Destination: "Mumbai", TargetPrice: 4500}},
		{"empty destination", CreateAlertInput{Origin: "Delhi", TargetPrice: 4500}},
		{"zero target price", CreateAlertInput{Origin: "Delhi", Destination: "Mumbai"}},
		{"negative target price", CreateAlertInput{Origin: "Delhi", Destination: "Mumbai", TargetPrice: -1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockAlertRepository)
			service := NewAlertService(repo, nil, "")

			_, err := service.CreateAlert(context.Background(), tc.input)

			assert.Error(t, err)
			repo.AssertNotCalled(t, "Append")
		})
	}
}

// The first matching flight in list order wins, even when a cheaper one
// appears later in the results.
func TestCheckAlerts_FirstMatchWins(t *testing.T) {
	repo := new(MockAlertRepository)
	producer := new(MockProducer)

	alert := domain.PriceAlert{ID: "AL-1", Origin: "Delhi", Destination: "Mumbai", TargetPrice: 4500}
	repo.On("List", mock.Anything).Return([]domain.PriceAlert{alert}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(a domain.PriceAlert) bool {
		return a.ID == "AL-1" && a.IsTriggered && a.CurrentPrice == 4100
	})).Return(nil)
	producer.On("Publish", mock.Anything, "notifications", "AL-1", mock.Anything).Return(nil)

	service := NewAlertService(repo, producer, "notifications")

	triggered, err := service.CheckAlerts(context.Background(), flightsFixture())

	require.NoError(t, err)
	assert.True(t, triggered)
	repo.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestCheckAlerts_TriggeredAlertIsIdempotent(t *testing.T) {
	repo := new(MockAlertRepository)
	producer := new(MockProducer)

	alert := domain.PriceAlert{ID: "AL-1", Origin: "Delhi", Destination: "Mumbai", TargetPrice: 4500, IsTriggered: true, CurrentPrice: 4100}
	repo.On("List", mock.Anything).Return([]domain.PriceAlert{alert}, nil)

	service := NewAlertService(repo, producer, "notifications")

	triggered, err := service.CheckAlerts(context.Background(), flightsFixture())

	require.NoError(t, err)
	assert.False(t, triggered)
	repo.AssertNotCalled(t, "Update")
	producer.AssertNotCalled(t, "Publish")
}

func TestCheckAlerts_RouteMatchIsCaseInsensitive(t *testing.T) {
	repo := new(MockAlertRepository)

	alert := domain.PriceAlert{ID: "AL-1", Origin: "delhi", Destination: "MUMBAI", TargetPrice: 6000}
	repo.On("List", mock.Anything).Return([]domain.PriceAlert{alert}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewAlertService(repo, nil, "")

	triggered, err := service.CheckAlerts(context.Background(), flightsFixture())

	require.NoError(t, err)
	assert.True(t, triggered)
}

func TestCheckAlerts_NoMatchAboveTarget(t *testing.T) {
	repo := new(MockAlertRepository)

	alert := domain.PriceAlert{ID: "AL-1", Origin: "Delhi", Destination: "Mumbai", TargetPrice: 3000}
	repo.On("List", mock.Anything).Return([]domain.PriceAlert{alert}, nil)

	service := NewAlertService(repo, nil, "")

	triggered, err := service.CheckAlerts(context.Background(), flightsFixture())

	require.NoError(t, err)
	assert.False(t, triggered)
	repo.AssertNotCalled(t, "Update")
}

func TestRemoveAlert_NotFound(t *testing.T) {
	repo := new(MockAlertRepository)
	repo.On("Remove", mock.Anything, "AL-MISSING").Return(store.ErrNotFound)

	service := NewAlertService(repo, nil, "")

	err := service.RemoveAlert(context.Background(), "AL-MISSING")

	assert.ErrorIs(t, err, store.ErrNotFound)
}
