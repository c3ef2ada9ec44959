package store

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/Domenick1991/fastflight/internal/domain"
)

const alertsFile = "alerts.json"

type AlertRepository interface {
	Append(ctx context.Context, alert domain.PriceAlert) error
	Update(ctx context.Context, alert domain.PriceAlert) error
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.PriceAlert, error)
}

// FileAlertStore mirrors FileBookingStore for the price-alert collection.
type FileAlertStore struct {
	mu     sync.Mutex
	path   string
	alerts []domain.PriceAlert
}

func NewAlertStore(dataDir string) (*FileAlertStore, error) {
	path := filepath.Join(dataDir, alertsFile)
	alerts, err := loadCollection[domain.PriceAlert](path)
	if err != nil {
		return nil, err
	}
	return &FileAlertStore{path: path, alerts: alerts}, nil
}

func (s *FileAlertStore) Append(ctx context.Context, alert domain.PriceAlert) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerts = append(s.alerts, alert)
	return writeCollection(s.path, s.alerts)
}

func (s *FileAlertStore) Update(ctx context.Context, alert domain.PriceAlert) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.alerts {
		if s.alerts[i].ID == alert.ID {
			s.alerts[i] = alert
			return writeCollection(s.path, s.alerts)
		}
	}
	return ErrNotFound
}

func (s *FileAlertStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			return writeCollection(s.path, s.alerts)
		}
	}
	return ErrNotFound
}

func (s *FileAlertStore) List(ctx context.Context) ([]domain.PriceAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.PriceAlert, len(s.alerts))
	copy(out, s.alerts)
	return out, nil
}

var _ AlertRepository = (*FileAlertStore)(nil)
