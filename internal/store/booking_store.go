package store

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/Domenick1991/fastflight/internal/domain"
)

const bookingsFile = "bookings.json"

type BookingRepository interface {
	Append(ctx context.Context, booking domain.Booking) error
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

// FileBookingStore keeps the booking collection in memory and writes the
// whole collection through to a JSON file on every mutation.
type FileBookingStore struct {
	mu       sync.Mutex
	path     string
	bookings []domain.Booking
}

// NewBookingStore loads the persisted collection from dataDir. A missing
// file yields an empty store; a corrupt file fails construction.
func NewBookingStore(dataDir string) (*FileBookingStore, error) {
	path := filepath.Join(dataDir, bookingsFile)
	bookings, err := loadCollection[domain.Booking](path)
	if err != nil {
		return nil, err
	}
	return &FileBookingStore{path: path, bookings: bookings}, nil
}

func (s *FileBookingStore) Append(ctx context.Context, booking domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = append(s.bookings, booking)
	return writeCollection(s.path, s.bookings)
}

func (s *FileBookingStore) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			if err := writeCollection(s.path, s.bookings); err != nil {
				return nil, err
			}
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileBookingStore) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

// List returns bookings in insertion order; callers that want
// most-recent-first reverse at the presentation boundary.
func (s *FileBookingStore) List(ctx context.Context) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

var _ BookingRepository = (*FileBookingStore)(nil)
