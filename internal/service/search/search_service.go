package search

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Domenick1991/fastflight/internal/ai"
	"github.com/Domenick1991/fastflight/internal/cache"
	"github.com/Domenick1991/fastflight/internal/domain"
	"github.com/Domenick1991/fastflight/internal/filter"
	"github.com/sirupsen/logrus"
)

var ErrUnknownFlight = errors.New("flight is not part of the current search results")

type SearchUseCase interface {
	Search(ctx context.Context, criteria ai.SearchCriteria) (*SearchResult, error)
	ToggleCompare(flightID string) ([]domain.Flight, error)
	CompareList() []domain.Flight
	ClearCompare()
	Chat(ctx context.Context, conversation []ai.ChatMessage) (*ai.ChatReply, error)
}

type AlertChecker interface {
	CheckAlerts(ctx context.Context, flights []domain.Flight) (bool, error)
}

type SearchResult struct {
	Flights        []domain.Flight `json:"flights"`
	ReturnFlights  []domain.Flight `json:"return_flights,omitempty"`
	AlertTriggered bool            `json:"alert_triggered"`
	FromCache      bool            `json:"from_cache"`
}

// SearchService runs searches through the AI provider behind the cache and
// owns the per-session state that hangs off the latest results: the bounded
// compare selection and the flight list compare toggles resolve against.
type SearchService struct {
	provider     ai.SearchProvider
	chatProvider ai.ChatProvider
	cache        cache.SearchCache
	alerts       AlertChecker

	mu          sync.Mutex
	lastResults []domain.Flight
	compare     *filter.CompareSelection
}

func NewSearchService(provider ai.SearchProvider, chatProvider ai.ChatProvider, searchCache cache.SearchCache, alerts AlertChecker) *SearchService {
	if searchCache == nil {
		searchCache = cache.NewNoOpCache()
	}
	return &SearchService{
		provider:     provider,
		chatProvider: chatProvider,
		cache:        searchCache,
		alerts:       alerts,
		compare:      filter.NewCompareSelection(),
	}
}

// Search fetches flights for the criteria, cache first. A round trip fetches
// the return leg with origin and destination swapped. Every new search checks
// price alerts against the combined results and clears the compare selection.
func (s *SearchService) Search(ctx context.Context, criteria ai.SearchCriteria) (*SearchResult, error) {
	if err := validateCriteria(criteria); err != nil {
		return nil, err
	}

	outbound, fromCache, err := s.fetchLeg(ctx, criteria)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{Flights: outbound, FromCache: fromCache}

	if criteria.TripType == ai.TripTypeRoundTrip {
		returnLeg, returnFromCache, err := s.fetchLeg(ctx, returnCriteria(criteria))
		if err != nil {
			return nil, err
		}
		result.ReturnFlights = returnLeg
		result.FromCache = fromCache && returnFromCache
	}

	all := append(append([]domain.Flight{}, result.Flights...), result.ReturnFlights...)

	if s.alerts != nil {
		triggered, err := s.alerts.CheckAlerts(ctx, all)
		if err != nil {
			logrus.WithError(err).Warn("price alert check failed")
		} else {
			result.AlertTriggered = triggered
		}
	}

	s.mu.Lock()
	s.lastResults = all
	s.compare.Clear()
	s.mu.Unlock()

	return result, nil
}

// ToggleCompare adds or removes a flight from the compare tray by id. The
// flight must come from the latest search; the tray holds at most three.
func (s *SearchService) ToggleCompare(flightID string) ([]domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.lastResults {
		if f.ID == flightID {
			if err := s.compare.Toggle(f); err != nil {
				return nil, err
			}
			return s.compare.Flights(), nil
		}
	}
	return nil, ErrUnknownFlight
}

func (s *SearchService) CompareList() []domain.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.compare.Flights()
}

func (s *SearchService) ClearCompare() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.compare.Clear()
}

func (s *SearchService) Chat(ctx context.Context, conversation []ai.ChatMessage) (*ai.ChatReply, error) {
	if len(conversation) == 0 {
		return nil, errors.New("conversation is empty")
	}
	if strings.TrimSpace(conversation[len(conversation)-1].Text) == "" {
		return nil, errors.New("message is empty")
	}
	return s.chatProvider.Chat(ctx, conversation)
}

func (s *SearchService) fetchLeg(ctx context.Context, criteria ai.SearchCriteria) ([]domain.Flight, bool, error) {
	if flights, ok := s.cache.Get(ctx, criteria); ok {
		logrus.WithFields(logrus.Fields{
			"origin":      criteria.Origin,
			"destination": criteria.Destination,
		}).Debug("search cache hit")
		return flights, true, nil
	}

	flights, err := s.provider.Search(ctx, criteria)
	if err != nil {
		return nil, false, err
	}

	if err := s.cache.Set(ctx, criteria, flights); err != nil {
		logrus.WithError(err).Warn("failed to cache search results")
	}
	return flights, false, nil
}

func validateCriteria(criteria ai.SearchCriteria) error {
	if strings.TrimSpace(criteria.Origin) == "" {
		return errors.New("origin is required")
	}
	if strings.TrimSpace(criteria.Destination) == "" {
		return errors.New("destination is required")
	}
	if strings.TrimSpace(criteria.DepartureDate) == "" {
		return errors.New("departure date is required")
	}
	if criteria.TripType == ai.TripTypeRoundTrip && strings.TrimSpace(criteria.ReturnDate) == "" {
		return errors.New("return date is required for a round trip")
	}
	if criteria.Travelers < 1 {
		return errors.New("at least one traveler is required")
	}
	return nil
}

// returnCriteria builds the reverse leg: swapped endpoints, departing on the
// return date. The leg is fetched as one-way so its cache key stands alone.
func returnCriteria(criteria ai.SearchCriteria) ai.SearchCriteria {
	return ai.SearchCriteria{
		Origin:        criteria.Destination,
		Destination:   criteria.Origin,
		TripType:      ai.TripTypeOneWay,
		DepartureDate: criteria.ReturnDate,
		Travelers:     criteria.Travelers,
	}
}

var _ SearchUseCase = (*SearchService)(nil)
