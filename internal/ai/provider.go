package ai

import (
	"context"
	"errors"

	"github.com/Domenick1991/fastflight/internal/domain"
)

// ErrBadResponse marks a provider reply that failed schema validation.
// Malformed AI output becomes this typed failure instead of propagating as
// an ad hoc runtime fault.
var ErrBadResponse = errors.New("ai provider returned a malformed response")

const (
	TripTypeOneWay    = "one-way"
	TripTypeRoundTrip = "round-trip"
)

// SearchCriteria is the input contract of the external AI search call.
type SearchCriteria struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	TripType      string `json:"trip_type"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Travelers     int    `json:"travelers"`
}

// ChatMessage is one turn of the concierge conversation.
type ChatMessage struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// ChatReply is the concierge answer, optionally carrying flights the model
// wants to surface as cards.
type ChatReply struct {
	Text             string          `json:"text"`
	SuggestedFlights []domain.Flight `json:"suggested_flights,omitempty"`
}

// SearchProvider produces simulated flights for the given criteria.
type SearchProvider interface {
	Search(ctx context.Context, criteria SearchCriteria) ([]domain.Flight, error)
}

// ChatProvider answers concierge conversations.
type ChatProvider interface {
	Chat(ctx context.Context, conversation []ChatMessage) (*ChatReply, error)
}

// ProviderError attaches the provider name to an underlying failure.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Provider + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}
