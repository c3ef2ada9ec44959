package ai

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/fastflight/internal/domain"
	sdk "github.com/github/copilot-sdk/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const providerName = "copilot"

// CopilotProvider drives flight search and concierge chat through a
// Copilot SDK session per call. Structured output is obtained by forcing
// the model through a capture tool and validating what it hands over.
type CopilotProvider struct {
	client  *sdk.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
}

type CopilotConfig struct {
	Model             string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

func NewCopilotProvider(client *sdk.Client, cfg CopilotConfig) *CopilotProvider {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps == 0 {
		rps = 1
	}
	burst := cfg.Burst
	if burst == 0 {
		burst = 2
	}
	return &CopilotProvider{
		client:  client,
		model:   cfg.Model,
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

const searchSystemMessage = `You are a flight inventory simulator for an Indian travel app.
When asked for flights, invent 5 to 8 plausible itineraries for the requested route and date:
- Use real Indian and international carriers appropriate to the route
- Prices are integer INR totals for all travelers
- Times are 12-hour strings like "9:05 AM"; durations like "3h 45m"
- Mix non-stop and 1-2 stop options
Call the capture_flights tool exactly once with the full list. Do not answer in prose.`

func (p *CopilotProvider) Search(ctx context.Context, criteria SearchCriteria) ([]domain.Flight, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, NewProviderError(providerName, err)
	}

	var captured *FlightListParams
	var mu sync.Mutex

	captureTool := sdk.DefineTool("capture_flights",
		"Capture the simulated flight list for the user's search",
		func(params FlightListParams, inv sdk.ToolInvocation) (any, error) {
			mu.Lock()
			captured = &params
			mu.Unlock()
			return map[string]string{"status": "captured"}, nil
		})

	session, err := p.client.CreateSession(&sdk.SessionConfig{
		Model: p.model,
		Tools: []sdk.Tool{captureTool},
		SystemMessage: &sdk.SystemMessageConfig{
			Mode:    "replace",
			Content: searchSystemMessage,
		},
	})
	if err != nil {
		return nil, NewProviderError(providerName, fmt.Errorf("create session: %w", err))
	}
	defer session.Destroy()

	prompt := fmt.Sprintf("Find %s flights from %s to %s departing %s for %d traveler(s).",
		criteria.TripType, criteria.Origin, criteria.Destination, criteria.DepartureDate, criteria.Travelers)
	if criteria.ReturnDate != "" {
		prompt += fmt.Sprintf(" Return date: %s.", criteria.ReturnDate)
	}

	errCh := make(chan error, 1)
	go func() {
		if _, sendErr := session.Send(sdk.MessageOptions{Prompt: prompt}); sendErr != nil {
			errCh <- fmt.Errorf("send message: %w", sendErr)
		}
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	timeout := time.After(p.timeout)

	for {
		select {
		case <-ctx.Done():
			return nil, NewProviderError(providerName, ctx.Err())
		case err := <-errCh:
			return nil, NewProviderError(providerName, err)
		case <-timeout:
			return nil, NewProviderError(providerName, fmt.Errorf("search timed out after %v", p.timeout))
		case <-ticker.C:
			mu.Lock()
			if captured != nil {
				params := captured.Flights
				mu.Unlock()
				flights, err := validateFlights(params)
				if err != nil {
					return nil, NewProviderError(providerName, err)
				}
				logrus.WithFields(logrus.Fields{
					"origin":      criteria.Origin,
					"destination": criteria.Destination,
					"flights":     len(flights),
				}).Debug("ai search completed")
				return flights, nil
			}
			mu.Unlock()
		}
	}
}

const chatSystemMessage = `You are the FastFlight concierge, a friendly assistant for an Indian flight booking app.
Answer travel questions briefly and conversationally, without markdown tables.
When you want to recommend specific flights, call the suggest_flights tool with
simulated itineraries (same rules as the inventory: INR prices, 12-hour times)
and mention them in your reply.`

func (p *CopilotProvider) Chat(ctx context.Context, conversation []ChatMessage) (*ChatReply, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, NewProviderError(providerName, err)
	}

	var suggested *FlightListParams
	var mu sync.Mutex

	suggestTool := sdk.DefineTool("suggest_flights",
		"Attach simulated flights to the concierge reply",
		func(params FlightListParams, inv sdk.ToolInvocation) (any, error) {
			mu.Lock()
			suggested = &params
			mu.Unlock()
			return map[string]string{"status": "attached"}, nil
		})

	session, err := p.client.CreateSession(&sdk.SessionConfig{
		Model: p.model,
		Tools: []sdk.Tool{suggestTool},
		SystemMessage: &sdk.SystemMessageConfig{
			Mode:    "replace",
			Content: chatSystemMessage,
		},
	})
	if err != nil {
		return nil, NewProviderError(providerName, fmt.Errorf("create session: %w", err))
	}
	defer session.Destroy()

	var finalResponse string
	done := make(chan struct{})

	session.On(func(event sdk.SessionEvent) {
		switch event.Type {
		case "assistant.message":
			if event.Data.Content != nil {
				finalResponse = *event.Data.Content
			}
		case "session.idle":
			close(done)
		}
	})

	if _, err := session.Send(sdk.MessageOptions{Prompt: renderConversation(conversation)}); err != nil {
		return nil, NewProviderError(providerName, fmt.Errorf("send message: %w", err))
	}

	select {
	case <-ctx.Done():
		return nil, NewProviderError(providerName, ctx.Err())
	case <-time.After(p.timeout):
		return nil, NewProviderError(providerName, fmt.Errorf("chat timed out after %v", p.timeout))
	case <-done:
	}

	reply := &ChatReply{Text: finalResponse}
	mu.Lock()
	if suggested != nil {
		flights, err := validateFlights(suggested.Flights)
		if err != nil {
			mu.Unlock()
			return nil, NewProviderError(providerName, err)
		}
		reply.SuggestedFlights = flights
	}
	mu.Unlock()
	return reply, nil
}

// renderConversation flattens prior turns into one prompt; the session is
// created fresh per call, so history travels with the message.
func renderConversation(conversation []ChatMessage) string {
	if len(conversation) == 1 {
		return conversation[0].Text
	}

	var b strings.Builder
	b.WriteString("Conversation so far:\n")
	for _, msg := range conversation[:len(conversation)-1] {
		role := "Traveler"
		if msg.Role == "model" {
			role = "Concierge"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, msg.Text)
	}
	fmt.Fprintf(&b, "\nTraveler's latest message: %s", conversation[len(conversation)-1].Text)
	return b.String()
}

var (
	_ SearchProvider = (*CopilotProvider)(nil)
	_ ChatProvider   = (*CopilotProvider)(nil)
)
