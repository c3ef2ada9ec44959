package ai

import (
	"fmt"
	"strings"

	"github.com/Domenick1991/fastflight/internal/domain"
	"github.com/google/uuid"
)

// FlightParams is the schema the model must fill when capturing flights.
type FlightParams struct {
	ID                string `json:"id" jsonschema:"Flight id, e.g. FL-7F2A91"`
	Airline           string `json:"airline" jsonschema:"Airline name, e.g. IndiGo"`
	FlightNumber      string `json:"flightNumber" jsonschema:"Flight number, e.g. 6E 2041"`
	Origin            string `json:"origin" jsonschema:"Origin city name"`
	Destination       string `json:"destination" jsonschema:"Destination city name"`
	IATADepartureCode string `json:"iataDepartureCode" jsonschema:"3-letter departure airport code"`
	IATAArrivalCode   string `json:"iataArrivalCode" jsonschema:"3-letter arrival airport code"`
	DepartureTime     string `json:"departureTime" jsonschema:"12-hour time, e.g. 9:05 AM"`
	ArrivalTime       string `json:"arrivalTime" jsonschema:"12-hour time, e.g. 11:50 AM"`
	Duration          string `json:"duration" jsonschema:"Duration like 3h 45m"`
	Stops             int    `json:"stops" jsonschema:"Number of stops, 0 for non-stop"`
	Price             int    `json:"price" jsonschema:"Total fare in INR, integer"`
	BaggageCabin      string `json:"baggageCabin" jsonschema:"Cabin baggage allowance, e.g. 7 kg"`
	BaggageChecked    string `json:"baggageChecked" jsonschema:"Checked baggage allowance, e.g. 15 kg"`
}

// FlightListParams wraps the captured flight list.
type FlightListParams struct {
	Flights []FlightParams `json:"flights" jsonschema:"The simulated flights matching the search"`
}

// validateFlights converts captured params into domain flights, rejecting
// anything that does not satisfy the response schema.
func validateFlights(params []FlightParams) ([]domain.Flight, error) {
	if len(params) == 0 {
		return []domain.Flight{}, nil
	}

	flights := make([]domain.Flight, 0, len(params))
	for i, p := range params {
		f, err := flightFromParams(p)
		if err != nil {
			return nil, fmt.Errorf("%w: flight %d: %v", ErrBadResponse, i, err)
		}
		flights = append(flights, f)
	}
	return flights, nil
}

func flightFromParams(p FlightParams) (domain.Flight, error) {
	switch {
	case strings.TrimSpace(p.Airline) == "":
		return domain.Flight{}, fmt.Errorf("missing airline")
	case strings.TrimSpace(p.FlightNumber) == "":
		return domain.Flight{}, fmt.Errorf("missing flight number")
	case strings.TrimSpace(p.Origin) == "":
		return domain.Flight{}, fmt.Errorf("missing origin")
	case strings.TrimSpace(p.Destination) == "":
		return domain.Flight{}, fmt.Errorf("missing destination")
	case strings.TrimSpace(p.DepartureTime) == "":
		return domain.Flight{}, fmt.Errorf("missing departure time")
	case p.Price <= 0:
		return domain.Flight{}, fmt.Errorf("non-positive price %d", p.Price)
	case p.Stops < 0:
		return domain.Flight{}, fmt.Errorf("negative stop count %d", p.Stops)
	}

	id := strings.TrimSpace(p.ID)
	if id == "" {
		id = "FL-" + strings.ToUpper(uuid.NewString()[:8])
	}

	return domain.Flight{
		ID:                id,
		Airline:           p.Airline,
		FlightNumber:      p.FlightNumber,
		Origin:            p.Origin,
		Destination:       p.Destination,
		IATADepartureCode: strings.ToUpper(p.IATADepartureCode),
		IATAArrivalCode:   strings.ToUpper(p.IATAArrivalCode),
		DepartureTime:     p.DepartureTime,
		ArrivalTime:       p.ArrivalTime,
		Duration:          p.Duration,
		Stops:             p.Stops,
		Price:             p.Price,
		BaggageCabin:      p.BaggageCabin,
		BaggageChecked:    p.BaggageChecked,
	}, nil
}
