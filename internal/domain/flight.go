package domain

// Flight is one simulated itinerary returned by the AI search provider.
// Times are 12-hour strings ("9:05 AM") and Duration is the display form
// ("3h 45m"); the filter package parses both when needed.
type Flight struct {
	ID                string `json:"id"`
	Airline           string `json:"airline"`
	FlightNumber      string `json:"flight_number"`
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	IATADepartureCode string `json:"iata_departure_code"`
	IATAArrivalCode   string `json:"iata_arrival_code"`
	DepartureTime     string `json:"departure_time"`
	ArrivalTime       string `json:"arrival_time"`
	Duration          string `json:"duration"`
	Stops             int    `json:"stops"`
	Price             int    `json:"price"`
	BaggageCabin      string `json:"baggage_cabin"`
	BaggageChecked    string `json:"baggage_checked"`
}
