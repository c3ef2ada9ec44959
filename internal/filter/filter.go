package filter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Domenick1991/fastflight/internal/domain"
)

// TimeWindow buckets a departure time into a part of the day.
type TimeWindow string

const (
	WindowMorning   TimeWindow = "Morning"
	WindowAfternoon TimeWindow = "Afternoon"
	WindowEvening   TimeWindow = "Evening"
	WindowNight     TimeWindow = "Night"
)

// Selections holds the active filter choices. A zero/empty field means the
// corresponding predicate passes everything.
type Selections struct {
	Airlines    []string     `json:"airlines,omitempty"`
	MaxPrice    *int         `json:"max_price,omitempty"`
	MaxDuration *int         `json:"max_duration,omitempty"`
	Stops       []int        `json:"stops,omitempty"`
	TimeWindows []TimeWindow `json:"time_windows,omitempty"`
}

// Apply returns the flights that pass all five predicates, preserving order.
func Apply(flights []domain.Flight, sel *Selections) []domain.Flight {
	if sel == nil {
		return flights
	}

	result := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if Matches(f, sel) {
			result = append(result, f)
		}
	}
	return result
}

// Matches reports whether a flight passes every active predicate.
func Matches(f domain.Flight, sel *Selections) bool {
	if len(sel.Airlines) > 0 {
		found := false
		for _, airline := range sel.Airlines {
			if strings.EqualFold(f.Airline, airline) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if sel.MaxPrice != nil && f.Price > *sel.MaxPrice {
		return false
	}

	if sel.MaxDuration != nil && ParseDuration(f.Duration) > *sel.MaxDuration {
		return false
	}

	if len(sel.Stops) > 0 {
		found := false
		for _, s := range sel.Stops {
			if f.Stops == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(sel.TimeWindows) > 0 {
		window := WindowOf(f.DepartureTime)
		found := false
		for _, w := range sel.TimeWindows {
			if window == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

var (
	hoursRe   = regexp.MustCompile(`(\d+)h`)
	minutesRe = regexp.MustCompile(`(\d+)m`)
)

// ParseDuration converts a display duration like "3h 45m" to total minutes.
// A missing token counts as zero, so "" parses to 0.
func ParseDuration(s string) int {
	hours := 0
	if m := hoursRe.FindStringSubmatch(s); m != nil {
		hours, _ = strconv.Atoi(m[1])
	}
	minutes := 0
	if m := minutesRe.FindStringSubmatch(s); m != nil {
		minutes, _ = strconv.Atoi(m[1])
	}
	return hours*60 + minutes
}

// WindowOf maps a 12-hour departure time to its window:
// [300,720) Morning, [720,1080) Afternoon, [1080,1260) Evening, else Night
// (late night and the small hours both land in Night). Unparseable strings
// map to minute 0, which falls into Night.
func WindowOf(departureTime string) TimeWindow {
	minutes := minutesSinceMidnight(departureTime)
	switch {
	case minutes >= 300 && minutes < 720:
		return WindowMorning
	case minutes >= 720 && minutes < 1080:
		return WindowAfternoon
	case minutes >= 1080 && minutes < 1260:
		return WindowEvening
	default:
		return WindowNight
	}
}

func minutesSinceMidnight(s string) int {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return 0
	}

	parts := strings.Split(fields[0], ":")
	if len(parts) != 2 {
		return 0
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}

	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 12 {
			hour += 12
		}
	default:
		return 0
	}

	return hour*60 + minute
}
