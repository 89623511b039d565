package bot

import (
	"fmt"
	"strings"

	"streakbot/internal/model"
	"streakbot/internal/render"
)

// RouteKind identifies what a callback token asks for.
type RouteKind int

const (
	RouteNoop RouteKind = iota
	RouteAddHabit
	RouteDayMenu
	RouteToggle
	RouteMonth
)

// Route is a parsed callback token.
type Route struct {
	Kind    RouteKind
	DayKey  string // RouteDayMenu, RouteToggle
	HabitID string // RouteToggle
	Year    int    // RouteMonth
	Month   int    // RouteMonth
}

// ParseToken parses a callback token into a route. Unknown or malformed
// tokens are an error; the dispatcher logs and ignores them rather than
// crashing the poll loop.
func ParseToken(data string) (Route, error) {
	switch {
	case data == render.TokenNoop:
		return Route{Kind: RouteNoop}, nil

	case data == render.TokenAddHabit:
		return Route{Kind: RouteAddHabit}, nil

	case strings.HasPrefix(data, "day_"):
		dayKey := strings.TrimPrefix(data, "day_")
		if _, err := model.ParseDayKey(dayKey); err != nil {
			return Route{}, err
		}
		return Route{Kind: RouteDayMenu, DayKey: dayKey}, nil

	case strings.HasPrefix(data, "toggle_"):
		rest := strings.TrimPrefix(data, "toggle_")
		parts := strings.SplitN(rest, "_", 2)
		if len(parts) != 2 || parts[1] == "" {
			return Route{}, fmt.Errorf("malformed toggle token %q", data)
		}
		if _, err := model.ParseDayKey(parts[0]); err != nil {
			return Route{}, err
		}
		return Route{Kind: RouteToggle, DayKey: parts[0], HabitID: parts[1]}, nil

	case strings.HasPrefix(data, "back_"), strings.HasPrefix(data, "month_"):
		key := data[strings.Index(data, "_")+1:]
		year, month, err := model.ParseMonthKey(key)
		if err != nil {
			return Route{}, err
		}
		return Route{Kind: RouteMonth, Year: year, Month: int(month)}, nil

	default:
		return Route{}, fmt.Errorf("unknown callback token %q", data)
	}
}
