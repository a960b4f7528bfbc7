package route

// Comparator is a total order over routes: negative when a sorts before b,
// zero on a tie, positive when a sorts after b.
type Comparator func(a, b *Route) int

// Comparator selectors, as exposed by the sorting menu and the HTTP facade.
const (
	SelectPrice     = 1
	SelectDuration  = 2
	SelectStopovers = 3
	SelectCombined  = 4
)

// ByPrice orders routes by total price, ascending.
func ByPrice(a, b *Route) int {
	switch {
	case a.TotalPrice < b.TotalPrice:
		return -1
	case a.TotalPrice > b.TotalPrice:
		return 1
	default:
		return 0
	}
}

// ByDuration orders routes by total duration, ascending.
func ByDuration(a, b *Route) int {
	return a.TotalDuration - b.TotalDuration
}

// ByStopovers orders routes by stopover count, ascending.
func ByStopovers(a, b *Route) int {
	return a.Stopovers - b.Stopovers
}

// ByCombined chains price, then duration on a price tie, then stopovers on a
// price-and-duration tie. Zero only when all three aggregates are equal.
func ByCombined(a, b *Route) int {
	if c := ByPrice(a, b); c != 0 {
		return c
	}
	if c := ByDuration(a, b); c != 0 {
		return c
	}

	return ByStopovers(a, b)
}

// ComparatorFor maps a selector (1-4) to its Comparator, or nil when the
// selector is unrecognized.
func ComparatorFor(selector int) Comparator {
	switch selector {
	case SelectPrice:
		return ByPrice
	case SelectDuration:
		return ByDuration
	case SelectStopovers:
		return ByStopovers
	case SelectCombined:
		return ByCombined
	default:
		return nil
	}
}

// ComparatorName names a selector for menus and logs.
func ComparatorName(selector int) string {
	switch selector {
	case SelectPrice:
		return "Price"
	case SelectDuration:
		return "Duration"
	case SelectStopovers:
		return "Stopovers"
	case SelectCombined:
		return "Combined (Price, Duration, Stopovers)"
	default:
		return "Unknown"
	}
}
