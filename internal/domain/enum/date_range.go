package enum

// DateRange is a named dashboard reporting window
type DateRange string

const (
	DateRangeToday     DateRange = "today"
	DateRangeYesterday DateRange = "yesterday"
	DateRangeWeek      DateRange = "week"
	DateRangeMonth     DateRange = "month"
	DateRangeCustom    DateRange = "custom"
)

// ParseDateRange maps a query value to a DateRange, defaulting to today
func ParseDateRange(s string) DateRange {
	switch r := DateRange(s); r {
	case DateRangeYesterday, DateRangeWeek, DateRangeMonth, DateRangeCustom:
		return r
	default:
		return DateRangeToday
	}
}
