package reports

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

// GetDateRange returns the inclusive window for a preset, or for a custom
// range given as YYYY-MM-DD strings. Unknown presets fall back to weekly.
func GetDateRange(dateRange, startStr, endStr string) (time.Time, time.Time, error) {
	return dateRangeAt(time.Now().UTC(), dateRange, startStr, endStr)
}

func dateRangeAt(now time.Time, dateRange, startStr, endStr string) (time.Time, time.Time, error) {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	endOfDay := func(t time.Time) time.Time { return t.AddDate(0, 0, 1).Add(-time.Second) }

	switch dateRange {
	case DateRangeDaily:
		return today, endOfDay(today), nil
	case DateRangeWeekly:
		// last 7 days including today
		return today.AddDate(0, 0, -6), endOfDay(today), nil
	case DateRangeMonthly:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, 0).Add(-time.Second), nil
	case DateRangeYearly:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(1, 0, 0).Add(-time.Second), nil
	case DateRangeCustom:
		if startStr == "" || endStr == "" {
			return time.Time{}, time.Time{}, errors.New("start_date and end_date required for custom range")
		}
		start, err := time.ParseInLocation(dateLayout, startStr, loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, err := time.ParseInLocation(dateLayout, endStr, loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = endOfDay(end)
		if start.After(end) {
			return time.Time{}, time.Time{}, errors.New("start_date must be before end_date")
		}
		return start, end, nil
	default:
		return dateRangeAt(now, DateRangeWeekly, "", "")
	}
}
