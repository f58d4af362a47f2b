package calendar

import "time"

// FromCounts builds a calendar of consecutive days starting at start.
// Weeks break on Sunday, so a start date mid-week yields a partial first
// week the same way GitHub's calendar does. Levels are estimated from the
// counts.
func FromCounts(start time.Time, counts []int) *Calendar {
	cal := &Calendar{}
	var cur []Day
	for i, n := range counts {
		t := start.AddDate(0, 0, i)
		if t.Weekday() == time.Sunday && len(cur) > 0 {
			cal.Weeks = append(cal.Weeks, Week{Days: cur})
			cur = nil
		}
		cur = append(cur, Day{
			Date:    t.Format(DateLayout),
			Count:   n,
			Level:   LevelFromCount(n),
			Weekday: int(t.Weekday()),
		})
		cal.Total += n
	}
	if len(cur) > 0 {
		cal.Weeks = append(cal.Weeks, Week{Days: cur})
	}
	return cal
}
