package calendar

import (
	"strings"
	"time"
)

// DaysPerWeek is the number of rows in the contribution grid.
const DaysPerWeek = 7

// DateLayout is the format of [Day.Date].
const DateLayout = "2006-01-02"

// Level is GitHub's coarse five-step color tier for a day.
type Level int

// Color tiers, from no activity to the top quartile.
const (
	LevelNone Level = iota
	LevelFirstQuartile
	LevelSecondQuartile
	LevelThirdQuartile
	LevelFourthQuartile
)

// MaxLevel is the highest color tier.
const MaxLevel = LevelFourthQuartile

var levelByColor = map[string]Level{
	"#ebedf0": LevelNone,
	"#9be9a8": LevelFirstQuartile,
	"#40c463": LevelSecondQuartile,
	"#30a14e": LevelThirdQuartile,
	"#216e39": LevelFourthQuartile,
}

var levelByName = map[string]Level{
	"NONE":            LevelNone,
	"FIRST_QUARTILE":  LevelFirstQuartile,
	"SECOND_QUARTILE": LevelSecondQuartile,
	"THIRD_QUARTILE":  LevelThirdQuartile,
	"FOURTH_QUARTILE": LevelFourthQuartile,
}

var levelNames = [...]string{"NONE", "FIRST_QUARTILE", "SECOND_QUARTILE", "THIRD_QUARTILE", "FOURTH_QUARTILE"}

// String returns GitHub's ContributionLevel enum name.
func (l Level) String() string {
	if l < LevelNone || l > MaxLevel {
		return levelNames[0]
	}
	return levelNames[l]
}

// LevelFromColor maps a GitHub light-theme calendar color to its tier.
// Unknown colors map to LevelNone.
func LevelFromColor(color string) Level {
	return levelByColor[strings.ToLower(color)]
}

// LevelFromName maps a GitHub ContributionLevel enum name to its tier.
func LevelFromName(name string) (Level, bool) {
	l, ok := levelByName[strings.ToUpper(name)]
	return l, ok
}

// LevelFromCount estimates a tier from a raw count. It is used for calendars
// that carry neither a color nor a level, such as hand-written fixtures.
func LevelFromCount(count int) Level {
	switch {
	case count <= 0:
		return LevelNone
	case count < 4:
		return LevelFirstQuartile
	case count < 7:
		return LevelSecondQuartile
	case count < 10:
		return LevelThirdQuartile
	default:
		return LevelFourthQuartile
	}
}

// Day is one calendar entry.
type Day struct {
	Date    string // YYYY-MM-DD
	Count   int    // non-negative contribution count
	Color   string // GitHub color, may be empty
	Level   Level
	Weekday int // 0 = Sunday
}

// Week is an ordered run of days, Sunday first.
type Week struct {
	Days []Day
}

// Calendar is an immutable activity calendar.
type Calendar struct {
	Total     int // totalContributions as reported upstream
	Weeks     []Week
	AvatarURL string // optional, filled in by the GitHub client
}

// Cell is a flattened grid position for one day.
type Cell struct {
	Week  int // w axis
	Day   int // d axis, 0..6
	Count int
	Date  string
	Level Level
}

// Cells returns one cell per day in week-major enumeration order.
// Days of a partial week are placed on the row of their weekday.
func (c *Calendar) Cells() []Cell {
	if c == nil {
		return nil
	}
	cells := make([]Cell, 0, c.DayCount())
	for wi, w := range c.Weeks {
		for di, d := range w.Days {
			cells = append(cells, Cell{
				Week:  wi,
				Day:   row(w, di),
				Count: d.Count,
				Date:  d.Date,
				Level: d.Level,
			})
		}
	}
	return cells
}

// row resolves the grid row of the i-th day of w.
func row(w Week, i int) int {
	if len(w.Days) == DaysPerWeek {
		return i
	}
	d := w.Days[i]
	if t, err := time.Parse(DateLayout, d.Date); err == nil {
		return int(t.Weekday())
	}
	if d.Weekday >= 0 && d.Weekday < DaysPerWeek {
		return d.Weekday
	}
	return i
}

// DayCount returns the number of day entries across all weeks.
func (c *Calendar) DayCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, w := range c.Weeks {
		n += len(w.Days)
	}
	return n
}

// IsEmpty reports whether the calendar has no day entries.
func (c *Calendar) IsEmpty() bool {
	return c.DayCount() == 0
}

// Sum adds up the per-day counts. It can differ from Total when a
// calendar was edited by hand.
func (c *Calendar) Sum() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, w := range c.Weeks {
		for _, d := range w.Days {
			n += d.Count
		}
	}
	return n
}

// MaxCount returns the highest single-day count.
func (c *Calendar) MaxCount() int {
	if c == nil {
		return 0
	}
	m := 0
	for _, w := range c.Weeks {
		for _, d := range w.Days {
			m = max(m, d.Count)
		}
	}
	return m
}

// Span returns the first and last dates of the calendar, or empty strings
// for an empty calendar.
func (c *Calendar) Span() (first, last string) {
	if c.IsEmpty() {
		return "", ""
	}
	for _, w := range c.Weeks {
		if len(w.Days) > 0 {
			first = w.Days[0].Date
			break
		}
	}
	for i := len(c.Weeks) - 1; i >= 0; i-- {
		if days := c.Weeks[i].Days; len(days) > 0 {
			last = days[len(days)-1].Date
			break
		}
	}
	return first, last
}

// DownloadName returns the export file name for a scene of label,
// for example "octocat-commitcraft.svg".
func DownloadName(label, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = "svg"
	}
	return label + "-commitcraft." + ext
}
