package calendar

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/WJZ-P/CommitCraft/pkg/errors"
)

type calendarJSON struct {
	TotalContributions int        `json:"totalContributions"`
	Weeks              []weekJSON `json:"weeks"`
	AvatarURL          string     `json:"avatarUrl,omitempty"`
}

type weekJSON struct {
	ContributionDays []dayJSON `json:"contributionDays"`
}

type dayJSON struct {
	Date              string `json:"date"`
	ContributionCount int    `json:"contributionCount"`
	Color             string `json:"color,omitempty"`
	ContributionLevel string `json:"contributionLevel,omitempty"`
	Weekday           *int   `json:"weekday,omitempty"`
}

// ReadJSON decodes a GitHub contributionCalendar object from r.
//
// Levels are taken from contributionLevel when present, then from color,
// and finally estimated from the count. ReadJSON rejects negative counts
// and weeks with more than seven days. It does not close r.
func ReadJSON(r io.Reader) (*Calendar, error) {
	var data calendarJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCalendar, err, "decode calendar")
	}
	return fromJSON(data)
}

// Unmarshal decodes a calendar from a byte slice. See [ReadJSON].
func Unmarshal(b []byte) (*Calendar, error) {
	var data calendarJSON
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCalendar, err, "decode calendar")
	}
	return fromJSON(data)
}

func fromJSON(data calendarJSON) (*Calendar, error) {
	cal := &Calendar{
		Total:     data.TotalContributions,
		Weeks:     make([]Week, len(data.Weeks)),
		AvatarURL: data.AvatarURL,
	}
	for wi, w := range data.Weeks {
		if len(w.ContributionDays) > DaysPerWeek {
			return nil, errors.New(errors.ErrCodeInvalidCalendar, "week %d has %d days", wi, len(w.ContributionDays))
		}
		days := make([]Day, len(w.ContributionDays))
		for di, d := range w.ContributionDays {
			if d.ContributionCount < 0 {
				return nil, errors.New(errors.ErrCodeInvalidCalendar, "day %s has negative count %d", d.Date, d.ContributionCount)
			}
			day := Day{Date: d.Date, Count: d.ContributionCount, Color: d.Color, Weekday: di}
			if d.Weekday != nil {
				day.Weekday = *d.Weekday
			}
			day.Level = resolveLevel(d)
			days[di] = day
		}
		cal.Weeks[wi] = Week{Days: days}
	}
	return cal, nil
}

func resolveLevel(d dayJSON) Level {
	if l, ok := LevelFromName(d.ContributionLevel); ok {
		return l
	}
	if d.Color != "" {
		return LevelFromColor(d.Color)
	}
	return LevelFromCount(d.ContributionCount)
}

// WriteJSON encodes cal in the same shape [ReadJSON] accepts.
func WriteJSON(cal *Calendar, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSON(cal)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Marshal encodes cal compactly. See [WriteJSON].
func Marshal(cal *Calendar) ([]byte, error) {
	return json.Marshal(toJSON(cal))
}

func toJSON(cal *Calendar) calendarJSON {
	out := calendarJSON{
		TotalContributions: cal.Total,
		Weeks:              make([]weekJSON, len(cal.Weeks)),
		AvatarURL:          cal.AvatarURL,
	}
	for wi, w := range cal.Weeks {
		days := make([]dayJSON, len(w.Days))
		for di, d := range w.Days {
			wd := d.Weekday
			days[di] = dayJSON{
				Date:              d.Date,
				ContributionCount: d.Count,
				Color:             d.Color,
				ContributionLevel: d.Level.String(),
				Weekday:           &wd,
			}
		}
		out.Weeks[wi] = weekJSON{ContributionDays: days}
	}
	return out
}

// ImportJSON reads a calendar from the JSON file at path.
func ImportJSON(path string) (*Calendar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}

// ExportJSON writes cal to a JSON file at path.
func ExportJSON(cal *Calendar, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(cal, f)
}
