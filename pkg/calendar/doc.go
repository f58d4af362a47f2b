// Package calendar defines the activity calendar consumed by the scene engine.
//
// An [Calendar] is a week-major sequence of [Week] values, each holding up to
// seven [Day] entries in GitHub's order (Sunday first). Full weeks carry
// exactly seven days; the first and last week of a GitHub year may be
// partial, in which case each day is placed on the row of its weekday.
//
// # Cells
//
// [Calendar.Cells] flattens the calendar into grid cells. The week index
// becomes the w axis and the weekday the d axis of the isometric grid:
//
//	for _, c := range cal.Cells() {
//	    fmt.Println(c.Week, c.Day, c.Count)
//	}
//
// # JSON
//
// [ReadJSON] and [WriteJSON] use the shape returned by GitHub's GraphQL
// contributionCalendar field, so a response body can be saved and re-rendered
// offline:
//
//	{
//	  "totalContributions": 3,
//	  "weeks": [
//	    {"contributionDays": [
//	      {"date": "2024-01-07", "contributionCount": 3, "color": "#40c463"}
//	    ]}
//	  ]
//	}
package calendar
