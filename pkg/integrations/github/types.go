package github

import "encoding/json"

const contributionsQuery = `query($login: String!, $from: DateTime, $to: DateTime) {
  user(login: $login) {
    avatarUrl
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            date
            contributionCount
            color
            contributionLevel
            weekday
          }
        }
      }
    }
  }
}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type contributionsResponse struct {
	Data struct {
		User *struct {
			AvatarURL               string `json:"avatarUrl"`
			ContributionsCollection struct {
				ContributionCalendar json.RawMessage `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// calendarPayload is the cached form of one fetched calendar: the raw
// contributionCalendar object and the user's avatar.
type calendarPayload struct {
	AvatarURL string          `json:"avatar_url,omitempty"`
	Calendar  json.RawMessage `json:"calendar"`
}
