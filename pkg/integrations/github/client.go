package github

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/WJZ-P/CommitCraft/pkg/cache"
	"github.com/WJZ-P/CommitCraft/pkg/calendar"
	cerrors "github.com/WJZ-P/CommitCraft/pkg/errors"
	"github.com/WJZ-P/CommitCraft/pkg/integrations"
)

// DefaultEndpoint is the GitHub GraphQL API.
const DefaultEndpoint = "https://api.github.com/graphql"

// Range limits the fetched calendar. Zero values let GitHub choose, which
// yields the year ending today.
type Range struct {
	From time.Time
	To   time.Time
}

// Client fetches contribution calendars from the GitHub GraphQL API.
// It handles HTTP requests with caching, automatic retries, and authentication.
type Client struct {
	*integrations.Client
	endpoint string
	token    string
}

// NewClient creates a GitHub client. The GraphQL API requires a token;
// requests without one fail with UNAUTHORIZED before reaching the network.
func NewClient(c cache.Cache, token string, cacheTTL time.Duration) *Client {
	headers := map[string]string{"Accept": "application/json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &Client{
		Client:   integrations.NewClient(c, "github", cacheTTL, headers),
		endpoint: DefaultEndpoint,
		token:    token,
	}
}

// SetEndpoint points the client at another GraphQL endpoint, such as a
// GitHub Enterprise server.
func (c *Client) SetEndpoint(url string) { c.endpoint = url }

// Contributions returns the contribution calendar of username.
// If refresh is true, cached data is bypassed.
func (c *Client) Contributions(ctx context.Context, username string, r Range, refresh bool) (*calendar.Calendar, error) {
	if err := cerrors.ValidateUsername(username); err != nil {
		return nil, err
	}
	if c.token == "" {
		return nil, cerrors.New(cerrors.ErrCodeUnauthorized, "a GitHub token is required to read contribution calendars")
	}

	key := c.key(username, r)
	var payload calendarPayload
	err := c.Cached(ctx, key, refresh, &payload, func() error {
		return c.fetch(ctx, username, r, &payload)
	})
	if err != nil {
		return nil, mapError(err, username)
	}

	cal, err := calendar.Unmarshal(payload.Calendar)
	if err != nil {
		return nil, err
	}
	cal.AvatarURL = payload.AvatarURL
	return cal, nil
}

func (c *Client) key(username string, r Range) string {
	key := strings.ToLower(username)
	if !r.From.IsZero() || !r.To.IsZero() {
		key += ":" + dateOrEmpty(r.From) + ":" + dateOrEmpty(r.To)
	}
	return key
}

func dateOrEmpty(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(calendar.DateLayout)
}

func (c *Client) fetch(ctx context.Context, username string, r Range, out *calendarPayload) error {
	vars := map[string]any{"login": username}
	if !r.From.IsZero() {
		vars["from"] = r.From.UTC().Format(time.RFC3339)
	}
	if !r.To.IsZero() {
		vars["to"] = r.To.UTC().Format(time.RFC3339)
	}

	var resp contributionsResponse
	if err := c.PostJSON(ctx, c.endpoint, graphQLRequest{Query: contributionsQuery, Variables: vars}, &resp); err != nil {
		return err
	}
	if len(resp.Errors) > 0 {
		return graphQLErrors(resp.Errors)
	}
	if resp.Data.User == nil {
		return errUserNotFound
	}
	*out = calendarPayload{
		AvatarURL: resp.Data.User.AvatarURL,
		Calendar:  resp.Data.User.ContributionsCollection.ContributionCalendar,
	}
	return nil
}

var errUserNotFound = errors.New("user not found")

type graphQLErrors []graphQLError

func (e graphQLErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ge := range e {
		msgs[i] = ge.Message
	}
	return strings.Join(msgs, "; ")
}

func (e graphQLErrors) notFound() bool {
	for _, ge := range e {
		if ge.Type == "NOT_FOUND" {
			return true
		}
	}
	return false
}

// mapError converts transport and GraphQL failures into coded errors.
func mapError(err error, username string) error {
	var gql graphQLErrors
	var rl *integrations.RateLimitError
	switch {
	case errors.Is(err, errUserNotFound), errors.As(err, &gql) && gql.notFound():
		return cerrors.Wrap(cerrors.ErrCodeUserNotFound, err, "GitHub user %q not found", username)
	case errors.As(err, &gql):
		return cerrors.Wrap(cerrors.ErrCodeNetwork, err, "GitHub GraphQL error")
	case errors.As(err, &rl):
		return cerrors.Wrap(cerrors.ErrCodeRateLimited, &cerrors.RateLimitedError{
			RetryAfter: int(rl.RetryAfter / time.Second),
			Message:    "GitHub API rate limit exceeded",
		}, "GitHub API rate limit exceeded")
	case errors.Is(err, integrations.ErrUnauthorized):
		return cerrors.Wrap(cerrors.ErrCodeUnauthorized, err, "GitHub rejected the token")
	case errors.Is(err, integrations.ErrForbidden):
		return cerrors.Wrap(cerrors.ErrCodeForbidden, err, "GitHub denied access")
	case errors.Is(err, context.DeadlineExceeded):
		return cerrors.Wrap(cerrors.ErrCodeTimeout, err, "GitHub request timed out")
	case errors.Is(err, context.Canceled):
		return err
	default:
		return cerrors.Wrap(cerrors.ErrCodeNetwork, err, "fetch contributions for %s", username)
	}
}

// Contributions fetches a calendar with a one-off client.
func Contributions(ctx context.Context, token, username string, r Range) (*calendar.Calendar, error) {
	return NewClient(nil, token, 0).Contributions(ctx, username, r, true)
}
