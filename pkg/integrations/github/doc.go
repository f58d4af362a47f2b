// Package github fetches contribution calendars from the GitHub GraphQL API.
//
// # Usage
//
//	client := github.NewClient(c, token, cache.CalendarTTL)
//	cal, err := client.Contributions(ctx, "octocat", github.Range{}, false)
//	if err != nil {
//	    return err
//	}
//	fmt.Println("Total:", cal.Total)
//
// # Authentication
//
// The contributionsCollection field is only served to authenticated
// requests, so a personal access token (no scopes needed for public
// activity) is required.
//
// # Errors
//
// Errors are returned as coded [errors.Error] values:
//
//   - UNAUTHORIZED: no token, or GitHub rejected it
//   - USER_NOT_FOUND: the login does not exist
//   - RATE_LIMITED: quota exhausted, with a retry hint
//   - NETWORK_ERROR: transport failures and other GraphQL errors
//
// # Caching
//
// Calendars are cached per lowercase login and date range. The cache TTL
// is set when creating the client. Pass refresh=true to bypass the cache.
package github
