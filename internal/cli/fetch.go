package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WJZ-P/CommitCraft/pkg/calendar"
	"github.com/WJZ-P/CommitCraft/pkg/pipeline"
)

// fetchCommand creates the fetch command. It downloads a contribution
// calendar and writes it as JSON, which render --input accepts.
func (c *CLI) fetchCommand() *cobra.Command {
	var (
		output   string
		from, to string
		token    string
		noCache  bool
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "fetch <username>",
		Short: "Download a contribution calendar as JSON",
		Example: `  commitcraft fetch octocat -o octocat.json
  commitcraft fetch octocat --from 2024-01-01 --to 2024-12-31`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{}
			c.setCLIDefaults(&opts)
			opts.Username = args[0]
			opts.From, opts.To = from, to
			opts.Refresh = refresh
			if token != "" {
				opts.GitHubToken = token
			}
			if err := opts.ValidateForFetch(); err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			spinner := newSpinnerWithContext(cmd.Context(), "Fetching "+opts.Username+"...")
			spinner.Start()
			cal, hit, err := runner.FetchWithCacheInfo(cmd.Context(), opts)
			spinner.Stop()
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				data, err := calendar.Marshal(cal)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if err := calendar.ExportJSON(cal, output); err != nil {
				return err
			}

			printSuccess("Fetched %s", StyleHighlight.Render(opts.Username))
			printCalendarStats(cal, hit)
			writeLine(sparkline(cal))
			printFile(output)
			printNextStep("Render it", fmt.Sprintf("%s render --input %s", appName, output))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	f.StringVar(&from, "from", "", "first day (YYYY-MM-DD)")
	f.StringVar(&to, "to", "", "last day (YYYY-MM-DD)")
	f.StringVar(&token, "token", "", "GitHub token (default: $GITHUB_TOKEN or config)")
	f.BoolVar(&noCache, "no-cache", false, "disable caching")
	f.BoolVar(&refresh, "refresh", false, "bypass the cached calendar")

	return cmd
}
