package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/WJZ-P/CommitCraft/internal/server"
	"github.com/WJZ-P/CommitCraft/pkg/observability/metrics"
	"github.com/WJZ-P/CommitCraft/pkg/pipeline"
)

// serveCommand creates the serve command, which runs the HTTP API until
// interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr        string
		withMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve calendars and rendered scenes over HTTP",
		Example: `  commitcraft serve --addr :8080
  curl 'localhost:8080/api/scene/octocat?format=svg&seed=42'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer runner.Close()

			defaults := pipeline.Options{}
			c.setCLIDefaults(&defaults)
			defaults.GitHubToken = ""

			cfg := c.Config.Server
			opts := server.Options{
				Addr:         cfg.Addr,
				ReadTimeout:  cfg.ReadTimeout.Duration,
				WriteTimeout: cfg.WriteTimeout.Duration,
				Token:        c.Config.GitHub.Token,
				Defaults:     defaults,
			}
			if addr != "" {
				opts.Addr = addr
			}
			if withMetrics {
				reg := prometheus.NewRegistry()
				reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
				opts.Metrics = metrics.New(reg)
				opts.Metrics.Install()
			}
			if opts.Token == "" {
				c.Logger.Warn("no GitHub token configured; requests must pass ?token=")
			}

			return server.New(runner, c.Logger, opts).ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&withMetrics, "metrics", true, "expose Prometheus metrics on /metrics")
	return cmd
}
