package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	cerrors "github.com/WJZ-P/CommitCraft/pkg/errors"
	"github.com/WJZ-P/CommitCraft/pkg/pipeline"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso/sink"
)

// renderFlags holds the command-line flags for the render command.
type renderFlags struct {
	input     string // calendar JSON file instead of a GitHub user
	output    string // output file (single format) or directory
	formats   string // comma-separated: svg, png, json
	from, to  string // YYYY-MM-DD
	mode      string
	seed      uint64
	label     string
	scale     float64
	token     string
	textures  string // texture base URL
	embed     bool   // embed textures as data URIs
	noTooltip bool
	noAnimate bool
	noScript  bool
	noCache   bool
	refresh   bool
}

// renderCommand creates the render command.
//
//	commitcraft render octocat
//	commitcraft render octocat -f svg,png --seed 42 -o out/
//	commitcraft render --input calendar.json --mode simple
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [username]",
		Short: "Render a contribution calendar as an isometric block world",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{}
			c.setCLIDefaults(&opts)
			if err := flags.apply(cmd, args, &opts); err != nil {
				return err
			}
			runner, err := c.newRunner(cmd.Context(), flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()
			return c.runRender(cmd.Context(), runner, opts, flags.output)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.input, "input", "i", "", "render a calendar JSON file instead of fetching a user")
	f.StringVarP(&flags.output, "output", "o", "", "output file (single format) or directory (default: current directory)")
	f.StringVarP(&flags.formats, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	f.StringVar(&flags.from, "from", "", "first day (YYYY-MM-DD)")
	f.StringVar(&flags.to, "to", "", "last day (YYYY-MM-DD)")
	f.StringVarP(&flags.mode, "mode", "m", "", "detail mode: rich (default), simple")
	f.Uint64Var(&flags.seed, "seed", 0, "ore sampler seed for a reproducible world (default: random)")
	f.StringVar(&flags.label, "label", "", "label used in the title and file name (default: username)")
	f.Float64Var(&flags.scale, "scale", 0, "PNG pixels per unit (default 2)")
	f.StringVar(&flags.token, "token", "", "GitHub token (default: $GITHUB_TOKEN or config)")
	f.StringVar(&flags.textures, "texture-base", "", "URL prefix of the block textures")
	f.BoolVar(&flags.embed, "embed-textures", false, "embed textures in the SVG so it renders offline")
	f.BoolVar(&flags.noTooltip, "no-tooltips", false, "omit hover tooltips")
	f.BoolVar(&flags.noAnimate, "no-animate", false, "omit the floating animation")
	f.BoolVar(&flags.noScript, "no-script", false, "omit the tooltip script (CSS hover only)")
	f.BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	f.BoolVar(&flags.refresh, "refresh", false, "bypass cached calendars and artifacts")

	return cmd
}

// apply overlays the flags the user set onto opts.
func (f *renderFlags) apply(cmd *cobra.Command, args []string, opts *pipeline.Options) error {
	switch {
	case len(args) == 1 && f.input != "":
		return cerrors.New(cerrors.ErrCodeInvalidInput, "pass a username or --input, not both")
	case len(args) == 1:
		opts.Username = args[0]
	case f.input != "":
		opts.Input = f.input
	default:
		return cerrors.New(cerrors.ErrCodeInvalidInput, "a username or --input file is required")
	}

	changed := cmd.Flags().Changed
	opts.Formats = parseFormats(f.formats)
	opts.From, opts.To = f.from, f.to
	opts.Refresh = f.refresh
	if f.mode != "" {
		opts.Mode = f.mode
	}
	if changed("seed") {
		seed := f.seed
		opts.Seed = &seed
	}
	if f.label != "" {
		opts.Label = f.label
	}
	if f.scale != 0 {
		opts.Scale = f.scale
	}
	if f.token != "" {
		opts.GitHubToken = f.token
	}
	if f.textures != "" {
		opts.TextureBase = f.textures
	}
	if changed("embed-textures") {
		opts.EmbedTextures = f.embed
	}
	if f.noTooltip {
		opts.DisableTooltips = true
	}
	if f.noAnimate {
		opts.DisableAnimation = true
	}
	opts.NoScript = f.noScript
	return opts.ValidateAndSetDefaults()
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, output string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	spinner := newSpinnerWithContext(ctx, "Rendering "+opts.String()+"...")
	spinner.Start()
	res, err := runner.Execute(ctx, opts)
	spinner.Stop()

	if cerrors.Is(err, cerrors.ErrCodeEmptyCalendar) {
		printWarning("The calendar has no days; nothing to render")
		return nil
	}
	if err != nil {
		return err
	}

	paths, err := writeArtifacts(res, opts.Formats, output)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", StyleHighlight.Render(opts.String()))
	printCalendarStats(res.Calendar, res.CacheInfo.FetchHit)
	printDetail("%s mode · seed %d · %s blocks", res.Scene.Mode, res.Scene.Seed, numbers.Sprint(res.Stats.Blocks))
	for _, p := range paths {
		printFile(p)
	}
	if opts.Seed == nil {
		printNextStep("Reproduce this world", fmt.Sprintf("%s render %s --seed %d", appName, reproduceArg(opts), res.Scene.Seed))
	}
	prog.done("rendered", "formats", strings.Join(opts.Formats, ","))
	return nil
}

func reproduceArg(opts pipeline.Options) string {
	if opts.Input != "" {
		return "--input " + opts.Input
	}
	return opts.Username
}

// writeArtifacts writes each artifact. With one format and an output path
// that has an extension, that path is used as is; otherwise output is a
// directory and files are named after the scene label.
func writeArtifacts(res *pipeline.Result, formats []string, output string) ([]string, error) {
	if len(formats) == 1 && output != "" && filepath.Ext(output) != "" {
		if dir := filepath.Dir(output); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		if err := os.WriteFile(output, res.Artifacts[formats[0]], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", output, err)
		}
		return []string{output}, nil
	}

	dir := output
	if dir == "" {
		dir = "."
	}
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path, err := sink.WriteFile(dir, res.Scene, format, res.Artifacts[format])
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
