// Package pipeline provides the core rendering pipeline for CommitCraft.
//
// This package implements the complete fetch → build → render pipeline that
// is shared by the CLI and the HTTP server. By centralizing this logic,
// both entry points validate, cache and log the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Fetch: Read a contribution calendar from GitHub or a local JSON file
//  2. Build: Turn the calendar into an isometric scene (iso.Build)
//  3. Render: Serialize the scene (SVG, PNG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Username:    "octocat",
//	    GitHubToken: token,
//	    Formats:     []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/WJZ-P/CommitCraft/pkg/cache"
	"github.com/WJZ-P/CommitCraft/pkg/calendar"
	cerrors "github.com/WJZ-P/CommitCraft/pkg/errors"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultMode is the default detail mode.
	DefaultMode = iso.ModeRich

	// DefaultScale is the default PNG pixel density.
	DefaultScale = 2.0

	// MaxScale bounds PNG output so a request cannot allocate huge images.
	MaxScale = 8.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the rendering pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Fetch options
	Username string `json:"username,omitempty"`
	Input    string `json:"-"`              // local calendar JSON file, replaces Username
	From     string `json:"from,omitempty"` // YYYY-MM-DD
	To       string `json:"to,omitempty"`   // YYYY-MM-DD
	Refresh  bool   `json:"refresh,omitempty"`

	// Build options
	Mode             string  `json:"mode,omitempty"`
	Seed             *uint64 `json:"seed,omitempty"` // nil draws a fresh seed
	DisableTooltips  bool    `json:"disable_tooltips,omitempty"`
	DisableAnimation bool    `json:"disable_animation,omitempty"`
	Label            string  `json:"label,omitempty"`
	TextureBase      string  `json:"texture_base,omitempty"`
	EmbedTextures    bool    `json:"embed_textures,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	NoScript bool     `json:"no_script,omitempty"`

	// Runtime options (not serialized)
	Logger      *log.Logger       `json:"-"`
	GitHubToken string            `json:"-"`
	Textures    map[string][]byte `json:"-"`

	// CacheScope, when set, isolates this request's cache entries from
	// every other scope (see cache.ScopedKeyer).
	CacheScope string `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Calendar is the fetched contribution calendar.
	Calendar *calendar.Calendar

	// CalendarHash is the content hash of the calendar.
	CalendarHash string

	// Scene is the built draw list.
	Scene *iso.Scene

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Days       int
	Columns    int
	Blocks     int
	FetchTime  time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	FetchHit  bool // Whether the calendar came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return cerrors.New(cerrors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateMode checks that a detail mode is valid.
func ValidateMode(mode string) error {
	if _, ok := iso.ParseMode(mode); !ok || mode == "" {
		return cerrors.New(cerrors.ErrCodeInvalidMode, "invalid mode: %q (must be one of: rich, simple)", mode)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForFetch(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForFetch checks required fields for fetching.
func (o *Options) ValidateForFetch() error {
	if o.Input == "" {
		if o.Username == "" {
			return cerrors.New(cerrors.ErrCodeInvalidInput, "username or input file is required")
		}
		if err := cerrors.ValidateUsername(o.Username); err != nil {
			return err
		}
	}
	if err := cerrors.ValidateDateRange(o.From, o.To); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for building and rendering.
func (o *Options) SetRenderDefaults() {
	if o.Mode == "" {
		o.Mode = string(DefaultMode)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Label == "" {
		o.Label = o.Username
	}
	if o.Label == "" && o.Input != "" {
		o.Label = strings.TrimSuffix(filepath.Base(o.Input), filepath.Ext(o.Input))
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for building and rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateMode(o.Mode); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if !(o.Scale >= 0 && o.Scale <= MaxScale) {
		return cerrors.New(cerrors.ErrCodeInvalidInput, "scale must be between 0 and %g", MaxScale)
	}
	if o.Label != "" {
		if err := cerrors.ValidateLabel(o.Label); err != nil {
			return err
		}
	}
	if o.TextureBase != "" {
		return cerrors.ValidateURL(o.TextureBase)
	}
	return nil
}

// Seeded reports whether the caller pinned the scene seed. Only seeded
// scenes are reproducible, so only their artifacts are cached.
func (o *Options) Seeded() bool { return o.Seed != nil }

// Range parses From and To. Call after validation.
func (o *Options) Range() (from, to time.Time) {
	if o.From != "" {
		from, _ = time.Parse(calendar.DateLayout, o.From)
	}
	if o.To != "" {
		to, _ = time.Parse(calendar.DateLayout, o.To)
		// The GitHub window is inclusive of the whole last day.
		to = to.Add(24*time.Hour - time.Second)
	}
	return from, to
}

// BuildOptions converts the options into scene builder options.
func (o *Options) BuildOptions() []iso.Option {
	mode, _ := iso.ParseMode(o.Mode)
	opts := []iso.Option{
		iso.WithMode(mode),
		iso.WithTooltips(!o.DisableTooltips),
		iso.WithAnimation(!o.DisableAnimation),
		iso.WithLabel(o.Label),
	}
	if o.Seed != nil {
		opts = append(opts, iso.WithSeed(*o.Seed))
	}
	if o.TextureBase != "" {
		opts = append(opts, iso.WithTextureBase(o.TextureBase))
	}
	if len(o.Textures) > 0 {
		opts = append(opts, iso.WithTextureData(o.Textures))
	}
	return opts
}

// CalendarKeyOpts returns cache key options for the fetched calendar.
func (o *Options) CalendarKeyOpts() cache.CalendarKeyOpts {
	return cache.CalendarKeyOpts{From: o.From, To: o.To}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string, seed uint64) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:   format,
		Mode:     o.Mode,
		Seed:     seed,
		Tooltips: !o.DisableTooltips,
		Animate:  !o.DisableAnimation,
		Label:    o.Label,
		Textures: o.TextureBase,
	}
	if o.EmbedTextures {
		k.Textures = "embedded:" + o.TextureBase
	}
	switch format {
	case FormatPNG:
		k.Scale = o.Scale
	case FormatSVG:
		k.NoScript = o.NoScript
	}
	return k
}

// String describes the source of the calendar for log lines.
func (o *Options) String() string {
	if o.Input != "" {
		return fmt.Sprintf("file %s", o.Input)
	}
	return "@" + o.Username
}
