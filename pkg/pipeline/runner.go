package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/WJZ-P/CommitCraft/pkg/cache"
	"github.com/WJZ-P/CommitCraft/pkg/calendar"
	cerrors "github.com/WJZ-P/CommitCraft/pkg/errors"
	"github.com/WJZ-P/CommitCraft/pkg/integrations/github"
	"github.com/WJZ-P/CommitCraft/pkg/observability"
	"github.com/WJZ-P/CommitCraft/pkg/render/iso"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// Endpoint overrides the GitHub GraphQL endpoint (GitHub Enterprise, tests).
	Endpoint string

	// CalendarTTL is how long fetched calendars stay cached.
	CalendarTTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:       c,
		Keyer:       keyer,
		Logger:      logger,
		CalendarTTL: cache.CalendarTTL,
	}
}

// Execute runs the complete fetch → build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Fetch
	fetchStart := time.Now()
	cal, fetchHit, err := r.FetchWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	result.Calendar = cal
	result.CalendarHash = CalendarHash(cal)
	result.Stats.FetchTime = time.Since(fetchStart)
	result.Stats.Days = cal.DayCount()
	result.CacheInfo.FetchHit = fetchHit

	r.Logger.Info("fetched calendar",
		"source", opts.String(),
		"days", cal.DayCount(),
		"total", cal.Total,
		"duration", result.Stats.FetchTime)

	if opts.EmbedTextures && len(opts.Textures) == 0 {
		textures, err := r.FetchTextures(ctx, opts.TextureBase)
		if err != nil {
			return nil, fmt.Errorf("textures: %w", err)
		}
		opts.Textures = textures
	}

	// Stage 2: Build
	buildStart := time.Now()
	scene, err := r.Build(ctx, cal, opts)
	if err != nil {
		return nil, err
	}
	result.Scene = scene
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.Columns = len(scene.Columns)
	result.Stats.Blocks = scene.BlockCount()

	r.Logger.Info("built scene",
		"mode", scene.Mode,
		"seed", scene.Seed,
		"columns", len(scene.Columns),
		"blocks", scene.BlockCount(),
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, scene, result.CalendarHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// FetchWithCacheInfo loads the calendar and reports whether it came from cache.
// Local files are never cached.
func (r *Runner) FetchWithCacheInfo(ctx context.Context, opts Options) (cal *calendar.Calendar, hit bool, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForFetch(); err != nil {
		return nil, false, err
	}

	source := opts.Username
	if opts.Input != "" {
		source = opts.Input
	}
	hooks := observability.Pipeline()
	hooks.OnFetchStart(ctx, source)
	start := time.Now()
	defer func() {
		hooks.OnFetchComplete(ctx, source, cal.DayCount(), time.Since(start), err)
	}()

	if opts.Input != "" {
		cal, err = calendar.ImportJSON(opts.Input)
		if err != nil {
			return nil, false, err
		}
		return cal, false, nil
	}

	cacheKey := r.keyer(opts).CalendarKey(opts.Username, opts.CalendarKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, ok, err := r.Cache.Get(ctx, cacheKey); err == nil && ok {
			if cached, err := calendar.Unmarshal(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "calendar")
				return cached, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "calendar")
	}

	client := github.NewClient(r.Cache, opts.GitHubToken, r.calendarTTL())
	client.SetKeyer(r.keyer(opts))
	if r.Endpoint != "" {
		client.SetEndpoint(r.Endpoint)
	}
	from, to := opts.Range()
	cal, err = client.Contributions(ctx, opts.Username, github.Range{From: from, To: to}, opts.Refresh)
	if err != nil {
		return nil, false, err
	}

	if data, err := calendar.Marshal(cal); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, r.calendarTTL()); err != nil {
			opts.Logger.Warn("cache write failed", "key", "calendar", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "calendar", len(data))
		}
	}
	return cal, false, nil
}

// Fetch is a convenience wrapper that calls FetchWithCacheInfo and discards the cache hit info.
func (r *Runner) Fetch(ctx context.Context, opts Options) (*calendar.Calendar, error) {
	cal, _, err := r.FetchWithCacheInfo(ctx, opts)
	return cal, err
}

// Build turns cal into a scene. An empty calendar produces no document and
// is reported as EMPTY_CALENDAR.
func (r *Runner) Build(ctx context.Context, cal *calendar.Calendar, opts Options) (*iso.Scene, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, opts.Mode, cal.DayCount())
	start := time.Now()

	scene := iso.Build(cal, opts.BuildOptions()...)
	if scene == nil {
		hooks.OnBuildComplete(ctx, opts.Mode, 0, 0, time.Since(start))
		return nil, cerrors.New(cerrors.ErrCodeEmptyCalendar, "calendar has no days")
	}
	hooks.OnBuildComplete(ctx, opts.Mode, len(scene.Columns), scene.BlockCount(), time.Since(start))
	return scene, nil
}

// RenderWithCacheInfo generates artifacts and reports whether all of them
// came from cache. Artifacts are cached only for seeded scenes: an unseeded
// scene is different on every build.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, scene *iso.Scene, calendarHash string, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	cacheable := opts.Seeded() && calendarHash != ""
	key := func(format string) string {
		return r.keyer(opts).ArtifactKey(calendarHash, opts.ArtifactKeyOpts(format, scene.Seed))
	}

	if cacheable && !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, ok, err := r.Cache.Get(ctx, key(format))
			if err != nil || !ok {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				break
			}
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered, err := Render(ctx, scene, opts)
	if err != nil {
		return nil, false, err
	}

	if cacheable {
		for format, data := range rendered {
			if err := r.Cache.Set(ctx, key(format), data, cache.ArtifactTTL); err != nil {
				opts.Logger.Warn("cache write failed", "key", "artifact", "format", format, "err", err)
				continue
			}
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, scene *iso.Scene, calendarHash string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, scene, calendarHash, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) calendarTTL() time.Duration {
	if r.CalendarTTL > 0 {
		return r.CalendarTTL
	}
	return cache.CalendarTTL
}

// keyer returns the key layout for opts, scoped when opts.CacheScope is set.
func (r *Runner) keyer(opts Options) cache.Keyer {
	if opts.CacheScope == "" {
		return r.Keyer
	}
	return cache.NewScopedKeyer(r.Keyer, opts.CacheScope)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// CalendarHash returns the content hash of cal, used as the artifact cache
// namespace. It is empty if cal cannot be encoded.
func CalendarHash(cal *calendar.Calendar) string {
	data, err := calendar.Marshal(cal)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}
