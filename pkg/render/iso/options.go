package iso

import (
	"math/rand/v2"
	"strings"

	"github.com/WJZ-P/CommitCraft/pkg/render/iso/styles"
)

// Mode selects the level of detail of a scene.
type Mode string

const (
	ModeRich   Mode = "rich"
	ModeSimple Mode = "simple"
)

// Modes lists the supported detail modes.
var Modes = []Mode{ModeRich, ModeSimple}

// ParseMode parses a mode name case-insensitively. The empty string is the
// rich mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeRich:
		return ModeRich, true
	case ModeSimple:
		return ModeSimple, true
	}
	return "", false
}

// Option configures Build.
type Option func(*builder)

type builder struct {
	mode     Mode
	seed     uint64
	seeded   bool
	rng      *rand.Rand
	tooltips bool
	animate  bool
	label    string
	textures styles.TextureSource
}

func newBuilder(opts ...Option) builder {
	b := builder{mode: ModeRich, tooltips: true, animate: true}
	for _, opt := range opts {
		opt(&b)
	}
	if b.mode != ModeSimple {
		b.mode = ModeRich
	}
	return b
}

func WithMode(m Mode) Option { return func(b *builder) { b.mode = m } }

// WithSeed makes the scene reproducible: the same calendar, options and seed
// always yield the same scene.
func WithSeed(seed uint64) Option {
	return func(b *builder) { b.seed, b.seeded = seed, true }
}

// WithRand draws deep-layer randomness from rng. It takes precedence over
// WithSeed; the scene's Seed is then zero and Seeded is false.
func WithRand(rng *rand.Rand) Option { return func(b *builder) { b.rng = rng } }

func WithTooltips(on bool) Option   { return func(b *builder) { b.tooltips = on } }
func WithAnimation(on bool) Option  { return func(b *builder) { b.animate = on } }
func WithLabel(label string) Option { return func(b *builder) { b.label = label } }

// WithTextureBase sets the URL prefix textures are loaded from.
func WithTextureBase(base string) Option {
	return func(b *builder) { b.textures.Base = base }
}

// WithTextureData embeds textures keyed by file name, making the document
// self-contained.
func WithTextureData(data map[string][]byte) Option {
	return func(b *builder) { b.textures.Data = data }
}

// NewRand returns the generator Build uses for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

func (b *builder) random() (*rand.Rand, uint64) {
	if b.rng != nil {
		return b.rng, 0
	}
	seed := b.seed
	if !b.seeded {
		seed = rand.Uint64()
	}
	return NewRand(seed), seed
}
