// Package config loads CommitCraft's TOML configuration file.
//
// The file lives at $COMMITCRAFT_CONFIG, or at
// $XDG_CONFIG_HOME/commitcraft/config.toml (~/.config/commitcraft/config.toml
// when XDG_CONFIG_HOME is unset). A missing file is not an error: every
// field has a default. Environment variables override the file, and
// command-line flags override both.
//
//	[github]
//	token = "ghp_..."
//
//	[cache]
//	backend = "redis"        # file, redis, mongo or none
//	ttl = "1h"
//	redis_addr = "localhost:6379"
//
//	[render]
//	mode = "rich"            # rich or simple
//	tooltips = true
//	animate = true
//
//	[server]
//	addr = ":8080"
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/WJZ-P/CommitCraft/pkg/cache"
)

// Environment variables read by [Load].
const (
	EnvConfig    = "COMMITCRAFT_CONFIG"
	EnvToken     = "GITHUB_TOKEN"
	EnvCache     = "COMMITCRAFT_CACHE"
	EnvRedisAddr = "REDIS_ADDR"
	EnvMongoURI  = "MONGO_URI"
)

// Duration is a time.Duration written as a string ("90s", "1h") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the full configuration.
type Config struct {
	GitHub GitHub `toml:"github"`
	Cache  Cache  `toml:"cache"`
	Render Render `toml:"render"`
	Server Server `toml:"server"`

	path string
}

type GitHub struct {
	Token string `toml:"token"`
}

type Cache struct {
	Backend         string   `toml:"backend"`
	Dir             string   `toml:"dir"`
	TTL             Duration `toml:"ttl"`
	RedisAddr       string   `toml:"redis_addr"`
	RedisPassword   string   `toml:"redis_password"`
	RedisDB         int      `toml:"redis_db"`
	MongoURI        string   `toml:"mongo_uri"`
	MongoDatabase   string   `toml:"mongo_database"`
	MongoCollection string   `toml:"mongo_collection"`
}

type Render struct {
	Mode          string  `toml:"mode"`
	Seed          *uint64 `toml:"seed"` // nil draws a fresh seed per render
	Tooltips      bool    `toml:"tooltips"`
	Animate       bool    `toml:"animate"`
	TextureBase   string  `toml:"texture_base"`
	EmbedTextures bool    `toml:"embed_textures"`
	Scale         float64 `toml:"scale"`
}

type Server struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Cache: Cache{
			Backend: cache.BackendFile,
			TTL:     Duration{cache.CalendarTTL},
		},
		Render: Render{
			Mode:     "rich",
			Tooltips: true,
			Animate:  true,
			Scale:    2,
		},
		Server: Server{
			Addr:         ":8080",
			ReadTimeout:  Duration{10 * time.Second},
			WriteTimeout: Duration{60 * time.Second},
		},
	}
}

// DefaultPath returns the config file location.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "commitcraft", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "commitcraft", "config.toml"), nil
}

// Load reads the default config file and applies environment overrides.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads path, which may not exist, and applies environment
// overrides.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parse config %s: unknown key %q", path, undecoded[0].String())
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvToken); v != "" {
		c.GitHub.Token = v
	}
	if v := os.Getenv(EnvCache); v != "" {
		c.Cache.Backend = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		c.Cache.RedisAddr = v
	}
	if v := os.Getenv(EnvMongoURI); v != "" {
		c.Cache.MongoURI = v
	}
	if v := os.Getenv("COMMITCRAFT_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("COMMITCRAFT_SEED: %w", err)
		}
		c.Render.Seed = &seed
	}
	return nil
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string { return c.path }

// CacheOptions converts the cache section for [cache.Open].
func (c *Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend: c.Cache.Backend,
		Dir:     c.Cache.Dir,
		Redis: cache.RedisConfig{
			Addr:     c.Cache.RedisAddr,
			Password: c.Cache.RedisPassword,
			DB:       c.Cache.RedisDB,
		},
		Mongo: cache.MongoConfig{
			URI:        c.Cache.MongoURI,
			Database:   c.Cache.MongoDatabase,
			Collection: c.Cache.MongoCollection,
		},
	}
}

// Redacted returns a copy safe to print: secrets are masked.
func (c *Config) Redacted() *Config {
	out := *c
	out.GitHub.Token = mask(c.GitHub.Token)
	out.Cache.RedisPassword = mask(c.Cache.RedisPassword)
	return &out
}

func mask(s string) string {
	switch {
	case s == "":
		return ""
	case len(s) <= 8:
		return "****"
	default:
		return s[:4] + "****"
	}
}

// Encode writes c as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
