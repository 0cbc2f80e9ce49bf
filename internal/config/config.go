package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"

	"github.com/lox/podrida/internal/game"
)

// Config represents the complete scorekeeper configuration
type Config struct {
	Game GameSettings
	UI   UISettings
}

// GameSettings describes the table: who plays, and under which rules
type GameSettings struct {
	Players  []string `hcl:"players,optional"`
	MaxCards int      `hcl:"max_cards,optional"`
	Variant  string   `hcl:"variant,optional"`
	Dealer   int      `hcl:"dealer,optional"`
	Draw     bool     `hcl:"draw,optional"`   // draw the first dealer at random
	Strict   bool     `hcl:"strict,optional"` // reject bids/tricks outside 0..cards
}

// UISettings contains terminal and logging settings
type UISettings struct {
	LogLevel string
	LogFile  string
	NoColor  bool
}

// fileConfig mirrors Config with optional blocks for decoding
type fileConfig struct {
	Game *GameSettings `hcl:"game,block"`
	UI   *uiBlock      `hcl:"ui,block"`
}

// uiBlock is the ui block as written. color = false and no_color = true
// both turn colors off.
type uiBlock struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
	Color    *bool  `hcl:"color,optional"`
	NoColor  bool   `hcl:"no_color,optional"`
}

func (b *uiBlock) settings() UISettings {
	return UISettings{
		LogLevel: b.LogLevel,
		LogFile:  b.LogFile,
		NoColor:  b.NoColor || (b.Color != nil && !*b.Color),
	}
}

// Environment variables consulted by ApplyEnv
const (
	EnvConfig   = "PODRIDA_CONFIG"
	EnvLogLevel = "PODRIDA_LOG_LEVEL"
	EnvLogFile  = "PODRIDA_LOG_FILE"
	EnvPlayers  = "PODRIDA_PLAYERS"
	EnvMaxCards = "PODRIDA_MAX_CARDS"
	EnvVariant  = "PODRIDA_VARIANT"
)

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Game: GameSettings{
			MaxCards: 7,
			Variant:  game.Classic.String(),
		},
		UI: UISettings{
			LogLevel: "info",
			LogFile:  "podrida.log",
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields the
// defaults.
func LoadConfig(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(src, filename)
}

// ParseConfig decodes configuration from HCL source
func ParseConfig(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := DefaultConfig()
	if fc.Game != nil {
		config.Game = *fc.Game
	}
	if fc.UI != nil {
		config.UI = fc.UI.settings()
	}
	config.applyDefaults()
	return config, nil
}

// applyDefaults fills zero values left by a partial file
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	c.Game.ApplyDefaults()
	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
	if c.UI.LogFile == "" {
		c.UI.LogFile = defaults.UI.LogFile
	}
}

// ApplyDefaults fills unset game settings and trims player names
func (g *GameSettings) ApplyDefaults() {
	defaults := DefaultConfig().Game
	if g.MaxCards == 0 {
		g.MaxCards = defaults.MaxCards
	}
	if g.Variant == "" {
		g.Variant = defaults.Variant
	}
	for i, name := range g.Players {
		g.Players[i] = strings.TrimSpace(name)
	}
}

// ApplyEnv overrides settings from PODRIDA_* variables. lookup is usually
// os.LookupEnv or the result of EnvLookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.UI.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		c.UI.LogFile = v
	}
	if v, ok := lookup(EnvPlayers); ok && v != "" {
		c.Game.Players = SplitPlayers(v)
	}
	if v, ok := lookup(EnvMaxCards); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxCards, err)
		}
		c.Game.MaxCards = n
	}
	if v, ok := lookup(EnvVariant); ok && v != "" {
		c.Game.Variant = v
	}
	return nil
}

// EnvLookup returns a lookup that checks the process environment first and
// then the given .env files. Missing files are skipped.
func EnvLookup(files ...string) (func(string) (string, bool), error) {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}

	values := map[string]string{}
	if len(existing) > 0 {
		var err error
		values, err = godotenv.Read(existing...)
		if err != nil {
			return nil, fmt.Errorf("failed to read env files: %w", err)
		}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

// SplitPlayers parses a comma separated list of names, dropping blanks
func SplitPlayers(s string) []string {
	var names []string
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}
	return nil
}

// Validate checks the game settings without building a game
func (g *GameSettings) Validate() error {
	if len(g.Players) < 2 {
		return fmt.Errorf("at least 2 players must be configured, got %d", len(g.Players))
	}
	seen := map[string]bool{}
	for _, name := range g.Players {
		if name == "" {
			return fmt.Errorf("player names cannot be empty")
		}
		if seen[name] {
			return fmt.Errorf("duplicate player: %s", name)
		}
		seen[name] = true
	}
	if g.MaxCards < 1 {
		return fmt.Errorf("max cards must be positive: %d", g.MaxCards)
	}
	if _, err := game.ParseVariant(g.Variant); err != nil {
		return err
	}
	if !g.Draw && (g.Dealer < 0 || g.Dealer >= len(g.Players)) {
		return fmt.Errorf("dealer must be between 0 and %d", len(g.Players)-1)
	}
	return nil
}

// NewGame builds a game from the settings. dealer overrides the configured
// dealer seat when it is non-negative (used after a random draw).
func (g *GameSettings) NewGame(dealer int, opts ...game.Option) (*game.Game, error) {
	variant, err := game.ParseVariant(g.Variant)
	if err != nil {
		return nil, err
	}
	if dealer < 0 {
		dealer = g.Dealer
	}
	if g.Strict {
		opts = append(opts, game.WithStrictBounds())
	}
	return game.New(g.Players, g.MaxCards, dealer, variant, opts...)
}
