package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dbgview/pkg/dbg"
	"github.com/matzehuels/dbgview/pkg/errors"
	"github.com/matzehuels/dbgview/pkg/render"
)

// Environment variables that override the config file.
const (
	envMaxDepth  = "DBGVIEW_MAX_DEPTH"
	envPrecision = "DBGVIEW_PRECISION"
	envWidth     = "DBGVIEW_WIDTH"
	envMaxElems  = "DBGVIEW_MAX_ELEMS"
	envShowShape = "DBGVIEW_SHOW_SHAPE"
)

// Config holds the rendering settings shared by all commands.
//
// Values are resolved with the precedence flags > environment > config file
// > defaults. The environment is the process environment, falling back to
// the dotenv file.
type Config struct {
	MaxDepth  int  `toml:"max_depth"`
	Precision int  `toml:"precision"`
	Width     int  `toml:"width"`
	MaxElems  int  `toml:"max_elems"`
	ShowShape bool `toml:"show_shape"`
	Location  bool `toml:"location"`
	JSON      bool `toml:"json"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		MaxDepth:  render.DefaultMaxDepth,
		Precision: render.DefaultPrecision,
		Width:     render.DefaultWidth,
		Location:  true,
	}
}

// LoadConfig resolves the config from the TOML file at path and the
// DBGVIEW_* variables. An empty path looks for ./dbgview.toml and then the
// user config directory; finding neither is not an error. A missing envFile
// is ignored.
func LoadConfig(path, envFile string) (Config, error) {
	cfg := DefaultConfig()

	file, err := findConfig(path)
	if err != nil {
		return cfg, err
	}
	if file != "" {
		meta, err := toml.DecodeFile(file, &cfg)
		if err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", file)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", file, undecoded[0].String())
		}
	}

	dotenv, err := readDotenv(envFile)
	if err != nil {
		return cfg, err
	}
	if err := cfg.applyEnv(envLookup(dotenv)); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func findConfig(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return path, nil
	}
	candidates := []string{configFile}
	if dir, err := configDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "config.toml"))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}
	return "", nil
}

func readDotenv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return env, nil
}

// envLookup prefers the process environment over the dotenv values, the
// way godotenv.Load never overrides variables that are already set. Empty
// variables count as unset.
func envLookup(dotenv map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{envMaxDepth, &c.MaxDepth},
		{envPrecision, &c.Precision},
		{envWidth, &c.Width},
		{envMaxElems, &c.MaxElems},
	}
	for _, e := range ints {
		raw, ok := lookup(e.key)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", e.key)
		}
		*e.dst = n
	}
	if raw, ok := lookup(envShowShape); ok && strings.TrimSpace(raw) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", envShowShape)
		}
		c.ShowShape = b
	}
	return nil
}

// Validate checks that every setting is in range.
func (c Config) Validate() error {
	checks := []struct {
		name      string
		v, lo, hi int
	}{
		{"max_depth", c.MaxDepth, 1, 1024},
		{"precision", c.Precision, 1, 17},
		{"width", c.Width, 0, 10000},
		{"max_elems", c.MaxElems, 0, 1_000_000},
	}
	for _, ch := range checks {
		if err := errors.ValidateRange(ch.name, ch.v, ch.lo, ch.hi); err != nil {
			return err
		}
	}
	return nil
}

// DebugOptions converts the config into debugger options.
func (c Config) DebugOptions() dbg.Options {
	opts := dbg.DefaultOptions()
	opts.Render.MaxDepth = c.MaxDepth
	opts.Render.Precision = c.Precision
	opts.Render.Width = c.Width
	opts.Render.MaxElems = c.MaxElems
	opts.Location = c.Location
	opts.ShowShape = c.ShowShape
	opts.JSON = c.JSON
	return opts
}

// FrameStyle converts the config into the text style of replayed frames.
func (c Config) FrameStyle() render.FrameStyle {
	return render.FrameStyle{Location: c.Location, ShowShape: c.ShowShape, Width: c.Width}
}

// renderFlags are the per-command flags that override the config.
type renderFlags struct {
	json      bool
	shapes    bool
	width     int
	maxDepth  int
	precision int
	maxElems  int
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.json, "json", false, "write frames as JSON lines")
	cmd.Flags().BoolVar(&f.shapes, "shapes", false, "show the shape tag of each block")
	cmd.Flags().IntVar(&f.width, "width", render.DefaultWidth, "line width for one-line composites (0 = unlimited)")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", render.DefaultMaxDepth, "nesting depth rendered before <max depth>")
	cmd.Flags().IntVar(&f.precision, "precision", render.DefaultPrecision, "fractional digits for floats")
	cmd.Flags().IntVar(&f.maxElems, "max-elems", 0, "elements shown per collection (0 = all)")
}

// apply overrides c with the flags the user set explicitly.
func (f *renderFlags) apply(cmd *cobra.Command, c Config) (Config, error) {
	changed := cmd.Flags().Changed
	if changed("json") {
		c.JSON = f.json
	}
	if changed("shapes") {
		c.ShowShape = f.shapes
	}
	if changed("width") {
		c.Width = f.width
	}
	if changed("max-depth") {
		c.MaxDepth = f.maxDepth
	}
	if changed("precision") {
		c.Precision = f.precision
	}
	if changed("max-elems") {
		c.MaxElems = f.maxElems
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("flags: %w", err)
	}
	return c, nil
}
