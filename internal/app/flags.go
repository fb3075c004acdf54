package app

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"

	"glyph-snake/internal/core"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	ConfigFile string
	LogFile    string
	Set        Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "snake", Scale: 2, TPS: 30}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "game to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for round reset (0 uses the configured seed)")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML file with game settings")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "append log output to this file")
	fs.Var(&c.Set, "set", "override a game setting as key=value (repeatable)")
}

// SimConfig merges the config file, if any, with the -set overrides into
// the key/value map game factories accept.
func (c *Config) SimConfig() (map[string]string, error) {
	out := map[string]string{}
	if c.ConfigFile != "" {
		data, err := os.ReadFile(c.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		file, err := ParseSettings(data)
		if err != nil {
			return nil, fmt.Errorf("parse config %s: %w", c.ConfigFile, err)
		}
		for k, v := range file {
			out[k] = v
		}
	}
	for k, v := range c.Set {
		out[k] = v
	}
	return out, nil
}

// ParseSettings reads a flat YAML mapping of game settings. Scalar values of
// any type are kept in their textual form.
func ParseSettings(data []byte) (map[string]string, error) {
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		switch v.(type) {
		case map[interface{}]interface{}, []interface{}:
			return nil, fmt.Errorf("setting %q is not a scalar", k)
		case nil:
			continue
		}
		out[k] = fmt.Sprint(v)
	}
	return out, nil
}

// Overrides collects repeated key=value flags.
type Overrides map[string]string

// String implements flag.Value.
func (o Overrides) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + o[k]
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (o *Overrides) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	if *o == nil {
		*o = Overrides{}
	}
	(*o)[key] = strings.TrimSpace(value)
	return nil
}

// NewSim looks up the selected game, builds it from the merged settings and
// resets it with the configured seed.
func (c *Config) NewSim() (core.Sim, error) {
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", c.Sim)
	}
	settings, err := c.SimConfig()
	if err != nil {
		return nil, err
	}
	sim := factory(settings)
	sim.Reset(c.Seed)
	return sim, nil
}
