package argot

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is read-only access to configuration values. Keys are dotted paths
// into nested maps, e.g. "server.port".
type Config interface {
	Get(key string) (any, bool)
	String(key string) string
	Bool(key string) bool
	Float(key string) float64
}

// MapConfig is a Config over nested maps, as decoded from YAML.
type MapConfig map[string]any

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (MapConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML into a MapConfig. An empty document yields an
// empty config.
func ParseConfig(data []byte) (MapConfig, error) {
	cfg := MapConfig{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

// Get returns the value at the dotted key.
func (c MapConfig) Get(key string) (any, bool) {
	var cur any = map[string]any(c)
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return normalizeValue(cur), true
}

func (c MapConfig) String(key string) string {
	v, _ := c.Get(key)
	return formatValue(v)
}

func (c MapConfig) Bool(key string) bool {
	v, _ := c.Get(key)
	return Values{"v": v}.Bool("v")
}

func (c MapConfig) Float(key string) float64 {
	v, ok := c.Get(key)
	if !ok {
		return 0
	}
	return Values{"v": v}.Float("v")
}
