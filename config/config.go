// Package config reads option defaults from YAML or TOML files into the map consumed by
// Command.ParseWithDefaults. Top-level keys are option names; a nested table holds the defaults of
// the subcommand it is named after and wins over an outer key of the same name.
//
//	port: 8080
//	tags: [a, b]
//	build:
//	  target: x64
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/napalu/cmdline/errs"
	"gopkg.in/yaml.v3"
)

// Format of a defaults file
type Format int

const (
	YAML Format = iota
	TOML
)

// String returns the string representation of a Format
func (f Format) String() string {
	if f == TOML {
		return "toml"
	}
	return "yaml"
}

// FormatOf picks the Format from the file extension of path
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return YAML, fmt.Errorf("%w: %s", errs.ErrConfigFormat, path)
}

// Load reads the defaults file at path
func Load(path string) (map[string]string, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Decode(content, format)
}

// Decode converts content to option defaults. Scalars keep their textual form and lists are joined
// with ','.
func Decode(content []byte, format Format) (map[string]string, error) {
	doc := map[string]any{}
	switch format {
	case YAML:
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return nil, err
		}
	case TOML:
		if _, err := toml.Decode(string(content), &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrConfigFormat, format)
	}

	out := map[string]string{}
	depth := map[string]int{}
	if err := flatten(doc, 0, out, depth); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(doc map[string]any, level int, out map[string]string, depth map[string]int) error {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if doc[k] == nil {
			continue
		}
		if table, ok := doc[k].(map[string]any); ok {
			if err := flatten(table, level+1, out, depth); err != nil {
				return err
			}
			continue
		}
		text, err := textOf(doc[k])
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		if d, found := depth[k]; found && d > level {
			continue
		}
		out[k] = text
		depth[k] = level
	}
	return nil
}

func textOf(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	case time.Time:
		return val.Format(time.RFC3339), nil
	case []any:
		items := make([]string, len(val))
		for i, item := range val {
			if _, nested := item.([]any); nested {
				return "", fmt.Errorf("%w: nested list", errs.ErrConfigValue)
			}
			text, err := textOf(item)
			if err != nil {
				return "", err
			}
			items[i] = text
		}
		return strings.Join(items, ","), nil
	}
	return "", fmt.Errorf("%w: %T", errs.ErrConfigValue, v)
}
