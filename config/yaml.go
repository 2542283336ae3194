// Package config loads flag values from YAML files for kong.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v2"
)

// DefaultPaths are searched in order; missing files are skipped.
var DefaultPaths = []string{"./gifmaker.yml", "~/.config/gifmaker.yml"}

// YAML is a kong.ConfigurationLoader. Keys are flag names, with dashes or
// underscores. Keys nested under a command name only apply to that command
// and take precedence over top level keys.
func YAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, fmt.Errorf("could not decode YAML configuration: %w", err)
	}

	return kong.ResolverFunc(func(kctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if parent != nil && parent.Command != nil {
			if section, ok := lookup(values, parent.Command.Name).(map[any]any); ok {
				if v := lookup(normalize(section), flag.Name); v != nil {
					return toFlagValue(v), nil
				}
			}
		}
		if v := lookup(values, flag.Name); v != nil {
			return toFlagValue(v), nil
		}
		return nil, nil
	}), nil
}

func normalize(m map[any]any) map[string]any {
	res := make(map[string]any, len(m))
	for k, v := range m {
		res[fmt.Sprint(k)] = v
	}
	return res
}

func lookup(values map[string]any, name string) any {
	for _, key := range []string{name, strings.ReplaceAll(name, "-", "_"), strings.ReplaceAll(name, "_", "-")} {
		if v, ok := values[key]; ok {
			return v
		}
	}
	return nil
}

// toFlagValue renders YAML scalars and lists the way they are written on the
// command line.
func toFlagValue(v any) any {
	switch vv := v.(type) {
	case []any:
		parts := make([]string, len(vv))
		for i, item := range vv {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ",")
	case map[any]any:
		return nil
	default:
		return fmt.Sprint(vv)
	}
}
