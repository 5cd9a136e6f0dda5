// Package access expands stored admin roles into capability key sets.
package access

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/ErikKalkoken/go-set"
	"github.com/goccy/go-yaml"
)

// Capability keys checked by the profile service.
const (
	KeyHQFC    = "waitlist-tag:HQ-FC"
	KeyTrainee = "waitlist-tag:TRAINEE"
)

//go:embed roles.yaml
var embeddedRoles []byte

var ErrUnknownRole = errors.New("unknown role")

type roleDef struct {
	Keys     []string `yaml:"keys"`
	Inherits []string `yaml:"inherits"`
}

// Expander maps role strings to their capability keys. It is read-only after construction.
type Expander struct {
	roles map[string]set.Set[string]
}

// New returns an Expander backed by the embedded role table.
func New() (*Expander, error) {
	return Parse(embeddedRoles)
}

// Load reads a role table from path. An empty path falls back to the embedded table.
func Load(path string) (*Expander, error) {
	if path == "" {
		return New()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read role table: %w", err)
	}
	return Parse(data)
}

// Parse builds an Expander from YAML, flattening inheritance up front.
func Parse(data []byte) (*Expander, error) {
	defs := make(map[string]roleDef)
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse role table: %w", err)
	}

	roles := make(map[string]set.Set[string], len(defs))
	for name := range defs {
		if _, err := flatten(name, defs, roles, nil); err != nil {
			return nil, err
		}
	}
	return &Expander{roles: roles}, nil
}

func flatten(name string, defs map[string]roleDef, done map[string]set.Set[string], path []string) (set.Set[string], error) {
	if keys, ok := done[name]; ok {
		return keys, nil
	}
	if slices.Contains(path, name) {
		return set.Set[string]{}, fmt.Errorf("role %q inherits itself via %v", name, path)
	}
	def, ok := defs[name]
	if !ok {
		return set.Set[string]{}, fmt.Errorf("%w: %q inherited by %v", ErrUnknownRole, name, path)
	}

	keys := set.Of(def.Keys...)
	for _, parent := range def.Inherits {
		inherited, err := flatten(parent, defs, done, append(path, name))
		if err != nil {
			return set.Set[string]{}, err
		}
		keys = set.Union(keys, inherited)
	}
	done[name] = keys
	return keys, nil
}

// Expand returns the capability keys granted by role.
func (e *Expander) Expand(role string) (set.Set[string], error) {
	keys, ok := e.roles[role]
	if !ok {
		return set.Set[string]{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	return set.Collect(keys.All()), nil
}

// Roles lists the known role names in sorted order.
func (e *Expander) Roles() []string {
	names := make([]string, 0, len(e.roles))
	for name := range e.roles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
