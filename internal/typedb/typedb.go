// Package typedb resolves EVE type ids to their display names.
package typedb

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

//go:embed hulls.yaml
var embeddedHulls []byte

// TypeID identifies an EVE item type, e.g. a ship hull.
type TypeID int64

var ErrUnknownType = errors.New("unknown type id")

// TypeDB is a read-only lookup table, safe for concurrent use once built.
type TypeDB struct {
	names map[TypeID]string
}

// New returns a TypeDB backed by the embedded hull table.
func New() (*TypeDB, error) {
	return Parse(embeddedHulls)
}

// Load reads a hull table from path. An empty path falls back to the embedded table.
func Load(path string) (*TypeDB, error) {
	if path == "" {
		return New()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read type table: %w", err)
	}
	return Parse(data)
}

// Parse builds a TypeDB from a YAML mapping of type id to name.
func Parse(data []byte) (*TypeDB, error) {
	names := make(map[TypeID]string)
	if err := yaml.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("parse type table: %w", err)
	}
	return &TypeDB{names: names}, nil
}

// NameOf returns the display name for id or an error wrapping ErrUnknownType.
func (db *TypeDB) NameOf(id TypeID) (string, error) {
	name, ok := db.names[id]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownType, id)
	}
	return name, nil
}

func (db *TypeDB) Len() int {
	return len(db.names)
}
