package content

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/oakmund/tilerpg/component"
)

// Lookup failures are fatal while the world is being constructed (they
// are data-authoring bugs) but degrade to rejected intents during live
// resolution; callers pick the policy.
var (
	ErrUnknownBeing = errors.New("unknown being name")
	ErrUnknownItem  = errors.New("unknown item")
)

// EntityDB holds the static being and item tables. Loaded once at boot,
// read-only afterwards.
type EntityDB struct {
	beings []Being
	items  []Item
}

type beingFile struct {
	Beings []Being `toml:"being"`
}

type itemFile struct {
	Items []Item `toml:"item"`
}

// Load reads the being and item tables from TOML files.
func Load(beingsPath, itemsPath string) (*EntityDB, error) {
	db := &EntityDB{}

	if err := decodeTable(beingsPath, &beingFile{}, func(f *beingFile) { db.beings = f.Beings }); err != nil {
		return nil, err
	}
	if err := decodeTable(itemsPath, &itemFile{}, func(f *itemFile) { db.items = f.Items }); err != nil {
		return nil, err
	}
	return db, nil
}

// Parse builds a database from in-memory TOML, for tests and embedded
// defaults.
func Parse(beingsTOML, itemsTOML string) (*EntityDB, error) {
	db := &EntityDB{}
	var bf beingFile
	if err := toml.Unmarshal([]byte(beingsTOML), &bf); err != nil {
		return nil, fmt.Errorf("parse beings table: %w", err)
	}
	var itf itemFile
	if err := toml.Unmarshal([]byte(itemsTOML), &itf); err != nil {
		return nil, fmt.Errorf("parse items table: %w", err)
	}
	db.beings = bf.Beings
	db.items = itf.Items
	return db, nil
}

func decodeTable[T any](path string, into *T, assign func(*T)) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read table %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, into); err != nil {
		return fmt.Errorf("parse table %s: %w", path, err)
	}
	assign(into)
	return nil
}

// BeingByName finds a being template by display name.
func (db *EntityDB) BeingByName(name string) (*Being, error) {
	for i := range db.beings {
		if db.beings[i].Name == name {
			return &db.beings[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBeing, name)
}

// BeingByID finds a being template by identifier.
func (db *EntityDB) BeingByID(id BeingID) (*Being, error) {
	for i := range db.beings {
		if db.beings[i].Identifier == id {
			return &db.beings[i], nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrUnknownBeing, id)
}

// ItemByName finds an item template by display name.
func (db *EntityDB) ItemByName(name string) (*Item, error) {
	for i := range db.items {
		if db.items[i].Name == name {
			return &db.items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownItem, name)
}

// ItemByID finds an item template by identifier.
func (db *EntityDB) ItemByID(id component.ItemID) (*Item, error) {
	for i := range db.items {
		if db.items[i].Identifier == id {
			return &db.items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrUnknownItem, id)
}
