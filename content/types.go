package content

import (
	"github.com/oakmund/tilerpg/component"
	"github.com/oakmund/tilerpg/core"
)

// BeingID keys a being template in the database.
type BeingID uint32

// Being is the static template for a spawnable creature or villager.
type Being struct {
	Identifier BeingID  `toml:"identifier"`
	Name       string   `toml:"name"`
	Glyph      string   `toml:"glyph"`
	FG         []uint8  `toml:"fg"`
	Blocking   bool     `toml:"blocking"`
	Monster    bool     `toml:"monster"`
	AI         string   `toml:"ai"` // "random_walk", "goal" or empty
	Goals      []string `toml:"goals"`
	Strength   int      `toml:"strength"`
	Health     *Health  `toml:"health"`
}

// Health is the optional health block of a being or item template.
type Health struct {
	MaxHP   int `toml:"max_hp"`
	Defense int `toml:"defense"`
}

// Item is the static template for a collectible item.
type Item struct {
	Identifier  component.ItemID `toml:"identifier"`
	Name        string           `toml:"name"`
	ExamineText string           `toml:"examine_text"`
	Glyph       string           `toml:"glyph"`
	FG          []uint8          `toml:"fg"`
	PickupText  string           `toml:"pickup_text"`
	Tool        string           `toml:"tool"` // tool type granted when carried
}

func (b *Being) rune() rune {
	for _, r := range b.Glyph {
		return r
	}
	return '?'
}

func (b *Being) color() core.RGB {
	return colorOf(b.FG)
}

func (i *Item) Rune() rune {
	for _, r := range i.Glyph {
		return r
	}
	return '?'
}

func (i *Item) Color() core.RGB {
	return colorOf(i.FG)
}

func colorOf(fg []uint8) core.RGB {
	if len(fg) != 3 {
		return core.White
	}
	return core.RGB{R: fg[0], G: fg[1], B: fg[2]}
}
