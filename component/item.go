package component

// ItemID keys an item's static data in the content database.
type ItemID uint32

// Item tags a world entity as a collectible item instance.
type Item struct {
	ID ItemID
}

// Backpack holds collected items keyed by their content identifier.
// Quantities merge on insert.
type Backpack struct {
	Contents map[ItemID]int
}

// NewBackpack builds an empty backpack.
func NewBackpack() Backpack {
	return Backpack{Contents: make(map[ItemID]int)}
}

// Add merges qty of an item into the pack.
func (b *Backpack) Add(id ItemID, qty int) {
	if b.Contents == nil {
		b.Contents = make(map[ItemID]int)
	}
	b.Contents[id] += qty
}

// Count returns how many of an item the pack holds.
func (b *Backpack) Count(id ItemID) int {
	return b.Contents[id]
}

// Len returns the number of distinct item kinds carried.
func (b *Backpack) Len() int {
	return len(b.Contents)
}
