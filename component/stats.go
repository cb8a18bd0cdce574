package component

// Strength sets the damage an entity deals per break or attack.
type Strength struct {
	Amount int
}

// HealthStats tracks durability for beings and breakable terrain alike.
type HealthStats struct {
	HP      int
	MaxHP   int
	Defense int
}

// NewHealthStats starts an entity at full health.
func NewHealthStats(maxHP, defense int) HealthStats {
	return HealthStats{HP: maxHP, MaxHP: maxHP, Defense: defense}
}

// Dead reports whether the entity has been reduced to zero HP.
func (h HealthStats) Dead() bool {
	return h.HP <= 0
}

// SufferDamage queues damage amounts inflicted during the current turn.
// Amounts accumulate from any number of sources and are applied exactly
// once by the damage system; nothing subtracts HP directly.
type SufferDamage struct {
	Amounts []int
}

// DeathDrop names the item spawned at an entity's position when it dies.
type DeathDrop struct {
	ItemID ItemID
}
