package component

// Blocking prevents other entities from moving onto the occupied tile.
type Blocking struct{}

// Fishable marks a tile where a fishing action may start.
type Fishable struct{}

// Monster tags hostile beings.
type Monster struct{}

// Water tags swimmable tiles.
type Water struct{}

// Grass tags grazing tiles, a delicacy for some beings.
type Grass struct{}
