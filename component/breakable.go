package component

import "fmt"

// ToolType classifies the implement required to break terrain.
type ToolType uint8

const (
	ToolHand ToolType = iota
	ToolPickaxe
	ToolAxe
	ToolShovel
)

func (t ToolType) String() string {
	switch t {
	case ToolHand:
		return "Hand"
	case ToolPickaxe:
		return "Pickaxe"
	case ToolAxe:
		return "Axe"
	case ToolShovel:
		return "Shovel"
	}
	return fmt.Sprintf("ToolType(%d)", uint8(t))
}

// ParseToolType maps a content-table string to a tool type.
func ParseToolType(s string) (ToolType, error) {
	switch s {
	case "Hand":
		return ToolHand, nil
	case "Pickaxe":
		return ToolPickaxe, nil
	case "Axe":
		return ToolAxe, nil
	case "Shovel":
		return ToolShovel, nil
	}
	return ToolHand, fmt.Errorf("unknown tool type %q", s)
}

// Breakable marks destructible terrain and the tool type that breaks it.
type Breakable struct {
	By ToolType
}

// Tool is the implement an entity currently wields.
type Tool struct {
	Kind ToolType
}
