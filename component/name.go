package component

// Name is the display name of an entity. Names double as lookup keys into
// the content database, so goal-seeking AI stores them as desires.
type Name struct {
	Value string
}

const (
	MissingItemName  = "MISSING_ITEM_NAME"
	MissingBeingName = "MISSING_BEING_NAME"
)

func NewName(value string) Name {
	return Name{Value: value}
}

func (n Name) String() string {
	return n.Value
}
