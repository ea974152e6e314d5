package format

// Kind is the closed set of primitive types the formatter knows.
type Kind int

const (
	KindUnknown Kind = iota
	KindInteger
	KindBoolean
	KindColour
	KindComponent
	KindCoordGrid
	KindObj
	KindNamedObj
	KindLoc
	KindNPC
	KindString
)

var kindByTag = map[string]Kind{
	"INTEGER":   KindInteger,
	"BOOLEAN":   KindBoolean,
	"COLOUR":    KindColour,
	"COMPONENT": KindComponent,
	"COORDGRID": KindCoordGrid,
	"OBJ":       KindObj,
	"NAMEDOBJ":  KindNamedObj,
	"LOC":       KindLoc,
	"NPC":       KindNPC,
	"STRING":    KindString,
}

// Type is a parsed primitive type tag. Unknown tags keep their text in Tag.
type Type struct {
	Kind Kind
	Tag  string
}

// ParseType maps a type tag such as "COORDGRID" to its Type. Tags are case-sensitive.
func ParseType(tag string) Type {
	return Type{Kind: kindByTag[tag], Tag: tag}
}

// String returns the tag the type was parsed from.
func (t Type) String() string {
	return t.Tag
}

// IsReference reports whether values of this type are ids into a collection.
func (t Type) IsReference() bool {
	switch t.Kind {
	case KindObj, KindNamedObj, KindLoc, KindNPC:
		return true
	default:
		return false
	}
}
