package parser

// AttributePart selects which half of an attribute a character is written to.
type AttributePart uint8

const (
	AttributeNamePart AttributePart = iota
	AttributeValuePart
)

// Attribute is a name/value pair built up one character at a time while
// the tokenizer scans a start tag.
type Attribute struct {
	name  string
	value string
}

// NewAttribute creates an attribute with an empty name and value.
func NewAttribute() Attribute {
	return Attribute{}
}

// NewAttributeWithValue creates an attribute seeded with name and value.
func NewAttributeWithValue(name, value string) Attribute {
	return Attribute{name: name, value: value}
}

// AppendChar appends r to the attribute's name or value.
func (a *Attribute) AppendChar(r rune, part AttributePart) {
	switch part {
	case AttributeNamePart:
		a.name += string(r)
	case AttributeValuePart:
		a.value += string(r)
	}
}

func (a Attribute) Name() string {
	return a.name
}

func (a Attribute) Value() string {
	return a.value
}
