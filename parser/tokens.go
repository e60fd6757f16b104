package parser

import "github.com/pkg/errors"

// TokenType identifies which variant a Token is.
type TokenType uint

const (
	CharacterToken TokenType = iota
	StartTagToken
	EndTagToken
	EndOfFileToken
)

func (t TokenType) String() string {
	switch t {
	case CharacterToken:
		return "Character"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case EndOfFileToken:
		return "EndOfFile"
	}
	return "TokenType(?)"
}

// Token is a concrete token that is ready to be emitted. It is one of
// StartTag, EndTag, Character or EndOfFile; consumers switch on the
// concrete type.
type Token interface {
	Type() TokenType
	String() string
	token()
}

// StartTag looks like <a href="x">. Attributes keep source order and
// duplicates.
type StartTag struct {
	TagName     string
	SelfClosing bool
	Attributes  []Attribute
}

// EndTag looks like </a>.
type EndTag struct {
	TagName string
}

// Character carries a single scalar value of text.
type Character struct {
	Data rune
}

// EndOfFile is emitted once, as the last token of the input.
type EndOfFile struct{}

func (StartTag) Type() TokenType  { return StartTagToken }
func (EndTag) Type() TokenType    { return EndTagToken }
func (Character) Type() TokenType { return CharacterToken }
func (EndOfFile) Type() TokenType { return EndOfFileToken }

func (StartTag) token()  {}
func (EndTag) token()    {}
func (Character) token() {}
func (EndOfFile) token() {}

// Equal reports whether a and b are the same variant with the same fields.
// Attribute order matters.
func Equal(a, b Token) bool {
	switch at := a.(type) {
	case StartTag:
		bt, ok := b.(StartTag)
		if !ok || at.TagName != bt.TagName || at.SelfClosing != bt.SelfClosing {
			return false
		}
		if len(at.Attributes) != len(bt.Attributes) {
			return false
		}
		for i := range at.Attributes {
			if at.Attributes[i] != bt.Attributes[i] {
				return false
			}
		}
		return true
	case EndTag:
		bt, ok := b.(EndTag)
		return ok && at == bt
	case Character:
		bt, ok := b.(Character)
		return ok && at == bt
	case EndOfFile:
		_, ok := b.(EndOfFile)
		return ok
	case nil:
		return b == nil
	}
	panic(errors.Errorf("unknown token variant %T", a))
}

type tagType uint

const (
	startTag tagType = iota
	endTag
)

// tagBuilder is the tag under construction, owned by the tokenizer.
// Attributes and the self-closing flag are collected for end tags too but
// never make it into the EndTag token.
type tagBuilder struct {
	curTagType  tagType
	name        string
	attributes  []Attribute
	selfClosing bool
}

func newStartTagBuilder() *tagBuilder {
	return &tagBuilder{curTagType: startTag}
}

func newEndTagBuilder() *tagBuilder {
	return &tagBuilder{curTagType: endTag}
}

// WriteName appends a character to the tag name.
func (t *tagBuilder) WriteName(r rune) {
	t.name += string(r)
}

// StartNewAttribute pushes an empty attribute onto the tag.
func (t *tagBuilder) StartNewAttribute() {
	t.attributes = append(t.attributes, NewAttribute())
}

// WriteAttribute appends a character to the name or value of the last
// attribute.
func (t *tagBuilder) WriteAttribute(r rune, part AttributePart) {
	if len(t.attributes) == 0 {
		panic(errors.New("no attribute under construction"))
	}
	t.attributes[len(t.attributes)-1].AppendChar(r, part)
}

// EnableSelfClosing changes the self-closing flag to "set".
func (t *tagBuilder) EnableSelfClosing() {
	t.selfClosing = true
}

// Token converts the builder contents into the token to emit.
func (t *tagBuilder) Token() Token {
	switch t.curTagType {
	case startTag:
		return StartTag{
			TagName:     t.name,
			SelfClosing: t.selfClosing,
			Attributes:  t.attributes,
		}
	case endTag:
		return EndTag{TagName: t.name}
	}
	panic(errors.Errorf("unknown tag type %d", t.curTagType))
}
