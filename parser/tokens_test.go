package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenEqualityTestCase struct {
	a, b  Token
	equal bool
}

func TestEqual(t *testing.T) {
	p := StartTag{TagName: "p", Attributes: attrs("class", "A", "id", "B")}
	tests := []tokenEqualityTestCase{
		{p, StartTag{TagName: "p", Attributes: attrs("class", "A", "id", "B")}, true},
		{p, StartTag{TagName: "p", Attributes: attrs("id", "B", "class", "A")}, false},
		{p, StartTag{TagName: "p", Attributes: attrs("class", "A")}, false},
		{p, StartTag{TagName: "p", SelfClosing: true, Attributes: attrs("class", "A", "id", "B")}, false},
		{p, StartTag{TagName: "div", Attributes: attrs("class", "A", "id", "B")}, false},
		{StartTag{TagName: "p"}, StartTag{TagName: "p", Attributes: []Attribute{}}, true},
		{StartTag{TagName: "p"}, EndTag{TagName: "p"}, false},
		{EndTag{TagName: "p"}, EndTag{TagName: "p"}, true},
		{EndTag{TagName: "p"}, EndTag{TagName: "b"}, false},
		{Character{Data: 'a'}, Character{Data: 'a'}, true},
		{Character{Data: 'a'}, Character{Data: 'A'}, false},
		{Character{Data: 'a'}, EndOfFile{}, false},
		{EndOfFile{}, EndOfFile{}, true},
		{nil, nil, true},
		{nil, EndOfFile{}, false},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			assert.Equal(t, tt.equal, Equal(tt.a, tt.b))
			assert.Equal(t, tt.equal, Equal(tt.b, tt.a))
		})
	}
}

func TestTokenTypes(t *testing.T) {
	assert.Equal(t, StartTagToken, StartTag{}.Type())
	assert.Equal(t, EndTagToken, EndTag{}.Type())
	assert.Equal(t, CharacterToken, Character{}.Type())
	assert.Equal(t, EndOfFileToken, EndOfFile{}.Type())

	assert.Equal(t, "StartTag", StartTagToken.String())
	assert.Equal(t, "EndOfFile", EndOfFileToken.String())
}

func TestTagBuilder(t *testing.T) {
	b := newStartTagBuilder()
	for _, r := range "img" {
		b.WriteName(r)
	}
	b.StartNewAttribute()
	b.WriteAttribute('s', AttributeNamePart)
	b.WriteAttribute('1', AttributeValuePart)
	b.EnableSelfClosing()
	assert.Equal(t, StartTag{TagName: "img", SelfClosing: true, Attributes: attrs("s", "1")}, b.Token())

	e := newEndTagBuilder()
	e.WriteName('p')
	e.StartNewAttribute()
	e.WriteAttribute('x', AttributeNamePart)
	e.EnableSelfClosing()
	assert.Equal(t, EndTag{TagName: "p"}, e.Token())
}

func TestTagBuilderWithoutAttributePanics(t *testing.T) {
	assert.Panics(t, func() {
		newStartTagBuilder().WriteAttribute('a', AttributeNamePart)
	})
	assert.Panics(t, func() {
		(&tagBuilder{curTagType: tagType(7)}).Token()
	})
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "DataState", DataState.String())
	assert.Equal(t, "ScriptDataEndTagNameState", ScriptDataEndTagNameState.String())
	assert.Equal(t, "TemporaryBufferState", TemporaryBufferState.String())
	assert.Equal(t, "State(99)", State(99).String())
}
