package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributeAppendChar(t *testing.T) {
	attr := NewAttribute()
	for _, r := range "class" {
		attr.AppendChar(r, AttributeNamePart)
	}
	attr.AppendChar('A', AttributeValuePart)

	assert.Equal(t, "class", attr.Name())
	assert.Equal(t, "A", attr.Value())
	assert.Equal(t, NewAttributeWithValue("class", "A"), attr)
}

func TestAttributeInterleavedAppends(t *testing.T) {
	attr := NewAttributeWithValue("da", "x")
	attr.AppendChar('t', AttributeNamePart)
	attr.AppendChar('☃', AttributeValuePart)
	attr.AppendChar('a', AttributeNamePart)

	assert.Equal(t, "data", attr.Name())
	assert.Equal(t, "x☃", attr.Value())
}

func TestAttributeCopiesAreIndependent(t *testing.T) {
	attr := NewAttributeWithValue("id", "1")
	name, value := attr.Name(), attr.Value()
	attr.AppendChar('d', AttributeNamePart)
	attr.AppendChar('2', AttributeValuePart)

	assert.Equal(t, "id", name)
	assert.Equal(t, "1", value)
	assert.Equal(t, "idd", attr.Name())
}

func TestNewAttributeIsEmpty(t *testing.T) {
	attr := NewAttribute()
	assert.Empty(t, attr.Name())
	assert.Empty(t, attr.Value())
}
