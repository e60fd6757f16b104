package parser

import "fmt"

// ParseErrorCode names a recoverable tokenization error.
// https://html.spec.whatwg.org/multipage/parsing.html#parse-errors
type ParseErrorCode string

const (
	EndTagWithAttributes                        ParseErrorCode = "end-tag-with-attributes"
	EndTagWithTrailingSolidus                   ParseErrorCode = "end-tag-with-trailing-solidus"
	EOFInTag                                    ParseErrorCode = "eof-in-tag"
	InvalidFirstCharacterOfTagName              ParseErrorCode = "invalid-first-character-of-tag-name"
	MissingAttributeValue                       ParseErrorCode = "missing-attribute-value"
	MissingWhitespaceBetweenAttributes          ParseErrorCode = "missing-whitespace-between-attributes"
	UnexpectedCharacterInUnquotedAttributeValue ParseErrorCode = "unexpected-character-in-unquoted-attribute-value"
	UnexpectedEqualsSignBeforeAttributeName     ParseErrorCode = "unexpected-equals-sign-before-attribute-name"
	UnexpectedSolidusInTag                      ParseErrorCode = "unexpected-solidus-in-tag"
)

// ParseError records where the tokenizer recovered from malformed markup.
// Offset is the index, in scalar values, of the input that triggered it.
type ParseError struct {
	Code   ParseErrorCode
	Offset int
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Code, e.Offset)
}
