package parser

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// https://html.spec.whatwg.org/#escapingString
func escapeString(s string, attrVal bool) string {
	s = strings.Replace(s, "&", "&amp;", -1)
	s = strings.Replace(s, "\u00A0", "&nbsp;", -1)
	if attrVal {
		s = strings.Replace(s, "\"", "&quot;", -1)
	} else {
		s = strings.Replace(s, "<", "&lt;", -1)
		s = strings.Replace(s, ">", "&gt;", -1)
	}

	return s
}

func (t StartTag) String() string {
	var b strings.Builder
	b.WriteString("<" + t.TagName)
	for _, attr := range t.Attributes {
		b.WriteString(" " + attr.Name())
		if attr.Value() != "" {
			b.WriteString("=\"" + escapeString(attr.Value(), true) + "\"")
		}
	}
	if t.SelfClosing {
		b.WriteString("/")
	}
	b.WriteString(">")
	return b.String()
}

func (t EndTag) String() string {
	return "</" + t.TagName + ">"
}

func (t Character) String() string {
	return escapeString(string(t.Data), false)
}

func (EndOfFile) String() string {
	return ""
}

// Serialize writes tokens back out as HTML. Text inside raw text elements
// is written verbatim.
func Serialize(w io.Writer, tokens []Token) error {
	var (
		b       strings.Builder
		rawText string
	)
	for _, token := range tokens {
		switch t := token.(type) {
		case StartTag:
			if rawText == "" && !t.SelfClosing && IsRawTextElement(t.TagName) {
				rawText = t.TagName
			}
			b.WriteString(t.String())
		case EndTag:
			if t.TagName == rawText {
				rawText = ""
			}
			b.WriteString(t.String())
		case Character:
			if rawText != "" {
				b.WriteRune(t.Data)
			} else {
				b.WriteString(t.String())
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "writing serialized tokens")
}
