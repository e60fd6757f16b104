package parser

import (
	"io"
	"iter"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config holds the construction time options of a tokenizer.
type Config struct {
	// Logger receives state transitions at trace level and parse errors at
	// debug level. Nil means the logrus standard logger.
	Logger *logrus.Entry
	// NormalizeNewlines turns CR LF pairs and lone CRs into LF before
	// tokenizing.
	NormalizeNewlines bool
}

// HTMLTokenizer holds state for the various state of the tokenizer.
type HTMLTokenizer struct {
	input                     []rune
	pos                       int
	reconsume                 bool
	done                      bool
	returnState, currentState State
	latestToken               *tagBuilder
	tempBuffer                []rune
	emitted                   Token
	errors                    []ParseError
	log                       *logrus.Entry
}

// NewHTMLTokenizer creates an HTML tokenizer over a complete document.
func NewHTMLTokenizer(html string, config Config) *HTMLTokenizer {
	if config.NormalizeNewlines {
		html = normalizeNewlines(html)
	}
	log := config.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &HTMLTokenizer{
		input:        []rune(html),
		currentState: DataState,
		log:          log,
	}
}

// NewHTMLTokenizerFromReader reads all of r and creates a tokenizer over
// it. The input must be UTF-8.
func NewHTMLTokenizerFromReader(r io.Reader, config Config) (*HTMLTokenizer, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading html input")
	}
	return NewHTMLTokenizer(string(b), config), nil
}

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// https://html.spec.whatwg.org/multipage/parsing.html#preprocessing-the-input-stream
func normalizeNewlines(s string) string {
	return newlineReplacer.Replace(s)
}

// SetState forces the state machine into s. The tree construction stage
// uses it to switch into ScriptDataState after a raw text start tag.
func (p *HTMLTokenizer) SetState(s State) {
	p.log.WithFields(logrus.Fields{"from": p.currentState, "to": s}).Debug("[TOKEN] state switched")
	p.currentState = s
}

// CurrentState returns the state the next input character is handled in.
func (p *HTMLTokenizer) CurrentState() State {
	return p.currentState
}

// Errors returns the parse errors recovered from so far.
func (p *HTMLTokenizer) Errors() []ParseError {
	return p.errors
}

// Next produces the next token. The final token is always EndOfFile;
// after it has been returned Next reports false.
func (p *HTMLTokenizer) Next() (Token, bool) {
	if p.done {
		return nil, false
	}

	// some states consume input without emitting anything. loop until a
	// token is emitted.
	for {
		if p.currentState == TemporaryBufferState {
			if token := p.flushTempBuffer(); token != nil {
				return token, true
			}
			continue
		}

		r, eof := p.consume()
		if p.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
			p.log.WithFields(logrus.Fields{"rune": string(r), "eof": eof, "state": p.currentState}).Trace("[TOKEN]")
		}
		p.reconsume, p.currentState = p.stateToParser(p.currentState)(r, eof)

		if token := p.takeEmittedToken(); token != nil {
			return token, true
		}
	}
}

// All returns the remaining tokens as a sequence.
func (p *HTMLTokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			token, ok := p.Next()
			if !ok || !yield(token) {
				return
			}
		}
	}
}

// Tokenize drains the tokenizer and returns every remaining token,
// EndOfFile included.
func (p *HTMLTokenizer) Tokenize() []Token {
	tokens := []Token{}
	for token := range p.All() {
		tokens = append(tokens, token)
	}
	return tokens
}

func (p *HTMLTokenizer) isEOF() bool {
	return p.pos > len(p.input)
}

// consume returns the next input character, or the previous one again if
// the last state asked to reconsume it. Past the last character it reports
// eof, and keeps reporting it when reconsumed.
func (p *HTMLTokenizer) consume() (rune, bool) {
	if p.reconsume {
		p.reconsume = false
	} else {
		p.pos++
	}
	if p.isEOF() {
		return 0, true
	}
	return p.input[p.pos-1], false
}

func (p *HTMLTokenizer) emit(token Token) {
	if p.emitted != nil {
		panic(errors.Errorf("emitting %s while %s is still pending", token, p.emitted))
	}
	p.emitted = token
}

func (p *HTMLTokenizer) takeEmittedToken() Token {
	token := p.emitted
	p.emitted = nil
	if _, ok := token.(EndOfFile); ok {
		p.done = true
	}
	return token
}

// emitCurrentTag moves the tag under construction out of the tokenizer
// and emits it.
func (p *HTMLTokenizer) emitCurrentTag() State {
	if p.latestToken == nil {
		panic(errors.New("no tag under construction"))
	}
	if p.latestToken.curTagType == endTag {
		if len(p.latestToken.attributes) > 0 {
			p.parseError(EndTagWithAttributes)
		}
		if p.latestToken.selfClosing {
			p.parseError(EndTagWithTrailingSolidus)
		}
	}
	p.emit(p.latestToken.Token())
	p.latestToken = nil
	return DataState
}

// emitEOF drops any tag under construction and emits the end of file
// token.
func (p *HTMLTokenizer) emitEOF() (bool, State) {
	if p.latestToken != nil {
		p.parseError(EOFInTag)
		p.latestToken = nil
	}
	p.emit(EndOfFile{})
	return false, DataState
}

func (p *HTMLTokenizer) parseError(code ParseErrorCode) {
	err := ParseError{Code: code, Offset: p.pos - 1}
	p.errors = append(p.errors, err)
	p.log.WithField("state", p.currentState).Debug(err.Error())
}

// flushTempBuffer emits the first buffered character. Once the buffer is
// empty it hands control back to the return state and emits nothing.
func (p *HTMLTokenizer) flushTempBuffer() Token {
	if len(p.tempBuffer) == 0 {
		p.currentState = p.returnState
		return nil
	}
	r := p.tempBuffer[0]
	p.tempBuffer = p.tempBuffer[1:]
	return Character{Data: r}
}

// a stateHandler is a func that takes in a rune and a bool representing the
// end of file and returns whether to reconsume along with the next state.
type stateHandler func(r rune, eof bool) (bool, State)

func (p *HTMLTokenizer) stateToParser(state State) stateHandler {
	switch state {
	case DataState:
		return p.dataStateParser
	case TagOpenState:
		return p.tagOpenStateParser
	case EndTagOpenState:
		return p.endTagOpenStateParser
	case TagNameState:
		return p.tagNameStateParser
	case BeforeAttributeNameState:
		return p.beforeAttributeNameStateParser
	case AttributeNameState:
		return p.attributeNameStateParser
	case AfterAttributeNameState:
		return p.afterAttributeNameStateParser
	case BeforeAttributeValueState:
		return p.beforeAttributeValueStateParser
	case AttributeValueDoubleQuotedState:
		return p.attributeValueDoubleQuotedStateParser
	case AttributeValueSingleQuotedState:
		return p.attributeValueSingleQuotedStateParser
	case AttributeValueUnquotedState:
		return p.attributeValueUnquotedStateParser
	case AfterAttributeValueQuotedState:
		return p.afterAttributeValueQuotedStateParser
	case SelfClosingStartTagState:
		return p.selfClosingStartTagStateParser
	case ScriptDataState:
		return p.scriptDataStateParser
	case ScriptDataLessThanSignState:
		return p.scriptDataLessThanSignStateParser
	case ScriptDataEndTagOpenState:
		return p.scriptDataEndTagOpenStateParser
	case ScriptDataEndTagNameState:
		return p.scriptDataEndTagNameStateParser
	}

	panic(errors.Errorf("no handler for %s", state))
}

func isASCIIWhitespace(r rune) bool {
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u000D', ' ':
		return true
	default:
		return false
	}
}

func isASCIIUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isASCIIAlpha(r rune) bool {
	return isASCIIUpper(r) || (r >= 'a' && r <= 'z')
}

func toASCIILower(r rune) rune {
	if isASCIIUpper(r) {
		return r + 0x20
	}
	return r
}

func (p *HTMLTokenizer) dataStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.emitEOF()
	}
	switch r {
	case '<':
		return false, TagOpenState
	default:
		p.emit(Character{Data: r})
		return false, DataState
	}
}

func (p *HTMLTokenizer) tagOpenStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.emitEOF()
	}
	switch {
	case r == '/':
		return false, EndTagOpenState
	case isASCIIAlpha(r):
		p.latestToken = newStartTagBuilder()
		return true, TagNameState
	default:
		p.parseError(InvalidFirstCharacterOfTagName)
		return true, DataState
	}
}

func (p *HTMLTokenizer) endTagOpenStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.emitEOF()
	}
	if isASCIIAlpha(r) {
		p.latestToken = newEndTagBuilder()
		return true, TagNameState
	}
	// the character is dropped and the next one is tried as a tag name.
	p.parseError(InvalidFirstCharacterOfTagName)
	return false, EndTagOpenState
}

func (p *HTMLTokenizer) tagNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.emitEOF()
	}
	switch {
	case isASCIIWhitespace(r):
		return false, BeforeAttributeNameState
	case r == '/':
		return false, SelfClosingStartTagState
	case r == '>':
		return false, p.emitCurrentTag()
	default:
		p.latestToken.WriteName(toASCIILower(r))
		return false, TagNameState
	}
}

func (p *HTMLTokenizer) beforeAttributeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, AfterAttributeNameState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u000D', ' ':
		return false, BeforeAttributeNameState
	case '/', '>':
		return true, AfterAttributeNameState
	case '=':
		p.parseError(UnexpectedEqualsSignBeforeAttributeName)
		p.latestToken.StartNewAttribute()
		p.latestToken.WriteAttribute(r, AttributeNamePart)
		return false, AttributeNameState
	default:
		p.latestToken.StartNewAttribute()
		return true, AttributeNameState
	}
}

func (p *HTMLTokenizer) attributeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, AfterAttributeNameState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u000D', ' ', '/', '>':
		return true, AfterAttributeNameState
	case '=':
		return false, BeforeAttributeValueState
	default:
		p.latestToken.WriteAttribute(toASCIILower(r), AttributeNamePart)
		return false, AttributeNameState
	}
}

func (p *HTMLTokenizer) afterAttributeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.emitEOF()
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u000D', ' ':
		return false, AfterAttributeNameState
	case '/':
		return false, SelfClosingStartTagState
	case '=':
		return false, BeforeAttributeValueState
	case '>':
		return false, p.emitCurrentTag()
	default:
		p.latestToken.StartNewAttribute()
		return true, AttributeNameState
	}
}

func (p *HTMLTokenizer) beforeAttributeValueStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, AttributeValueUnquotedState
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u000D', ' ':
		return false, BeforeAttributeValueState
	case '"':
		return false, AttributeValueDoubleQuotedState
	case '\'':
		return false, AttributeValueSingleQuotedState
	case '>':
		p.parseError(MissingAttributeValue)
		return false, p.emitCurrentTag()
	default:
		return true, AttributeValueUnquotedState
	}
}

func (p *HTMLTokenizer) attributeValueDoubleQuotedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.emitEOF()
	}
	switch r {
	case '"':
		return false, AfterAttributeValueQuotedState
	default:
		p.latestToken.WriteAttribute(r, AttributeValuePart)
		return false, AttributeValueDoubleQuotedState
	}
}

func (p *HTMLTokenizer) attributeValueSingleQuotedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.emitEOF()
	}
	switch r {
	case '\'':
		return false, AfterAttributeValueQuotedState
	default:
		p.latestToken.WriteAttribute(r, AttributeValuePart)
		return false, AttributeValueSingleQuotedState
	}
}

func (p *HTMLTokenizer) attributeValueUnquotedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.emitEOF()
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u000D', ' ':
		return false, BeforeAttributeNameState
	case '>':
		return false, p.emitCurrentTag()
	case '"', '\'', '<', '=', '`':
		p.parseError(UnexpectedCharacterInUnquotedAttributeValue)
		p.latestToken.WriteAttribute(r, AttributeValuePart)
		return false, AttributeValueUnquotedState
	default:
		p.latestToken.WriteAttribute(r, AttributeValuePart)
		return false, AttributeValueUnquotedState
	}
}

func (p *HTMLTokenizer) afterAttributeValueQuotedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.emitEOF()
	}
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u000D', ' ':
		return false, BeforeAttributeNameState
	case '/':
		return false, SelfClosingStartTagState
	case '>':
		return false, p.emitCurrentTag()
	default:
		// treated as if whitespace separated the attributes.
		p.parseError(MissingWhitespaceBetweenAttributes)
		return true, BeforeAttributeNameState
	}
}

func (p *HTMLTokenizer) selfClosingStartTagStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.emitEOF()
	}
	switch r {
	case '>':
		p.latestToken.EnableSelfClosing()
		return false, p.emitCurrentTag()
	default:
		// treated as if the solidus was whitespace.
		p.parseError(UnexpectedSolidusInTag)
		return true, BeforeAttributeNameState
	}
}

func (p *HTMLTokenizer) scriptDataStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.emitEOF()
	}
	switch r {
	case '<':
		return false, ScriptDataLessThanSignState
	default:
		p.emit(Character{Data: r})
		return false, ScriptDataState
	}
}

func (p *HTMLTokenizer) scriptDataLessThanSignStateParser(r rune, eof bool) (bool, State) {
	if !eof && r == '/' {
		p.tempBuffer = p.tempBuffer[:0]
		return false, ScriptDataEndTagOpenState
	}
	p.emit(Character{Data: '<'})
	return true, ScriptDataState
}

// scriptDataEndTagOpenStateParser commits to an end tag as soon as a letter
// follows "</". Anything else replays "</" as text and goes back to script
// data.
func (p *HTMLTokenizer) scriptDataEndTagOpenStateParser(r rune, eof bool) (bool, State) {
	if !eof && isASCIIAlpha(r) {
		p.latestToken = newEndTagBuilder()
		return true, ScriptDataEndTagNameState
	}
	p.tempBuffer = append(p.tempBuffer[:0], '<', '/')
	p.returnState = ScriptDataState
	return true, TemporaryBufferState
}

// scriptDataEndTagNameStateParser gives up on the end tag at the first
// character that cannot continue its name; everything consumed since "</"
// is then replayed as text.
func (p *HTMLTokenizer) scriptDataEndTagNameStateParser(r rune, eof bool) (bool, State) {
	if !eof && r == '>' {
		return false, p.emitCurrentTag()
	}
	if !eof && isASCIIAlpha(r) {
		p.latestToken.WriteName(toASCIILower(r))
		p.tempBuffer = append(p.tempBuffer, r)
		return false, ScriptDataEndTagNameState
	}

	p.latestToken = nil
	buf := make([]rune, 0, len(p.tempBuffer)+3)
	buf = append(buf, '<', '/')
	buf = append(buf, p.tempBuffer...)
	if !eof {
		buf = append(buf, r)
	}
	p.tempBuffer = buf
	p.returnState = DataState
	return eof, TemporaryBufferState
}
