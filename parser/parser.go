package parser

import (
	"golang.org/x/net/html/atom"
)

// Parser drives a tokenizer and hands every token to a consumer, which
// may switch the tokenizer's state before the next token is produced.
type Parser struct {
	Tokenizer *HTMLTokenizer
	Consumer  TokenConsumer
}

// TokenConsumer is the tree construction side of the parser.
type TokenConsumer interface {
	ProcessToken(t Token) *Progress
}

// Progress is what a consumer reports back after a token. If
// TokenizerState is set, the tokenizer is switched to it.
type Progress struct {
	TokenizerState *State
}

func MakeProgress(tokenizerState *State) *Progress {
	return &Progress{
		TokenizerState: tokenizerState,
	}
}

// NewParser creates a parser whose consumer is a RawTextSwitcher.
func NewParser(html string, config Config) *Parser {
	return &Parser{
		Tokenizer: NewHTMLTokenizer(html, config),
		Consumer:  &RawTextSwitcher{},
	}
}

// Run tokenizes the whole input and returns the tokens, EndOfFile
// included.
func (p *Parser) Run() []Token {
	return p.startAt(nil)
}

func (p *Parser) startAt(startState *State) []Token {
	var (
		progress = MakeProgress(startState)
		tokens   = []Token{}
	)
	for {
		if progress != nil && progress.TokenizerState != nil {
			p.Tokenizer.SetState(*progress.TokenizerState)
		}
		t, ok := p.Tokenizer.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, t)
		progress = p.Consumer.ProcessToken(t)
	}
}

// ParseFragment tokenizes input as the contents of a context element,
// starting in script data when the context is a raw text element.
func ParseFragment(context, input string, config Config) []Token {
	p := NewParser(input, config)
	startState := DataState
	if IsRawTextElement(context) {
		startState = ScriptDataState
	}
	return p.startAt(&startState)
}

// IsRawTextElement reports whether the contents of the named element are
// tokenized as script data rather than markup.
func IsRawTextElement(name string) bool {
	switch atom.Lookup([]byte(name)) {
	case atom.Script, atom.Style, atom.Xmp, atom.Iframe, atom.Noembed, atom.Noframes:
		return true
	}
	return false
}

// RawTextSwitcher is a minimal consumer: it switches the tokenizer into
// script data after the start tag of a raw text element.
type RawTextSwitcher struct{}

func (r *RawTextSwitcher) ProcessToken(t Token) *Progress {
	start, ok := t.(StartTag)
	if !ok || start.SelfClosing || !IsRawTextElement(start.TagName) {
		return nil
	}
	state := ScriptDataState
	return MakeProgress(&state)
}
