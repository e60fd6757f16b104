package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/htmltok/parser"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		logrus.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("htmltok", flag.ContinueOnError)
	flags.SetOutput(stderr)
	format := flags.String("format", "text", "output format: text, json or html")
	script := flags.Bool("script", true, "tokenize the contents of script, style and other raw text elements as text")
	showErrors := flags.Bool("errors", false, "print parse errors to stderr")
	normalize := flags.Bool("normalize", false, "convert CR LF and lone CR to LF before tokenizing")
	level := flags.String("v", "warning", "log level")
	if err := flags.Parse(args); err != nil {
		return err
	}

	var write func(io.Writer, []parser.Token) error
	switch *format {
	case "text":
		write = writeText
	case "json":
		write = writeJSON
	case "html":
		write = parser.Serialize
	default:
		return errors.Errorf("unknown format %q", *format)
	}

	lvl, err := logrus.ParseLevel(*level)
	if err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	in := stdin
	if flags.NArg() > 0 {
		f, err := os.Open(flags.Arg(0))
		if err != nil {
			return errors.Wrapf(err, "opening %s", flags.Arg(0))
		}
		defer f.Close()
		in = f
	}

	tokenizer, err := parser.NewHTMLTokenizerFromReader(in, parser.Config{
		Logger:            logrus.NewEntry(logger),
		NormalizeNewlines: *normalize,
	})
	if err != nil {
		return err
	}

	var tokens []parser.Token
	if *script {
		p := &parser.Parser{Tokenizer: tokenizer, Consumer: &parser.RawTextSwitcher{}}
		tokens = p.Run()
	} else {
		tokens = tokenizer.Tokenize()
	}

	if *showErrors {
		for _, e := range tokenizer.Errors() {
			fmt.Fprintln(stderr, e)
		}
	}
	return write(stdout, tokens)
}

func writeText(w io.Writer, tokens []parser.Token) error {
	for _, token := range tokens {
		var err error
		switch t := token.(type) {
		case parser.Character:
			_, err = fmt.Fprintf(w, "%s %q\n", t.Type(), t.Data)
		case parser.EndOfFile:
			_, err = fmt.Fprintln(w, t.Type())
		default:
			_, err = fmt.Fprintf(w, "%s %s\n", t.Type(), t)
		}
		if err != nil {
			return errors.Wrap(err, "writing tokens")
		}
	}
	return nil
}

type attributeJSON struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type tokenJSON struct {
	Type        string          `json:"type"`
	Tag         string          `json:"tag,omitempty"`
	SelfClosing bool            `json:"selfClosing,omitzero"`
	Attributes  []attributeJSON `json:"attributes,omitempty"`
	Data        string          `json:"data,omitempty"`
}

func writeJSON(w io.Writer, tokens []parser.Token) error {
	out := make([]tokenJSON, 0, len(tokens))
	for _, token := range tokens {
		tj := tokenJSON{Type: token.Type().String()}
		switch t := token.(type) {
		case parser.StartTag:
			tj.Tag = t.TagName
			tj.SelfClosing = t.SelfClosing
			for _, attr := range t.Attributes {
				tj.Attributes = append(tj.Attributes, attributeJSON{Name: attr.Name(), Value: attr.Value()})
			}
		case parser.EndTag:
			tj.Tag = t.TagName
		case parser.Character:
			tj.Data = string(t.Data)
		}
		out = append(out, tj)
	}

	b, err := json.Marshal(out)
	if err != nil {
		return errors.Wrap(err, "encoding tokens")
	}
	_, err = w.Write(append(b, '\n'))
	return errors.Wrap(err, "writing tokens")
}
