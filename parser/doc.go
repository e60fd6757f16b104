/*
Package parser tokenizes HTML documents.

It follows the tokenization section of the HTML standard:

	https://html.spec.whatwg.org/multipage/parsing.html#tokenization

for start tags, end tags, attributes, character data and script data.
Comments, doctypes and character references are not tokenized.

Create a tokenizer over a complete document and call Next until it reports
false. The last token produced is always EndOfFile:

	t := parser.NewHTMLTokenizer(`<p class="a">hi</p>`, parser.Config{})
	for token, ok := t.Next(); ok; token, ok = t.Next() {
		switch token.(type) {
		case parser.StartTag:
			// ...
		case parser.Character:
			// ...
		}
	}

The tokenizer never switches into script data on its own. Whoever builds
the tree decides that, either by calling SetState directly or by returning a
Progress from a TokenConsumer driven by a Parser. RawTextSwitcher is a
consumer that does only that.

Malformed markup never fails tokenization. The points where the tokenizer
recovered are available from Errors.
*/
package parser
