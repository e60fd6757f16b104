package parser

import "strconv"

// State is a state of the tokenizer state machine. Each one is named after
// the WHATWG tokenization state it follows.
type State uint

const (
	// https://html.spec.whatwg.org/multipage/parsing.html#data-state
	DataState State = iota
	// https://html.spec.whatwg.org/multipage/parsing.html#tag-open-state
	TagOpenState
	// https://html.spec.whatwg.org/multipage/parsing.html#end-tag-open-state
	EndTagOpenState
	// https://html.spec.whatwg.org/multipage/parsing.html#tag-name-state
	TagNameState
	// https://html.spec.whatwg.org/multipage/parsing.html#before-attribute-name-state
	BeforeAttributeNameState
	// https://html.spec.whatwg.org/multipage/parsing.html#attribute-name-state
	AttributeNameState
	// https://html.spec.whatwg.org/multipage/parsing.html#after-attribute-name-state
	AfterAttributeNameState
	// https://html.spec.whatwg.org/multipage/parsing.html#before-attribute-value-state
	BeforeAttributeValueState
	// https://html.spec.whatwg.org/multipage/parsing.html#attribute-value-(double-quoted)-state
	AttributeValueDoubleQuotedState
	// https://html.spec.whatwg.org/multipage/parsing.html#attribute-value-(single-quoted)-state
	AttributeValueSingleQuotedState
	// https://html.spec.whatwg.org/multipage/parsing.html#attribute-value-(unquoted)-state
	AttributeValueUnquotedState
	// https://html.spec.whatwg.org/multipage/parsing.html#after-attribute-value-(quoted)-state
	AfterAttributeValueQuotedState
	// https://html.spec.whatwg.org/multipage/parsing.html#self-closing-start-tag-state
	SelfClosingStartTagState
	// https://html.spec.whatwg.org/multipage/parsing.html#script-data-state
	ScriptDataState
	// https://html.spec.whatwg.org/multipage/parsing.html#script-data-less-than-sign-state
	ScriptDataLessThanSignState
	// https://html.spec.whatwg.org/multipage/parsing.html#script-data-end-tag-open-state
	ScriptDataEndTagOpenState
	// https://html.spec.whatwg.org/multipage/parsing.html#script-data-end-tag-name-state
	ScriptDataEndTagNameState
	// Replays the temporary buffer as character tokens.
	// https://html.spec.whatwg.org/multipage/parsing.html#temporary-buffer
	TemporaryBufferState
)

var stateNames = [...]string{
	DataState:                       "DataState",
	TagOpenState:                    "TagOpenState",
	EndTagOpenState:                 "EndTagOpenState",
	TagNameState:                    "TagNameState",
	BeforeAttributeNameState:        "BeforeAttributeNameState",
	AttributeNameState:              "AttributeNameState",
	AfterAttributeNameState:         "AfterAttributeNameState",
	BeforeAttributeValueState:       "BeforeAttributeValueState",
	AttributeValueDoubleQuotedState: "AttributeValueDoubleQuotedState",
	AttributeValueSingleQuotedState: "AttributeValueSingleQuotedState",
	AttributeValueUnquotedState:     "AttributeValueUnquotedState",
	AfterAttributeValueQuotedState:  "AfterAttributeValueQuotedState",
	SelfClosingStartTagState:        "SelfClosingStartTagState",
	ScriptDataState:                 "ScriptDataState",
	ScriptDataLessThanSignState:     "ScriptDataLessThanSignState",
	ScriptDataEndTagOpenState:       "ScriptDataEndTagOpenState",
	ScriptDataEndTagNameState:       "ScriptDataEndTagNameState",
	TemporaryBufferState:            "TemporaryBufferState",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "State(" + strconv.FormatUint(uint64(s), 10) + ")"
}
