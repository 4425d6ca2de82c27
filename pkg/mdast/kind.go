package mdast

// Kind classifies both the elementary tokens produced by the lexer (leaves of
// the tree) and the elements materialized by the parser (composites).
type Kind uint16

// KindNone is returned by iterators positioned outside their domain.
const KindNone Kind = 0

// Token kinds. Every byte of the source belongs to exactly one token.
const (
	TokText Kind = iota + 1
	TokWhitespace
	TokEOL

	TokBacktick         // run of '`'
	TokEscapedBackticks // '\' followed by a run of '`'
	TokEmph             // a single '*' or '_'

	TokListBullet     // '-', '+', '*'
	TokListNumber     // '1.', '2)'
	TokBlockQuote     // '>' at line start
	TokAtxHeader      // '#' .. '######'
	TokSetext1        // '===' underline
	TokSetext2        // '---' underline
	TokHorizontalRule // '***', '- - -'
	TokCodeFenceStart // '```' or '~~~' opening a fence
	TokCodeFenceEnd   // matching closing fence
	TokFenceLang      // info string after the opening fence
	TokCode           // verbatim fence content
	TokHTMLBlock      // raw HTML block line
	TokHTMLTag        // inline HTML tag

	TokLBracket
	TokRBracket
	TokLParen
	TokRParen
	TokLT
	TokGT
	TokSingleQuote
	TokDoubleQuote
	TokColon
	TokExclamationMark

	TokAutolink      // uri inside '<' '>'
	TokEmailAutolink // address inside '<' '>'
	TokBadCharacter

	tokenKindEnd
)

// Element kinds produced by the block engine and the inline passes.
const (
	NodeFile Kind = iota + 100
	NodeParagraph
	NodeAtx1
	NodeAtx2
	NodeAtx3
	NodeAtx4
	NodeAtx5
	NodeAtx6
	NodeSetext1
	NodeSetext2
	NodeBlockQuote
	NodeUnorderedList
	NodeOrderedList
	NodeListItem
	NodeCodeBlock
	NodeCodeFence

	NodeCodeSpan
	NodeEmph
	NodeStrong
	NodeLinkDefinition
	NodeLinkLabel
	NodeLinkDestination
	NodeLinkTitle
	NodeLinkText
	NodeInlineLink
	NodeAutolink
	NodeFullReferenceLink
	NodeShortReferenceLink

	elementKindEnd
)

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = map[Kind]string{
	KindNone: "none",

	TokText:             "text",
	TokWhitespace:       "whitespace",
	TokEOL:              "eol",
	TokBacktick:         "backtick",
	TokEscapedBackticks: "escaped-backticks",
	TokEmph:             "emphasis-marker",
	TokListBullet:       "list-bullet",
	TokListNumber:       "list-number",
	TokBlockQuote:       "blockquote-marker",
	TokAtxHeader:        "atx-marker",
	TokSetext1:          "setext-1-underline",
	TokSetext2:          "setext-2-underline",
	TokHorizontalRule:   "thematic-break",
	TokCodeFenceStart:   "fence-start",
	TokCodeFenceEnd:     "fence-end",
	TokFenceLang:        "fence-lang",
	TokCode:             "code",
	TokHTMLBlock:        "html-block",
	TokHTMLTag:          "html-tag",
	TokLBracket:         "[",
	TokRBracket:         "]",
	TokLParen:           "(",
	TokRParen:           ")",
	TokLT:               "<",
	TokGT:               ">",
	TokSingleQuote:      "'",
	TokDoubleQuote:      "\"",
	TokColon:            ":",
	TokExclamationMark:  "!",
	TokAutolink:         "autolink-uri",
	TokEmailAutolink:    "email-autolink",
	TokBadCharacter:     "bad-character",

	NodeFile:               "markdown-file",
	NodeParagraph:          "paragraph",
	NodeAtx1:               "atx-1",
	NodeAtx2:               "atx-2",
	NodeAtx3:               "atx-3",
	NodeAtx4:               "atx-4",
	NodeAtx5:               "atx-5",
	NodeAtx6:               "atx-6",
	NodeSetext1:            "setext-1",
	NodeSetext2:            "setext-2",
	NodeBlockQuote:         "blockquote",
	NodeUnorderedList:      "unordered-list",
	NodeOrderedList:        "ordered-list",
	NodeListItem:           "list-item",
	NodeCodeBlock:          "indented-code-block",
	NodeCodeFence:          "fenced-code-block",
	NodeCodeSpan:           "code-span",
	NodeEmph:               "emphasis",
	NodeStrong:             "strong",
	NodeLinkDefinition:     "link-definition",
	NodeLinkLabel:          "link-label",
	NodeLinkDestination:    "link-destination",
	NodeLinkTitle:          "link-title",
	NodeLinkText:           "link-text",
	NodeInlineLink:         "inline-link",
	NodeAutolink:           "autolink",
	NodeFullReferenceLink:  "full-reference-link",
	NodeShortReferenceLink: "short-reference-link",
}

// String returns the stable vocabulary name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind returns the kind with the given vocabulary name.
func ParseKind(name string) (Kind, bool) {
	for kind, kindName := range kindNames {
		if kindName == name && kind != KindNone {
			return kind, true
		}
	}
	return KindNone, false
}

// IsToken reports whether k is a lexer token kind.
func (k Kind) IsToken() bool {
	return k > KindNone && k < tokenKindEnd
}

// IsElement reports whether k is a composite element kind.
func (k Kind) IsElement() bool {
	return k >= NodeFile && k < elementKindEnd
}

// IsWhitespace reports whether tokens of this kind are excluded from the
// significant token index.
func (k Kind) IsWhitespace() bool {
	return k == TokWhitespace
}

// IsBlock reports whether k is a block-level element.
func (k Kind) IsBlock() bool {
	return k >= NodeFile && k <= NodeCodeFence
}

// IsInline reports whether k is an inline-level element.
func (k Kind) IsInline() bool {
	return k >= NodeCodeSpan && k < elementKindEnd
}

// IsContainer reports whether k is a container block able to nest other blocks.
func (k Kind) IsContainer() bool {
	switch k {
	case NodeFile, NodeBlockQuote, NodeUnorderedList, NodeOrderedList, NodeListItem:
		return true
	default:
		return false
	}
}

// IsHeading reports whether k is an ATX or setext heading.
func (k Kind) IsHeading() bool {
	return (k >= NodeAtx1 && k <= NodeAtx6) || k == NodeSetext1 || k == NodeSetext2
}

// HeadingLevel returns the heading level (1..6) of a heading kind, or 0.
func (k Kind) HeadingLevel() int {
	switch {
	case k >= NodeAtx1 && k <= NodeAtx6:
		return int(k-NodeAtx1) + 1
	case k == NodeSetext1:
		return 1
	case k == NodeSetext2:
		return 2
	default:
		return 0
	}
}

// AtxKind returns the ATX heading kind for the given level, clamped to 1..6.
func AtxKind(level int) Kind {
	level = min(max(level, 1), 6)
	return NodeAtx1 + Kind(level-1)
}
