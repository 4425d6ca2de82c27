package mdast

import (
	"errors"
	"fmt"
)

// Token represents a classified span of bytes in the Markdown source.
// Tokens are contiguous and non-overlapping, covering [0, len(content)).
type Token struct {
	// Kind classifies what this token represents.
	Kind Kind

	// Start is the byte index where this token begins (inclusive).
	Start int

	// End is the byte index where this token ends (exclusive).
	End int
}

// Text returns the source text of this token from the given content.
func (t Token) Text(content []byte) []byte {
	if t.Start < 0 || t.End > len(content) || t.Start > t.End {
		return nil
	}
	return content[t.Start:t.End]
}

// Len returns the length of this token in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}

// IsEmpty returns true if this token has zero length.
func (t Token) IsEmpty() bool {
	return t.Start == t.End
}

// ErrInvalidTokens is wrapped by every error returned from ValidateTokens.
var ErrInvalidTokens = errors.New("invalid token stream")

// ValidateTokens checks that a token slice is a lossless tokenization:
// tokens are non-empty, contiguous, and cover [0, contentLen) exactly.
func ValidateTokens(tokens []Token, contentLen int) error {
	if len(tokens) == 0 {
		if contentLen != 0 {
			return fmt.Errorf("%w: no tokens for %d bytes", ErrInvalidTokens, contentLen)
		}
		return nil
	}

	if tokens[0].Start != 0 {
		return fmt.Errorf("%w: first token starts at %d", ErrInvalidTokens, tokens[0].Start)
	}

	for i, tok := range tokens {
		if tok.IsEmpty() {
			return fmt.Errorf("%w: empty %s token at %d", ErrInvalidTokens, tok.Kind, tok.Start)
		}
		if i > 0 && tok.Start != tokens[i-1].End {
			return fmt.Errorf("%w: gap or overlap between %d and %d", ErrInvalidTokens, tokens[i-1].End, tok.Start)
		}
	}

	if last := tokens[len(tokens)-1]; last.End != contentLen {
		return fmt.Errorf("%w: last token ends at %d, content has %d bytes", ErrInvalidTokens, last.End, contentLen)
	}

	return nil
}
