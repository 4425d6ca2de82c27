package mdast_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcst/pkg/mdast"
)

func TestToken_Text(t *testing.T) {
	t.Parallel()

	content := []byte("hello world")

	tests := []struct {
		name     string
		token    mdast.Token
		expected string
	}{
		{"full content", mdast.Token{Kind: mdast.TokText, Start: 0, End: 11}, "hello world"},
		{"first word", mdast.Token{Kind: mdast.TokText, Start: 0, End: 5}, "hello"},
		{"space", mdast.Token{Kind: mdast.TokWhitespace, Start: 5, End: 6}, " "},
		{"empty token", mdast.Token{Kind: mdast.TokText, Start: 5, End: 5}, ""},
		{"out of range", mdast.Token{Kind: mdast.TokText, Start: 5, End: 50}, ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, string(testCase.token.Text(content)))
		})
	}
}

func TestValidateTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tokens  []mdast.Token
		length  int
		wantErr bool
	}{
		{"empty content", nil, 0, false},
		{"missing tokens", nil, 3, true},
		{
			name: "contiguous",
			tokens: []mdast.Token{
				{Kind: mdast.TokText, Start: 0, End: 2},
				{Kind: mdast.TokEOL, Start: 2, End: 3},
			},
			length: 3,
		},
		{
			name: "gap",
			tokens: []mdast.Token{
				{Kind: mdast.TokText, Start: 0, End: 1},
				{Kind: mdast.TokEOL, Start: 2, End: 3},
			},
			length:  3,
			wantErr: true,
		},
		{
			name:    "short coverage",
			tokens:  []mdast.Token{{Kind: mdast.TokText, Start: 0, End: 2}},
			length:  3,
			wantErr: true,
		},
		{
			name: "empty token",
			tokens: []mdast.Token{
				{Kind: mdast.TokText, Start: 0, End: 0},
				{Kind: mdast.TokText, Start: 0, End: 1},
			},
			length:  1,
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := mdast.ValidateTokens(testCase.tokens, testCase.length)
			if testCase.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, mdast.ErrInvalidTokens))
				return
			}
			require.NoError(t, err)
		})
	}
}
