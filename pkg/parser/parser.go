// Package parser is the entry point of the concrete syntax tree parser. It
// runs the lexer, the block engine and the inline passes, then assembles
// the flat productions into a lossless tree.
package parser

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/mdcst/pkg/block"
	"github.com/yaklabco/mdcst/pkg/lexer"
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/production"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

// DefaultMaxInputBytes is the largest input accepted by default.
const DefaultMaxInputBytes = 64 << 20

// Parser parses Markdown into concrete syntax trees. A Parser holds only
// configuration and is safe for concurrent use.
type Parser struct {
	maxInputBytes   int
	maxNestingDepth int
	lexer           lexer.Lexer
	dialect         block.Dialect
	logger          *log.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxInputBytes bounds the input size. Non-positive values disable the
// bound.
func WithMaxInputBytes(n int) Option {
	return func(p *Parser) { p.maxInputBytes = n }
}

// WithMaxNestingDepth bounds the number of simultaneously open blocks.
func WithMaxNestingDepth(n int) Option {
	return func(p *Parser) { p.maxNestingDepth = n }
}

// WithLexer replaces the lexer.
func WithLexer(l lexer.Lexer) Option {
	return func(p *Parser) { p.lexer = l }
}

// WithDialect replaces the block grammar.
func WithDialect(d block.Dialect) Option {
	return func(p *Parser) { p.dialect = d }
}

// WithLogger traces block engine events at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// New returns a parser with the CommonMark lexer and dialect and the
// default limits.
func New(opts ...Option) *Parser {
	p := &Parser{
		maxInputBytes:   DefaultMaxInputBytes,
		maxNestingDepth: block.DefaultMaxNestingDepth,
		lexer:           lexer.Default{},
		dialect:         block.CommonMark{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses src with a parser configured by opts.
func Parse(src []byte, opts ...Option) (*mdast.Node, error) {
	return New(opts...).Parse(src)
}

// Parse returns the tree of src. Its root is a markdown-file node whose
// leaves concatenate to src. The only errors are *LimitError.
func (p *Parser) Parse(src []byte) (*mdast.Node, error) {
	_, root, err := p.parse(src)
	return root, err
}

func (p *Parser) parse(src []byte) ([]mdast.Token, *mdast.Node, error) {
	if p.maxInputBytes > 0 && len(src) > p.maxInputBytes {
		return nil, nil, &LimitError{Limit: LimitInputBytes, Value: len(src), Max: p.maxInputBytes}
	}

	toks := p.lexer.Tokenize(src)
	cache := tokens.NewCache(src, toks)
	holder := production.NewHolder()

	proc := block.NewProcessor(cache, holder, p.dialect, block.Options{
		MaxNestingDepth: p.maxNestingDepth,
		Logger:          p.logger,
	})
	if err := proc.Run(); err != nil {
		if errors.Is(err, block.ErrNestingTooDeep) {
			return nil, nil, &LimitError{
				Limit: LimitNestingDepth,
				Value: proc.StackDepth() + 1,
				Max:   p.maxNestingDepth,
				Err:   err,
			}
		}
		return nil, nil, fmt.Errorf("block engine: %w", err)
	}

	return toks, buildTree(cache, holder.Nodes()), nil
}

// ParseFile parses content read from path into a snapshot holding the
// content, its line table, the token stream and the tree.
func (p *Parser) ParseFile(ctx context.Context, path string, content []byte) (*mdast.FileSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	snapshot := mdast.NewFileSnapshot(path, copyContent(content))

	toks, root, err := p.parse(snapshot.Content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	if err := mdast.ValidateTokens(toks, len(snapshot.Content)); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	snapshot.Tokens = toks
	snapshot.Root = root
	return snapshot, nil
}

// ParseFile parses content with a parser configured by opts.
func ParseFile(ctx context.Context, path string, content []byte, opts ...Option) (*mdast.FileSnapshot, error) {
	return New(opts...).ParseFile(ctx, path, content)
}

// copyContent detaches the snapshot from the caller's buffer.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}
