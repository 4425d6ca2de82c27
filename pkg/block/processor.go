package block

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/emirpasic/gods/maps/treemap"

	"github.com/yaklabco/mdcst/internal/logging"
	"github.com/yaklabco/mdcst/pkg/constraints"
	"github.com/yaklabco/mdcst/pkg/inline"
	"github.com/yaklabco/mdcst/pkg/mdast"
	"github.com/yaklabco/mdcst/pkg/production"
	"github.com/yaklabco/mdcst/pkg/tokens"
)

// DefaultMaxNestingDepth bounds the number of simultaneously open blocks.
const DefaultMaxNestingDepth = 256

// ErrNestingTooDeep is returned when opening a block would exceed the
// maximum nesting depth.
var ErrNestingTooDeep = errors.New("block nesting too deep")

// Options configures a Processor.
type Options struct {
	// MaxNestingDepth bounds the open block stack. Zero means
	// DefaultMaxNestingDepth.
	MaxNestingDepth int

	// Inline is run over the content of inline-holding blocks. Nil means
	// inline.CommonMark.
	Inline inline.Sequence

	// Logger receives block open and close events at debug level.
	Logger *log.Logger
}

// Processor drives the open block stack over a token cache and records
// the productions of the blocks it closes.
type Processor struct {
	cache   *tokens.Cache
	holder  *production.Holder
	dialect Dialect
	inline  inline.Sequence
	logger  *log.Logger

	maxDepth int

	stack []MarkerBlock
	// postponed maps stack indices to results deferred to the next token.
	postponed *treemap.Map
	// permutation is the cached processing order; nil when stale.
	permutation []int

	// top holds the innermost block's constraints; current those of the
	// line being processed.
	top     constraints.Constraints
	current constraints.Constraints
}

// NewProcessor returns a processor over cache that records into holder.
func NewProcessor(cache *tokens.Cache, holder *production.Holder, dialect Dialect, opts Options) *Processor {
	maxDepth := opts.MaxNestingDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxNestingDepth
	}

	seq := opts.Inline
	if seq == nil {
		seq = inline.CommonMark
	}

	return &Processor{
		cache:     cache,
		holder:    holder,
		dialect:   dialect,
		inline:    seq,
		logger:    opts.Logger,
		maxDepth:  maxDepth,
		postponed: treemap.NewWithIntComparator(),
		top:       constraints.Base,
		current:   constraints.Base,
	}
}

// Holder returns the production holder.
func (p *Processor) Holder() *production.Holder { return p.holder }

// Cache returns the token cache.
func (p *Processor) Cache() *tokens.Cache { return p.cache }

// CurrentConstraints returns the constraints of the line being processed.
func (p *Processor) CurrentConstraints() constraints.Constraints { return p.current }

// StackDepth returns the number of open blocks.
func (p *Processor) StackDepth() int { return len(p.stack) }

// LastBlock returns the innermost open block, or nil.
func (p *Processor) LastBlock() MarkerBlock {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

// HasParagraph reports whether a paragraph is open anywhere on the stack.
func (p *Processor) HasParagraph() bool {
	return slices.ContainsFunc(p.stack, func(b MarkerBlock) bool {
		_, ok := b.(*Paragraph)
		return ok
	})
}

// Run processes every token of the cache and flushes the stack.
func (p *Processor) Run() error {
	for it := p.cache.Iterator(0); it.Valid(); it = it.Advance() {
		next, err := p.ProcessToken(it)
		if err != nil {
			return err
		}
		it = next
	}

	p.Flush()
	return nil
}

// ProcessToken feeds the token at it to the open blocks and opens the
// blocks it starts. It returns the iterator at the last token consumed,
// which is past it when a line end swallows the container markers that
// re-assert open blocks on the next line.
func (p *Processor) ProcessToken(it tokens.Iterator) (tokens.Iterator, error) {
	p.holder.UpdatePosition(it.Index())
	p.applyPostponed()

	if !p.processMarkers(it) {
		for _, block := range p.dialect.CreateNewMarkerBlocks(p, it) {
			if err := p.push(block); err != nil {
				return it, err
			}
		}
	}

	if it.Kind() == mdast.TokEOL {
		it = p.passDuplicatingTokens(it)
	}

	return it, nil
}

// Flush closes every open block at the end of input.
func (p *Processor) Flush() {
	p.holder.UpdatePosition(p.cache.Len())
	p.applyPostponed()
	p.closeChildren(-1, Default)
}

// applyPostponed applies deferred results, innermost block first.
func (p *Processor) applyPostponed() {
	for !p.postponed.Empty() {
		key, value := p.postponed.Max()
		p.postponed.Remove(key)

		index, _ := key.(int)
		result, _ := value.(ProcessingResult)
		if index >= len(p.stack) {
			panic(fmt.Sprintf("block: postponed result for stack index %d, stack depth %d", index, len(p.stack)))
		}
		p.applyResult(index, p.stack[index], result)
	}
}

// processMarkers offers the token to the open blocks in priority order. It
// reports whether a block cancelled the token.
func (p *Processor) processMarkers(it tokens.Iterator) bool {
	size := len(p.stack)
	defer func() {
		if len(p.stack) != size {
			p.permutation = nil
			p.top = constraints.Base
			if last := p.LastBlock(); last != nil {
				p.top = last.Constraints()
			}
		}
	}()

	if p.permutation == nil {
		p.permutation = p.prioritizedPermutation()
	}

	for _, index := range p.permutation {
		// Blocks closed earlier in this walk leave stale indices behind.
		if index >= len(p.stack) {
			continue
		}

		block := p.stack[index]
		result := Pass
		if block.InterestedIn(it.Kind()) {
			result = block.ProcessToken(it, p.top)
		}

		switch {
		case result.Postponed:
			p.postponed.Put(index, result)
		case result == Pass:
			continue
		default:
			p.applyResult(index, block, result)
		}

		if result.Event == Cancel {
			return true
		}
	}

	return false
}

// prioritizedPermutation orders stack indices by dialect priority, then
// innermost first.
func (p *Processor) prioritizedPermutation() []int {
	order := make([]int, len(p.stack))
	for i := range order {
		order[i] = i
	}

	slices.SortFunc(order, func(a, b int) int {
		pa := p.dialect.Priority(p.stack[a].Kind())
		pb := p.dialect.Priority(p.stack[b].Kind())
		if c := cmp.Compare(pb, pa); c != 0 {
			return c
		}
		return cmp.Compare(b, a)
	})

	return order
}

// applyResult closes the blocks above index as the result's children
// action says, then the block itself.
func (p *Processor) applyResult(index int, block MarkerBlock, result ProcessingResult) {
	p.closeChildren(index, result.Children)

	if index >= len(p.stack) || p.stack[index] != block {
		panic(fmt.Sprintf("block: %s at stack index %d is no longer open", block.Kind(), index))
	}

	if p.accept(block, result.Self) {
		p.stack = slices.Delete(p.stack, index, index+1)
	}
}

// closeChildren closes every block above index with action.
func (p *Processor) closeChildren(index int, action ClosingAction) {
	if action == Nothing {
		return
	}

	for latter := len(p.stack) - 1; latter > index; latter-- {
		p.postponed.Remove(latter)

		if !p.accept(p.stack[latter], action) {
			panic(fmt.Sprintf("block: %s refused to close with %s", p.stack[latter].Kind(), action))
		}
		p.stack = p.stack[:latter]
	}
}

// accept runs action on block and reports whether the block is closed.
func (p *Processor) accept(block MarkerBlock, action ClosingAction) bool {
	if action == Default {
		action = block.DefaultAction()
	}

	switch action {
	case Done:
		if holder, ok := block.(InlineHolder); ok {
			ranges := holder.InlineRanges(p.cache, p.holder.Position())
			p.holder.Add(p.inline.Run(p.cache, ranges)...)
		}
		block.Marker().Done(block.Kind())
		p.trace("block done", block)
	case Drop:
		p.trace("block dropped", block)
	case Nothing, Default:
	}

	return action != Nothing
}

// push opens block as the innermost block.
func (p *Processor) push(block MarkerBlock) error {
	if len(p.stack) >= p.maxDepth {
		return fmt.Errorf("%w: more than %d open blocks at token %d", ErrNestingTooDeep, p.maxDepth, p.holder.Position())
	}

	p.stack = append(p.stack, block)
	p.top = block.Constraints()
	p.current = p.top
	p.permutation = nil

	p.trace("block opened", block)
	return nil
}

// passDuplicatingTokens swallows the container markers at the start of the
// next line that only re-assert blocks already open, and records the
// constraints of that line.
func (p *Processor) passDuplicatingTokens(it tokens.Iterator) tokens.Iterator {
	c := constraints.Base
	skip := 0

	for raw := 1; ; raw++ {
		kind := it.RawLookup(raw)
		if kind != mdast.TokWhitespace && !constraints.IsConstraintKind(kind) {
			break
		}
		if it.RawStart(raw)-it.RawStart(1) >= c.Indent()+codeIndent {
			break
		}

		var next constraints.Constraints
		if kind == mdast.TokWhitespace {
			next = c.FillImplicitsOnWhitespace(it, raw, p.top)
		} else {
			next = c.AddModifier(kind, it, raw)
		}

		if !next.UpstreamWith(p.top) {
			break
		}

		c = next
		if kind != mdast.TokWhitespace {
			skip++
		}
	}

	p.current = c
	for range skip {
		it = it.Advance()
	}
	return it
}

func (p *Processor) trace(msg string, block MarkerBlock) {
	if p.logger == nil {
		return
	}
	p.logger.Debug(msg,
		logging.FieldKind, block.Kind(),
		logging.FieldStart, block.Marker().Start(),
		logging.FieldPosition, p.holder.Position(),
		logging.FieldDepth, len(p.stack),
		logging.FieldConstraints, block.Constraints(),
	)
}
