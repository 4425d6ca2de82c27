package block

// ClosingAction says what happens to a block when it is closed.
type ClosingAction int

const (
	// Nothing leaves the block open.
	Nothing ClosingAction = iota
	// Done materializes the block as a production.
	Done
	// Drop discards the block without a production.
	Drop
	// Default resolves to the block's DefaultAction.
	Default
)

// String returns the action name.
func (a ClosingAction) String() string {
	switch a {
	case Nothing:
		return "nothing"
	case Done:
		return "done"
	case Drop:
		return "drop"
	case Default:
		return "default"
	default:
		return "unknown"
	}
}

// EventAction says whether a token continues to the remaining blocks.
type EventAction int

const (
	// Propagate hands the token to the next block in priority order.
	Propagate EventAction = iota
	// Cancel stops processing of the token. No block opens for it.
	Cancel
)

// ProcessingResult is a block's answer to one token.
type ProcessingResult struct {
	Children  ClosingAction
	Self      ClosingAction
	Event     EventAction
	Postponed bool
}

// Presets.
var (
	Pass          = ProcessingResult{Children: Nothing, Self: Nothing, Event: Propagate}
	CancelResult  = ProcessingResult{Children: Nothing, Self: Nothing, Event: Cancel}
	DefaultResult = ProcessingResult{Children: Default, Self: Done, Event: Propagate}
)

// Postpone returns r deferred until the next token, after every block has
// seen the current one.
func (r ProcessingResult) Postpone() ProcessingResult {
	r.Postponed = true
	return r
}
