package text

import (
	"context"
	"io"
)

// ReplacementRule defines a single literal text replacement operation
type ReplacementRule struct {
	// FromText is the literal text to replace
	FromText string

	// ToText is the replacement text
	ToText string

	// FileFilterGlob optionally restricts the rule to target files whose
	// base name matches the glob; empty means the rule applies everywhere
	FileFilterGlob string
}

// RuleResult records how many occurrences a single rule replaced
type RuleResult struct {
	Rule  ReplacementRule
	Count int
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the total number of replacements made
	ReplacementCount int

	// RuleResults holds per-rule occurrence counts, in rule order
	RuleResults []RuleResult

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies a set of replacement rules to the content of the
	// file at path, in rule order
	ReplaceText(ctx context.Context, content io.Reader, path string, rules []ReplacementRule) (*ReplacementResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []ReplacementRule) error
}
