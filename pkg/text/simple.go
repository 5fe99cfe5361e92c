package text

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// SimpleTextReplacer implements TextReplacer using basic string replacement
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, content io.Reader, path string, rules []ReplacementRule) (*ReplacementResult, error) {
	// Read all content
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	// Apply each rule in order
	currentContent := string(originalContent)
	for _, rule := range rules {
		// Skip empty rules
		if rule.FromText == "" {
			continue
		}

		// Skip rules scoped to other files
		if !r.ruleApplies(rule, path) {
			result.RuleResults = append(result.RuleResults, RuleResult{Rule: rule})
			continue
		}

		count := strings.Count(currentContent, rule.FromText)
		result.RuleResults = append(result.RuleResults, RuleResult{Rule: rule, Count: count})

		if count > 0 {
			currentContent = strings.ReplaceAll(currentContent, rule.FromText, rule.ToText)
			result.WasModified = true
			result.ReplacementCount += count
		}
	}

	result.ModifiedContent = []byte(currentContent)
	return result, nil
}

// ruleApplies checks whether a rule's file filter matches the target path
func (r *SimpleTextReplacer) ruleApplies(rule ReplacementRule, path string) bool {
	if rule.FileFilterGlob == "" {
		return true
	}
	matched, err := doublestar.Match(rule.FileFilterGlob, filepath.Base(path))
	if err != nil {
		// Invalid globs are rejected by ValidateRules, treat as non-matching here
		return false
	}
	return matched
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *SimpleTextReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
		if rule.FileFilterGlob != "" && !doublestar.ValidatePattern(rule.FileFilterGlob) {
			return errors.Errorf("rule %d: invalid file_filter_glob %q", i, rule.FileFilterGlob)
		}
	}
	return nil
}

// TODO(dr.methodical): 🧪 Add benchmarks for large content
