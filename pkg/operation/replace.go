// Copyright 2025 beachfall
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"bytes"
	"context"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/beachfall/Forgeon/pkg/icons"
	"github.com/beachfall/Forgeon/pkg/log"
	"github.com/beachfall/Forgeon/pkg/text"
)

// 🔧 ReplaceOptions contains configuration for the replace operation
type ReplaceOptions struct {
	// Path is the file to rewrite in place
	Path string
	// DryRun skips the write-back
	DryRun bool
	// Replacer applies the replacement rules
	Replacer text.TextReplacer
	// Reporter emits the console report
	Reporter *log.Logger
}

// 📦 NewReplaceOperation creates the emoji replacement operation
func NewReplaceOperation(opts ReplaceOptions) (Operation, error) {
	if opts.Path == "" {
		return nil, errors.Errorf("path is required")
	}
	if opts.Replacer == nil {
		return nil, errors.Errorf("replacer is required")
	}
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}
	return &replaceOperation{opts: opts}, nil
}

// 🎮 replaceOperation implements the Operation interface
type replaceOperation struct {
	opts ReplaceOptions
}

func (op *replaceOperation) Name() string {
	return "replace-icons"
}

// 🏃 Execute runs the full pass: read, transform, write back, report. No
// write happens unless the read and the whole in-memory transform succeeded,
// so a failed run leaves the file untouched.
func (op *replaceOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	reporter := op.opts.Reporter
	path := op.opts.Path

	reporter.Infof("Reading %s...", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(raw) {
		return errors.Errorf("reading %s: %w", path, ErrNotUTF8)
	}
	originalSize := len(raw)

	// Generic symbols: unconditional global replacements
	content, err := op.applyGenericRules(ctx, raw)
	if err != nil {
		return err
	}

	// The gear needs its quoted-value contexts rewritten first
	content, err = op.applyGearRules(ctx, content)
	if err != nil {
		return err
	}

	if op.opts.DryRun {
		reporter.Warningf("dry run: not writing %s", path)
	} else {
		reporter.Infof("Writing updated %s...", path)
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return errors.Errorf("writing %s: %w", path, err)
		}
	}

	logger.Debug().
		Str("path", path).
		Int("original_size", originalSize).
		Int("new_size", len(content)).
		Msg("pass finished")

	reporter.Summary(ctx, originalSize, len(content), icons.ExcludedSymbols())
	return nil
}

// 🔄 applyGenericRules applies the symbol table, logging each non-zero count
func (op *replaceOperation) applyGenericRules(ctx context.Context, content []byte) ([]byte, error) {
	result, err := op.opts.Replacer.ReplaceText(ctx, bytes.NewReader(content), op.opts.Path, icons.GenericRules())
	if err != nil {
		return nil, errors.Errorf("applying generic rules: %w", err)
	}

	for _, rr := range result.RuleResults {
		if rr.Count > 0 {
			op.opts.Reporter.LogReplacement(ctx, log.Replacement{
				Symbol: rr.Rule.FromText,
				Markup: rr.Rule.ToText,
				Count:  rr.Count,
			})
		}
	}

	return result.ModifiedContent, nil
}

// ⚙️ applyGearRules runs the constrained gear rules, then sweeps up whatever
// raw gears remain with the catch-all. Order matters: the catch-all would
// corrupt the quoted values the context rules preserve.
func (op *replaceOperation) applyGearRules(ctx context.Context, content []byte) ([]byte, error) {
	logger := zerolog.Ctx(ctx)

	ctxResult, err := op.opts.Replacer.ReplaceText(ctx, bytes.NewReader(content), op.opts.Path, icons.GearContextRules())
	if err != nil {
		return nil, errors.Errorf("applying gear context rules: %w", err)
	}
	for _, rr := range ctxResult.RuleResults {
		logger.Debug().
			Str("pattern", rr.Rule.FromText).
			Int("count", rr.Count).
			Msg("gear context rule applied")
	}

	catchAll := icons.GearCatchAllRule()
	caResult, err := op.opts.Replacer.ReplaceText(ctx, bytes.NewReader(ctxResult.ModifiedContent), op.opts.Path, []text.ReplacementRule{catchAll})
	if err != nil {
		return nil, errors.Errorf("applying gear catch-all: %w", err)
	}
	if caResult.ReplacementCount > 0 {
		op.opts.Reporter.LogReplacement(ctx, log.Replacement{
			Symbol: catchAll.FromText,
			Markup: catchAll.ToText,
			Count:  caResult.ReplacementCount,
		})
	}

	return caResult.ModifiedContent, nil
}
