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
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Runner executes operations synchronously. The replacement pass owns a
// single in-memory buffer and is all-or-nothing, so there is nothing to run
// concurrently or cancel mid-way.
type Runner struct {
	logger *zerolog.Logger
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger) *Runner {
	return &Runner{logger: logger}
}

// 🏃 Run executes an operation to completion
func (r *Runner) Run(ctx context.Context, op Operation) error {
	r.logger.Debug().Str("operation", op.Name()).Msg("starting operation")

	if err := op.Execute(ctx); err != nil {
		return errors.Errorf("executing %s: %w", op.Name(), err)
	}

	r.logger.Debug().Str("operation", op.Name()).Msg("operation complete")
	return nil
}
