// Package operation provides the one-shot emoji replacement pass applied to
// the Forgeon web client source
package operation

import (
	"context"

	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation defines a runnable maintenance operation
type Operation interface {
	// Name identifies the operation in logs
	Name() string
	// Execute runs the operation to completion
	Execute(ctx context.Context) error
}

// ⛔ ErrNotUTF8 marks target files that cannot be decoded as UTF-8 text
var ErrNotUTF8 = errors.Base("file is not valid UTF-8")
