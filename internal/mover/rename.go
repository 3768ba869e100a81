// SPDX-License-Identifier: MPL-2.0

package mover

import (
	"context"
	"fmt"
	"os"
)

// RenameMover performs renames directly with os.Rename. It is the default
// mover when no alternate command is configured.
type RenameMover struct{}

// NewRenameMover creates a new rename mover.
func NewRenameMover() *RenameMover {
	return &RenameMover{}
}

// Name returns the mover name.
func (m *RenameMover) Name() string {
	return "rename"
}

// Validate checks the mover's configuration.
func (m *RenameMover) Validate() error {
	return nil
}

// Move renames the file in place. A rename across filesystems fails with
// EXDEV; configuring a move command is the way out for those setups.
func (m *RenameMover) Move(ctx context.Context, req Request) *Result {
	if err := ctx.Err(); err != nil {
		return NewErrorResult(1, fmt.Errorf("rename canceled: %w", err))
	}

	// os.LinkError already carries both paths
	if err := os.Rename(req.OldPath, req.NewPath); err != nil {
		return NewErrorResult(1, fmt.Errorf("failed to rename: %w", err))
	}

	return NewSuccessResult()
}
