// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
)

// Step is one primitive operation of a composite operation
type Step func(ctx context.Context) error

// RunSteps runs steps in order and stops at the first failure, returning its error unchanged.
// A declined confirmation stops the chain without an error. Completed steps are not rolled back.
func RunSteps(ctx context.Context, steps ...Step) error {
	for _, step := range steps {
		if step == nil {
			continue
		}

		err := step(ctx)
		switch {
		case err == nil:
		case IsCancelled(err):
			return nil
		default:
			return err
		}
	}

	return nil
}

// Optional returns step if cond is true, otherwise a step that does nothing
func Optional(cond bool, step Step) Step {
	if !cond {
		return nil
	}

	return step
}
