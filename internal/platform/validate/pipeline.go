// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: lena.howard.dev@gmail.com

package validate

// Step is a single request-shape check. A nil return means the input passed.
//
// Steps are pure: they inspect already-decoded input and never touch storage
// or the network.
type Step func() error

// Pipeline is an explicit, ordered list of validation steps for one route.
//
// # Short-Circuiting
//
// Run evaluates steps front to back and stops at the first failure, returning
// only that step's field messages. No downstream handler logic or database
// call may execute after a pipeline failure, so the declaration order of
// steps is part of a route's contract.
type Pipeline []Step

// Run evaluates the pipeline. It returns nil when every step passes.
func (p Pipeline) Run() error {
	for _, step := range p {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
