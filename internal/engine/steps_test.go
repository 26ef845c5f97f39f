// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/choria-io/upm/model"
)

var _ = Describe("RunSteps", func() {
	var (
		ran    []string
		record func(name string, err error) Step
	)

	BeforeEach(func() {
		ran = nil
		record = func(name string, err error) Step {
			return func(context.Context) error {
				ran = append(ran, name)
				return err
			}
		}
	})

	It("Should run all steps in order", func() {
		Expect(RunSteps(context.Background(), record("refresh", nil), record("upgrade", nil))).To(Succeed())
		Expect(ran).To(Equal([]string{"refresh", "upgrade"}))
	})

	It("Should stop at the first failure and return its error unchanged", func() {
		failure := &model.CommandError{Program: "brew", Args: []string{"update"}, ExitCode: 1}

		err := RunSteps(context.Background(), record("refresh", failure), record("upgrade", nil))
		Expect(err).To(BeIdenticalTo(failure))
		Expect(ran).To(Equal([]string{"refresh"}))
	})

	It("Should stop without error when a step is cancelled", func() {
		err := RunSteps(context.Background(), record("install", nil), record("purge", fmt.Errorf("purge: %w", model.ErrCancelled)), record("never", nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(ran).To(Equal([]string{"install", "purge"}))
	})

	It("Should succeed with no steps", func() {
		Expect(RunSteps(context.Background())).To(Succeed())
	})

	Describe("Optional", func() {
		It("Should only include the step when the condition holds", func() {
			Expect(RunSteps(context.Background(), record("install", nil), Optional(false, record("purge", nil)))).To(Succeed())
			Expect(ran).To(Equal([]string{"install"}))

			ran = nil
			Expect(RunSteps(context.Background(), record("install", nil), Optional(true, record("purge", nil)))).To(Succeed())
			Expect(ran).To(Equal([]string{"install", "purge"}))
		})

		It("Should not run a conditional step after a failure", func() {
			err := RunSteps(context.Background(), record("install", errors.New("boom")), Optional(true, record("purge", nil)))
			Expect(err).To(MatchError("boom"))
			Expect(ran).To(Equal([]string{"install"}))
		})
	})
})
