// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/segmentio/ksuid"
)

var _ = Describe("OperationEvent", func() {
	It("Should create unique valid events", func() {
		e1 := NewOperationEvent("run", "brew", OpSyncInstall, []string{"wget"}, nil)
		e2 := NewOperationEvent("run", "brew", OpSyncInstall, []string{"wget"}, nil)

		Expect(e1.EventID).ToNot(Equal(e2.EventID))
		_, err := ksuid.Parse(e1.EventID)
		Expect(err).ToNot(HaveOccurred())
		Expect(e1.Protocol).To(Equal(OperationEventProtocol))
		Expect(e1.Operation).To(Equal(OpSyncInstall))
	})

	DescribeTable("Complete",
		func(err error, outcome string, exitCode int) {
			e := NewOperationEvent("run", "brew", OpRemove, nil, nil)
			e.Complete(err)

			Expect(e.Outcome).To(Equal(outcome))
			Expect(e.ExitCode).To(Equal(exitCode))
			if err == nil || errors.Is(err, ErrCancelled) {
				Expect(e.Error).To(BeEmpty())
			} else {
				Expect(e.Error).To(Equal(err.Error()))
			}
		},
		Entry("success", nil, OutcomeSuccess, 0),
		Entry("cancelled", fmt.Errorf("x: %w", ErrCancelled), OutcomeCancelled, 0),
		Entry("command failure", &CommandError{Program: "brew", Args: []string{"uninstall", "x"}, ExitCode: 3}, OutcomeFailed, 3),
		Entry("other error", ErrRequiredComponentMissing, OutcomeError, 0),
	)

	It("Should summarize events", func() {
		var events []*OperationEvent
		for _, err := range []error{nil, nil, ErrCancelled, &CommandError{ExitCode: 1}, ErrTextDecode} {
			e := NewOperationEvent("run", "brew", OpQuery, nil, nil)
			e.Complete(err)
			events = append(events, e)
		}

		Expect(BuildSessionSummary(events)).To(Equal(&SessionSummary{Total: 5, Succeeded: 2, Failed: 1, Cancelled: 1, Errored: 1}))
	})
})
