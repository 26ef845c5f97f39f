// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPrompt(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Internal/Prompt")
}

var _ = Describe("Terminal", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	DescribeTable("IsYes",
		func(answer string, expected bool) {
			Expect(IsYes(answer)).To(Equal(expected))
		},
		Entry("y", "y\n", true),
		Entry("yes", "yes", true),
		Entry("upper case", " YES \n", true),
		Entry("no", "n\n", false),
		Entry("empty", "\n", false),
		Entry("other", "sure", false),
	)

	It("Should ask the question and accept yes", func() {
		t := New(strings.NewReader("yes\n"), out)

		ok, err := t.Confirm(context.Background(), "Proceed with the previous command?")
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(out.String()).To(Equal("Proceed with the previous command? [y/N] "))
	})

	It("Should decline on end of input", func() {
		ok, err := New(strings.NewReader(""), out).Confirm(context.Background(), "Proceed?")
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("Should accept a final line without a newline", func() {
		ok, err := New(strings.NewReader("y"), out).Confirm(context.Background(), "Proceed?")
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeTrue())
	})

	It("Should read one answer per question", func() {
		t := New(strings.NewReader("y\nn\nyes\n"), out)

		for _, expected := range []bool{true, false, true, false} {
			ok, err := t.Confirm(context.Background(), "Proceed?")
			Expect(err).ToNot(HaveOccurred())
			Expect(ok).To(Equal(expected))
		}
	})

	It("Should not read when the context is done", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ok, err := New(strings.NewReader("y\n"), out).Confirm(ctx, "Proceed?")
		Expect(err).To(MatchError(context.Canceled))
		Expect(ok).To(BeFalse())
		Expect(out.Len()).To(Equal(0))
	})

	Describe("Input", func() {
		It("Should be the original input before anything was read", func() {
			in := strings.NewReader("y\n")
			Expect(New(in, out).Input()).To(BeIdenticalTo(in))
		})

		It("Should keep input read ahead of an answer", func() {
			t := New(strings.NewReader("y\nfirst\nsecond\n"), out)

			ok, err := t.Confirm(context.Background(), "Proceed?")
			Expect(err).ToNot(HaveOccurred())
			Expect(ok).To(BeTrue())

			rest, err := io.ReadAll(t.Input())
			Expect(err).ToNot(HaveOccurred())
			Expect(string(rest)).To(Equal("first\nsecond\n"))
		})
	})
})
