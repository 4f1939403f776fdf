package errors_test

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/rwx-research/hookcheck/internal/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Utils", func() {
	Describe("WithStack", func() {
		It("wraps an error without a message", func() {
			err := pkgerrors.New("some error")
			wrapped := errors.WithStack(err)
			Expect(wrapped.Error()).To(Equal("some error"))
			Expect(wrapped).NotTo(Equal(err))
			Expect(fmt.Sprintf("%+v", wrapped)).To(ContainSubstring("/utils_test.go"))
			Expect(errors.Is(wrapped, err)).To(BeTrue())
		})
	})

	Describe("Wrap", func() {
		It("wraps an error with a message", func() {
			err := pkgerrors.New("some error")
			wrapped := errors.Wrap(err, "some prefix")
			Expect(wrapped.Error()).To(Equal("some prefix: some error"))
			Expect(errors.Unwrap(errors.Unwrap(wrapped))).To(Equal(err))
		})
	})

	Describe("Wrapf", func() {
		It("wraps an error with a formatted message", func() {
			err := pkgerrors.New("some error")
			wrapped := errors.Wrapf(err, "some prefix %v", "formatted")
			Expect(wrapped.Error()).To(Equal("some prefix formatted: some error"))
			Expect(errors.Is(wrapped, err)).To(BeTrue())
		})
	})

	Describe("WithDecoration", func() {
		It("leaves plain errors untouched", func() {
			err := errors.NewSystemError("some error")
			Expect(errors.WithDecoration(err)).To(Equal(err))
		})

		It("leaves configuration errors without a description untouched", func() {
			err := errors.NewConfigurationError("some error")
			Expect(errors.WithDecoration(err)).To(Equal(err))
		})

		It("renders detailed configuration errors", func() {
			err := errors.NewDetailedConfigurationError("Unable to read configuration file", "It is broken.", "Fix it.")
			Expect(errors.WithDecoration(err).Error()).To(Equal(
				"Configuration Error: Unable to read configuration file\n\nIt is broken.\nFix it.\n",
			))
		})

		It("renders launch errors", func() {
			err := errors.NewLaunchError(errors.ReasonCanceled, "make test", "interrupted")
			Expect(errors.WithDecoration(err).Error()).To(Equal(
				"Launch Error: interrupted\n\n\"make test\" was interrupted before it finished.\n",
			))
		})
	})
})
