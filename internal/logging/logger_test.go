package logging_test

import (
	"strings"

	"github.com/rwx-research/hookcheck/internal/logging"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Loggers", func() {
	var stdout, stderr *strings.Builder

	BeforeEach(func() {
		stdout = new(strings.Builder)
		stderr = new(strings.Builder)
	})

	Describe("NewProductionLoggerTo", func() {
		It("splits info from warnings & drops debug output", func() {
			log := logging.NewProductionLoggerTo(stdout, stderr)

			log.Debug("debugging")
			log.Info("informing")
			log.Warn("warning")
			Expect(log.Sync()).To(Succeed())

			Expect(stdout.String()).To(Equal("informing\n"))
			Expect(stderr.String()).To(Equal("WARN\twarning\n"))
		})
	})

	Describe("NewDebugLoggerTo", func() {
		It("includes debug output", func() {
			log := logging.NewDebugLoggerTo(stdout, stderr)

			log.Debug("debugging")
			log.Info("informing")
			Expect(log.Sync()).To(Succeed())

			Expect(stdout.String()).To(ContainSubstring("informing"))
			Expect(stderr.String()).To(ContainSubstring("debugging"))
		})
	})
})
