package exec_test

import (
	"context"
	"strings"

	"github.com/rwx-research/hookcheck/internal/errors"
	"github.com/rwx-research/hookcheck/internal/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Local", func() {
	var local exec.Local

	It("runs a command with the configured environment", func() {
		stdout := new(strings.Builder)

		cmd, err := local.NewCommand(context.Background(), exec.CommandConfig{
			Name:   "sh",
			Args:   []string{"-c", `printf '%s' "$HOOKCHECK_LOCAL"`},
			Env:    []string{"HOOKCHECK_LOCAL=value"},
			Stdout: stdout,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(cmd.Start()).To(Succeed())
		Expect(cmd.Wait()).To(Succeed())
		Expect(stdout.String()).To(Equal("value"))
	})

	It("extracts exit codes from failed commands", func() {
		cmd, err := local.NewCommand(context.Background(), exec.CommandConfig{Name: "sh", Args: []string{"-c", "exit 7"}})
		Expect(err).NotTo(HaveOccurred())
		Expect(cmd.Start()).To(Succeed())

		waitErr := cmd.Wait()
		Expect(waitErr).To(HaveOccurred())

		code, err := local.GetExitStatusFromError(waitErr)
		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(Equal(7))
	})

	It("refuses to extract exit codes from other errors", func() {
		_, err := local.GetExitStatusFromError(errors.NewSystemError("something else"))

		_, ok := errors.AsInternalError(err)
		Expect(ok).To(BeTrue())
	})

	It("refuses to create a command without a name", func() {
		_, err := local.NewCommand(context.Background(), exec.CommandConfig{})

		_, ok := errors.AsInternalError(err)
		Expect(ok).To(BeTrue())
	})

	It("reports missing executables when starting", func() {
		cmd, err := local.NewCommand(context.Background(), exec.CommandConfig{Name: "hookcheck-does-not-exist"})
		Expect(err).NotTo(HaveOccurred())

		err = cmd.Start()
		Expect(errors.Is(err, exec.ErrNotFound)).To(BeTrue())
	})
})
