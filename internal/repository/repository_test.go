package repository_test

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/rwx-research/hookcheck/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Root", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = filepath.Abs(GinkgoT().TempDir())
		Expect(err).NotTo(HaveOccurred())
	})

	It("returns an empty root outside of a repository", func() {
		root, err := repository.Root(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(root).To(BeEmpty())
	})

	Context("inside a repository", func() {
		BeforeEach(func() {
			_, err := git.PlainInit(dir, false)
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns the worktree root", func() {
			root, err := repository.Root(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(root).To(Equal(dir))
		})

		It("detects the root from a sub-directory", func() {
			sub := filepath.Join(dir, "a", "b")
			Expect(os.MkdirAll(sub, 0o750)).To(Succeed())

			root, err := repository.Root(sub)
			Expect(err).NotTo(HaveOccurred())
			Expect(root).To(Equal(dir))
		})
	})

	It("ignores bare repositories", func() {
		_, err := git.PlainInit(dir, true)
		Expect(err).NotTo(HaveOccurred())

		root, err := repository.Root(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(root).To(BeEmpty())
	})
})
