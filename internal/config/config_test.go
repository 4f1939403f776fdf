package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/rwx-research/hookcheck/internal/config"
	"github.com/rwx-research/hookcheck/internal/errors"
	"github.com/rwx-research/hookcheck/internal/registry"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const fullConfig = `
output:
  debug: true
hooks:
  pre-push:
    parallel: true
    max-parallel: 2
    checks:
      - name: tests
        kind: test
        timeout: 5m
      - name: lint
        command: golangci-lint run ./...
        working-directory: tools
        environment:
          GOFLAGS: -mod=mod
  pre-commit:
    fail-fast: true
    checks:
      - name: fmt
        command: gofmt -l .
`

func writeConfig(dir, name, contents string) string {
	Expect(os.MkdirAll(filepath.Join(dir, config.Directory), 0o750)).To(Succeed())

	path := filepath.Join(dir, config.Directory, name)
	Expect(os.WriteFile(path, []byte(contents), 0o600)).To(Succeed())

	return path
}

var _ = Describe("Decode", func() {
	It("parses a complete configuration file", func() {
		cfg, err := config.Decode(strings.NewReader(fullConfig))
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Output).To(Equal(config.Output{Debug: true}))
		Expect(cfg.Hooks).To(HaveLen(2))

		prePush := cfg.Hooks["pre-push"]
		Expect(prePush.Parallel).To(BeTrue())
		Expect(prePush.MaxParallel).To(Equal(2))
		Expect(prePush.Checks).To(Equal([]config.Check{
			{Name: "tests", Kind: "test", Timeout: 5 * time.Minute},
			{
				Name:             "lint",
				Command:          "golangci-lint run ./...",
				WorkingDirectory: "tools",
				Environment:      map[string]string{"GOFLAGS": "-mod=mod"},
			},
		}))

		Expect(cfg.Hooks["pre-commit"].FailFast).To(BeTrue())
	})

	It("treats an empty file as an empty configuration", func() {
		cfg, err := config.Decode(strings.NewReader(""))
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(config.Config{}))
	})

	It("rejects unknown fields", func() {
		_, err := config.Decode(strings.NewReader("hooks:\n  pre-push:\n    checkz: []\n"))

		configErr, ok := errors.AsConfigurationError(err)
		Expect(ok).To(BeTrue())
		Expect(configErr.Error()).To(Equal("Parsing Error"))
		Expect(configErr.Description()).To(ContainSubstring("checkz"))
	})

	It("rejects malformed YAML", func() {
		_, err := config.Decode(strings.NewReader("hooks: [\n"))

		_, ok := errors.AsConfigurationError(err)
		Expect(ok).To(BeTrue())
	})
})

var _ = Describe("Config.Validate", func() {
	hook := func(h config.Hook) config.Config {
		return config.Config{Hooks: map[string]config.Hook{"pre-push": h}}
	}

	It("accepts a valid configuration", func() {
		Expect(hook(config.Hook{Checks: []config.Check{{Name: "a"}, {Name: "b"}}}).Validate()).To(Succeed())
	})

	DescribeTable("rejects invalid configurations",
		func(cfg config.Config, message string) {
			err := cfg.Validate()

			_, ok := errors.AsConfigurationError(err)
			Expect(ok).To(BeTrue())
			Expect(err.Error()).To(Equal(message))
		},
		Entry("negative max-parallel",
			hook(config.Hook{MaxParallel: -1}),
			`hook "pre-push": max-parallel must not be negative`,
		),
		Entry("missing name",
			hook(config.Hook{Checks: []config.Check{{Name: "a"}, {Command: "true"}}}),
			`hook "pre-push": check #2 is missing a name`,
		),
		Entry("duplicate name",
			hook(config.Hook{Checks: []config.Check{{Name: "a"}, {Name: "a"}}}),
			`hook "pre-push": check "a" is defined more than once`,
		),
		Entry("negative timeout",
			hook(config.Hook{Checks: []config.Check{{Name: "a", Timeout: -time.Second}}}),
			`hook "pre-push": check "a" has a negative timeout`,
		),
	)
})

var _ = Describe("Check.Definition", func() {
	It("defaults the kind & working directory", func() {
		def := config.Check{Name: "lint", Command: "make lint"}.Definition("/repo")

		Expect(def).To(Equal(registry.Definition{
			Name:             "lint",
			Kind:             registry.KindCommand,
			Command:          "make lint",
			WorkingDirectory: "/repo",
		}))
	})

	It("resolves relative working directories against the root", func() {
		def := config.Check{Name: "lint", WorkingDirectory: "tools"}.Definition("/repo")
		Expect(def.WorkingDirectory).To(Equal(filepath.Join("/repo", "tools")))
	})

	It("keeps absolute working directories", func() {
		def := config.Check{Name: "lint", WorkingDirectory: "/elsewhere"}.Definition("/repo")
		Expect(def.WorkingDirectory).To(Equal("/elsewhere"))
	})
})

var _ = Describe("Find", func() {
	var root string

	BeforeEach(func() {
		root = GinkgoT().TempDir()
	})

	It("finds the configuration file in a parent directory", func() {
		path := writeConfig(root, "config.yml", "")

		nested := filepath.Join(root, "a", "b")
		Expect(os.MkdirAll(nested, 0o750)).To(Succeed())

		found, err := config.Find(nested)
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(Equal(path))
	})

	It("skips a .hookcheck file that is not a directory", func() {
		path := writeConfig(root, "config.yaml", "")

		nested := filepath.Join(root, "a")
		Expect(os.MkdirAll(nested, 0o750)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(nested, config.Directory), []byte("x"), 0o600)).To(Succeed())

		found, err := config.Find(nested)
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(Equal(path))
	})

	It("returns an empty path if there is no configuration file", func() {
		found, err := config.Find(root)
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeEmpty())
	})

	It("fails when multiple configuration files are present", func() {
		writeConfig(root, "config.yaml", "")
		writeConfig(root, "config.yml", "")

		_, err := config.Find(root)

		configErr, ok := errors.AsConfigurationError(err)
		Expect(ok).To(BeTrue())
		Expect(configErr.Error()).To(Equal("Unable to identify configuration file"))
	})
})

var _ = Describe("Load", func() {
	var path string

	BeforeEach(func() {
		path = writeConfig(GinkgoT().TempDir(), "config.yaml", "output:\n  quiet: true\nhooks: {}\n")
	})

	It("reads the configuration file", func() {
		cfg, err := config.Load(path, viper.New())
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Output).To(Equal(config.Output{Quiet: true}))
	})

	It("lets environment variables override the file", func() {
		GinkgoT().Setenv("HOOKCHECK_OUTPUT_DEBUG", "true")
		GinkgoT().Setenv("HOOKCHECK_OUTPUT_QUIET", "false")

		cfg, err := config.Load(path, viper.New())
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Output).To(Equal(config.Output{Debug: true}))
	})

	It("lets explicitly set values override everything else", func() {
		GinkgoT().Setenv("HOOKCHECK_OUTPUT_QUIET", "true")

		v := viper.New()
		v.Set("output.quiet", false)

		cfg, err := config.Load(path, v)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Output.Quiet).To(BeFalse())
	})

	It("returns the defaults without a configuration file", func() {
		cfg, err := config.Load("", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(config.Config{}))
	})

	It("fails for configuration files that cannot be opened", func() {
		_, err := config.Load(filepath.Join(GinkgoT().TempDir(), "missing.yaml"), nil)

		configErr, ok := errors.AsConfigurationError(err)
		Expect(ok).To(BeTrue())
		Expect(configErr.Error()).To(Equal("Unable to read configuration file"))
	})

	It("validates the configuration file", func() {
		path = writeConfig(GinkgoT().TempDir(), "config.yaml", "hooks:\n  pre-push:\n    max-parallel: -1\n")

		_, err := config.Load(path, nil)

		_, ok := errors.AsConfigurationError(err)
		Expect(ok).To(BeTrue())
	})
})

var _ = Describe("Encode", func() {
	It("writes a configuration that decodes to the same value", func() {
		var buf strings.Builder
		Expect(config.Encode(&buf, config.Starter())).To(Succeed())

		cfg, err := config.Decode(strings.NewReader(buf.String()))
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(config.Starter()))
		Expect(buf.String()).To(ContainSubstring("kind: test"))
	})
})
