package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rwx-research/hookcheck/internal/check"
	"github.com/rwx-research/hookcheck/internal/errors"
	"github.com/rwx-research/hookcheck/internal/reporting"
)

// RunHook runs every check configured for a hook and prints a summary.
//
// The returned error communicates the overall result: nil if every check passed, an `errors.LaunchError` if a check
// could not be run, and an `errors.ExecutionError` if a check ran and failed. Launch errors take precedence.
func (s Service) RunHook(ctx context.Context, cfg RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.WithStack(err)
	}

	checks, err := s.buildChecks(cfg)
	if err != nil {
		return err
	}

	if len(checks) == 0 {
		s.Log.Warnf("No checks are configured for hook %q", cfg.Hook)
		return nil
	}

	var results []reporting.Result
	if cfg.Parallel {
		results = s.runParallel(ctx, checks, cfg.MaxParallel)
	} else {
		results = s.runSequential(ctx, checks, cfg.FailFast)
	}

	summary := reporting.Summarize(results)

	if !cfg.Quiet || summary.Passed != summary.Total {
		if err := reporting.WriteTextSummary(
			s.Stdout, cfg.Hook, results, reporting.Configuration{IncludeOutput: !cfg.Streamed},
		); err != nil {
			s.Log.Warnf("Unable to print summary: %s", err)
		}
	}

	if cfg.JUnitPath != "" {
		if err := s.writeJUnitReport(cfg.JUnitPath, cfg.Hook, results); err != nil {
			s.Log.Warnf("Unable to write JUnit report to %q: %s", cfg.JUnitPath, err)
		}
	}

	for _, result := range results {
		if result.State() == reporting.StateErrored {
			return errors.Wrapf(result.Err, "check %q could not be run", result.Name)
		}
	}

	if summary.Failed > 0 {
		return errors.NewExecutionError(
			1, "%d of %d %s failed", summary.Failed, summary.Total, pluralize(summary.Total, "check", "checks"),
		)
	}

	return nil
}

func (s Service) buildChecks(cfg RunConfig) ([]check.Check, error) {
	checks := make([]check.Check, 0, len(cfg.Checks))

	for _, checkCfg := range cfg.Checks {
		c, err := s.Registry.Build(checkCfg.Definition(cfg.Root))
		if err != nil {
			return nil, errors.WithStack(err)
		}

		checks = append(checks, c)
	}

	return checks, nil
}

func (s Service) runSequential(ctx context.Context, checks []check.Check, failFast bool) []reporting.Result {
	results := make([]reporting.Result, len(checks))
	stopped := false

	for i, c := range checks {
		if stopped {
			s.Log.Debugf("Skipping check %q", c.Name())
			results[i] = reporting.Result{Name: c.Name(), Skipped: true}
			continue
		}

		results[i] = s.runCheck(ctx, c)

		if failFast && results[i].State() != reporting.StatePassed {
			stopped = true
		}
	}

	return results
}

func (s Service) runParallel(ctx context.Context, checks []check.Check, limit int) []reporting.Result {
	results := make([]reporting.Result, len(checks))

	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}

	for i, c := range checks {
		i, c := i, c
		eg.Go(func() error {
			results[i] = s.runCheck(egCtx, c)
			return nil
		})
	}

	// Failures are recorded in the results, the group itself never errors.
	_ = eg.Wait()

	return results
}

func (s Service) runCheck(ctx context.Context, c check.Check) reporting.Result {
	result := reporting.Result{Name: c.Name(), InvocationID: uuid.New()}

	s.Log.Debugf("Running check %q (invocation %s)", c.Name(), result.InvocationID)

	start := time.Now()
	outcome, err := c.Run(ctx)
	result.Duration = time.Since(start)

	if err != nil {
		result.Err = err
		s.Log.Debugf("Check %q could not be run: %s", c.Name(), err)
		return result
	}

	result.Outcome = outcome
	s.Log.Debugf("Check %q finished with status %q after %s", c.Name(), outcome.Status, result.Duration)

	return result
}

func (s Service) writeJUnitReport(path, hook string, results []reporting.Result) (err error) {
	file, err := s.FileSystem.Create(path)
	if err != nil {
		return errors.NewSystemError("unable to create file: %s", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = errors.NewSystemError("unable to close file: %s", closeErr)
		}
	}()

	return errors.WithStack(reporting.WriteJUnitSummary(file, hook, results))
}

func pluralize(count int, singular string, plural string) string {
	if count == 1 {
		return singular
	}

	return plural
}

// ListChecks prints the checks configured for a hook together with the command each of them runs.
func (s Service) ListChecks(cfg RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.WithStack(err)
	}

	checks, err := s.buildChecks(cfg)
	if err != nil {
		return err
	}

	if len(checks) == 0 {
		s.Log.Infof("No checks are configured for hook %q", cfg.Hook)
		return nil
	}

	s.Log.Infof("Checks for hook %q:", cfg.Hook)
	for i, c := range checks {
		line := fmt.Sprintf("- %s", c.Name())

		if commandCheck, ok := c.(*check.CommandCheck); ok {
			line = fmt.Sprintf("%s (%s): %s", line, cfg.Checks[i].Definition(cfg.Root).Kind, commandCheck.Spec())
		}

		s.Log.Infoln(line)
	}

	return nil
}
