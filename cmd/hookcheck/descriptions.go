package main

// These constants hold the "long" description of a subcommand. These get printed when running `--help`, for example.
const (
	descriptionHookcheck = `hookcheck runs the checks configured for a git hook, such as the test-suite before a push,
and reports which of them passed, failed or could not be run at all.

Checks are configured in .hookcheck/config.yaml, which is looked up in the current directory
and its parents.`

	descriptionRun = `'hookcheck run' executes every check of a hook and prints a summary. The hook defaults to
"pre-push".

Exit codes:

	0  every check passed
	1  at least one check failed
	2  at least one check could not be run

Example use:

	hookcheck run

	hookcheck run pre-commit --junit hookcheck.xml`

	descriptionList = `'hookcheck list' prints the checks configured for a hook without running them.

Example use:

	hookcheck list pre-push`

	descriptionInit = `'hookcheck init' writes a starter configuration to .hookcheck/config.yaml in the root of the
current git repository. The starter configuration runs the test-suite before every push.

Example use:

	hookcheck init`
)
