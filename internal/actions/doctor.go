package actions

import (
	"context"
	"fmt"
	"os/exec"

	"branchwise.dev/branchwise/internal/ai"
	"branchwise.dev/branchwise/internal/config"
	"branchwise.dev/branchwise/internal/github"
	"branchwise.dev/branchwise/internal/runtime"
)

// DoctorOptions contains options for the doctor action
type DoctorOptions struct {
	AgentBinary string
	SkipGitHub  bool
}

// DoctorAction runs diagnostic checks on the branchwise environment
func DoctorAction(ctx context.Context, rctx *runtime.Context, opts DoctorOptions) error {
	splog := rctx.Splog
	splog.Info("Running branchwise doctor...")
	splog.Newline()

	var warnings, errors int

	// Repository checks
	splog.Info("Repository:")
	if rctx.InRepo() {
		splog.Info("  ✅ git repository at %s", rctx.RepoRoot)

		base, err := config.GetBaseBranch(rctx.RepoRoot)
		if err != nil {
			splog.Error("  failed to read repo config: %v", err)
			errors++
		} else {
			exists, err := rctx.Repo.HasBranch(base)
			switch {
			case err != nil:
				splog.Error("  failed to check base branch %s: %v", base, err)
				errors++
			case exists:
				splog.Info("  ✅ base branch %s exists", base)
			default:
				splog.Warn(" base branch %s does not exist locally", base)
				warnings++
			}
		}
	} else {
		splog.Warn(" not inside a git repository")
		warnings++
	}
	splog.Newline()

	// AI agent checks
	splog.Info("AI agent:")
	binary := opts.AgentBinary
	if binary == "" {
		binary = ai.DefaultAgentBinary
	}
	if _, err := exec.LookPath(binary); err != nil {
		splog.Warn(" agent CLI %q not found in PATH: analyze and --personalize are unavailable", binary)
		warnings++
	} else {
		splog.Info("  ✅ agent CLI %q available", binary)
	}
	splog.Newline()

	// GitHub checks
	if !opts.SkipGitHub {
		splog.Info("GitHub:")
		warnings, errors = checkGitHub(ctx, rctx, warnings, errors)
		splog.Newline()
	}

	switch {
	case errors > 0:
		return fmt.Errorf("doctor found %d error(s) and %d warning(s)", errors, warnings)
	case warnings > 0:
		splog.Info("Done: %d warning(s).", warnings)
	default:
		splog.Info("Everything looks good.")
	}
	return nil
}

func checkGitHub(ctx context.Context, rctx *runtime.Context, warnings, errors int) (int, int) {
	splog := rctx.Splog

	client, err := github.NewClient(ctx)
	if err != nil {
		splog.Warn(" %v", err)
		return warnings + 1, errors
	}

	login, err := client.CheckToken(ctx)
	if err != nil {
		splog.Error("  %v", err)
		return warnings, errors + 1
	}
	splog.Info("  ✅ authenticated as %s", login)

	if !rctx.InRepo() {
		return warnings, errors
	}

	url, err := rctx.Repo.RemoteURL("origin")
	if err != nil {
		splog.Warn(" no origin remote: skipping repository visibility check")
		return warnings + 1, errors
	}

	owner, repo, err := github.ParseRemoteURL(url)
	if err != nil {
		splog.Warn(" could not parse origin URL %s", url)
		return warnings + 1, errors
	}

	defaultBranch, err := client.CheckRepository(ctx, owner, repo)
	if err != nil {
		splog.Error("  %v", err)
		return warnings, errors + 1
	}
	splog.Info("  ✅ %s/%s visible (default branch %s)", owner, repo, defaultBranch)

	return warnings, errors
}
