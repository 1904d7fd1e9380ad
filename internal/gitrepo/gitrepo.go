package gitrepo

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Optional git integration: when a list file lives inside a git repo and
// autocommit is switched on, every successful save is committed. The tool
// never pushes and never touches files other than the list it just wrote.

// AutoCommitEnabled reports whether TODO_GIT_AUTOCOMMIT is set to a true-ish
// value. Off by default.
func AutoCommitEnabled() bool {
	v := strings.TrimSpace(os.Getenv("TODO_GIT_AUTOCOMMIT"))
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// InRepo walks up from dir looking for a .git directory (or the .git file
// worktrees use). It does not invoke the git binary.
func InRepo(dir string) bool {
	dir = filepath.Clean(dir)
	for {
		// A .git file (worktree/submodule pointer) counts too.
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}

// CommitFile stages the single file and commits it. Returns committed=false
// with a nil error when the file is not in a repo or nothing changed.
func CommitFile(ctx context.Context, path, message string) (committed bool, err error) {
	dir := filepath.Dir(filepath.Clean(path))
	if !InRepo(dir) {
		return false, nil
	}

	if _, err := runGit(ctx, dir, "add", "--", filepath.Base(path)); err != nil {
		return false, err
	}

	out, err := runGit(ctx, dir, "diff", "--cached", "--name-only")
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(out) == "" {
		return false, nil
	}

	msg := strings.TrimSpace(message)
	if msg == "" {
		msg = fmt.Sprintf("todo: update %s (%s)", filepath.Base(path), time.Now().UTC().Format(time.RFC3339))
	}
	if _, err := runGit(ctx, dir, "commit", "-m", msg); err != nil {
		return false, err
	}
	return true, nil
}

func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
	}
	return string(out), nil
}
