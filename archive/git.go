package archive

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/githubify/githubify/util"
)

// ensureGitRepo initializes a git repository in destDir when no .git
// directory is present. Failure is a warning only; archiving can still
// succeed without version control.
func (p *Pipeline) ensureGitRepo(destDir string, logger *log.Entry) {
	if _, err := os.Stat(filepath.Join(destDir, ".git")); err == nil {
		fmt.Fprintln(p.stdout, "[GIT] Destination is already a git repository.")
		return
	}

	gitPath, ok := util.LookupGit()
	if !ok {
		logger.Warn("git not found, skipping repository initialization")
		return
	}

	fmt.Fprintf(p.stdout, "[GIT] Initializing new git repository in: %s\n", destDir)

	cmd := exec.Command(gitPath, "init")
	cmd.Dir = destDir
	cmd.Stdout = p.stdout
	cmd.Stderr = p.stderr

	if err := p.exec.Run(cmd); err != nil {
		logger.WithError(err).Warn("failed to initialize git repository")
	}
}
