package workspace

import (
	stderrors "errors"
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// InitialCommitMessage is the commit message for a freshly scaffolded
// backend.
const InitialCommitMessage = "Initial backend scaffold"

const (
	commitAuthorName  = "Genesis"
	commitAuthorEmail = "genesis@localhost"
)

// InitGit initializes a git repository at the workspace root and commits
// everything in it. An existing repository is reused. Returns the commit
// hash.
func (w *Writer) InitGit() (string, error) {
	repo, err := gogit.PlainInit(w.root, false)
	if stderrors.Is(err, gogit.ErrRepositoryAlreadyExists) {
		repo, err = gogit.PlainOpen(w.root)
	}
	if err != nil {
		return "", fmt.Errorf("workspace: init repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("workspace: worktree: %w", err)
	}

	if err := wt.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return "", fmt.Errorf("workspace: stage files: %w", err)
	}

	hash, err := wt.Commit(InitialCommitMessage, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  commitAuthorName,
			Email: commitAuthorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("workspace: commit: %w", err)
	}

	w.logger.Info("repository initialized", "root", w.root, "commit", hash.String())

	return hash.String(), nil
}
