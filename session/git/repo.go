package git

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/kastheco/axl/cmd"
	"github.com/kastheco/axl/log"
)

const DefaultRemote = "origin"

var (
	// ErrNotRepository is returned when a directory has no .git of its own.
	ErrNotRepository = errors.New("not a git repository")
	// ErrNoRemote is returned when the repository has no remote of the given name.
	ErrNoRemote = errors.New("remote not found")
)

// RemoteURL returns the first URL of the named remote of the repository at
// dir. Parent directories are not searched, so a plain folder nested inside
// another checkout is reported as ErrNotRepository.
func RemoteURL(dir, name string) (string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", ErrNotRepository
		}
		return "", fmt.Errorf("failed to open repository %s: %w", dir, err)
	}
	remote, err := repo.Remote(name)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", ErrNoRemote
		}
		return "", fmt.Errorf("failed to read remote %s of %s: %w", name, dir, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 || urls[0] == "" {
		return "", ErrNoRemote
	}
	return urls[0], nil
}

// OriginURL is RemoteURL for "origin".
func OriginURL(dir string) (string, error) {
	return RemoteURL(dir, DefaultRemote)
}

// InitWithOrigin creates an empty repository at dir with origin set to remote.
func InitWithOrigin(dir, remote string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return fmt.Errorf("failed to init repository at %s: %w", dir, err)
	}
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: DefaultRemote,
		URLs: []string{remote},
	})
	if err != nil {
		return fmt.Errorf("failed to add remote %s: %w", remote, err)
	}
	log.InfoLog.Printf("initialised %s with origin %s", dir, remote)
	return nil
}

// Clone runs `git clone` so the user's ssh agent, credential helpers and
// progress output all behave as on the command line.
func Clone(cmdExec cmd.Executor, remote, dest string) error {
	c := exec.Command("git", "clone", remote, dest)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := cmdExec.Run(c); err != nil {
		return fmt.Errorf("failed to clone %s: %w", remote, err)
	}
	log.InfoLog.Printf("cloned %s into %s", remote, dest)
	return nil
}
