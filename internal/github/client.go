package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"devpulse/internal/lib"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// ErrNoBotToken is returned when a call requiring the bot account is made
// without GITHUB_BOT_TOKEN configured.
var ErrNoBotToken = errors.New("github bot token is not set")

const prTitle = "AI-Flagged Commit: Review Required"

// Client is a wrapper around the go-github client authenticated as the bot
// account.
type Client struct {
	gh  *github.Client
	log *slog.Logger
}

// NewClient configures the wrapper. With an empty token the client is still
// constructed, but every call fails fast with ErrNoBotToken.
func NewClient(botToken string, log *slog.Logger) *Client {
	c := &Client{log: log}
	if botToken == "" {
		return c
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: botToken},
	)
	c.gh = github.NewClient(oauth2.NewClient(context.Background(), ts))
	return c
}

// GetCommitDiff fetches the commit and concatenates the per-file patch text
// of every file that has one. Returns an empty string when no files carry
// patches.
func (c *Client) GetCommitDiff(ctx context.Context, repoFullName, sha string) (string, error) {
	const op = "github.GetCommitDiff"

	if c.gh == nil {
		return "", ErrNoBotToken
	}

	owner, name, err := splitFullName(repoFullName)
	if err != nil {
		return "", lib.Err(op, err)
	}

	commit, _, err := c.gh.Repositories.GetCommit(ctx, owner, name, sha, nil)
	if err != nil {
		return "", lib.Err(op, err)
	}

	var patches []string
	for _, f := range commit.Files {
		if p := f.GetPatch(); p != "" {
			patches = append(patches, p)
		}
	}

	return strings.Join(patches, "\n"), nil
}

// CreatePullRequestForCommit creates a branch named after a short prefix of
// the commit hash, pointed at that commit, then opens a pull request from it
// into the repository's default branch. Calling twice for the same commit
// fails on the duplicate branch.
func (c *Client) CreatePullRequestForCommit(ctx context.Context, repoFullName, sha, message string) (string, error) {
	const op = "github.CreatePullRequestForCommit"

	if c.gh == nil {
		return "", ErrNoBotToken
	}

	owner, name, err := splitFullName(repoFullName)
	if err != nil {
		return "", lib.Err(op, err)
	}

	repository, _, err := c.gh.Repositories.Get(ctx, owner, name)
	if err != nil {
		return "", lib.Err(op, err)
	}

	branch := "ai-flagged-" + shortSHA(sha)

	_, _, err = c.gh.Git.CreateRef(ctx, owner, name, &github.Reference{
		Ref: github.String("refs/heads/" + branch),
		Object: &github.GitObject{
			SHA: github.String(sha),
		},
	})
	if err != nil {
		return "", lib.Err(op, err)
	}

	pr, _, err := c.gh.PullRequests.Create(ctx, owner, name, &github.NewPullRequest{
		Title: github.String(prTitle),
		Body:  github.String(message),
		Head:  github.String(branch),
		Base:  github.String(repository.GetDefaultBranch()),
	})
	if err != nil {
		return "", lib.Err(op, err)
	}

	c.log.Info("pull request created", slog.String("url", pr.GetHTMLURL()))
	return pr.GetHTMLURL(), nil
}

func splitFullName(fullName string) (owner, name string, err error) {
	parts := strings.SplitN(fullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("malformed repository full name %q", fullName)
	}
	return parts[0], parts[1], nil
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
