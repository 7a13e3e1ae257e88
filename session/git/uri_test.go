package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURI(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		want   URI
	}{
		{"scp-like ssh", "git@github.com:user/test1.git", URI{"github.com", "user", "test1"}},
		{"dotted name", "git@github.com:user/.test2.git", URI{"github.com", "user", ".test2"}},
		{"https without suffix", "https://github.com/user/test3", URI{"github.com", "user", "test3"}},
		{"ssh url with port", "ssh://git@gitlab.example.com:2222/group/sub/tool.git", URI{"gitlab.example.com", "group/sub", "tool"}},
		{"git protocol", "git://git.kernel.org/pub/linux.git", URI{"git.kernel.org", "pub", "linux"}},
		{"trailing slash", "https://github.com/user/test4/", URI{"github.com", "user", "test4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseURI(tt.remote)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseURIRejects(t *testing.T) {
	for _, remote := range []string{
		"",
		"not a remote",
		"/srv/git/repo.git",
		"file:///srv/git/repo.git",
		"https://github.com/onlyname",
		"git@github.com:",
	} {
		t.Run(remote, func(t *testing.T) {
			_, err := ParseURI(remote)
			assert.ErrorIs(t, err, ErrInvalidURI)
		})
	}
}

func TestURIString(t *testing.T) {
	assert.Equal(t, "github.com/user/test1", URI{"github.com", "user", "test1"}.String())
}
