package project

import (
	"testing"

	"github.com/kastheco/axl/picker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePicker struct {
	one     string
	many    []string
	err     error
	offered []string
}

func (f *fakePicker) PickOne(candidates []string) (string, error) {
	f.offered = candidates
	return f.one, f.err
}

func (f *fakePicker) PickMany(candidates []string) ([]string, error) {
	f.offered = candidates
	return f.many, f.err
}

func sampleProjects(t *testing.T) []ResolvedProject {
	t.Helper()
	var out []ResolvedProject
	for _, remote := range []string{
		"git@github.com:user/test1.git",
		"git@github.com:user/.test2.git",
		"git@github.com:user/test3.git",
	} {
		p, err := NewResolvedProject("/p", remote, nil)
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func TestPickProject(t *testing.T) {
	projects := sampleProjects(t)

	t.Run("returns the picked project", func(t *testing.T) {
		fp := &fakePicker{one: ".test2"}
		p, err := PickProject(fp, projects)
		require.NoError(t, err)
		assert.Equal(t, "_test2", p.SafeName)
		assert.Equal(t, []string{"test1", ".test2", "test3"}, fp.offered)
	})

	t.Run("abort becomes no project selected", func(t *testing.T) {
		_, err := PickProject(&fakePicker{err: picker.ErrNoItemSelected}, projects)
		assert.ErrorIs(t, err, ErrNoProjectSelected)
		assert.ErrorIs(t, err, picker.ErrNoItemSelected)
	})

	t.Run("empty list keeps no items found", func(t *testing.T) {
		_, err := PickProject(&fakePicker{err: picker.ErrNoItemsFound}, nil)
		assert.ErrorIs(t, err, picker.ErrNoItemsFound)
		assert.NotErrorIs(t, err, ErrNoProjectSelected)
	})

	t.Run("unknown answer", func(t *testing.T) {
		_, err := PickProject(&fakePicker{one: "typed-by-hand"}, projects)
		assert.ErrorIs(t, err, ErrNoProjectSelected)
	})
}

func TestPickConfigProjects(t *testing.T) {
	candidates := []ConfigProject{
		{Remote: "git@github.com:user/a.git"},
		{Remote: "git@github.com:user/b.git"},
	}
	fp := &fakePicker{many: []string{"git@github.com:user/b.git"}}

	picked, err := PickConfigProjects(fp, candidates)
	require.NoError(t, err)
	assert.Equal(t, []ConfigProject{{Remote: "git@github.com:user/b.git"}}, picked)
	assert.Equal(t, []string{"git@github.com:user/a.git", "git@github.com:user/b.git"}, fp.offered)
}
