package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathComponents(t *testing.T) {
	p := Path("fiction/sci-fi/space opera")
	assert.Equal(t, Path("fiction"), p.FirstComponent())
	assert.Equal(t, Path("space opera"), p.LastComponent())
	assert.Equal(t, 3, p.Depth())

	parent, ok := p.Parent()
	require.True(t, ok)
	assert.Equal(t, Path("fiction/sci-fi"), parent)

	_, ok = Path("fiction").Parent()
	assert.False(t, ok)
}

func TestPathAncestry(t *testing.T) {
	assert.True(t, Path("fiction/sci-fi").IsDescendantOf("fiction"))
	assert.True(t, Path("fiction").IsAncestorOf("fiction/sci-fi/space opera"))
	assert.True(t, Path("fiction/sci-fi").IsChildOf("fiction"))
	assert.False(t, Path("fiction/sci-fi/space opera").IsChildOf("fiction"))

	// A path is not its own ancestor.
	assert.False(t, Path("fiction").IsDescendantOf("fiction"))

	// Prefixes only count when separator-aligned.
	assert.False(t, Path("fictional").IsDescendantOf("fiction"))

	assert.True(t, Path("fiction").Related("fiction/sci-fi"))
	assert.True(t, Path("fiction/sci-fi").Related("fiction"))
	assert.False(t, Path("fiction").Related("science"))
	assert.False(t, Path("fiction").Related("fiction"))
}

func TestPathAncestors(t *testing.T) {
	assert.Equal(t,
		[]Path{"fiction/sci-fi", "fiction"},
		Path("fiction/sci-fi/space opera").Ancestors())
	assert.Empty(t, Path("fiction").Ancestors())
}

func TestPathJoin(t *testing.T) {
	assert.Equal(t, Path("fiction/sci-fi"), Path("fiction").Join("sci-fi"))
	assert.Equal(t, Path("fiction"), Path("").Join("fiction"))
}

func TestPathSetOperations(t *testing.T) {
	s := NewPathSet("a", "b")
	s.Add("c")
	s.Remove("b")

	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("b"))
	assert.Equal(t, 2, s.Len())

	assert.True(t, s.IsSubsetOf(NewPathSet("a", "c", "d")))
	assert.False(t, s.IsSubsetOf(NewPathSet("a")))
	assert.True(t, s.IsDisjointFrom(NewPathSet("x", "y")))
	assert.False(t, s.IsDisjointFrom(NewPathSet("c")))

	clone := s.Clone()
	clone.Add("z")
	assert.False(t, s.Contains("z"))
}

func TestPathSetJSONRoundTrip(t *testing.T) {
	s := NewPathSet("science", "fiction/sci-fi", "fiction")

	data, err := json.Marshal(s)
	require.NoError(t, err)
	// Sorted array keeps the metadata diffable.
	assert.JSONEq(t, `["fiction","fiction/sci-fi","science"]`, string(data))

	var back PathSet
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)
}
