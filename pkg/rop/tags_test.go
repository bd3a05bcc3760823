package rop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags_OverwriteKeepsOrder(t *testing.T) {
	t.Parallel()

	e := NewError("x").WithTag("a", 1).WithTag("b", 2).WithTag("a", 3)
	tags := e.Tags()

	assert.Equal(t, 2, tags.Len())
	assert.Equal(t, []string{"a", "b"}, tags.Keys())
	v, ok := tags.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, map[string]any{"a": 3, "b": 2}, tags.Map())

	_, ok = tags.Get("missing")
	assert.False(t, ok)
}

func TestTags_All(t *testing.T) {
	t.Parallel()

	s := NewSuccess("done").WithTag("first", "1").WithTag("second", "2")

	var keys []string
	for k := range s.Tags().All() {
		keys = append(keys, k)
		if k == "first" {
			break
		}
	}
	assert.Equal(t, []string{"first"}, keys)
	assert.Equal(t, []Tag{{Key: "first", Value: "1"}, {Key: "second", Value: "2"}}, s.Tags().Slice())
}

func TestTags_ReturnedCopyIsDetached(t *testing.T) {
	t.Parallel()

	e := NewError("x").WithTag("a", 1)
	before := e.Tags()
	e.WithTag("b", 2)

	assert.Equal(t, 1, before.Len())
	assert.Equal(t, 2, e.Tags().Len())
}

func TestTags_Empty(t *testing.T) {
	t.Parallel()

	tags := NewError("x").Tags()
	assert.Zero(t, tags.Len())
	assert.Nil(t, tags.Map())
	assert.Empty(t, tags.Keys())
}

func TestTags_EmptyKeyPanics(t *testing.T) {
	t.Parallel()

	err := Recover(func() { NewError("x").WithTag("", 1) })
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
