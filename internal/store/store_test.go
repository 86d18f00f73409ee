package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_AssignsIDAndPreservesOrder(t *testing.T) {
	s := New()

	a, err := s.Add("first", 8, 2)
	require.NoError(t, err)
	b, err := s.Add("second", 2, 8)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Name)
	assert.Equal(t, "second", list[1].Name)
}

func TestAdd_RejectsBlankName(t *testing.T) {
	s := New()

	_, err := s.Add("", 5, 5)
	assert.Error(t, err)
	_, err = s.Add("   ", 5, 5)
	assert.Error(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestAdd_ClampsAxes(t *testing.T) {
	s := New()

	task, err := s.Add("out of range", 0, 42)
	require.NoError(t, err)
	assert.Equal(t, 1.0, task.Importance)
	assert.Equal(t, 10.0, task.Urgency)
}

func TestRemove(t *testing.T) {
	s := New()
	a, _ := s.Add("a", 5, 5)
	b, _ := s.Add("b", 5, 5)

	assert.True(t, s.Remove(a.ID))
	assert.False(t, s.Remove(a.ID), "second remove of same id")
	assert.False(t, s.Remove("no-such-id"))

	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	_, ok := s.Get(a.ID)
	assert.False(t, ok)
}

func TestList_ReturnsCopy(t *testing.T) {
	s := New()
	s.Add("a", 5, 5)

	list := s.List()
	list[0] = nil

	require.Len(t, s.List(), 1)
	assert.NotNil(t, s.List()[0])
}

func TestSeed(t *testing.T) {
	s := New()
	Seed(s)
	assert.Equal(t, 4, s.Len())
}
