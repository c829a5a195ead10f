package funfact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name      string
		existing  []string
		additions []string
		expected  []string
	}{
		{"empty existing", nil, []string{"A", "B"}, []string{"A", "B"}},
		{"append new", []string{"A"}, []string{"B"}, []string{"A", "B"}},
		{"skip existing", []string{"A", "B"}, []string{"B", "C"}, []string{"A", "B", "C"}},
		{"collapse submitted duplicates", nil, []string{"A", "A", "B"}, []string{"A", "B"}},
		{"nothing new", []string{"A"}, []string{"A"}, []string{"A"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Merge(test.existing, test.additions))
		})
	}
}

func TestMergeKeepsPriorFacts(t *testing.T) {
	existing := []string{"one", "two", "three"}
	merged := Merge(existing, []string{"four", "one"})

	assert.Equal(t, existing, merged[:len(existing)])
	assert.Len(t, merged, 4)
}

func TestResolveIndex(t *testing.T) {
	tests := []struct {
		position int
		length   int
		expected int
		wantErr  bool
	}{
		{1, 1, 0, false},
		{3, 3, 2, false},
		{0, 3, 0, true},
		{-1, 3, 0, true},
		{4, 3, 0, true},
		{1, 0, 0, true},
	}

	for _, test := range tests {
		got, err := ResolveIndex(test.position, test.length)
		if test.wantErr {
			assert.ErrorIs(t, err, ErrIndexOutOfRange, "ResolveIndex(%d, %d)", test.position, test.length)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, test.expected, got)
	}
}

func TestReplace(t *testing.T) {
	facts := []string{"A", "B", "C"}

	got, err := Replace(facts, 2, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "X", "C"}, got)

	// Input is left untouched
	assert.Equal(t, []string{"A", "B", "C"}, facts)

	_, err = Replace(facts, 0, "X")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = Replace(facts, 4, "X")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRemove(t *testing.T) {
	facts := []string{"A", "B", "C"}

	t.Run("middle shifts later facts", func(t *testing.T) {
		got, err := Remove(facts, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "C"}, got)
	})

	t.Run("first", func(t *testing.T) {
		got, err := Remove(facts, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"B", "C"}, got)
	})

	t.Run("last element leaves empty list", func(t *testing.T) {
		got, err := Remove([]string{"only"}, 1)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := Remove(facts, 0)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		_, err = Remove(facts, 4)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	assert.Equal(t, []string{"A", "B", "C"}, facts)
}

func TestRecordClone(t *testing.T) {
	var nilRecord *Record
	assert.Nil(t, nilRecord.Clone())

	rec := &Record{StateCode: "GA", Funfacts: []string{"A"}}
	clone := rec.Clone()
	clone.Funfacts[0] = "B"
	assert.Equal(t, "A", rec.Funfacts[0])
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "GA", NormalizeCode(" ga "))
	assert.Equal(t, "TX", NormalizeCode("Tx"))
}
