package match_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/refix/pkg/match"
)

func TestMinScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lines int
		want  float64
	}{
		{1, 0.95},
		{2, 0.95},
		{3, 0.80},
		{6, 0.80},
		{7, 0.70},
		{25, 0.70},
		{26, 0.65},
		{100, 0.65},
	}

	for _, tt := range tests {
		if got := match.MinScore(tt.lines); got != tt.want {
			t.Errorf("MinScore(%d) = %v, want %v", tt.lines, got, tt.want)
		}
	}
}

func TestFuzzyNearHint(t *testing.T) {
	t.Parallel()

	strategy := match.FuzzyNearHint{Radius: 200}

	t.Run("never runs unhinted", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, strategy.Find(srcLines("a", "b", "c"), "a\nb\nc", nil))
	})

	t.Run("three line snippet with drifted middle accepted", func(t *testing.T) {
		t.Parallel()
		// First and last lines agree, the middle drifted: 2/3 plus both
		// edge bonuses clears the 0.80 threshold for 3-line snippets.
		s := srcLines("func f() {", "\treturn 2", "}")
		snippet := "func f() {\n\treturn 1\n}"
		got := strategy.Find(s, snippet, &match.Hint{StartLine: 1, EndLine: 3})
		require.NotNil(t, got)
		assert.Equal(t, 0, got.Range.StartLine)
		assert.InDelta(t, 2.0/3.0+0.30, got.Score, 1e-9)
	})

	t.Run("three line snippet with one matching line rejected", func(t *testing.T) {
		t.Parallel()
		s := srcLines("x1", "\treturn 1", "x2")
		snippet := "func f() {\n\treturn 1\n}"
		assert.Nil(t, strategy.Find(s, snippet, &match.Hint{StartLine: 1, EndLine: 3}))
	})

	t.Run("six line window exactly at threshold accepted", func(t *testing.T) {
		t.Parallel()
		// 3 of 6 lines match, including the first and the last:
		// 0.5 + 0.15 + 0.15 = 0.80, exactly the minimum for size 6.
		snippet := strings.Join([]string{"e0", "e1", "e2", "e3", "e4", "e5"}, "\n")
		s := srcLines("e0", "x", "e2", "x", "x", "e5")
		got := strategy.Find(s, snippet, &match.Hint{StartLine: 1, EndLine: 6})
		require.NotNil(t, got)
		assert.InDelta(t, 0.80, got.Score, 1e-9)
	})

	t.Run("six line window below threshold rejected", func(t *testing.T) {
		t.Parallel()
		// 4 of 6 lines match but neither edge does: 0.667 < 0.80.
		snippet := strings.Join([]string{"e0", "e1", "e2", "e3", "e4", "e5"}, "\n")
		s := srcLines("x", "e1", "e2", "e3", "e4", "x")
		assert.Nil(t, strategy.Find(s, snippet, &match.Hint{StartLine: 1, EndLine: 6}))
	})

	t.Run("two line snippet needs near perfect agreement", func(t *testing.T) {
		t.Parallel()
		s := srcLines("first", "drifted")
		assert.Nil(t, strategy.Find(s, "first\nsecond", &match.Hint{StartLine: 1, EndLine: 2}))

		s = srcLines("first", "second")
		got := strategy.Find(s, "first\nsecond", &match.Hint{StartLine: 1, EndLine: 2})
		require.NotNil(t, got)
		assert.Equal(t, 1.0, got.Score)
	})

	t.Run("highest score wins over proximity", func(t *testing.T) {
		t.Parallel()
		// A perfect window far from the hint beats a partial one nearby.
		lines := repeatLines("filler", 40)
		lines[4] = "alpha"
		lines[5] = "beta"
		lines[6] = "gamma"
		lines[30] = "alpha"
		lines[31] = "drift"
		lines[32] = "gamma"
		got := strategy.Find(srcLines(lines...), "alpha\nbeta\ngamma", &match.Hint{StartLine: 31, EndLine: 33})
		require.NotNil(t, got)
		assert.Equal(t, 4, got.Range.StartLine)
		assert.Equal(t, 1.0, got.Score)
	})

	t.Run("equal score breaks tie by midpoint distance", func(t *testing.T) {
		t.Parallel()
		lines := repeatLines("filler", 40)
		lines[2] = "alpha"
		lines[3] = "beta"
		lines[4] = "gamma"
		lines[20] = "alpha"
		lines[21] = "beta"
		lines[22] = "gamma"
		got := strategy.Find(srcLines(lines...), "alpha\nbeta\ngamma", &match.Hint{StartLine: 19, EndLine: 21})
		require.NotNil(t, got)
		assert.Equal(t, 20, got.Range.StartLine)
	})

	t.Run("search stays within radius", func(t *testing.T) {
		t.Parallel()
		narrow := match.FuzzyNearHint{Radius: 3}
		lines := repeatLines("filler", 40)
		lines[30] = "alpha"
		lines[31] = "beta"
		lines[32] = "gamma"
		assert.Nil(t, narrow.Find(srcLines(lines...), "alpha\nbeta\ngamma", &match.Hint{StartLine: 1, EndLine: 3}))
	})
}
