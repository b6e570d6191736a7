package recommender

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedTitles(movies []Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

func TestRankAndSelectOrdersByScore(t *testing.T) {
	candidates := []ScoredMovie{
		scored("low", "x", 0.1),
		scored("high", "x", 0.9),
		scored("mid", "x", 0.5),
	}
	out := rankAndSelect(candidates, 5, 30, false, nil)
	assert.Equal(t, []string{"high", "mid", "low"}, rankedTitles(out))
}

func TestRankAndSelectStableOnTies(t *testing.T) {
	candidates := []ScoredMovie{
		scored("first", "x", 0),
		scored("second", "x", 0),
		scored("third", "x", 0),
	}
	out := rankAndSelect(candidates, 3, 30, false, nil)
	assert.Equal(t, []string{"first", "second", "third"}, rankedTitles(out))
}

func TestRankAndSelectBoundsPoolAndResult(t *testing.T) {
	candidates := make([]ScoredMovie, 50)
	for i := range candidates {
		candidates[i] = scored(string(rune('a'+i%26))+string(rune('0'+i/26)), "x", float64(50-i))
	}
	out := rankAndSelect(candidates, 5, 30, false, nil)
	require.Len(t, out, 5)
}

func TestRankAndSelectFewerThanTopN(t *testing.T) {
	out := rankAndSelect([]ScoredMovie{scored("only", "x", 0.2)}, 5, 30, false, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "only", out[0].Title)
}

func TestRankAndSelectShuffleDrawsFromTopPool(t *testing.T) {
	candidates := make([]ScoredMovie, 40)
	poolTitles := make(map[string]struct{})
	for i := range candidates {
		title := string(rune('A' + i%26))
		if i >= 26 {
			title += "2"
		}
		candidates[i] = scored(title, "x", float64(40-i))
		if i < 30 {
			poolTitles[title] = struct{}{}
		}
	}
	rng := rand.New(rand.NewSource(42))
	out := rankAndSelect(candidates, 5, 30, true, rng)
	require.Len(t, out, 5)
	for _, m := range out {
		_, inPool := poolTitles[m.Title]
		assert.True(t, inPool, "shuffled pick %q must come from the top pool", m.Title)
	}
}

func TestRankAndSelectShuffleDeterministicWithFixedSeed(t *testing.T) {
	candidates := []ScoredMovie{
		scored("a", "x", 5), scored("b", "x", 4), scored("c", "x", 3),
		scored("d", "x", 2), scored("e", "x", 1),
	}
	first := rankAndSelect(candidates, 5, 30, true, rand.New(rand.NewSource(7)))
	second := rankAndSelect(candidates, 5, 30, true, rand.New(rand.NewSource(7)))
	assert.Equal(t, rankedTitles(first), rankedTitles(second))
}

func TestRankAndSelectDoesNotMutateInput(t *testing.T) {
	candidates := []ScoredMovie{
		scored("low", "x", 0.1),
		scored("high", "x", 0.9),
	}
	_ = rankAndSelect(candidates, 5, 30, false, nil)
	assert.Equal(t, "low", candidates[0].Title)
}
