package tests

import (
	"errors"
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/mvb-dev/pipeline/pkg/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const text = "The quick brown fox, jumping over the lazy dog, suddenly stopped and looked around."

var stopWords = map[string]bool{
	"the": true, "and": true, "over": true, "a": true,
	"an": true, "around": true, "suddenly": true,
}

var posTags = map[string]string{
	"quick": "ADJ", "brown": "ADJ", "lazy": "ADJ",
	"fox": "NOUN", "dog": "NOUN",
	"jumping": "VERB", "stopped": "VERB", "looked": "VERB",
}

var wordRe = regexp.MustCompile(`\w+`)

type taggedWord struct {
	word string
	tag  string
}

func tokenize(paragraph string) []string {
	return wordRe.FindAllString(strings.ToLower(paragraph), -1)
}

func removeStopwords(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !stopWords[t] {
			kept = append(kept, t)
		}
	}
	return kept
}

func tagTokens(tokens []string) []taggedWord {
	tagged := make([]taggedWord, len(tokens))
	for i, t := range tokens {
		tag, ok := posTags[t]
		if !ok {
			tag = "UNK"
		}
		tagged[i] = taggedWord{word: t, tag: tag}
	}
	return tagged
}

func composeText(tagged []taggedWord) (string, []taggedWord) {
	words := make([]string, len(tagged))
	for i, tw := range tagged {
		words[i] = tw.word
	}
	return strings.Join(words, " "), tagged
}

// TestTextProcessingPipeline runs a tokenize -> filter -> tag -> join chain
// and inspects the final tuple result.
func TestTextProcessingPipeline(t *testing.T) {
	p := pipeline.New().
		Then(tokenize).
		Then(removeStopwords).
		Then(tagTokens).
		Then(composeText)

	out, err := p.Call(text)
	require.NoError(t, err)

	// final stage returns a tuple (sentence, tagged words)
	tuple, ok := out.([]any)
	require.True(t, ok, "expected a tuple result, got %T", out)
	require.Len(t, tuple, 2)

	sentence := tuple[0].(string)
	tagged := tuple[1].([]taggedWord)

	assert.Equal(t, "quick brown fox jumping lazy dog stopped looked", sentence)
	assert.Len(t, tagged, len(strings.Fields(sentence)))

	byWord := map[string]string{}
	for _, tw := range tagged {
		byWord[tw.word] = tw.tag
	}
	assert.Equal(t, "ADJ", byWord["brown"])
	assert.Equal(t, "NOUN", byWord["fox"])
	assert.Equal(t, "VERB", byWord["looked"])
}

// TestStatsPipeline spreads a multi-value stats stage into a packing stage.
func TestStatsPipeline(t *testing.T) {
	rangeInts := func(n int) []int {
		xs := make([]int, n)
		for i := range xs {
			xs[i] = i + 1
		}
		return xs
	}

	describe := func(xs []int) ([]int, int, int, float64, float64) {
		sum := 0
		for _, x := range xs {
			sum += x
		}
		mean := float64(sum) / float64(len(xs))
		variance := 0.0
		for _, x := range xs {
			d := float64(x) - mean
			variance += d * d
		}
		stdev := math.Sqrt(variance / float64(len(xs)-1))
		return xs, len(xs), sum, mean, stdev
	}

	packStats := func(xs []int, n, sum int, mean, stdev float64) map[string]float64 {
		return map[string]float64{
			"n":     float64(n),
			"sum":   float64(sum),
			"mean":  mean,
			"stdev": stdev,
		}
	}

	p := pipeline.New().
		Then(rangeInts).
		ThenUnpack(describe).
		Then(packStats)

	out, err := p.Call(50)
	require.NoError(t, err)

	stats, ok := out.(map[string]float64)
	require.True(t, ok, "expected stats map, got %T", out)

	assert.Equal(t, 50.0, stats["n"])
	assert.Equal(t, 1275.0, stats["sum"])
	assert.Equal(t, 25.5, stats["mean"])
	assert.InDelta(t, 14.5774, stats["stdev"], 1e-4)

	// extending the already-built pipeline leaves the original intact
	sumOnly := p.Then(func(m map[string]float64) float64 { return m["sum"] })
	sum, err := sumOnly.Apply([]any{50})
	require.NoError(t, err)
	assert.Equal(t, 1275.0, sum)
	assert.Equal(t, 3, p.Len())
}

// TestFailurePropagation verifies stage errors reach the caller unchanged.
func TestFailurePropagation(t *testing.T) {
	boom := errors.New("oops")

	p := pipeline.New().
		Then(func(n int) int { return n * 2 }).
		Then(func(n int) (int, error) { return 0, boom })

	_, err := p.Call(10)
	require.Error(t, err)
	assert.Equal(t, boom, err)

	// unpack misuse is the only error the pipeline adds on its own
	bad := pipeline.New().
		ThenUnpack(func(n int) int { return n }).
		Then(func(n int) int { return n })
	_, err = bad.Call(1)
	assert.ErrorIs(t, err, pipeline.ErrUnpack)
}
