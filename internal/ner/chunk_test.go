package ner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkText(t *testing.T) {
	t.Run("short text stays in one chunk", func(t *testing.T) {
		chunks := chunkText("First sentence. Second sentence.")
		assert.Len(t, chunks, 1)
	})

	t.Run("long text is windowed on sentence boundaries", func(t *testing.T) {
		sentence := strings.Repeat("word ", 99) + "end."
		text := strings.Repeat(sentence+" ", 10)

		chunks := chunkText(text)
		assert.Greater(t, len(chunks), 1)
		for _, chunk := range chunks {
			assert.LessOrEqual(t, len(strings.Fields(chunk)), chunkWords)
		}
	})

	t.Run("empty text yields no chunks", func(t *testing.T) {
		assert.Empty(t, chunkText(""))
	})
}

func TestMergeSubwords(t *testing.T) {
	entities := []Entity{
		{Text: "Ngu", Label: LabelPerson, Score: 0.9},
		{Text: "##yen", Label: LabelPerson, Score: 0.8},
		{Text: "##", Label: LabelPerson, Score: 0.8},
		{Text: "Hanoi", Label: LabelLocation, Score: 0.95},
	}

	merged := mergeSubwords(entities)

	assert.Len(t, merged, 2)
	assert.Equal(t, "Nguyen", merged[0].Text)
	assert.Equal(t, LabelPerson, merged[0].Label)
	assert.Equal(t, 0.8, merged[0].Score)
	assert.Equal(t, "Hanoi", merged[1].Text)
}

func TestMergeSubwordsLabelBoundary(t *testing.T) {
	// A subword piece never merges across labels
	entities := []Entity{
		{Text: "FPT", Label: LabelOrganization, Score: 0.9},
		{Text: "##ware", Label: LabelPerson, Score: 0.9},
	}

	merged := mergeSubwords(entities)
	assert.Len(t, merged, 2)
}
