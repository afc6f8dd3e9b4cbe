// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paperscope/internal/dataset"
	"github.com/pdiddy/paperscope/pkg/types"
)

func testTable() *dataset.Table {
	return &dataset.Table{Papers: []types.Paper{
		{Title: "Viral transmission dynamics", Abstract: "Modeling spread in cities, a natural trial", Journal: "Nature", PublishYear: 2020},
		{Title: "Vaccine efficacy trial", Abstract: "Randomized controlled trial of vaccine candidates", Journal: "Lancet", PublishYear: 2021},
		{Title: "Survey methods", Abstract: "Questionnaire design", Journal: "BMJ", PublishYear: 2019},
	}}
}

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := New(testTable(), types.IndexConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { ix.Close() })
	return ix
}

func TestSearch(t *testing.T) {
	ix := newTestIndex(t)

	matches, err := ix.Search(context.Background(), "vaccine", 0)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	assert.Equal(t, 1, matches[0].Row)
	assert.Equal(t, "Vaccine efficacy trial", matches[0].Title)
	assert.Equal(t, "Lancet", matches[0].Journal)
	assert.Equal(t, 2021, matches[0].Year)
}

func TestSearchMatchesAbstract(t *testing.T) {
	ix := newTestIndex(t)

	matches, err := ix.Search(context.Background(), "questionnaire", 0)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Survey methods", matches[0].Title)
}

func TestSearchNoResults(t *testing.T) {
	ix := newTestIndex(t)

	matches, err := ix.Search(context.Background(), "zebrafish", 0)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSearchEmptyQuery(t *testing.T) {
	ix := newTestIndex(t)

	_, err := ix.Search(context.Background(), "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query is empty")
}

func TestSearchLimit(t *testing.T) {
	ix := newTestIndex(t)

	// "trial" appears in two different papers.
	matches, err := ix.Search(context.Background(), "trial", 1)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestSearchDoesNotTouchTable(t *testing.T) {
	table := testTable()
	ix, err := New(table, types.IndexConfig{})
	require.NoError(t, err)
	defer ix.Close()

	before := table.Papers[0]
	_, err = ix.Search(context.Background(), "viral", 0)
	require.NoError(t, err)
	assert.Equal(t, before, table.Papers[0])
}
