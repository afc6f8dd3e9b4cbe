// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clean

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paperscope/internal/dataset"
	"github.com/pdiddy/paperscope/pkg/types"
)

func tableOf(papers ...types.Paper) *dataset.Table {
	return &dataset.Table{Papers: papers}
}

func TestCleanDateParsing(t *testing.T) {
	table := tableOf(
		types.Paper{Title: "A", PublishRaw: "2021-01-05"},
		types.Paper{Title: "B", PublishRaw: "not a date"},
		types.Paper{Title: "C", PublishRaw: "2020-12-31"},
	)

	rep, err := Clean(table, types.CleanConfig{})
	require.NoError(t, err)

	assert.Equal(t, 1, rep.DatesUnparsed)
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, 2021, table.Papers[0].PublishYear)
	assert.Equal(t, types.YearUnknown, table.Papers[1].PublishYear)
	assert.Equal(t, 2020, table.Papers[2].PublishYear)
	assert.Equal(t, 1, table.Papers[0].PublishMonth)
	assert.Equal(t, 0, table.Papers[1].PublishMonth)
	assert.False(t, table.Papers[1].DateKnown())
}

func TestCleanDateFormatOrder(t *testing.T) {
	tests := []struct {
		raw      string
		wantYear int
	}{
		{"2020-03-15", 2020},
		{"2020-03-15T10:00:00Z", 2020},
		{"January 2, 2019", 2019},
		{"Jan 2, 2019", 2019},
		{"2018 Mar 4", 2018},
		{"2017-06", 2017},
		{"2016", 2016},
		{"15/03/2020", types.YearUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			table := tableOf(types.Paper{Title: "A", PublishRaw: tt.raw})
			_, err := Clean(table, types.CleanConfig{})
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, table.Papers[0].PublishYear)
		})
	}
}

func TestCleanAuthorCount(t *testing.T) {
	table := tableOf(
		types.Paper{Title: "A", Authors: "A, B, C"},
		types.Paper{Title: "B", Authors: ""},
		types.Paper{Title: "C"},
		types.Paper{Title: "D", Authors: "Smith, J; Lee, K; Wu, Q"},
		types.Paper{Title: "E", Authors: "Solo"},
	)

	_, err := Clean(table, types.CleanConfig{})
	require.NoError(t, err)

	want := []int{3, 0, 0, 3, 1}
	for i, w := range want {
		assert.Equal(t, w, table.Papers[i].AuthorCount, "row %d", i)
	}
}

func TestCleanFillDefaults(t *testing.T) {
	table := tableOf(
		types.Paper{Title: "A", Journal: "Nature", Abstract: "text"},
		types.Paper{Title: "B"},
		types.Paper{Title: "C"},
	)

	rep, err := Clean(table, types.CleanConfig{})
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len(), "no drop policy fired")
	assert.Equal(t, 2, rep.Filled[dataset.ColJournal])
	assert.Equal(t, 2, rep.Filled[dataset.ColAbstract])
	assert.Equal(t, "Unknown Journal", table.Papers[1].Journal)
	assert.Equal(t, "No abstract available", table.Papers[2].Abstract)

	// Every filled column has zero nulls afterwards.
	for _, p := range table.Papers {
		assert.NotEmpty(t, p.Journal)
		assert.NotEmpty(t, p.Abstract)
	}
}

func TestCleanFillNeverCountsAsAbstract(t *testing.T) {
	table := tableOf(
		types.Paper{Title: "A", Abstract: "real text"},
		types.Paper{Title: "B"},
	)

	_, err := Clean(table, types.CleanConfig{})
	require.NoError(t, err)

	assert.Equal(t, len("real text"), table.Papers[0].AbstractLength)
	assert.Equal(t, 0, table.Papers[1].AbstractLength, "imputed abstract keeps length 0")
}

func TestCleanDropPolicy(t *testing.T) {
	table := tableOf(
		types.Paper{Title: "A", PublishRaw: "2020"},
		types.Paper{PublishRaw: "2021"},
		types.Paper{Title: "C"},
	)

	rep, err := Clean(table, types.CleanConfig{})
	require.NoError(t, err)

	// Default policy drops rows with a null title.
	assert.Equal(t, 1, rep.RowsDropped)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "A", table.Papers[0].Title)
	assert.Equal(t, "C", table.Papers[1].Title)
}

func TestCleanFillMode(t *testing.T) {
	cfg := types.CleanConfig{
		Policies: map[string]types.ColumnPolicy{
			dataset.ColJournal: {Action: types.PolicyFillMode},
		},
	}
	table := tableOf(
		types.Paper{Title: "A", Journal: "Lancet"},
		types.Paper{Title: "B", Journal: "Nature"},
		types.Paper{Title: "C", Journal: "Nature"},
		types.Paper{Title: "D"},
	)

	rep, err := Clean(table, cfg)
	require.NoError(t, err)

	assert.Equal(t, "Nature", table.Papers[3].Journal)
	assert.Equal(t, 1, rep.Filled[dataset.ColJournal])
}

func TestCleanFillModeTieKeepsFirstSeen(t *testing.T) {
	cfg := types.CleanConfig{
		Policies: map[string]types.ColumnPolicy{
			dataset.ColSource: {Action: types.PolicyFillMode},
		},
	}
	table := tableOf(
		types.Paper{Title: "A", Source: "PMC"},
		types.Paper{Title: "B", Source: "WHO"},
		types.Paper{Title: "C"},
	)

	_, err := Clean(table, cfg)
	require.NoError(t, err)
	assert.Equal(t, "PMC", table.Papers[2].Source)
}

func TestCleanUnknownPolicyColumn(t *testing.T) {
	cfg := types.CleanConfig{
		Policies: map[string]types.ColumnPolicy{
			"citations": {Action: types.PolicyDrop},
		},
	}
	_, err := Clean(tableOf(types.Paper{Title: "A"}), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown column "citations"`)
}

func TestCleanCustomDateFormats(t *testing.T) {
	cfg := types.CleanConfig{DateFormats: []string{"02/01/2006"}}
	table := tableOf(
		types.Paper{Title: "A", PublishRaw: "15/03/2020"},
		types.Paper{Title: "B", PublishRaw: "2020-03-15"},
	)

	rep, err := Clean(table, cfg)
	require.NoError(t, err)

	assert.Equal(t, 2020, table.Papers[0].PublishYear)
	assert.Equal(t, types.YearUnknown, table.Papers[1].PublishYear, "built-in layouts replaced")
	assert.Equal(t, 1, rep.DatesUnparsed)
}

func TestFormatReport(t *testing.T) {
	rep := Report{
		RowsDropped:   2,
		DatesUnparsed: 1,
		Filled:        map[string]int{"journal": 3, "abstract": 4},
	}

	var buf bytes.Buffer
	FormatReport(rep, &buf)

	out := buf.String()
	assert.Contains(t, out, "rows dropped:   2")
	assert.Contains(t, out, "dates unparsed: 1")
	assert.Contains(t, out, "journal")
	assert.Contains(t, out, "abstract")
}
