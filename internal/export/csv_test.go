package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsato/go-mleague-draft/internal/model"
)

func TestWriteSortsByGameID(t *testing.T) {
	obs := []model.Observation{
		{GameID: "2025/10/01 1回戦", Player: "b", Score: -1.5, Rank: 2},
		{GameID: "2025/09/16 1回戦", Player: "a", Score: 45.3, Rank: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, obs))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\uFEFF"), "BOM prefix")

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, "\uFEFF"))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"試合", "選手名", "スコア", "順位"}, records[0])
	assert.Equal(t, "2025/09/16 1回戦", records[1][0], "rows ordered by game id")
	assert.Equal(t, "45.3", records[1][2])
	assert.Equal(t, "-1.5", records[2][2])
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(buf.String(), "\uFEFF"))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "header only")
}
