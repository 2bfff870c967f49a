package internal

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sheet(id string, tags ...Tag) *SheetRecord {
	r := &SheetRecord{ID: id, Path: id + ".json", Tags: tags}
	for _, tag := range tags {
		for i := tag.From; i <= tag.To; i++ {
			r.AnimIDs = append(r.AnimIDs, tag.ID+strconv.Itoa(i))
			r.Frames = append(r.Frames, Frame{Index: i, Sheet: id, Count: tag.Count(), Duration: 100})
		}
	}
	return r
}

func TestBuilderBuild(t *testing.T) {
	records := []*SheetRecord{
		sheet("TILE_WALL", Tag{Name: "stand", ID: "TILE_WALL_STAND", From: 0, To: 0}),
		sheet("CHARACTER",
			Tag{Name: "stand", ID: "CHARACTER_STAND", From: 0, To: 2},
			Tag{Name: "run", ID: "CHARACTER_RUN", From: 3, To: 6},
		),
	}

	a, err := NewBuilder().Build(records)
	require.NoError(t, err)

	assert.Equal(t, []string{"TILE_WALL", "CHARACTER"}, a.SheetIDs())
	assert.Equal(t, []string{
		"TILE_WALL_STAND0",
		"CHARACTER_STAND0", "CHARACTER_STAND1", "CHARACTER_STAND2",
		"CHARACTER_RUN3", "CHARACTER_RUN4", "CHARACTER_RUN5", "CHARACTER_RUN6",
	}, a.AnimIDs)

	total := 0
	for _, r := range records {
		for _, tag := range r.Tags {
			total += tag.Count()
		}
	}
	assert.Len(t, a.AnimIDs, total)
	assert.Len(t, a.Frames, total)
	assert.Equal(t, "TILE_WALL", a.Frames[0].Sheet)
	assert.Equal(t, 3, a.Frames[1].Count)
	assert.Equal(t, 4, a.Frames[7].Count)
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name          string
		records       []*SheetRecord
		errorContains string
	}{
		{
			name:          "nothing loaded",
			records:       nil,
			errorContains: "no descriptors",
		},
		{
			name:          "no frames at all",
			records:       []*SheetRecord{sheet("EMPTY")},
			errorContains: "no frame tags",
		},
		{
			name: "duplicate sheet",
			records: []*SheetRecord{
				sheet("HERO", Tag{ID: "HERO_IDLE", From: 0, To: 0}),
				sheet("HERO", Tag{ID: "HERO_RUN", From: 0, To: 0}),
			},
			errorContains: "identifier HERO from",
		},
		{
			name: "duplicate tag name in one sheet",
			records: []*SheetRecord{
				sheet("HERO", Tag{ID: "HERO_IDLE", From: 0, To: 1}, Tag{ID: "HERO_IDLE", From: 1, To: 2}),
			},
			errorContains: "identifier HERO_IDLE1",
		},
		{
			name: "sheet id shadows animation id",
			records: []*SheetRecord{
				sheet("HERO", Tag{ID: "HERO_A", From: 1, To: 1}),
				sheet("HERO_A1", Tag{ID: "HERO_A1_B", From: 0, To: 0}),
			},
			errorContains: "identifier HERO_A1 from",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuilder().Build(tt.records)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}
