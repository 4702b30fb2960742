package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeonpath/astar"
	"github.com/katalvlaran/dungeonpath/tilemap"
)

func TestReconstruct(t *testing.T) {
	none := tilemap.NoPosition

	cases := []struct {
		name     string
		cameFrom map[tilemap.Position]tilemap.Position
		start    tilemap.Position
		end      tilemap.Position
		limit    int
		want     []tilemap.Position
		err      error
	}{
		{
			name:     "chain",
			cameFrom: map[tilemap.Position]tilemap.Position{1: none, 2: 1, 3: 2, 7: 3},
			start:    1,
			end:      7,
			want:     []tilemap.Position{1, 2, 3, 7},
		},
		{
			name:     "start equals end",
			cameFrom: map[tilemap.Position]tilemap.Position{},
			start:    4,
			end:      4,
			want:     []tilemap.Position{4},
		},
		{
			name:     "end never reached",
			cameFrom: map[tilemap.Position]tilemap.Position{1: none, 2: 1},
			start:    1,
			end:      9,
			err:      astar.ErrUnreachable,
		},
		{
			name:     "chain ends at another root",
			cameFrom: map[tilemap.Position]tilemap.Position{1: none, 5: none, 6: 5},
			start:    1,
			end:      6,
			err:      astar.ErrUnreachable,
		},
		{
			name:     "cycle",
			cameFrom: map[tilemap.Position]tilemap.Position{1: none, 2: 3, 3: 4, 4: 2},
			start:    1,
			end:      2,
			err:      astar.ErrUnreachable,
		},
		{
			name:     "limit too small",
			cameFrom: map[tilemap.Position]tilemap.Position{1: none, 2: 1, 3: 2, 4: 3},
			start:    1,
			end:      4,
			limit:    2,
			err:      astar.ErrUnreachable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := astar.Reconstruct(tc.cameFrom, tc.start, tc.end, tc.limit)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
