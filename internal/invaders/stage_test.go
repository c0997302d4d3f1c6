package invaders

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/invaders/internal/core"
)

func TestBuildStageProperties(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 7}, {4, 10}, {5, 3}, {9, 2}} {
		rows, cols := dims[0], dims[1]
		t.Run(fmt.Sprintf("%dx%d", rows, cols), func(t *testing.T) {
			s := BuildStage(rows, cols, DefaultLayout())
			require.Equal(t, rows*cols, s.Len())
			assert.Equal(t, rows*cols, s.Cap(), "stage fits its initial capacity")

			seen := make(map[int]bool)
			for i := 0; i < s.Len(); i++ {
				e := s.At(i)
				row, col := i/cols, i%cols

				assert.False(t, seen[e.Seq], "duplicate seq %d", e.Seq)
				seen[e.Seq] = true
				assert.Equal(t, row*cols+col, e.Seq)
				assert.Equal(t, Kind(row%KindCount), e.Kind)
				assert.Equal(t, core.Vec2{X: 10 + float64(col)*18, Y: 32 + float64(row)*18}, e.Pos)
			}
			for seq := 0; seq < rows*cols; seq++ {
				assert.True(t, seen[seq], "missing seq %d", seq)
			}
		})
	}
}

func TestBuildStageCustomLayout(t *testing.T) {
	s := BuildStage(2, 2, StageLayout{Origin: core.Vec2{X: 1, Y: 2}, Spacing: 5})

	assert.Equal(t, core.Vec2{X: 1, Y: 2}, s.At(0).Pos)
	assert.Equal(t, core.Vec2{X: 6, Y: 2}, s.At(1).Pos)
	assert.Equal(t, core.Vec2{X: 1, Y: 7}, s.At(2).Pos)
	assert.Equal(t, core.Vec2{X: 6, Y: 7}, s.At(3).Pos)
}

func TestBuildStageEmpty(t *testing.T) {
	assert.Equal(t, 0, BuildStage(0, 10, DefaultLayout()).Len())
	assert.Equal(t, 0, BuildStage(4, 0, DefaultLayout()).Len())
	assert.Equal(t, 0, BuildStage(-1, -1, DefaultLayout()).Len())
}
