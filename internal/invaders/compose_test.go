package invaders

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/invaders/internal/core"
)

// recorder is a Renderer that logs every call.
type recorder struct {
	size     core.Vec2i
	ops      []string
	textErr  error
	presents int
}

func newRecorder() *recorder {
	return &recorder{size: core.Vec2i{X: 224, Y: 256}}
}

func (r *recorder) Size() core.Vec2i { return r.size }

func (r *recorder) Clear(c core.Color) {
	r.ops = append(r.ops, fmt.Sprintf("clear %s", c.Hex()))
}

func (r *recorder) DrawSprite(cell core.Vec2i, pos core.Vec2) {
	r.ops = append(r.ops, fmt.Sprintf("sprite %d,%d @ %g,%g", cell.X, cell.Y, pos.X, pos.Y))
}

func (r *recorder) TextSize(text string) (int, int) {
	return 4 * len(text), 6
}

func (r *recorder) DrawText(x, y int, text string) error {
	if r.textErr != nil {
		return r.textErr
	}
	r.ops = append(r.ops, fmt.Sprintf("text %d,%d %q", x, y, text))
	return nil
}

func (r *recorder) Present() error {
	r.presents++
	return nil
}

func TestComposeOrder(t *testing.T) {
	s := NewState(Settings{
		Logical:    core.Vec2i{X: 224, Y: 256},
		SpriteSize: 16,
		Rows:       2,
		Cols:       2,
		Layout:     DefaultLayout(),
	})
	s.Time.FPS = 59
	r := newRecorder()

	Compose(s, r, log.New(&bytes.Buffer{}))

	assert.Equal(t, []string{
		"clear #141414",
		"sprite 0,0 @ 112,240",
		"sprite 1,0 @ 10,32",
		"sprite 1,0 @ 28,32",
		"sprite 2,0 @ 10,50",
		"sprite 2,0 @ 28,50",
		`text 186,10 "FPS: 59"`,
	}, r.ops)
}

func TestComposeSkipsFailedOverlay(t *testing.T) {
	s := newTestState()
	r := newRecorder()
	r.textErr = ErrGlyphUnsupported

	var buf bytes.Buffer
	Compose(s, r, log.New(&buf))

	require.Len(t, r.ops, 2+s.Aliens.Len(), "frame still draws without the overlay")
	assert.Contains(t, buf.String(), "fps overlay skipped")
}

func TestComposeDoesNotMutateState(t *testing.T) {
	s := newTestState()
	ship := s.Ship.Pos
	first := s.Aliens.At(0)

	Compose(s, newRecorder(), log.New(&bytes.Buffer{}))

	assert.Equal(t, ship, s.Ship.Pos)
	assert.Equal(t, first, s.Aliens.At(0))
}
