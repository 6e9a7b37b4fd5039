package game

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"termsnake/game/types"
)

type fakeInput struct {
	keys []Key
}

func (f *fakeInput) Poll() bool {
	return len(f.keys) > 0
}

func (f *fakeInput) Read() Key {
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k
}

// fakeSurface records the draw sequence as formatted strings so tests
// can compare whole render passes.
type fakeSurface struct {
	ops      []string
	flushErr error
}

func (f *fakeSurface) Clear() {
	f.ops = append(f.ops, "clear")
}

func (f *fakeSurface) DrawCell(p types.Point, s types.Size, c types.Color) {
	f.ops = append(f.ops, fmt.Sprintf("cell %v %v %v", p, s, c))
}

func (f *fakeSurface) DrawText(p types.Point, text string, c types.Color) {
	f.ops = append(f.ops, fmt.Sprintf("text %v %q %v", p, text, c))
}

func (f *fakeSurface) Flush() error {
	f.ops = append(f.ops, "flush")
	return f.flushErr
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// newTestGame builds a 10x10 game on fakes with a manual clock, so
// the time gate only opens when a test advances it.
func newTestGame(t *testing.T, in InputSource, sf Surface) (*Game, *fakeClock) {
	t.Helper()
	g, err := New(Config{
		Grid:    types.Grid{Width: 10, Height: 10},
		Input:   in,
		Surface: sf,
		Rand:    rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	clock := &fakeClock{t: time.Unix(1000, 0)}
	g.now = clock.now
	g.sleep = func(time.Duration) {}
	g.lastTick = clock.t
	return g, clock
}

func TestNewValidation(t *testing.T) {
	t.Run("collaborators required", func(t *testing.T) {
		_, err := New(Config{})
		assert.Error(t, err)
	})

	t.Run("grid too small", func(t *testing.T) {
		_, err := New(Config{
			Grid:    types.Grid{Width: 3, Height: 3},
			Input:   &fakeInput{},
			Surface: &fakeSurface{},
		})
		assert.Error(t, err)
	})

	t.Run("width that would pin the tail to the wall", func(t *testing.T) {
		for _, width := range []int{6, 7} {
			_, err := New(Config{
				Grid:    types.Grid{Width: width, Height: 6},
				Input:   &fakeInput{},
				Surface: &fakeSurface{},
			})
			assert.Error(t, err, "width %d", width)
		}
	})
}

func TestNewSpawnsSnakeClearOfWall(t *testing.T) {
	// Smallest grid the validator accepts: the tail column must still
	// sit inside the walls.
	g, err := New(Config{
		Grid:    types.Grid{Width: 8, Height: 6},
		Input:   &fakeInput{},
		Surface: &fakeSurface{},
		Rand:    rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)
	for _, c := range g.snake.Body() {
		assert.False(t, g.wall.Contains(c), "body cell %v sits on the wall", c.Pos)
	}
}

func TestNewPlacesFoodOffSnake(t *testing.T) {
	g, _ := newTestGame(t, &fakeInput{}, &fakeSurface{})
	assert.Equal(t, 0, g.Score())
	assert.False(t, g.Over())
	assert.Equal(t, types.InitialLength, g.snake.Len())
	assert.False(t, g.snake.OverlapsFood(g.food))
	assert.False(t, g.wall.Contains(g.food))
}

func TestEatGrowsAndRelocates(t *testing.T) {
	g, _ := newTestGame(t, &fakeInput{}, &fakeSurface{})
	g.food = g.snake.Head().Translate(types.Right, 1)
	eaten := g.food

	require.NoError(t, g.UpdateState())

	assert.Equal(t, 1, g.Score())
	assert.Equal(t, types.InitialLength+1, g.snake.Len())
	assert.True(t, g.snake.BitesFood(eaten), "head lands on the eaten cell")
	assert.False(t, g.snake.OverlapsFood(g.food), "new food is off the body")
	assert.False(t, g.wall.Contains(g.food))
	assert.False(t, g.Over())
}

func TestWallCollisionEndsGame(t *testing.T) {
	g, _ := newTestGame(t, &fakeInput{}, &fakeSurface{})
	// Keep food out of the snake's path.
	g.food = types.NewCell(8*types.CellW, 8*types.CellH)
	require.True(t, g.snake.SetHeading(types.Up))

	// Head starts at row 5; rows 4..2 are open, row 1 is the wall.
	for i := 0; i < 3; i++ {
		require.NoError(t, g.UpdateState())
	}
	assert.False(t, g.Over())

	require.NoError(t, g.UpdateState())
	assert.True(t, g.Over())
	assert.False(t, g.Quit())
	assert.Equal(t, 0, g.Score(), "score unchanged by the collision")
}

func TestSelfBiteEndsGame(t *testing.T) {
	g, _ := newTestGame(t, &fakeInput{}, &fakeSurface{})
	g.food = types.NewCell(8*types.CellW, 8*types.CellH)

	// Grow to 5 so a tight turn can reach the body, then U-turn.
	g.snake.GrowBody()
	g.snake.GrowBody()
	for _, dir := range []types.Direction{types.Down, types.Left, types.Up} {
		require.True(t, g.snake.SetHeading(dir))
		require.NoError(t, g.UpdateState())
	}
	assert.True(t, g.Over())
	assert.False(t, g.Quit())
}

func TestInputLastWriteWins(t *testing.T) {
	in := &fakeInput{}
	g, _ := newTestGame(t, in, &fakeSurface{})

	t.Run("last event of the batch is applied", func(t *testing.T) {
		require.True(t, g.snake.SetHeading(types.Up))
		in.keys = []Key{KeyLeft, KeyRight}
		g.ProcessInput()
		assert.Equal(t, types.Right, g.snake.Heading())
		assert.False(t, in.Poll(), "batch must be fully drained")
	})

	t.Run("reversal at the end of the batch is ignored", func(t *testing.T) {
		require.True(t, g.snake.SetHeading(types.Up))
		in.keys = []Key{KeyLeft, KeyDown}
		g.ProcessInput()
		assert.Equal(t, types.Up, g.snake.Heading())
	})

	t.Run("non-key events do not disturb the heading", func(t *testing.T) {
		in.keys = []Key{KeyNone, KeyNone}
		g.ProcessInput()
		assert.Equal(t, types.Up, g.snake.Heading())
	})
}

func TestQuitIsImmediate(t *testing.T) {
	in := &fakeInput{keys: []Key{KeyQuit}}
	g, _ := newTestGame(t, in, &fakeSurface{})
	head := g.snake.Head()
	length := g.snake.Len()

	// Gate is closed: quit must not wait for a simulation step.
	require.NoError(t, g.step())

	assert.True(t, g.Over())
	assert.True(t, g.Quit())
	assert.Equal(t, length, g.snake.Len())
	assert.True(t, g.snake.Head().Equals(head))
}

func TestTimeGate(t *testing.T) {
	g, clock := newTestGame(t, &fakeInput{}, &fakeSurface{})
	start := g.snake.Head()

	clock.advance(g.timeStep / 2)
	require.NoError(t, g.step())
	assert.True(t, g.snake.Head().Equals(start), "gate closed: no advance")

	clock.advance(g.timeStep / 2)
	require.NoError(t, g.step())
	assert.True(t, g.snake.Head().Equals(start.Translate(types.Right, 1)), "gate open: exactly one step")

	clock.advance(g.timeStep / 2)
	require.NoError(t, g.step())
	assert.True(t, g.snake.Head().Equals(start.Translate(types.Right, 1)), "anchor was reset")
}

func TestRenderIsIdempotent(t *testing.T) {
	sf := &fakeSurface{}
	g, _ := newTestGame(t, &fakeInput{}, sf)

	require.NoError(t, g.Render())
	first := append([]string(nil), sf.ops...)
	sf.ops = nil
	require.NoError(t, g.Render())

	assert.Equal(t, first, sf.ops)
}

func TestRunStopsOnQuit(t *testing.T) {
	in := &fakeInput{keys: []Key{KeyRight, KeyQuit}}
	g, _ := newTestGame(t, in, &fakeSurface{})

	require.NoError(t, g.Run())
	assert.True(t, g.Over())
	assert.True(t, g.Quit())
}

func TestFlushErrorAbortsLoop(t *testing.T) {
	sf := &fakeSurface{flushErr: errors.New("tty gone")}
	g, _ := newTestGame(t, &fakeInput{}, sf)

	err := g.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
	assert.False(t, g.Quit())
}
