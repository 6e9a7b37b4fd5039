package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"termsnake/game/entity"
	"termsnake/game/manager"
	"termsnake/game/types"
)

// Key is a decoded input event.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
)

// InputSource is the handed-in input collaborator. Poll must never
// block; Read pops the next pending event.
type InputSource interface {
	Poll() bool
	Read() Key
}

// Surface is the handed-in draw collaborator. Draw calls buffer into
// the surface; Flush performs the actual I/O and is the only error
// point.
type Surface interface {
	Clear()
	DrawCell(pos types.Point, size types.Size, color types.Color)
	DrawText(pos types.Point, text string, color types.Color)
	Flush() error
}

// SoundPlayer plays short effect tones.
type SoundPlayer interface {
	Eat()
	GameOver()
}

// Config assembles a game. Input and Surface are required; the rest
// have defaults.
type Config struct {
	Grid     types.Grid    // zero value: types.DefaultGrid
	TimeStep time.Duration // zero value: types.DefaultTimeStep
	Input    InputSource
	Surface  Surface
	Sound    SoundPlayer // optional
	Rand     *rand.Rand  // optional, time-seeded when nil
}

// Game owns the whole world: wall, snake, food, score and the
// termination flag. Nothing outside the game mutates them.
type Game struct {
	id    uuid.UUID
	grid  types.Grid
	wall  *entity.Wall
	snake *entity.Snake
	food  types.Cell

	foodMgr *manager.FoodManager
	score   int
	over    bool
	quit    bool

	timeStep time.Duration
	lastTick time.Time

	input   InputSource
	surface Surface
	sound   SoundPlayer

	// Overridable clocks so tests can drive the gate directly.
	now   func() time.Time
	sleep func(time.Duration)
}

// New builds a running game: snake centered heading right, food
// placed off the snake, score zero.
func New(cfg Config) (*Game, error) {
	if cfg.Input == nil || cfg.Surface == nil {
		return nil, errors.New("input and surface collaborators are required")
	}
	grid := cfg.Grid
	if grid == (types.Grid{}) {
		grid = types.DefaultGrid
	}
	// The snake spawns centered heading right, so its tail reaches
	// back to column Width/2-(InitialLength-1); that must clear the
	// left wall column.
	if grid.Width/2-(types.InitialLength-1) < 2 || grid.Height < 6 {
		return nil, fmt.Errorf("grid %dx%d leaves no room for the snake", grid.Width, grid.Height)
	}
	timeStep := cfg.TimeStep
	if timeStep <= 0 {
		timeStep = types.DefaultTimeStep
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	start := types.Point{
		X: grid.Width / 2 * types.CellW,
		Y: grid.Height / 2 * types.CellH,
	}
	g := &Game{
		id:       uuid.New(),
		grid:     grid,
		wall:     entity.NewWall(grid),
		snake:    entity.NewSnake(start, types.Right, types.InitialLength),
		foodMgr:  manager.NewFoodManager(grid, rng),
		timeStep: timeStep,
		input:    cfg.Input,
		surface:  cfg.Surface,
		sound:    cfg.Sound,
		now:      time.Now,
		sleep:    time.Sleep,
	}
	food, err := g.foodMgr.Relocate(g.snake)
	if err != nil {
		return nil, err
	}
	g.food = food
	g.lastTick = g.now()
	return g, nil
}

// Score returns the number of food cells eaten.
func (g *Game) Score() int {
	return g.score
}

// Over reports whether the game has reached its terminal state.
func (g *Game) Over() bool {
	return g.over
}

// Quit reports whether the game ended by player request rather than
// collision.
func (g *Game) Quit() bool {
	return g.quit
}

// Render draws the whole world onto the surface. It never mutates
// game state, so consecutive calls produce identical draw sequences.
func (g *Game) Render() error {
	g.surface.Clear()
	g.surface.DrawText(types.Point{X: 10, Y: 0}, "termsnake", types.White)
	g.surface.DrawText(types.Point{X: 40, Y: 0}, fmt.Sprintf("Score: %d", g.score), types.White)
	for _, c := range g.wall.Cells() {
		g.surface.DrawCell(c.Pos, c.Size, types.Blue)
	}
	for _, c := range g.snake.Body() {
		g.surface.DrawCell(c.Pos, c.Size, types.White)
	}
	g.surface.DrawCell(g.food.Pos, g.food.Size, types.Red)
	return g.surface.Flush()
}

// ProcessInput drains every pending event. A quit anywhere in the
// batch ends the game at once, bypassing the time gate. Of the
// directional events only the most recent is offered to the snake, so
// a burst of buffered key repeats cannot turn the head more than once
// per pass.
func (g *Game) ProcessInput() {
	last := KeyNone
	for g.input.Poll() {
		switch k := g.input.Read(); k {
		case KeyQuit:
			g.over = true
			g.quit = true
		case KeyUp, KeyDown, KeyLeft, KeyRight:
			last = k
		}
	}
	if g.over || last == KeyNone {
		return
	}
	g.snake.SetHeading(directionFor(last))
}

// UpdateState advances the simulation exactly one step: the head
// moves one cell along the heading, food under the new head is
// consumed and replaced, and the post-move head decides termination.
func (g *Game) UpdateState() error {
	next := g.snake.Head().Translate(g.snake.Heading(), 1)
	if next.Equals(g.food) {
		g.snake.GrowBody()
		g.score++
		food, err := g.foodMgr.Relocate(g.snake)
		if err != nil {
			return fmt.Errorf("relocating food: %w", err)
		}
		g.food = food
		if g.sound != nil {
			g.sound.Eat()
		}
		log.WithFields(log.Fields{
			"game":  g.id,
			"score": g.score,
			"food":  g.food.Pos,
		}).Debug("food eaten")
	} else {
		g.snake.MoveBody()
	}
	if g.snake.BitesSelf() || g.snake.CollidesWall(g.wall) {
		g.over = true
		if g.sound != nil {
			g.sound.GameOver()
		}
		log.WithFields(log.Fields{
			"game":   g.id,
			"score":  g.score,
			"length": g.snake.Len(),
		}).Info("game over")
	}
	return nil
}

// step runs one loop iteration without the frame sleep: render, drain
// input, then advance the simulation if a full time step has elapsed.
func (g *Game) step() error {
	if err := g.Render(); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	g.ProcessInput()
	if !g.over && g.now().Sub(g.lastTick) >= g.timeStep {
		if err := g.UpdateState(); err != nil {
			return err
		}
		g.lastTick = g.now()
	}
	return nil
}

// Run drives the loop until the game is over or the surface fails.
// Rendering and input run every frame; the simulation is gated to the
// time step, with frames at twice the simulation rate.
func (g *Game) Run() error {
	log.WithFields(log.Fields{
		"game":      g.id,
		"grid":      fmt.Sprintf("%dx%d", g.grid.Width, g.grid.Height),
		"free":      g.foodMgr.Capacity(),
		"time_step": g.timeStep,
	}).Info("session started")
	for !g.over {
		if err := g.step(); err != nil {
			return err
		}
		g.sleep(g.timeStep / 2)
	}
	return nil
}

func directionFor(k Key) types.Direction {
	switch k {
	case KeyUp:
		return types.Up
	case KeyDown:
		return types.Down
	case KeyLeft:
		return types.Left
	default:
		return types.Right
	}
}
