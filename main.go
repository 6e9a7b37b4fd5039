package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"termsnake/audio"
	"termsnake/game"
	"termsnake/game/types"
	"termsnake/ui"
)

func main() {
	speed := flag.Int("speed", 150, "simulation time step in milliseconds (lower = faster)")
	mute := flag.Bool("mute", false, "disable sound effects")
	seed := flag.Uint64("seed", 0, "food placement seed (0 = time-based)")
	logPath := flag.String("log", "", "write a session log to this file")
	flag.Parse()

	score, err := run(*speed, *mute, *seed, *logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "termsnake:", err)
		os.Exit(1)
	}
	fmt.Printf("Final score: %d\n", score)
}

// run owns the terminal session: everything between raw mode on and
// raw mode off. The terminal is restored by the deferred Fini on
// every path, errors included, before anything is printed.
func run(speed int, mute bool, seed uint64, logPath string) (int, error) {
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return 0, fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
		log.SetLevel(log.DebugLevel)
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return 0, err
	}
	defer screen.Fini()

	var sound game.SoundPlayer
	if !mute {
		player := audio.NewPlayer()
		defer player.Close()
		sound = player
	}

	renderer := ui.NewRenderer(screen)
	input := ui.NewInput(screen)

	g, err := game.New(game.Config{
		TimeStep: time.Duration(speed) * time.Millisecond,
		Input:    input,
		Surface:  renderer,
		Sound:    sound,
		Rand:     rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return 0, err
	}

	if err := g.Run(); err != nil {
		return g.Score(), err
	}
	if !g.Quit() {
		if err := showGameOver(g, renderer, input); err != nil {
			return g.Score(), err
		}
	}
	return g.Score(), nil
}

// showGameOver paints a banner over the final frame and waits briefly
// for a key so the player sees how the run ended.
func showGameOver(g *game.Game, r *ui.Renderer, in *ui.Input) error {
	if err := g.Render(); err != nil {
		return err
	}
	center := types.Point{X: types.GroundW/2 - 5, Y: types.GroundH / 2}
	r.DrawText(center, " GAME OVER ", types.Red)
	r.DrawText(types.Point{X: center.X - 4, Y: center.Y + 1},
		fmt.Sprintf(" Score: %d - press any key ", g.Score()), types.White)
	if err := r.Flush(); err != nil {
		return err
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if in.Poll() {
			in.Read()
			return nil
		}
		time.Sleep(50 * time.Millisecond)
	}
	return nil
}
