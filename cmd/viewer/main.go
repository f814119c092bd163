// viewer is an ebiten-based live renderer for a running simulation: the
// outside-scope collaborator spec.md §2 calls "the rendering engine".
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/Garsondee/swarm-slam/internal/mapfile"
	"github.com/Garsondee/swarm-slam/internal/sim"
)

// ErrQuit cleanly exits the whole program when returned from App.Update.
var ErrQuit = errors.New("quit viewer")

const cellPx = 18

// App is the ebiten.Game implementation driving one simulation on screen.
type App struct {
	sim      *sim.Simulation
	reporter *sim.Reporter
	paused   bool
	stepOnce bool
	prevKeys map[ebiten.Key]bool
}

func newApp(s *sim.Simulation) *App {
	return &App{
		sim:      s,
		reporter: sim.NewReporter(),
		prevKeys: map[ebiten.Key]bool{},
	}
}

func (a *App) Update() error {
	pressed := func(k ebiten.Key) bool {
		now := ebiten.IsKeyPressed(k)
		was := a.prevKeys[k]
		a.prevKeys[k] = now
		return now && !was
	}

	if pressed(ebiten.KeyQ) || pressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	if pressed(ebiten.KeySpace) {
		a.paused = !a.paused
	}
	if pressed(ebiten.KeyN) {
		a.stepOnce = true
	}
	if pressed(ebiten.KeyC) {
		report := a.reporter.FormatLatest()
		if err := copyReport(report); err != nil {
			log.Printf("copy report: %v", err)
		}
	}

	if !a.sim.Done() && (!a.paused || a.stepOnce) {
		a.sim.Step()
		a.reporter.Collect(a.sim)
		a.stepOnce = false
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 12, A: 255})

	shared := a.sim.SharedMap()
	width, height := shared.Width(), shared.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			obs := shared.At(x, y)
			col := tileColor(obs)
			vector.FillRect(screen, float32(x*cellPx), float32(y*cellPx), cellPx-1, cellPx-1, col, false)
		}
	}

	if fr := a.sim.Frontier(); fr != nil {
		for _, c := range fr.Sorted() {
			vector.StrokeRect(screen, float32(c.X*cellPx), float32(c.Y*cellPx), cellPx-1, cellPx-1, 1, colornames.Gold, false)
		}
	}

	for _, ag := range a.sim.Agents() {
		pos := ag.Position()
		col := colornames.Deepskyblue
		if !ag.Active() {
			col = colornames.Gray
		}
		vector.FillRect(screen,
			float32(pos.X*cellPx+3), float32(pos.Y*cellPx+3),
			cellPx-7, cellPx-7, col, false)
	}

	ebitenutil.DebugPrintAt(screen, a.reporter.FormatLatest(), 4, height*cellPx+4)
	ebitenutil.DebugPrintAt(screen, "[space] pause  [n] step  [c] copy report  [q] quit", 4, height*cellPx+20)
}

func (a *App) Layout(_, _ int) (int, int) {
	shared := a.sim.SharedMap()
	return shared.Width() * cellPx, shared.Height()*cellPx + 40
}

func tileColor(obs sim.Observation) color.Color {
	if !obs.Known() {
		return color.RGBA{R: 20, G: 20, B: 24, A: 255}
	}
	switch obs.Tile() {
	case sim.TileFree:
		return colornames.Dimgray
	case sim.TileWall:
		return colornames.Black
	case sim.TileEntryPoint:
		return colornames.Forestgreen
	case sim.TileDoorClosed:
		return colornames.Saddlebrown
	case sim.TileDoorOpen:
		return colornames.Burlywood
	case sim.TileWindow:
		return colornames.Lightskyblue
	case sim.TileOutOfBounds:
		return colornames.Purple
	default:
		return colornames.Magenta
	}
}

func main() {
	var (
		mapPath    string
		numAgents  int
		seed       int64
		fovRadius  int
		useRandom  bool
		genWidth   int
		genHeight  int
		genEntries int
	)
	flag.StringVar(&mapPath, "map", "", "path to a whitespace-separated integer tile matrix")
	flag.IntVar(&numAgents, "agents", 2, "number of agents")
	flag.Int64Var(&seed, "seed", 1, "RNG seed")
	flag.IntVar(&fovRadius, "fov", 5, "agent FOV radius")
	flag.BoolVar(&useRandom, "random-map", false, "generate a random map instead of loading -map")
	flag.IntVar(&genWidth, "gen-width", 32, "random map width, with -random-map")
	flag.IntVar(&genHeight, "gen-height", 32, "random map height, with -random-map")
	flag.IntVar(&genEntries, "gen-entries", 2, "random map entry point count, with -random-map")
	flag.Parse()

	rng := rand.New(rand.NewSource(seed))

	var rows [][]int
	var err error
	if useRandom {
		rows = mapfile.GenerateRandom(rng, genWidth, genHeight, genEntries)
	} else {
		if mapPath == "" {
			log.Fatal("must pass -map or -random-map")
		}
		rows, err = mapfile.Load(mapPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	grid, err := sim.NewGrid(rows)
	if err != nil {
		log.Fatal(err)
	}
	entries := grid.EntryPoints()
	if len(entries) == 0 {
		log.Fatal("map has no entry points")
	}

	specs := make([]sim.AgentSpec, numAgents)
	for i := 0; i < numAgents; i++ {
		specs[i] = sim.AgentSpec{ID: i, Start: entries[i%len(entries)], FOVRadius: fovRadius, EntryTime: i * 2}
	}

	cfg := *sim.DefaultConfig()
	s, err := sim.NewSimulation(grid, specs, cfg, rng)
	if err != nil {
		log.Fatal(err)
	}

	app := newApp(s)
	ebiten.SetWindowTitle("swarm-slam viewer")
	ebiten.SetWindowSize(grid.Width()*cellPx, grid.Height()*cellPx+40)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ErrQuit) {
		log.Fatal(fmt.Errorf("viewer exited: %w", err))
	}
}
