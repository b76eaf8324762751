// Command arena opens a window with the player and the enemies of one arena.
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/fonts"
	"github.com/automoto/brawler/level"
	"github.com/automoto/brawler/scenes"
	"github.com/automoto/brawler/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

func main() {
	arenaFlag := flag.String("arena", "pit", "Built-in arena name or path to a .tmx file")
	enemies := flag.String("enemies", "", "YAML file with enemy type overrides")
	debug := flag.Bool("debug", false, "Draw zones and behavior labels (toggle with F1)")
	logTransitions := flag.Bool("log-transitions", false, "Log every enemy transition")
	flag.Parse()

	cfg.Debug.DrawZones = *debug
	cfg.Debug.LogTransitions = *logTransitions

	logLevel := slog.LevelInfo
	if cfg.Debug.LogTransitions {
		logLevel = slog.LevelDebug
	}
	systems.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	if err := cfg.LoadDefaultEnemyTypes(); err != nil {
		log.Fatalf("Failed to load enemy types: %v", err)
	}
	if *enemies != "" {
		if err := cfg.LoadEnemyTypes(*enemies); err != nil {
			log.Fatalf("Failed to load enemy types: %v", err)
		}
	}

	if err := fonts.LoadFont(fonts.Debug, goregular.TTF); err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	arena, err := loadArena(*arenaFlag)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	// Initialize persistence and load the saved kill tally
	if err := systems.InitPersistence("brawler"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	kills, err := systems.LoadKillTally()
	if err != nil {
		log.Printf("Warning: Could not load kill tally: %v", err)
	}

	systems.EnableAudioOutput()

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle("Brawler - " + arena.Name)
	ebiten.SetTPS(cfg.C.TPS)

	if err := ebiten.RunGame(NewGame(scenes.NewArenaScene(arena, kills))); err != nil {
		log.Fatal(err)
	}
}

// loadArena accepts either a built-in arena name or a path to a TMX file.
func loadArena(name string) (*level.Arena, error) {
	if filepath.Ext(name) != ".tmx" {
		return level.LoadBuiltin(name)
	}
	return level.Load(os.DirFS(filepath.Dir(name)), filepath.Base(name))
}
