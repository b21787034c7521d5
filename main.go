package main

import (
	"flag"
	"image"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/dungeonblades/config"
	"github.com/automoto/dungeonblades/fonts"
	"github.com/automoto/dungeonblades/prefabs"
	"github.com/automoto/dungeonblades/scenes"
	"github.com/automoto/dungeonblades/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	assetsDir := flag.String("assets", "", "load sprites, sounds and rooms from this directory instead of the embedded copies")
	prefabsDir := flag.String("prefabs", "", "read weapons.yaml and bullets.yaml from this directory first")
	room := flag.String("room", "", "name of the room to start in")
	debug := flag.Bool("debug", false, "draw hitboxes")
	logBullets := flag.Bool("log-bullets", false, "log bullet spawn, kill and prune")
	watch := flag.Bool("watch", false, "reload prefabs when they change on disk (needs -prefabs)")
	seed := flag.Int64("seed", 0, "seed for spread, bounce and particle randomness (0 picks one from the clock)")
	flag.Parse()

	if *seed != 0 {
		systems.SetSeed(*seed)
	}

	config.Debug.Hitboxes = *debug
	config.Debug.LogBullets = *logBullets

	if err := fonts.LoadDefaults(config.Prompt.FontSize); err != nil {
		log.Fatalf("load fonts: %v", err)
	}

	opts := scenes.Options{StartRoom: *room}
	if *assetsDir != "" {
		var fsys fs.FS = os.DirFS(*assetsDir)
		opts.Assets = fsys
		systems.SetAudioFS(fsys)
	}
	if *prefabsDir != "" {
		prefabs.SetOverrideDir(*prefabsDir)
	}
	if *watch {
		if *prefabsDir == "" {
			log.Fatal("-watch needs -prefabs")
		}
		w, err := prefabs.NewWatcher(*prefabsDir)
		if err != nil {
			log.Fatalf("watch prefabs: %v", err)
		}
		defer w.Close()
		opts.Watcher = w
	}

	scene, err := scenes.NewCombatScene(opts)
	if err != nil {
		log.Fatalf("build combat scene: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Dungeon Blades")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		log.Fatal(err)
	}
}
