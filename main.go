package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bloeys/glscaffold/config"
	"github.com/bloeys/glscaffold/demos"
	"github.com/bloeys/glscaffold/engine"
	"github.com/bloeys/glscaffold/input"
	"github.com/bloeys/glscaffold/logging"
	"github.com/bloeys/glscaffold/renderer/rend3dgl"
	"github.com/bloeys/glscaffold/timing"
	"github.com/veandco/go-sdl2/sdl"
)

var demoKeys = map[demos.Key]sdl.Keycode{
	demos.Key_Up:    sdl.K_UP,
	demos.Key_Down:  sdl.K_DOWN,
	demos.Key_Left:  sdl.K_LEFT,
	demos.Key_Right: sdl.K_RIGHT,
	demos.Key_W:     sdl.K_w,
	demos.Key_A:     sdl.K_a,
	demos.Key_S:     sdl.K_s,
	demos.Key_D:     sdl.K_d,
}

// sdlKeyboard answers demo key queries from the input package
type sdlKeyboard struct{}

func (sdlKeyboard) KeyDown(k demos.Key) bool {

	kc, ok := demoKeys[k]
	if !ok {
		return false
	}

	return input.KeyDown(kc)
}

type Game struct {
	Cfg  config.Config
	Win  *engine.Window
	Rend *rend3dgl.Rend3DGL
	Demo demos.Demo
}

func (g *Game) Init() error {

	c := g.Cfg.ClearColor
	g.Rend.ClearColor(c[0], c[1], c[2], c[3])

	logging.InfoLog.Printf("Starting demo '%s'\n", g.Cfg.Demo)
	return g.Demo.Init(g.Rend)
}

func (g *Game) Update() error {

	if input.IsQuitClicked() || input.KeyClicked(sdl.K_ESCAPE) {
		engine.Quit()
	}

	return g.Demo.Update(timing.ElapsedTime(), sdlKeyboard{})
}

func (g *Game) Render() {
	g.Demo.Render()
}

func (g *Game) FrameEnd() {
}

func (g *Game) DeInit() {
	g.Demo.DeInit()
	logging.InfoLog.Printf("Demo '%s' finished\n", g.Cfg.Demo)
}

func loadConfig(path, demoOverride string) (config.Config, error) {

	cfg := config.Default()
	if path != "" {

		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
	}

	if demoOverride != "" {
		cfg.Demo = demoOverride
	}

	return cfg, cfg.Validate()
}

func main() {

	configPath := flag.String("config", "", "path to a YAML config file. Built in defaults are used if empty")
	demoName := flag.String("demo", "", "name of the demo to run, overriding the config. One of: "+strings.Join(demos.Names(), ", "))
	flag.Parse()

	cfg, err := loadConfig(*configPath, *demoName)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load config. Err:", err)
	}

	if err := run(cfg); err != nil {
		logging.ErrLog.Println("Demo stopped with an error. Err:", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {

	demo, err := demos.New(cfg.Demo, cfg.Demos[cfg.Demo])
	if err != nil {
		return err
	}

	//Init engine
	err = engine.Init()
	if err != nil {
		return fmt.Errorf("failed to init engine: %w", err)
	}
	defer engine.DeInit()

	//Create window
	window, err := engine.CreateOpenGLWindowCentered(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, engine.WindowFlags_RESIZABLE)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Destroy()

	if err := engine.SetVSync(cfg.Window.VSync); err != nil {
		logging.WarnLog.Println("Failed to set vsync. Err:", err)
	}

	rend, err := rend3dgl.NewRend3DGL()
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer rend.Delete()

	game := &Game{
		Cfg:  cfg,
		Win:  window,
		Rend: rend,
		Demo: demo,
	}

	return engine.Run(game, window, rend)
}
