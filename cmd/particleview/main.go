// Command particleview renders particlekit effects in the terminal. It
// cycles through a built-in demo reel, or through presets loaded from a
// TOML directory, and drives them with the tick.Runner scheduler.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/particlekit"
	"github.com/lixenwraith/particlekit/preset"
	"github.com/lixenwraith/particlekit/tick"
)

const (
	// World units per terminal cell column.
	viewScale = 0.15
	frameMs   = 33
)

type Viewer struct {
	screen        tcell.Screen
	width, height int

	cfg    Config
	world  *termWorld
	runner *tick.Runner

	reel    []reelEntry
	current int
	task    tick.Task

	audioInit bool
	logFile   *os.File
}

func NewViewer(cfg Config) (*Viewer, error) {
	reel := builtinReel
	if cfg.Presets != "" {
		presets, err := preset.LoadDir(cfg.Presets)
		if err != nil {
			return nil, err
		}
		if len(presets) == 0 {
			return nil, fmt.Errorf("no presets found in %s", cfg.Presets)
		}
		reel = presetReel(presets)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	v := &Viewer{
		screen: screen,
		cfg:    cfg,
		world:  newTermWorld(origin, viewScale),
		runner: tick.NewRunner(time.Second / time.Duration(cfg.TickRate)),
		reel:   reel,
	}
	v.width, v.height = screen.Size()

	if cfg.Debug != "" {
		if err := v.initLogging(cfg.Debug); err != nil {
			screen.Fini()
			return nil, err
		}
	}

	if cfg.Sound {
		if err := v.initAudio(); err != nil {
			// Non-fatal, the viewer can run silent
			particlekit.Logger().Debug("audio initialization failed", "error", err)
		}
	}

	return v, nil
}

// initLogging routes library debug logs to a file; the terminal itself
// belongs to tcell.
func (v *Viewer) initLogging(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	v.logFile = f
	particlekit.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	return nil
}

func (v *Viewer) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		v.audioInit = true
	}
	return err
}

func (v *Viewer) playSwitchSound() {
	if !v.audioInit {
		return
	}

	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(60 * time.Millisecond)
	sine, _ := generators.SineTone(sampleRate, 660)

	speaker.Play(beep.Take(duration, sine))
}

// startCurrent cancels the running effect and starts the selected one.
func (v *Viewer) startCurrent() {
	if v.task != nil {
		v.task.Cancel()
	}
	v.world.reset()

	entry := v.reel[v.current]
	task, err := entry.start(v.runner, v.world)
	if err != nil {
		particlekit.Logger().Debug("effect failed to start", "name", entry.name, "error", err)
		v.task = nil
		return
	}
	v.task = task
}

func (v *Viewer) next() {
	v.current = (v.current + 1) % len(v.reel)
	v.startCurrent()
	v.playSwitchSound()
}

func (v *Viewer) prev() {
	v.current = (v.current - 1 + len(v.reel)) % len(v.reel)
	v.startCurrent()
	v.playSwitchSound()
}

func (v *Viewer) togglePause() {
	if v.runner.IsPaused() {
		v.runner.Resume()
	} else {
		v.runner.Pause()
	}
}

func (v *Viewer) handleResize() {
	v.width, v.height = v.screen.Size()
	v.screen.Sync()
}

func (v *Viewer) draw() {
	v.screen.Clear()

	v.world.draw(v.screen, v.width, v.height)

	status := fmt.Sprintf(" [%d/%d] %s", v.current+1, len(v.reel), v.reel[v.current].name)
	if v.runner.IsPaused() {
		status += "  (paused)"
	}
	help := "n/space next  b prev  p pause  q quit "

	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	drawText(v.screen, 0, v.height-1, style, status)
	drawText(v.screen, v.width-len(help), v.height-1, style, help)

	v.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'n', ' ':
				v.next()
			case 'b':
				v.prev()
			case 'p':
				v.togglePause()
			}
		}

	case *tcell.EventResize:
		v.handleResize()
	}

	return true
}

func (v *Viewer) run() {
	v.runner.Start()
	v.startCurrent()

	ticker := time.NewTicker(frameMs * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- v.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}

		case <-ticker.C:
			v.draw()
		}
	}
}

func (v *Viewer) cleanup() {
	if v.task != nil {
		v.task.Cancel()
	}
	v.runner.Stop()
	if v.audioInit {
		speaker.Close()
	}
	v.screen.Fini()
	if v.logFile != nil {
		v.logFile.Close()
	}
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "particleview: %v\n", err)
		os.Exit(1)
	}

	viewer, err := NewViewer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "particleview: %v\n", err)
		os.Exit(1)
	}
	defer viewer.cleanup()

	viewer.run()
}
