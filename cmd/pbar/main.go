// Command pbar runs a standalone status bar: one dock window per
// screen showing a label, free space, memory usage and a clock.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/Arstman/penrose/bar"
	"github.com/Arstman/penrose/draw"
)

func main() {
	var (
		configPath = flag.String("config", bar.DefaultPath(), "path to the bar config file")
		display    = flag.String("display", "", "X display to connect to (defaults to $DISPLAY)")
		debug      = flag.Bool("debug", false, "log debug output to stderr")
		version    = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println("pbar", draw.Version)
		return
	}

	if *debug {
		draw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(*configPath, *display); err != nil {
		log.Fatalf("pbar: %v", err)
	}
}

func run(configPath, display string) error {
	cfg, err := bar.LoadConfig(configPath)
	if err != nil {
		return err
	}
	pos, err := cfg.ParsePosition()
	if err != nil {
		return err
	}
	bg, fg, err := cfg.Colors()
	if err != nil {
		return err
	}

	drw, err := draw.NewXDraw(draw.WithDisplay(display))
	if err != nil {
		return err
	}

	style := bar.TextStyle{
		Font:      cfg.Font,
		PointSize: cfg.PointSize,
		Fg:        fg.Hex(),
		Padding:   draw.Padding{Left: 3, Right: 3, Top: 1, Bottom: 1},
	}

	label := bar.NewText(cfg.Label, style, false, false)
	spacer := bar.NewText("", style, true, false)
	mem := newMemory(style)
	clock := bar.NewClock(style, cfg.ClockFormat)

	b, err := bar.New(drw, pos, cfg.Height, bg.Hex(), []string{cfg.Font},
		label, spacer, mem, clock)
	if err != nil {
		drw.Close()
		return err
	}
	if err := b.Redraw(); err != nil {
		drw.Close()
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Closing the connection on shutdown also unblocks NextEvent.
	g.Go(func() error {
		<-ctx.Done()
		return drw.Close()
	})

	events := make(chan xproto.ExposeEvent, 8)
	g.Go(func() error {
		for {
			ev, err := drw.NextEvent()
			if ev == nil && err == nil {
				if ctx.Err() != nil {
					// Shutdown closed the connection under us.
					return nil
				}
				return errors.New("x connection closed")
			}
			if err != nil {
				draw.Logger().Debug("x11 error", "err", err)
				continue
			}
			exp, ok := ev.(xproto.ExposeEvent)
			if !ok {
				continue
			}
			select {
			case events <- exp:
			case <-ctx.Done():
				return nil
			}
		}
	})

	// All drawing happens on this goroutine; the draw layer is
	// single-threaded.
	g.Go(func() error {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				clock.Tick()
				mem.Tick()
				if err := b.RedrawIfNeeded(); err != nil {
					return err
				}
			case <-events:
				if err := b.Redraw(); err != nil {
					return err
				}
			}
		}
	})

	return g.Wait()
}

// memory is a bar widget showing used and total system memory.
type memory struct {
	*bar.Text
}

func newMemory(style bar.TextStyle) *memory {
	m := &memory{Text: bar.NewText("", style, false, false)}
	m.Tick()
	return m
}

// Tick refreshes the reading. Hosts without /proc/meminfo show a
// placeholder instead of failing the bar.
func (m *memory) Tick() {
	used, total, err := readMeminfo("/proc/meminfo")
	if err != nil {
		m.SetText("mem n/a")
		return
	}
	m.SetText(fmt.Sprintf("%s / %s", humanize.IBytes(used), humanize.IBytes(total)))
}

// readMeminfo returns used and total memory in bytes from a
// /proc/meminfo style file, deriving used as total minus available.
func readMeminfo(path string) (used, total uint64, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, err
	}

	var totalKB, availKB uint64
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			totalKB, _ = strconv.ParseUint(fields[1], 10, 64)
		case "MemAvailable:":
			availKB, _ = strconv.ParseUint(fields[1], 10, 64)
		}
	}
	if totalKB == 0 {
		return 0, 0, fmt.Errorf("no MemTotal in %s", path)
	}
	return (totalKB - availKB) * 1024, totalKB * 1024, nil
}
