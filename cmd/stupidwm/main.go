package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ItsNotGoodName/stupidwm/internal/api"
	"github.com/ItsNotGoodName/stupidwm/internal/build"
	"github.com/ItsNotGoodName/stupidwm/internal/bus"
	"github.com/ItsNotGoodName/stupidwm/internal/config"
	"github.com/ItsNotGoodName/stupidwm/internal/spawn"
	"github.com/ItsNotGoodName/stupidwm/internal/wm"
	"github.com/ItsNotGoodName/stupidwm/internal/xwm"
	"github.com/ItsNotGoodName/stupidwm/pkg/sutureext"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/jezek/xgb"
	"github.com/joho/godotenv"
	"github.com/k0kubun/pp"
	"github.com/phsym/console-slog"
)

type Options struct {
	Debug  bool   `doc:"enable debug logging"`
	Config string `doc:"config file" default:".stupidwm.yaml"`
	Listen string `doc:"status API address, disabled when empty"`
}

func main() {
	godotenv.Load()

	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		if options.Debug {
			InitLogger(slog.LevelDebug)
		} else {
			InitLogger(slog.LevelInfo)
		}

		OnServe(hooks, func(ctx context.Context) error {
			bus.SetContext(ctx)

			configFilePath, err := filepath.Abs(options.Config)
			if err != nil {
				return err
			}

			store, err := config.NewStore(config.NewYAML(configFilePath))
			if err != nil {
				return err
			}
			if err := config.Normalize(store); err != nil {
				return err
			}
			cfg, err := store.GetConfig()
			if err != nil {
				return err
			}
			if options.Debug {
				pp.Println(cfg)
			}

			conn, err := xgb.NewConn()
			if err != nil {
				return err
			}
			defer conn.Close()

			surface, err := xwm.NewSurface(conn, cfg.Colors.Focus, cfg.Colors.Unfocus, cfg.Font)
			if err != nil {
				return err
			}

			manager := wm.New(surface, spawn.Exec{}, wm.Options{
				FocusColor:     surface.FocusPixel(),
				UnfocusColor:   surface.UnfocusPixel(),
				Gap:            cfg.Gap,
				BarHeight:      cfg.BarHeight,
				MasterFraction: cfg.MasterFraction,
				Terminal:       cfg.Terminal,
				Launcher:       cfg.Launcher,
				Bindings:       spawnBindings(cfg.Bindings),
			})

			if options.Listen != "" {
				cache := api.NewCache()
				super := sutureext.New("stupidwm")
				sutureext.Add(super, api.NewServer(options.Listen, cache))
				super.ServeBackground(ctx)
				manager.Observe(bus.Publish[wm.Snapshot])
			}

			if err := manager.Startup(); err != nil {
				return err
			}

			surface.GrabKeys(manager.Bindings())
			defer surface.UngrabKeys()

			eventC := make(chan wm.Msg)
			go xwm.ReceiveEvents(ctx, conn, surface, eventC)

			if err := manager.Run(ctx, eventC); !errors.Is(err, wm.ErrQuit) {
				return err
			}
			slog.Info("Quitting")
			return nil
		})
	})

	cli.Root().Version = build.Current.Version

	cli.Run()
}

func spawnBindings(bindings []config.Binding) []wm.SpawnBinding {
	out := make([]wm.SpawnBinding, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, wm.SpawnBinding{
			Keysym: uint32(b.Key[0]),
			Exec:   b.Exec,
		})
	}
	return out
}

func InitLogger(level slog.Level) {
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	})))
}

// OnServe runs serveFn under the CLI's start/stop hooks. Any error is
// the fatal-exit path: one line on stdout and exit code 1.
func OnServe(hooks humacli.Hooks, serveFn func(ctx context.Context) error) {
	stopC := make(chan struct{})
	hooks.OnStart(func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		errC := make(chan error, 1)

		go func() { errC <- serveFn(ctx) }()

		select {
		case <-stopC:
			cancel()
		case err := <-errC:
			if err != nil && !errors.Is(err, context.Canceled) {
				die(err)
			}
			return
		}

		<-errC
		<-stopC
	})
	hooks.OnStop(func() {
		stopC <- struct{}{}
		stopC <- struct{}{}
	})
}

func die(err error) {
	fmt.Fprintf(os.Stdout, "stupid: %s\n", err)
	os.Exit(1)
}
