package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"text/tabwriter"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/history"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/mainwindow"
	"pomodoro/internal/ui/notify"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"
)

const (
	appName    = "Pomodoro"
	appID      = "com.pomodoro.app"
	appVersion = "0.1.0"
)

type options struct {
	configPath string
	noIcon     bool
	noNotify   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:          "pomodoro",
		Short:        appName + ": simple pomodoro timer",
		Version:      appVersion,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(opts)
		},
	}

	rootCmd.Flags().BoolVar(&opts.noIcon, "no-icon", false, "disable tray icon")
	rootCmd.Flags().BoolVar(&opts.noNotify, "no-notify", false, "mute desktop notifications")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "configuration file location (.yaml or .toml)")

	rootCmd.AddCommand(newHistoryCmd())
	return rootCmd
}

func newHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent phases and today's completed pomodoros",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := storage.DefaultHistoryPath(platform.NewService(), appName)
			if err != nil {
				return err
			}
			store, err := history.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			now := time.Now()
			year, month, day := now.Date()
			today, err := store.CompletedSince(ctx, timekeeper.KindWork, time.Date(year, month, day, 0, 0, 0, 0, now.Location()))
			if err != nil {
				return err
			}
			entries, err := store.Recent(ctx, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Pomodoros completed today: %d\n\n", today)
			writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ENDED\tPHASE\tPLANNED\tELAPSED\tCOMPLETED")
			for _, entry := range entries {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%t\n",
					entry.EndedAt.Local().Format("2006-01-02 15:04"),
					entry.Kind.Name(),
					timekeeper.FormatClock(entry.Planned),
					timekeeper.FormatClock(entry.Elapsed),
					entry.Completed,
				)
			}
			return writer.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of phases to list")
	return cmd
}

func runApp(opts *options) error {
	service := platform.NewService()
	settingsPath := opts.configPath
	if settingsPath == "" {
		var err error
		settingsPath, err = storage.DefaultSettingsPath(service, appName)
		if err != nil {
			return err
		}
	}

	saved, err := storage.LoadSettings(settingsPath)
	// A file that failed to parse is left for the user to fix.
	writable := err == nil
	if err != nil {
		log.Printf("settings: %v, changes will not be saved", err)
	}
	showIcon := saved.ShowIcon && !opts.noIcon
	showNotify := saved.ShowNotify && !opts.noNotify

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.IconRunning))

	var mainWindow *mainwindow.Window
	guard, err := platform.AcquireSingleInstance(appName, func() {
		fyne.Do(func() {
			if mainWindow != nil {
				mainWindow.Show()
			}
		})
	})
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: %v", err)
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	cycle, err := saved.CycleConfig()
	if err != nil {
		log.Printf("settings: %v, using defaults", err)
		cycle = model.DefaultCycleConfig()
	}
	keeper := timekeeper.New(cycle, timekeeper.Config{TickInterval: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var workers sync.WaitGroup
	if store := openHistory(service); store != nil {
		events := keeper.Subscribe(32)
		workers.Add(1)
		go func() {
			defer workers.Done()
			store.Record(context.Background(), events)
		}()
		defer store.Close()
	}

	if showNotify {
		notifier := platform.NewNotifier(appName, platform.NewAppNotifier(fyneApp))
		defer notifier.Close()
		events := keeper.Subscribe(16)
		workers.Add(1)
		go func() {
			defer workers.Done()
			notify.Dispatch(events, notifier)
		}()
	}

	quit := func() {
		keeper.Stop()
		fyneApp.Quit()
	}

	mainWindow = mainwindow.New(fyneApp, appName, saved, mainwindow.Callbacks{
		OnStart: func(updated preferences.Settings) {
			if err := startSession(keeper, updated); err != nil {
				mainWindow.ShowError(err)
				return
			}
			if err := rememberSettings(settingsPath, &saved, updated, writable); err != nil {
				log.Printf("settings: %v", err)
			}
		},
		OnPause: keeper.Pause,
		OnStop:  keeper.Stop,
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok && showIcon {
		trayManager = tray.New(desktopApp, appName, tray.Icons{
			Idle:    resources.MustIcon(resources.IconIdle),
			Running: resources.MustIcon(resources.IconRunning),
			Paused:  resources.MustIcon(resources.IconPaused),
		}, tray.Callbacks{
			OnShow: mainWindow.Show,
			OnStart: func() {
				if err := keeper.Start(); err != nil {
					mainWindow.Show()
					mainWindow.ShowError(err)
				}
			},
			OnPause: keeper.Pause,
			OnStop:  keeper.Stop,
			OnSkip:  keeper.Skip,
			OnQuit:  quit,
		})
		mainWindow.Window().SetCloseIntercept(func() {
			mainWindow.Window().Hide()
		})
	} else {
		if showIcon {
			log.Printf("system tray unsupported on this platform")
		}
		mainWindow.Window().SetCloseIntercept(quit)
	}

	renders := keeper.Subscribe(16)
	go func() {
		for event := range renders {
			if event.Type != timekeeper.EventRender {
				continue
			}
			snapshot := event.Snapshot
			fyne.Do(func() {
				mainWindow.Render(snapshot)
				if trayManager != nil {
					trayManager.Render(snapshot)
				}
			})
		}
	}()

	go keeper.Run(ctx)

	mainWindow.Show()
	fyneApp.Run()

	cancel()
	keeper.Close()
	workers.Wait()
	return nil
}

func startSession(keeper *timekeeper.TimeKeeper, settings preferences.Settings) error {
	if keeper.Snapshot().Status == timekeeper.StatusPaused {
		return keeper.Start()
	}
	config, err := settings.CycleConfig()
	if err != nil {
		return err
	}
	if err := keeper.Configure(config); err != nil {
		return err
	}
	return keeper.Start()
}

// rememberSettings copies the timer fields of updated into saved and writes
// them back unless the settings file is not writable.
func rememberSettings(path string, saved *preferences.Settings, updated preferences.Settings, writable bool) error {
	saved.Work, saved.ShortBreak, saved.LongBreak, saved.Repeat =
		updated.Work, updated.ShortBreak, updated.LongBreak, updated.Repeat
	if !writable {
		return nil
	}
	return storage.SaveSettings(path, *saved)
}

func openHistory(service platform.Service) *history.Store {
	path, err := storage.DefaultHistoryPath(service, appName)
	if err != nil {
		log.Printf("history: %v", err)
		return nil
	}
	store, err := history.Open(path)
	if err != nil {
		log.Printf("history: %v", err)
		return nil
	}
	return store
}
