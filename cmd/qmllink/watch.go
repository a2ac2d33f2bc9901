package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/qmllink/service"
)

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Watch script files and report cache invalidations",
		Long: `Watch a directory tree for script file changes, invalidating the
session's function cache on every observed write. Intended for keeping a
long-lived editor session's cache consistent.

Examples:
  qmllink watch
  qmllink watch src/`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWatch,
	}

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	cache := service.NewFunctionCache()
	watcher, err := service.NewScriptWatcher(cache)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	watcher.SetInvalidateCallback(func(path string) {
		fmt.Printf("invalidated: %s\n", path)
	})

	if err := watcher.Watch(root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}
	watcher.Start()

	fmt.Printf("Watching %s for script changes (Ctrl+C to stop)\n", root)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	<-signals

	return watcher.Stop()
}
