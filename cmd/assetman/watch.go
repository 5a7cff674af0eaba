// Watch command: reload bundles when their sources change on disk.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounce coalesces bursts of filesystem events into one reload.
const watchDebounce = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload bundles whenever their sources change",
	Long: `Watch the configured bundle sources and trigger a full bundle reload
whenever files change. The manager is driven from a single loop, so the
single-threaded resolution contract holds. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildManager()
		if err != nil {
			return err
		}
		defer m.Close()

		roots, err := bundleRoots()
		if err != nil {
			return err
		}
		if len(roots) == 0 {
			return fmt.Errorf("nothing to watch: no bundle sources configured")
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create file watcher: %w", err)
		}
		defer watcher.Close()

		for _, root := range roots {
			if err := watcher.Add(root); err != nil {
				return fmt.Errorf("watch %s: %w", root, err)
			}
		}

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		debounce := time.NewTimer(watchDebounce)
		if !debounce.Stop() {
			<-debounce.C
		}

		fmt.Fprintf(os.Stderr, "watching %d bundle source(s)\n", len(roots))
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				debounce.Reset(watchDebounce)

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				fmt.Fprintf(os.Stderr, "watch error: %v\n", err)

			case <-debounce.C:
				report := m.ReloadBundles()
				if report.OK() {
					fmt.Fprintf(os.Stderr, "reloaded %d bundle(s)\n", report.Attempted)
				} else {
					fmt.Fprintf(os.Stderr, "reloaded %d bundle(s), %d failed\n",
						report.Attempted, len(report.Failures))
					for _, failure := range report.Failures {
						fmt.Fprintf(os.Stderr, "  %v\n", failure)
					}
				}

			case <-stop:
				return nil
			}
		}
	},
}
