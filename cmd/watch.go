package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchCmd = &cobra.Command{
	Use:   "watch [files...]",
	Short: "Re-expand files whenever they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide files to watch")
			os.Exit(1)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			logger.Fatal("Failed to create watcher", zap.Error(err))
		}
		defer watcher.Close()

		for _, path := range args {
			if err := watcher.Add(path); err != nil {
				logger.Fatal("Failed to watch file", zap.String("path", path), zap.Error(err))
			}
			_ = expandOne(path)
		}

		watchLoop(watcher)
	},
}

func init() {
	watchCmd.Flags().StringVarP(&macroName, "macro", "m", "idents", "macro to expand (idents, match_lit)")
}

func watchLoop(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				// wait for a while after file change to consider multiple changes as one
				time.Sleep(100 * time.Millisecond)
				if err := expandOne(event.Name); err != nil {
					logger.Warn("Expansion failed", zap.String("path", event.Name), zap.Error(err))
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Error("Watcher error", zap.Error(err))
		}
	}
}
