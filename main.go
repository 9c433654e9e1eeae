package main

import (
	"log/slog"
	"os"

	"github.com/iburimskiy/network-backdrop/cmd"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
