package main

import (
	"fmt"
	"os"

	"simgit.dev/simgit/internal/cli"
	"simgit.dev/simgit/internal/config"
	"simgit.dev/simgit/internal/runtime"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	configPath := os.Getenv("SIMGIT_CONFIG")
	if configPath == "" {
		configPath = config.DefaultFileName
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := runtime.NewContext(cfg)
	defer ctx.Splog.Close()

	// Repository state is in-memory, so a bare invocation opens the shell.
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"shell"}
	}

	rootCmd := cli.NewRootCmd(ctx, version)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
