package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"simgit.dev/simgit/internal/runtime"
)

// newShellCmd creates the shell command: an interactive loop that feeds
// lines through the same command tree. Because repository state is held in
// memory, the shell is the primary way to use simgit.
func newShellCmd(ctx *runtime.Context, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return RunShell(ctx, version, os.Stdin)
		},
	}
}

// RunShell reads commands from in until EOF or "exit". Each line is split
// with shell quoting rules and dispatched through a fresh command tree so
// flag state never leaks between lines.
func RunShell(ctx *runtime.Context, version string, in *os.File) error {
	ctx.Splog.Info("simgit %s interactive session", version)
	ctx.Splog.Info("Type 'help' for the command list, 'exit' to quit")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Print("simgit> ")
		if !scanner.Scan() {
			ctx.Splog.Newline()
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			break
		}

		words, err := shellquote.Split(line)
		if err != nil {
			ctx.Splog.Error("Error: %v", err)
			continue
		}

		root := NewRootCmd(ctx, version)
		root.SetArgs(words)
		if err := root.Execute(); err != nil {
			ctx.Splog.Debug("command failed: %v", err)
		}
	}
	return scanner.Err()
}
