package cmd

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/jartos/core"
	"github.com/josephlewis42/jartos/core/config"
	"github.com/josephlewis42/jartos/core/vos"
	"github.com/spf13/cobra"
)

var playground bool

// shellCmd runs an interactive session on the current terminal.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Log in and run the interactive shell.",
	Args:  cobra.ExactArgs(0),
	RunE:  runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	shellLogger := log.New(cmd.ErrOrStderr(), "[shell] ", 0)

	var cfg *config.Configuration
	if playground {
		dir, err := os.MkdirTemp("", "jartos-playground")
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)

		if err := config.Initialize(dir, shellLogger); err != nil {
			return err
		}

		cfg, err = config.Load(dir)
		if err != nil {
			return err
		}
	} else {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}
	}

	logFd, err := cfg.OpenAppLog()
	if err != nil {
		return err
	}
	defer logFd.Close()

	system, err := core.NewSystem(cfg, logFd)
	if err != nil {
		return err
	}

	shellLogger.Printf("Volumes: %s\n", strings.Join(system.Volumes().Labels(), ", "))
	shellLogger.Printf("Logging to: file://%s\n", cfg.Dir())
	shellLogger.Printf("See logs with: tail -f %s\n", filepath.Join(cfg.Dir(), config.AppLogName))
	shellLogger.Println(strings.Repeat("=", 80))

	vio := vos.NewVIOAdapter(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err := system.HandleSession(vio, readline.DefaultIsTerminal()); err != nil {
		return err
	}

	select {
	case <-system.Done():
		shellLogger.Println("System shut down.")
	default:
	}
	return nil
}

func init() {
	rootCmd.AddCommand(shellCmd)

	for _, cmd := range []*cobra.Command{rootCmd, shellCmd} {
		cmd.Flags().BoolVar(&playground, "playground", false, "Run against a throwaway config directory.")
	}
}
