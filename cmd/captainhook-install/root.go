package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/captainhook-go/installer/internal/config"
	"github.com/captainhook-go/installer/internal/log"
	"github.com/captainhook-go/installer/internal/output"
	"github.com/captainhook-go/installer/internal/ui/styles"
)

var (
	// Global flags
	verbose      bool
	quiet        bool
	configPath   string
	execPath     string
	binDir       string
	gitDir       string
	forceInstall bool
	ansiOn       bool
	ansiOff      bool

	// Shared state injected into commands
	workDir string
)

// rootCmd represents the base command. Called without a subcommand it
// performs the install, which is what lifecycle scripts invoke.
var rootCmd = &cobra.Command{
	Use:   "captainhook-install",
	Short: "Install captainhook git hooks after dependency installs",
	Long: `captainhook-install bridges package manager lifecycle scripts and
captainhook. It locates the captainhook executable and configuration,
resolves the enclosing .git directory and runs 'captainhook install'
with the right arguments.

Failures that would break a dependency install are deliberately soft:
a missing executable, a missing configuration, a CI environment or a
disable switch skip the installation with a message. Only a missing
git repository and an executable that cannot be started are errors.`,
	Example: `  captainhook-install                # as composer post-install-cmd
  captainhook-install install -n     # print the install command line
  captainhook-install doctor         # check the setup`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	Args:                       cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		styles.Init(ansiEnabled())

		// The logger depends on parsed flags, so it is attached here
		// rather than in Execute.
		ctx := log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet))
		cmd.SetContext(ctx)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall(cmd.Context(), workDir, installOptions{})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	var err error
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "captainhook-install: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Load settings early; flag overrides are folded in per command.
	settings, err := config.Load(workDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		settings = config.Default()
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithSettings(ctx, settings)

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'captainhook-install -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the captainhook configuration (default captainhook.json)")
	rootCmd.PersistentFlags().StringVarP(&execPath, "exec", "e", "", "Path to the captainhook executable")
	rootCmd.PersistentFlags().StringVar(&binDir, "bin-dir", "", "Directory the executable is looked up in (default vendor/bin)")
	rootCmd.PersistentFlags().StringVarP(&gitDir, "git-dir", "g", "", "Path to the .git directory, skips discovery")
	rootCmd.PersistentFlags().BoolVarP(&forceInstall, "force-install", "f", false, "Overwrite hooks that are already installed")
	rootCmd.PersistentFlags().BoolVar(&ansiOn, "ansi", false, "Force colored output")
	rootCmd.PersistentFlags().BoolVar(&ansiOff, "no-ansi", false, "Disable colored output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.MarkFlagsMutuallyExclusive("ansi", "no-ansi")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newInitCmd())
}
