package cmd

import (
	"fmt"
	"os"

	"github.com/termfolio/folio/internal/config"
	"github.com/termfolio/folio/internal/logging"
	"github.com/termfolio/folio/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Version information - set via ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var settings *config.Settings

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "folio",
	Short:   "A portfolio you can read in your terminal",
	Long:    `Folio renders a personal portfolio as a scrollable terminal page: projects, skills and stats, with a light/dark theme that sticks between visits.`,
	Version: Version,
	Args:    cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		settings, err = config.LoadSettings()
		if err != nil {
			// Corrupt or unreadable settings never stop startup.
			logging.Warnf("settings unreadable, using defaults: %v", err)
			settings = config.DefaultSettings()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.EnsureDirs(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not create config directories: %v\n", err)
			os.Exit(1)
		}
		logging.Configure(config.GetLogsDir())

		isMaster, err := acquireLock()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error acquiring lock: %v\n", err)
			os.Exit(1)
		}
		if !isMaster {
			fmt.Fprintln(os.Stderr, "Error: folio is already running.")
			os.Exit(1)
		}
		defer func() {
			if err := releaseLock(); err != nil {
				logging.Debugf("error releasing lock: %v", err)
			}
		}()

		dataPath, _ := cmd.Flags().GetString("data")

		m := tui.NewModel(settings, dataPath)
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running folio: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringP("data", "d", "data/projects.json", "Path or http(s) URL of the project dataset")
	rootCmd.SetVersionTemplate(fmt.Sprintf("folio %s (built %s)\n", Version, BuildTime))
}
