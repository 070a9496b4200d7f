package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lbryio/unorm/config"
	"github.com/lbryio/unorm/internal/log"
)

var (
	cfg        = config.DefaultConfig
	configFile string
	dataDir    string
	debugLevel string
	logToFile  bool
)

var rootCmd = &cobra.Command{
	Use:          "unorm",
	Short:        "Unicode Normalization Command Line Interface",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {

		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("datadir") {
			cfg.DataDir = dataDir
		}
		if cmd.Flags().Changed("debuglevel") {
			cfg.DebugLevel = debugLevel
		}

		if logToFile {
			if err := log.InitLogRotator(cfg.LogFile()); err != nil {
				return err
			}
		}
		log.SetLogLevels(cfg.DebugLevel)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "datadir", cfg.DataDir, "Directory to store data")
	rootCmd.PersistentFlags().StringVar(&debugLevel, "debuglevel", cfg.DebugLevel, "Logging level for all subsystems")
	rootCmd.PersistentFlags().BoolVar(&logToFile, "logfile", false, "Also write logs to a rotated file in the log directory")
}

func Execute() {
	os.Exit(execute())
}

// execute runs the root command and returns the process exit code.  The log
// rotator is closed on every path, including commands that fail.
func execute() int {
	defer closeLogRotator()

	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func closeLogRotator() {
	if log.LogRotator != nil {
		log.LogRotator.Close()
		log.LogRotator = nil
	}
}
