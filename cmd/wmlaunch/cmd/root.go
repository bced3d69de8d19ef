package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wpmon/wmlaunch/internal/launchctx"
	"github.com/wpmon/wmlaunch/internal/logging"
)

var (
	cfgFile      string
	dirFlag      string
	outputFormat string

	// Set by run when --exit-code is given; Execute hands it to main.
	exitCode int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wmlaunch",
	Short: "Launcher for the Workplace Monitoring System",
	Long: `wmlaunch bootstraps the Workplace Monitoring System: it resolves its own
directory, activates a colocated Python virtual environment when one
exists, runs the application entry point, and keeps the terminal open
after the application exits so crash output stays visible.`,
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return exitCode
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is wmlaunch.yaml next to the binary)")
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "script directory (default is the directory containing the binary)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "table", "output format: table or json")
}

// initConfig reads in config file and WMLAUNCH_* environment variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if lctx, err := launchctx.Resolve(dirFlag); err == nil {
		// The config lives next to the binary, like everything else the
		// launcher works with.
		viper.AddConfigPath(lctx.ScriptDir)
		viper.SetConfigName("wmlaunch")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("WMLAUNCH")
	viper.AutomaticEnv()

	def := launchctx.DefaultConfig()
	viper.SetDefault("target", def.Target)
	viper.SetDefault("env_candidates", def.EnvCandidates)
	viper.SetDefault("pause", def.Pause)
	viper.SetDefault("log_level", def.LogLevel)
	viper.SetDefault("log_file", def.LogFile)

	// A missing config file is fine; the defaults describe the standard
	// layout. A malformed one is not.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}
}

// loadConfig returns the effective configuration: flags over WMLAUNCH_*
// variables over the config file over defaults.
func loadConfig() launchctx.Config {
	cfg := launchctx.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// setup resolves the launch context and logger every command starts from.
func setup() (*launchctx.Context, launchctx.Config, *logging.Logger, error) {
	cfg := loadConfig()

	lctx, err := launchctx.Resolve(dirFlag)
	if err != nil {
		return nil, cfg, nil, err
	}
	lctx.Apply(cfg)

	level := logging.ParseLevel(cfg.LogLevel)
	log := logging.New(level)
	if cfg.LogFile != "" {
		path := cfg.LogFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(lctx.ScriptDir, path)
		}
		fileLog, err := logging.NewWithFile(level, path)
		if err != nil {
			log.Warnf("log file unavailable, logging to stderr only: %v", err)
		} else {
			log = fileLog
		}
	}

	return lctx, cfg, log, nil
}

// IsJSONOutput returns true if JSON output is requested
func IsJSONOutput() bool {
	return outputFormat == "json"
}
