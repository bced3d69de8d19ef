package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wpmon/wmlaunch/internal/launcher"
	"github.com/wpmon/wmlaunch/internal/pyenv"
)

var (
	noPause       bool
	propagateExit bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Launch the monitoring application",
	Long: `Run resolves the script directory, activates the first virtual
environment found among the configured candidates (venv, .venv by
default), and executes the entry point with the terminal's stdio.

After the application exits, for any reason, the launcher prints a prompt
and waits for Enter before closing. The launcher's own exit code is 0
regardless of the application's outcome; pass --exit-code to propagate the
application's code instead.

Example:
  wmlaunch run
  wmlaunch run --target main.py --no-pause
  wmlaunch run --no-pause --output json
  WMLAUNCH_TARGET=debug_network.py wmlaunch run`,
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("target", "", "entry point to run (default main.py)")
	runCmd.Flags().BoolVar(&noPause, "no-pause", false, "exit immediately instead of waiting for Enter")
	runCmd.Flags().BoolVar(&propagateExit, "exit-code", false, "exit with the application's exit code")
	viper.BindPFlag("target", runCmd.Flags().Lookup("target"))
}

func runLaunch(cmd *cobra.Command, args []string) error {
	// Failures past this point are launch failures, not usage errors.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	lctx, cfg, log, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	defer log.Close()

	// The pause is registered before anything that can fail, so the
	// terminal stays open even when the launch never got off the ground.
	if cfg.Pause && !noPause {
		defer launcher.WaitForEnter(os.Stdin, os.Stdout, launcher.DefaultPrompt)
	}

	env := pyenv.Probe(lctx.ScriptDir, lctx.EnvCandidates)
	if env.Active() {
		log.Debugf("virtual environment: %s", env.Root)
	} else {
		log.Debugf("no virtual environment among %v, using ambient interpreter", lctx.EnvCandidates)
	}

	interp, err := env.Interpreter()
	if err != nil {
		log.Errorf("%v", err)
		return err
	}
	log.Debugf("interpreter: %s", interp)

	fmt.Printf("Starting %s (environment: %s)\n", lctx.Target, env.Describe())

	res, err := launcher.Run(cmd.Context(), launcher.Spec{
		Interpreter: interp,
		Target:      lctx.Target,
		Dir:         lctx.ScriptDir,
		Env:         env.Environ(os.Environ()),
		Environment: env.Describe(),
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	})
	if err != nil {
		log.Errorf("%v", err)
		return err
	}

	log.Infof("%s", res.Summary())
	if IsJSONOutput() {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	}

	if propagateExit {
		exitCode = res.ExitCode
	}
	return nil
}
