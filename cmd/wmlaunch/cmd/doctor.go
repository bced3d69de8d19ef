package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wpmon/wmlaunch/internal/pyenv"
)

// The monitor loads a detection model into RAM; below this the app tends
// to get OOM-killed mid-launch.
const minAvailableRAM = 2 << 30

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that a launch would succeed",
	Long: `Doctor runs the preflight checks a launch depends on: the script
directory, the entry point, the Python interpreter, the virtual
environment, and host capacity for the vision workload. It exits non-zero
when a launch would fail outright.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

type checkResult struct {
	Name   string `json:"name"`
	Status string `json:"status"` // ok, warn, fail
	Detail string `json:"detail"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	lctx, _, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Close()

	var checks []checkResult
	add := func(name, status, detail string) {
		checks = append(checks, checkResult{Name: name, Status: status, Detail: detail})
	}

	add("script directory", "ok", lctx.ScriptDir)

	if used := viper.ConfigFileUsed(); used != "" {
		add("config file", "ok", used)
	} else {
		add("config file", "warn", "none found, using built-in defaults")
	}

	env := pyenv.Probe(lctx.ScriptDir, lctx.EnvCandidates)
	if env.Active() {
		add("virtual environment", "ok", env.Root)
	} else {
		add("virtual environment", "warn", fmt.Sprintf("none of %v present, ambient interpreter will be used", lctx.EnvCandidates))
	}

	if interp, err := env.Interpreter(); err != nil {
		add("interpreter", "fail", err.Error())
	} else {
		add("interpreter", "ok", interp)
	}

	if lctx.TargetExists() {
		add("target", "ok", lctx.TargetPath())
	} else {
		add("target", "fail", lctx.TargetPath()+" is missing")
	}

	checkHardware(add)

	if IsJSONOutput() {
		output, err := json.MarshalIndent(checks, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
	} else {
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Check", "Status", "Detail")
		for _, c := range checks {
			table.Append(c.Name, c.Status, c.Detail)
		}
		table.Render()
	}

	failed := 0
	for _, c := range checks {
		if c.Status == "fail" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}

// checkHardware reports host capacity. Best effort: gopsutil failures
// downgrade to warnings, they never fail the preflight.
func checkHardware(add func(name, status, detail string)) {
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		threads, _ := cpu.Counts(true)
		add("cpu", "ok", fmt.Sprintf("%s (%d threads)", infos[0].ModelName, threads))
	} else {
		add("cpu", "warn", "could not detect CPU")
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		add("memory", "warn", "could not detect memory")
		return
	}
	detail := fmt.Sprintf("%.1f GB available of %.1f GB", gb(vm.Available), gb(vm.Total))
	if vm.Available < minAvailableRAM {
		add("memory", "warn", detail+" (the detection model may not fit)")
	} else {
		add("memory", "ok", detail)
	}
}

func gb(b uint64) float64 {
	return float64(b) / (1 << 30)
}
