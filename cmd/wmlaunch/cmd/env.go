package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/wpmon/wmlaunch/internal/pyenv"
)

// envCmd represents the env command
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show virtual environment candidates",
	Long: `Probe the configured virtual environment candidates in priority order and
show which one a launch would activate. No candidate existing is normal:
launches then use the ambient Python interpreter.`,
	RunE: runEnvStatus,
}

func init() {
	rootCmd.AddCommand(envCmd)
}

type candidateStatus struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Exists   bool   `json:"exists"`
	Selected bool   `json:"selected"`
}

type envStatus struct {
	ScriptDir   string            `json:"script_dir"`
	Candidates  []candidateStatus `json:"candidates"`
	Environment string            `json:"environment"`
	Interpreter string            `json:"interpreter,omitempty"`
}

func runEnvStatus(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	lctx, _, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Close()

	selected := pyenv.Probe(lctx.ScriptDir, lctx.EnvCandidates)

	status := envStatus{
		ScriptDir:   lctx.ScriptDir,
		Environment: selected.Describe(),
	}
	for _, name := range lctx.EnvCandidates {
		path := filepath.Join(lctx.ScriptDir, name)
		info, statErr := os.Stat(path)
		status.Candidates = append(status.Candidates, candidateStatus{
			Name:     name,
			Path:     path,
			Exists:   statErr == nil && info.IsDir(),
			Selected: selected.Active() && selected.Name == name,
		})
	}
	if interp, err := selected.Interpreter(); err == nil {
		status.Interpreter = interp
	}

	if IsJSONOutput() {
		output, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Candidate", "Path", "Exists", "Selected")
	for _, c := range status.Candidates {
		table.Append(c.Name, c.Path, yesNo(c.Exists), yesNo(c.Selected))
	}
	table.Render()

	if selected.Active() {
		fmt.Printf("Launches activate %s\n", selected.Root)
	} else {
		fmt.Println("No virtual environment present, launches use the ambient interpreter")
	}
	if status.Interpreter != "" {
		fmt.Printf("Interpreter: %s\n", status.Interpreter)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
