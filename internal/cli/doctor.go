package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/createproject-labs/createproject/internal/answers"
	"github.com/createproject-labs/createproject/internal/config"
	"github.com/createproject-labs/createproject/internal/scaffold"
	"github.com/spf13/cobra"
)

var checkAnswers string

func init() {
	doctorCmd.Flags().StringVar(&checkAnswers, "check-answers", "", "Validate an answers file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that projects can be generated here",
	Long:  `Run diagnostic checks on the configuration, the base path, the embedded templates, and the Python toolchain.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if checkAnswers != "" {
			return runAnswersCheck(out, checkAnswers)
		}

		settings := config.Current()
		fmt.Fprintln(out, "Configuration check:")
		if _, err := os.Stat(config.FilePath()); err != nil {
			fmt.Fprintf(out, "  [INFO] no config file at %s, using defaults\n", config.FilePath())
		} else {
			fmt.Fprintf(out, "  [ OK ] config file %s\n", config.FilePath())
		}
		if v, err := scaffold.NormalizeVersion(settings.ProjectVersion); err != nil {
			fmt.Fprintf(out, "  [FAIL] project_version: %v\n", err)
		} else {
			fmt.Fprintf(out, "  [ OK ] project_version %s\n", v)
		}

		fmt.Fprintln(out, "Base path check:")
		checkBasePath(out, settings.BasePath)

		fmt.Fprintln(out, "Template check:")
		if _, err := scaffold.NewTemplateRenderer(scaffold.DefaultTemplateSet); err != nil {
			fmt.Fprintf(out, "  [FAIL] %v\n", err)
		} else {
			fmt.Fprintf(out, "  [ OK ] template set %s\n", scaffold.DefaultTemplateSet)
		}

		fmt.Fprintln(out, "Runtime check:")
		checkBinary(out, "python3")
		checkBinary(out, "pip")
		checkBinary(out, "git")
		return nil
	},
}

func checkBasePath(out io.Writer, basePath string) {
	info, err := os.Stat(basePath)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %s: %v\n", basePath, err)
		return
	}
	if !info.IsDir() {
		fmt.Fprintf(out, "  [FAIL] %s is not a directory\n", basePath)
		return
	}
	probe, err := os.CreateTemp(basePath, ".createproject-probe-*")
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %s is not writable: %v\n", basePath, err)
		return
	}
	probe.Close()
	os.Remove(probe.Name())
	fmt.Fprintf(out, "  [ OK ] %s is writable\n", basePath)
}

func checkBinary(out io.Writer, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(out, "  [ OK ] %s found at %s\n", name, path)
}

func runAnswersCheck(out io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	result, err := answers.Validate(data)
	if err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}
	if result.Valid {
		fmt.Fprintf(out, "[ OK ] %s is valid\n", path)
		return nil
	}
	fmt.Fprintf(out, "[FAIL] %s has %d issue(s):\n", path, len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(out, "  - %s\n", issue)
	}
	return &answers.InvalidError{Source: path, Issues: result.Issues}
}
