package cli

import (
	"fmt"
	"io"

	"github.com/createproject-labs/createproject/internal/answers"
	"github.com/createproject-labs/createproject/internal/config"
	"github.com/createproject-labs/createproject/internal/prompt"
	"github.com/createproject-labs/createproject/internal/scaffold"
	"github.com/createproject-labs/createproject/internal/wizard"
	"github.com/spf13/cobra"
)

// Flags shared by the root command and "new".
var (
	newBasePath    string
	newAnswersFile string
	newSaveAnswers string
	newNoColor     bool
)

func init() {
	addNewFlags(newCmd)
	rootCmd.AddCommand(newCmd)
}

func addNewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&newBasePath, "base-path", "", "Directory the project is created in (default: base_path setting)")
	cmd.Flags().StringVar(&newAnswersFile, "answers", "", "Read answers from a YAML file instead of prompting")
	cmd.Flags().StringVar(&newSaveAnswers, "save-answers", "", "Write the collected answers to a YAML file")
	cmd.Flags().BoolVar(&newNoColor, "no-color", false, "Disable colored output")
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new Python project",
	Long: `Ask for the project name, main package, author, email, description and whether
the package ships templates, then generate the project skeleton.

Examples:
  createproject new
  createproject new --base-path ~/code
  createproject new --answers answers.yaml`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	settings := config.Current()

	basePath := newBasePath
	if basePath == "" {
		basePath = settings.BasePath
	}

	rec, err := collectAnswers(cmd, basePath, settings)
	if err != nil {
		return err
	}

	if newSaveAnswers != "" {
		if err := answers.Save(newSaveAnswers, rec); err != nil {
			return err
		}
	}

	result, err := scaffold.Generate(basePath, rec, scaffold.Options{
		Version:        settings.ProjectVersion,
		PythonRequires: settings.PythonRequires,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), result)

	fmt.Fprintln(cmd.OutOrStdout(), "\nNext steps:")
	fmt.Fprintf(cmd.OutOrStdout(), "  1. cd %s\n", result.OutputDir)
	fmt.Fprintf(cmd.OutOrStdout(), "  2. Add your code under src/%s/\n", rec.MainPackage)
	fmt.Fprintln(cmd.OutOrStdout(), "  3. Run 'pip install -e .' to install it in development mode")
	return nil
}

// collectAnswers returns the record from --answers or from the interactive wizard.
func collectAnswers(cmd *cobra.Command, basePath string, settings config.Settings) (*answers.Record, error) {
	if newAnswersFile != "" {
		rec, err := answers.Load(newAnswersFile)
		if err != nil {
			return nil, err
		}
		// Nobody to re-prompt, so a collision is final.
		if err := wizard.CheckAvailable(basePath, rec.ProjectName); err != nil {
			return nil, err
		}
		return rec, nil
	}

	term := prompt.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout(),
		prompt.WithColor(!(newNoColor || settings.NoColor)),
		prompt.WithSpinner(settings.Spinner),
	)
	engine := prompt.NewEngine(term, logger)
	return wizard.New(engine, logger).Aggregate(basePath)
}

func printResult(w io.Writer, result *scaffold.Result) {
	fmt.Fprintf(w, "Created project at %s/\n", result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
}
