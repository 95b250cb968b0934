// Package cli wires renamr's cobra command tree.
package cli

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/renamr/internal/version"
	"github.com/arthur-debert/renamr/pkg/cobrax/topics"
	"github.com/arthur-debert/renamr/pkg/config"
	"github.com/arthur-debert/renamr/pkg/executor"
	"github.com/arthur-debert/renamr/pkg/logging"
	"github.com/arthur-debert/renamr/pkg/paths"
	"github.com/arthur-debert/renamr/pkg/renamer"
	"github.com/arthur-debert/renamr/pkg/rules"
	"github.com/arthur-debert/renamr/pkg/scanner"
	"github.com/arthur-debert/renamr/pkg/style"
	"github.com/arthur-debert/renamr/pkg/types"
	"github.com/arthur-debert/renamr/pkg/ui"
)

//go:embed help/*.md
var helpFiles embed.FS

// ruleFlags are the one-off rule options shared by plan and apply.
type ruleFlags struct {
	remove     []string
	position   string
	ignoreCase bool
	wholeName  bool
}

func (f *ruleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.remove, "remove", nil, "Text to remove (repeatable; appended after configured rules)")
	cmd.Flags().StringVar(&f.position, "position", "all", "Which occurrence to remove: all, first or last")
	cmd.Flags().BoolVar(&f.ignoreCase, "ignore-case", false, "Match ignoring letter case")
	cmd.Flags().BoolVar(&f.wholeName, "whole-name", false, "Match against the whole name including the extension")
}

// scanFlags override the scan section of the loaded configuration.
type scanFlags struct {
	recursive  bool
	hidden     bool
	extensions []string
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.recursive, "recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().BoolVar(&f.hidden, "hidden", false, "Include hidden files")
	cmd.Flags().StringSliceVar(&f.extensions, "ext", nil, "Only scan files with these extensions")
}

func (f *scanFlags) apply(cfg *config.ScanConfig) {
	if f.recursive {
		cfg.Recursive = true
	}
	if f.hidden {
		cfg.IncludeHidden = true
	}
	if len(f.extensions) > 0 {
		cfg.Extensions = f.extensions
	}
}

func (f *ruleFlags) ruleSet() (rules.RuleSet, error) {
	if len(f.remove) == 0 {
		return nil, nil
	}
	pos, err := rules.ParsePosition(f.position)
	if err != nil {
		return nil, err
	}
	set := make(rules.RuleSet, 0, len(f.remove))
	for _, text := range f.remove {
		set = append(set, rules.RemoveRule{
			Text:            text,
			Position:        pos,
			CaseSensitive:   !f.ignoreCase,
			IgnoreExtension: !f.wholeName,
		})
	}
	return set, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		formatName string
	)

	rootCmd := &cobra.Command{
		Use:   "renamr",
		Short: "Batch file renaming with removal rules",
		Long: `renamr renames batches of files by applying an ordered list of
removal rules to each file name. Rules delete occurrences of a target
text, optionally ignoring case and protecting the file extension.

Run "renamr help syntax" for the rule syntax.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&formatName, "format", "auto", "Output format: auto, term, text or json")

	rootCmd.AddCommand(newPlanCmd(&formatName))
	rootCmd.AddCommand(newApplyCmd(&formatName))
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	attachHelpTopics(rootCmd)

	return rootCmd
}

// attachHelpTopics wires the embedded help topics into the help command.
func attachHelpTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(helpFiles, "help")
	if err != nil {
		return
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if ui.DetectFormat(os.Stdout) == ui.FormatTerminal {
		renderer = &topics.GlamourRenderer{}
	}

	if tm, err := topics.Load(sub, renderer); err == nil {
		tm.Attach(rootCmd)
	}
}

// resolveFormat turns the --format flag into a concrete format.
func resolveFormat(formatName string) (ui.Format, error) {
	f, err := ui.ParseFormat(formatName)
	if err != nil {
		return ui.FormatText, err
	}
	return ui.Resolve(f, os.Stdout), nil
}

// buildPlan loads configuration for dir, merges one-off rules, scans and
// plans. The returned operations are in scan order.
func buildPlan(dir string, flags *ruleFlags, scan *scanFlags) ([]types.Operation, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	set, err := cfg.ToRuleSet()
	if err != nil {
		return nil, err
	}
	flagSet, err := flags.ruleSet()
	if err != nil {
		return nil, err
	}
	set = append(set, flagSet...)
	scan.apply(&cfg.Scan)

	files, err := scanner.New(types.NewOSFileSystem(), cfg.Scan).Scan(dir)
	if err != nil {
		return nil, err
	}

	return renamer.NewPlanner(set).Plan(files), nil
}

func targetDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func newPlanCmd(formatName *string) *cobra.Command {
	flags := &ruleFlags{}
	scan := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "plan [dir]",
		Short: "Preview the renames the configured rules would perform",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(*formatName)
			if err != nil {
				return err
			}

			ops, err := buildPlan(targetDir(args), flags, scan)
			if err != nil {
				return err
			}

			if format == ui.FormatJSON {
				data, err := json.MarshalIndent(ops, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(data))
				return nil
			}

			cmd.Print(style.NewRenderer(format).RenderPlan(ops))
			return nil
		},
	}

	flags.register(cmd)
	scan.register(cmd)
	return cmd
}

func newApplyCmd(formatName *string) *cobra.Command {
	flags := &ruleFlags{}
	scan := &scanFlags{}
	var (
		dryRun   bool
		copyMode bool
	)

	cmd := &cobra.Command{
		Use:   "apply [dir]",
		Short: "Apply the configured rules, renaming files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(*formatName)
			if err != nil {
				return err
			}

			ops, err := buildPlan(targetDir(args), flags, scan)
			if err != nil {
				return err
			}
			renderer := style.NewRenderer(format)

			if copyMode {
				if err := executor.NewCopyExecutor(dryRun).Execute(ops); err != nil {
					return err
				}
				cmd.Print(renderer.RenderPlan(ops))
				return nil
			}

			result := executor.New(types.NewOSFileSystem(), dryRun).Execute(ops)
			if dryRun {
				cmd.Print(renderer.RenderPlan(result))
				return nil
			}

			if format == ui.FormatJSON {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(data))
				return nil
			}

			cmd.Print(renderer.RenderResult(result))
			return nil
		},
	}

	flags.register(cmd)
	scan.register(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without executing them")
	cmd.Flags().BoolVar(&copyMode, "copy", false, "Copy files to their new names instead of renaming")
	return cmd
}

func newRulesCmd() *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "rules [dir]",
		Short: "Show the effective rule configuration for a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(targetDir(args))
			if err != nil {
				return err
			}

			// Validate before printing so broken rule files fail loudly here
			// rather than at apply time.
			if _, err := cfg.ToRuleSet(); err != nil {
				return err
			}

			var data []byte
			switch formatName {
			case "toml":
				data, err = cfg.EncodeTOML()
			case "yaml":
				data, err = cfg.EncodeYAML()
			case "json":
				data, err = cfg.EncodeJSON()
			default:
				return fmt.Errorf("unknown format: %s (want toml, yaml or json)", formatName)
			}
			if err != nil {
				return err
			}

			cmd.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "toml", "Export format: toml, yaml or json")
	return cmd
}

func newInitCmd() *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter rule file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := paths.DirConfigFile(targetDir(args))
			if global {
				path = paths.New().GlobalConfigFile()
			}

			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}

			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(config.GetDefaultConfigContent()), 0644); err != nil {
				return err
			}

			cmd.Printf("Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Write the global config instead of a per-directory one")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("renamr version %s\n", version.Version)
			if version.Commit != "" {
				cmd.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				cmd.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}
