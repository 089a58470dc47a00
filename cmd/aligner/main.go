package main

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bjaus/aligner"
)

const version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:   "aligner [flags] <pattern> [file...]",
	Short: "Align delimited columns of text",
	Long: `aligner pads lines so occurrences of a delimiter pattern line up
vertically. The pattern may carry modifiers: a leading r/ switches to
regular-expression matching, and flags after a final / combine g (align
every occurrence, g2 to bound it), n (pad after the delimiter), and r
(right-align). With no files, input is read from stdin.`,
	Example: `  aligner = main.go
  aligner 'r/=+/g' config.ini
  echo 'a,1
bb,2' | aligner ,/n`,
	Args: cobra.ArbitraryArgs,
	RunE: runAlign,
}

func init() {
	rootCmd.Flags().BoolP("regex", "e", false, "treat the pattern as a regular expression")
	rootCmd.Flags().BoolP("global", "g", false, "align every occurrence per line")
	rootCmd.Flags().IntP("count", "k", 0, "with --global, align only the first N occurrences")
	rootCmd.Flags().BoolP("after", "n", false, "pad after the delimiter instead of before it")
	rootCmd.Flags().BoolP("right", "r", false, "right-align text at the column boundary")
	rootCmd.Flags().Bool("skip-unmatched", false, "leave lines without a match out of the width calculation")
	rootCmd.Flags().BoolP("write", "w", false, "rewrite files in place instead of printing to stdout")
	rootCmd.Flags().StringP("preset", "p", "", "use a named pattern from the presets file")
	rootCmd.Flags().String("presets", defaultPresetsFile, "path to the presets file")
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "aligner: %v\n", err)
		os.Exit(1)
	}
}

func runAlign(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	spec, files, err := resolveSpec(cmd, args)
	if err != nil {
		return err
	}
	if err := mergeFlags(cmd, &spec.Options); err != nil {
		return err
	}

	// Validate the expression up front so the caller sees a message
	// instead of the engine's silent pass-through.
	if spec.Options.Regex {
		if _, err := regexp.Compile(spec.Pattern); err != nil {
			return fmt.Errorf("invalid regex pattern: %v", err)
		}
	}

	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}

	if len(files) == 0 {
		if write {
			return fmt.Errorf("--write requires file arguments")
		}
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("no input: give file arguments or pipe text on stdin")
		}
		return aligner.Pipe(cmd.OutOrStdout(), os.Stdin, spec.Pattern, spec.Options)
	}

	for _, path := range files {
		if err := alignFile(cmd.OutOrStdout(), path, spec, write); err != nil {
			return err
		}
	}
	return nil
}

// resolveSpec picks the pattern spec from the --preset flag or the first
// positional argument, and returns the remaining arguments as input files.
func resolveSpec(cmd *cobra.Command, args []string) (aligner.Spec, []string, error) {
	name, err := cmd.Flags().GetString("preset")
	if err != nil {
		return aligner.Spec{}, nil, err
	}
	if name != "" {
		path, err := cmd.Flags().GetString("presets")
		if err != nil {
			return aligner.Spec{}, nil, err
		}
		raw, err := lookupPreset(path, name)
		if err != nil {
			return aligner.Spec{}, nil, err
		}
		spec, err := aligner.ParseSpec(raw)
		if err != nil {
			return aligner.Spec{}, nil, fmt.Errorf("preset %q: %w", name, err)
		}
		return spec, args, nil
	}
	if len(args) == 0 {
		return aligner.Spec{}, nil, fmt.Errorf("a pattern argument or --preset is required")
	}
	spec, err := aligner.ParseSpec(args[0])
	if err != nil {
		return aligner.Spec{}, nil, err
	}
	return spec, args[1:], nil
}

// mergeFlags folds explicit flags into opts on top of whatever the pattern
// modifiers already set.
func mergeFlags(cmd *cobra.Command, opts *aligner.Options) error {
	bools := []struct {
		name string
		dst  *bool
	}{
		{"regex", &opts.Regex},
		{"global", &opts.Global},
		{"after", &opts.AfterDelimiter},
		{"right", &opts.Right},
		{"skip-unmatched", &opts.SkipUnmatched},
	}
	for _, b := range bools {
		v, err := cmd.Flags().GetBool(b.name)
		if err != nil {
			return err
		}
		if v {
			*b.dst = true
		}
	}
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		return err
	}
	if count > 0 {
		opts.Count = count
		opts.Global = true
	}
	return nil
}

func alignFile(stdout io.Writer, path string, spec aligner.Spec, write bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out := spec.Align(string(data))
	if !write {
		_, err := io.WriteString(stdout, out)
		return err
	}
	if out == string(data) {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(out), info.Mode().Perm())
}
