package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fenestra-dev/fenestra/internal/diag"
	"github.com/fenestra-dev/fenestra/internal/transform"
)

func buildCmd() *cobra.Command {
	var (
		stdout bool
		json   bool
	)

	cmd := &cobra.Command{
		Use:   "build <dir>",
		Short: "Transform every .ui/.uix file under dir into Go",
		Long: `Walks dir for .ui and .uix dialect files and transforms each one into
plain Go source, written alongside the input with a .go extension.

Examples:
  fenestrac build ./components
  fenestrac build ./components --stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args[0], stdout, json)
		},
	}

	cmd.Flags().BoolVar(&stdout, "stdout", false, "Write transformed output to stdout instead of .go files")
	cmd.Flags().BoolVar(&json, "json", false, "Emit diagnostics as single-line JSON instead of formatted text")

	return cmd
}

func runBuild(dir string, toStdout, asJSON bool) error {
	files, err := dialectFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		info("no .ui/.uix files found under %s", dir)
		return nil
	}

	var failed int
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		res := transform.File(string(src), path)
		if !res.OK() {
			failed++
			for _, d := range res.Diags {
				if asJSON {
					fmt.Println(d.FormatJSON())
				} else {
					diag.Print(d)
				}
			}
			continue
		}

		if toStdout {
			fmt.Printf("// --- %s ---\n%s\n", path, res.Output)
			continue
		}

		outPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".go"
		if err := os.WriteFile(outPath, res.Output, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		success("%s -> %s", path, outPath)
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) failed to transform", failed)
	}
	return nil
}

// dialectFiles returns every .ui/.uix file under dir, sorted by walk
// order, or a single-element slice if dir itself names a dialect file.
func dialectFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if isDialectFile(dir) {
			return []string{dir}, nil
		}
		return nil, fmt.Errorf("%s is not a .ui/.uix file", dir)
	}

	var files []string
	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isDialectFile(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func isDialectFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".ui" || ext == ".uix"
}
