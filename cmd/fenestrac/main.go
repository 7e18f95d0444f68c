// Command fenestrac is the source transformer's CLI entrypoint (spec
// §4.G/§6): it lowers .ui/.uix dialect files into plain Go that imports
// only from the fenestra runtime namespace.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┌─┐┌┐┌┌─┐┌─┐┌┬┐┬─┐┌─┐┌─┐
  ├┤ ├┤ │││├┤ └─┐ │ ├┬┘├─┤│
  └  └─┘┘└┘└─┘└─┘ ┴ ┴└─┴ ┴└─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "fenestrac",
		Short: "Transform fenestra component dialect files into Go",
		Long: `fenestrac lowers the fenestra component dialect (.ui/.uix files) into
plain Go source that imports only from the fenestra runtime namespace.

  • component/state/reactive/computed/lifecycle blocks → a Go struct
    embedding fenestra.BaseComponent
  • lifecycle and capability decorators → //fenestra:name pragma comments
  • shape declarations stripped before formatting (editor-only, no
    runtime representation)

Every diagnostic-producing input is reported with an error code and
source location; fenestrac never silently succeeds on one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(buildCmd(), versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}
