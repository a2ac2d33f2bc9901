package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/qmllink/internal/version"
)

var (
	// Version information (set via ldflags during build)
	Version = version.Version
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qmllink",
		Short: "qmllink - QML/JavaScript cross-file symbol resolver",
		Long: `qmllink resolves symbol references between QML documents and the
JavaScript modules they import. It extracts function declarations and their
documentation, resolves import aliases, proposes auto-imports for typed
identifiers and plans import insertion points.`,
		Version: Version,
	}

	// Add subcommands
	rootCmd.AddCommand(importsCmd())
	rootCmd.AddCommand(functionsCmd())
	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(describeCmd())
	rootCmd.AddCommand(suggestCmd())
	rootCmd.AddCommand(insertCmd())
	rootCmd.AddCommand(refsCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Println(version.GetFullVersion())
			} else {
				fmt.Printf("qmllink version %s\n", version.GetVersion())
			}
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Show detailed version information")
	return cmd
}
