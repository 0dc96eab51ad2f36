package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/acm19/check-empty-files/completion"
	"github.com/acm19/check-empty-files/internal/checker"
	"github.com/acm19/check-empty-files/internal/logger"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "check-empty-files [FILE...]",
	Short:   "Fail if any of the given files is empty",
	Long:    `Checks that none of the given files is zero bytes, for use as a pre-commit or CI hook. The first empty file found is reported and the run fails.`,
	Version: version,
	Args:    cobra.ArbitraryArgs,
	Run:     runCheck,
}

func init() {
	rootCmd.AddCommand(completion.NewInstallCmd(rootCmd))
	rootCmd.AddCommand(completion.NewUninstallCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, args []string) {
	err := checker.Check(args)
	if err == nil {
		return
	}

	// The diagnostic goes to stdout; anything else is an environment
	// problem and is reported on stderr with a distinct exit status.
	var emptyErr *checker.EmptyFileError
	if errors.As(err, &emptyErr) {
		fmt.Println(emptyErr.Error())
		os.Exit(1)
	}

	logger.Error("Check failed", "error", err)
	os.Exit(2)
}
