package completion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// NewUninstallCmd creates the uninstall-autocomplete command.
func NewUninstallCmd() *cobra.Command {
	var shellFlag string

	cmd := &cobra.Command{
		Use:   "uninstall-autocomplete",
		Short: "Uninstall shell completion for check-empty-files",
		Long:  `Uninstall the shell completion script for the check-empty-files CLI.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get home directory: %w", err)
			}
			return runUninstall(shellFlag, home)
		},
	}

	cmd.Flags().StringVarP(&shellFlag, "shell", "s", "", "Shell to uninstall completion from (bash, zsh, fish, powershell). Auto-detected if not specified.")

	return cmd
}

func runUninstall(shellFlag string, home string) error {
	shell, err := resolveShell(shellFlag)
	if err != nil {
		return err
	}

	installPath, err := InstallPath(shell, home)
	if err != nil {
		return err
	}

	if _, err := os.Stat(installPath); os.IsNotExist(err) {
		return fmt.Errorf("completion not installed for %s (expected at %s)", shell, installPath)
	}

	if shell == Bash {
		bashCompletionFile := filepath.Join(home, ".bash_completion")
		if err := disableBashAutoLoad(bashCompletionFile, installPath); err != nil {
			// Non-fatal: warn but continue
			fmt.Printf("Warning: could not disable auto-load: %v\n", err)
		}
	}

	if err := os.Remove(installPath); err != nil {
		return fmt.Errorf("failed to remove completion file: %w", err)
	}

	fmt.Printf("Shell completion uninstalled successfully for %s\n", shell)
	fmt.Printf("Removed: %s\n", installPath)
	fmt.Println("\nRestart your shell to complete removal.")

	return nil
}

// disableBashAutoLoad removes the source line for the completion script from
// the bash completion file. bashCompletionFile is injected for testability
// (production: ~/.bash_completion).
func disableBashAutoLoad(bashCompletionFile, installPath string) error {
	content, err := os.ReadFile(bashCompletionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Nothing to remove
		}
		return err
	}

	var kept []string
	for _, line := range strings.Split(string(content), "\n") {
		if !strings.Contains(line, installPath) {
			kept = append(kept, line)
		}
	}

	return os.WriteFile(bashCompletionFile, []byte(strings.Join(kept, "\n")), 0644)
}
