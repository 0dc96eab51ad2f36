package completion

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Shell represents a supported shell.
type Shell string

const (
	Bash       Shell = "bash"
	Zsh        Shell = "zsh"
	Fish       Shell = "fish"
	Powershell Shell = "powershell"
)

// DetectShell detects the user's current shell from the SHELL environment variable.
func DetectShell() (Shell, error) {
	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		if runtime.GOOS == "windows" {
			return Powershell, nil
		}
		return "", fmt.Errorf("unable to detect shell: SHELL environment variable not set")
	}

	switch filepath.Base(shellPath) {
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "fish":
		return Fish, nil
	default:
		return "", fmt.Errorf("unsupported shell: %s", filepath.Base(shellPath))
	}
}

// InstallPath returns where the completion script for the given shell lives
// under the given home directory.
func InstallPath(shell Shell, home string) (string, error) {
	switch shell {
	case Bash:
		return filepath.Join(home, ".bash_completion.d", "check-empty-files"), nil
	case Zsh:
		return filepath.Join(home, ".zsh", "completion", "_check-empty-files"), nil
	case Fish:
		return filepath.Join(home, ".config", "fish", "completions", "check-empty-files.fish"), nil
	case Powershell:
		if runtime.GOOS == "windows" {
			return filepath.Join(home, "Documents", "WindowsPowerShell", "Scripts", "check-empty-files.ps1"), nil
		}
		return "", fmt.Errorf("powershell not supported on %s", runtime.GOOS)
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}
}

// resolveShell picks the shell from an explicit flag value, falling back to
// detection when the flag is empty.
func resolveShell(shellFlag string) (Shell, error) {
	if shellFlag != "" {
		return Shell(shellFlag), nil
	}
	shell, err := DetectShell()
	if err != nil {
		return "", fmt.Errorf("failed to detect shell: %w\nSpecify shell explicitly with --shell flag", err)
	}
	return shell, nil
}
