package cli

import (
	"fmt"
	"io"
	"strings"
)

// Shells lists the shells GenerateCompletion supports.
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// Values offered for the enumerated flags.
var (
	completionModes     = []string{"grid", "list", "json", "count"}
	completionLogLevels = []string{"debug", "info", "warn", "error", "disabled"}
	completionTimeouts  = []string{"1s", "10s", "1m", "5m"}
)

// GenerateCompletion writes a shell completion script for the spiral
// command.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish", "powershell" or "ps").
//   - walkers: The registered walker names offered for -metric.
//
// Returns:
//   - error: An error if the shell is not supported or the write fails.
func GenerateCompletion(out io.Writer, shell string, walkers []string) error {
	metrics := append(append([]string(nil), walkers...), "all")
	switch shell {
	case "bash":
		return generateBashCompletion(out, metrics)
	case "zsh":
		return generateZshCompletion(out, metrics)
	case "fish":
		return generateFishCompletion(out, metrics)
	case "powershell", "ps":
		return generatePowerShellCompletion(out, metrics)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: %s)", shell, strings.Join(Shells, ", "))
	}
}

func generateBashCompletion(out io.Writer, metrics []string) error {
	_, err := fmt.Fprintf(out, `# Bash completion script for spiral
# Add this to your ~/.bashrc or ~/.bash_completion

_spiral_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="-h -help -version -V -metric -x -y -max -mode -limit -timeout -no-color -quiet -q -log-level -completion"

    case "${prev}" in
        -metric)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return 0
            ;;
        -mode)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return 0
            ;;
        -log-level)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return 0
            ;;
        -timeout)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return 0
            ;;
        -completion)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return 0
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
    fi
}

complete -F _spiral_completions spiral
`, strings.Join(metrics, " "), strings.Join(completionModes, " "), strings.Join(completionLogLevels, " "),
		strings.Join(completionTimeouts, " "), strings.Join(Shells, " "))
	return err
}

func generateZshCompletion(out io.Writer, metrics []string) error {
	_, err := fmt.Fprintf(out, `#compdef spiral

# Zsh completion script for spiral
# Place this file in $fpath as _spiral

_spiral() {
    _arguments -s \
        '(-h -help)'{-h,-help}'[Show help message]' \
        '(-V -version)'{-V,-version}'[Show version information]' \
        '-metric[Walker to run]:walker:(%s)' \
        '-x[X coordinate of the center]:x:' \
        '-y[Y coordinate of the center]:y:' \
        '-max[Number of rings, center included]:rings:' \
        '-mode[Output mode]:mode:(%s)' \
        '-limit[Maximum number of points per walker]:points:' \
        '-timeout[Maximum execution time]:duration:(%s)' \
        '-no-color[Disable colored output]' \
        '(-q -quiet)'{-q,-quiet}'[Quiet mode for scripts]' \
        '-log-level[Diagnostic log level]:level:(%s)' \
        '-completion[Generate completion script]:shell:(%s)'
}

_spiral "$@"
`, strings.Join(metrics, " "), strings.Join(completionModes, " "), strings.Join(completionTimeouts, " "),
		strings.Join(completionLogLevels, " "), strings.Join(Shells, " "))
	return err
}

func generateFishCompletion(out io.Writer, metrics []string) error {
	_, err := fmt.Fprintf(out, `# Fish completion script for spiral
# Add this to ~/.config/fish/completions/spiral.fish

complete -c spiral -f

complete -c spiral -o h -o help -d 'Show help message'
complete -c spiral -o V -o version -d 'Show version information'
complete -c spiral -o metric -d 'Walker to run' -xa '%s'
complete -c spiral -o x -d 'X coordinate of the center' -x
complete -c spiral -o y -d 'Y coordinate of the center' -x
complete -c spiral -o max -d 'Number of rings, center included' -x
complete -c spiral -o mode -d 'Output mode' -xa '%s'
complete -c spiral -o limit -d 'Maximum number of points per walker' -x
complete -c spiral -o timeout -d 'Maximum execution time' -xa '%s'
complete -c spiral -o no-color -d 'Disable colored output'
complete -c spiral -o q -o quiet -d 'Quiet mode for scripts'
complete -c spiral -o log-level -d 'Diagnostic log level' -xa '%s'
complete -c spiral -o completion -d 'Generate completion script' -xa '%s'
`, strings.Join(metrics, " "), strings.Join(completionModes, " "), strings.Join(completionTimeouts, " "),
		strings.Join(completionLogLevels, " "), strings.Join(Shells, " "))
	return err
}

func generatePowerShellCompletion(out io.Writer, metrics []string) error {
	quote := func(values []string) string {
		quoted := make([]string, len(values))
		for i, v := range values {
			quoted[i] = "'" + v + "'"
		}
		return strings.Join(quoted, ", ")
	}

	_, err := fmt.Fprintf(out, `# PowerShell completion script for spiral
# Add this to your $PROFILE

Register-ArgumentCompleter -CommandName 'spiral' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $values = @{
        '-metric'     = @(%s)
        '-mode'       = @(%s)
        '-timeout'    = @(%s)
        '-log-level'  = @(%s)
        '-completion' = @(%s)
    }
    $options = @('-h', '-help', '-V', '-version', '-metric', '-x', '-y', '-max', '-mode', '-limit',
        '-timeout', '-no-color', '-q', '-quiet', '-log-level', '-completion')

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    $candidates = if ($values.ContainsKey($prevElement)) { $values[$prevElement] } else { $options }
    $kind = if ($values.ContainsKey($prevElement)) { 'ParameterValue' } else { 'ParameterName' }
    $candidates | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_, $_, $kind, $_)
    }
}
`, quote(metrics), quote(completionModes), quote(completionTimeouts), quote(completionLogLevels), quote(Shells))
	return err
}
