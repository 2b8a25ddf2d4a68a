package argot

import (
	"fmt"
	"io"
	"strings"
)

type listedCommand struct {
	path string
	def  *CommandDefinition
}

// collectCommands returns every visible command below root with its full
// path, parents before children.
func collectCommands(appName string, root *TrieNode) []listedCommand {
	var out []listedCommand
	root.Walk(func(path []string, node *TrieNode) {
		if node.Command == nil || node.Command.Hidden {
			return
		}
		out = append(out, listedCommand{
			path: strings.Join(append([]string{appName}, path...), " "),
			def:  node.Command,
		})
	})
	return out
}

// PrintCommands prints all commands in a formatted list with full paths.
func PrintCommands(w io.Writer, appName string, root *TrieNode) error {
	commands := collectCommands(appName, root)
	if len(commands) == 0 {
		_, err := fmt.Fprintln(w, "No commands available.")
		return err
	}

	maxPathLen := 0
	for _, c := range commands {
		maxPathLen = max(maxPathLen, len(c.path))
	}

	var sb strings.Builder
	sb.WriteString("Available Commands:\n\n")
	for _, c := range commands {
		padding := strings.Repeat(" ", maxPathLen-len(c.path)+2)
		fmt.Fprintf(&sb, "  %s%s%s\n", c.path, padding, c.def.Short)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// PrintFlags prints the global flags followed by the flags of every command.
func PrintFlags(w io.Writer, appName string, root *TrieNode, globals map[string]FlagDefinition) error {
	var sb strings.Builder

	if len(globals) > 0 {
		sb.WriteString("Global Flags:\n\n")
		for _, name := range sortedKeys(globals) {
			writeFlagLine(&sb, "  ", name, globals[name])
		}
		sb.WriteString("\n")
	}

	hasCommandFlags := false
	for _, c := range collectCommands(appName, root) {
		defs := NormalizeFlags(c.def.Flags)
		if len(defs) == 0 {
			continue
		}
		if !hasCommandFlags {
			sb.WriteString("Command-Specific Flags:\n\n")
			hasCommandFlags = true
		}
		fmt.Fprintf(&sb, "  %s:\n", c.path)
		for _, name := range sortedKeys(defs) {
			writeFlagLine(&sb, "    ", name, defs[name])
		}
		sb.WriteString("\n")
	}

	if !hasCommandFlags && len(globals) == 0 {
		sb.WriteString("No flags available.\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeFlagLine(sb *strings.Builder, indent, name string, def FlagDefinition) {
	if def.Hidden {
		return
	}
	flagName := "--" + name
	if def.Alias != "" {
		flagName = "-" + def.Alias + ", " + flagName
	}
	typ := string(def.Type)
	if def.Array {
		typ += "[]"
	}

	var parts []string
	if def.Default != nil {
		parts = append(parts, "default: "+strings.Join(Values{name: def.Default}.Strings(name), ","))
	}
	if def.Required {
		parts = append(parts, "required")
	}
	if len(def.Env) > 0 {
		envNames := make([]string, len(def.Env))
		for i, env := range def.Env {
			envNames[i] = "$" + env
		}
		parts = append(parts, "env: "+strings.Join(envNames, ", "))
	}
	info := ""
	if len(parts) > 0 {
		info = " (" + strings.Join(parts, ", ") + ")"
	}

	fmt.Fprintf(sb, "%s%s %s%s\n", indent, flagName, typ, info)
	if def.Description != "" {
		fmt.Fprintf(sb, "%s    %s\n", indent, def.Description)
	}
}
