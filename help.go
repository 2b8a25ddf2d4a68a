package argot

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"text/template"

	"github.com/mitchellh/go-wordwrap"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const (
	headerColor = "#337CA0"
	optionColor = "#04A777"
	errorColor  = "#D64933"
)

const helpTemplateRaw = `{{prettyHeader "Usage"}}
  {{.Usage}}
{{with .Short}}
{{wrapTTY .}}
{{end}}{{with .Long}}
{{wrapTTY .}}
{{end}}{{with .Aliases}}
{{prettyHeader "Aliases"}}
  {{joinStrings .}}
{{end}}{{if .Args}}
{{prettyHeader "Arguments"}}
{{range .Args}}  {{keyword .Name}}	{{.Type}}	{{.Description}}
{{end}}{{end}}{{if .Subcommands}}
{{prettyHeader "Commands"}}
{{range .Subcommands}}  {{keyword .Name}}	{{.Short}}
{{end}}{{end}}{{with .FlagUsages}}
{{prettyHeader "Flags"}}
{{.}}{{end}}{{with .GlobalUsages}}
{{prettyHeader "Global Flags"}}
{{.}}{{end}}`

// HelpTopic is what a help page is rendered for.
type HelpTopic struct {
	AppName string
	// Short describes the application when Command is nil.
	Short string
	// Path is the canonical path of the command.
	Path []string
	// Command is nil for the application's own page.
	Command *CommandDefinition
	// Node lists the subcommands.
	Node        *TrieNode
	GlobalFlags map[string]FlagDefinition
}

// HelpFunc renders a help page.
type HelpFunc func(w io.Writer, topic HelpTopic) error

type helpArg struct {
	Name, Type, Description string
}

type helpCommand struct {
	Name, Short string
}

type helpData struct {
	Usage        string
	Short, Long  string
	Aliases      []string
	Args         []helpArg
	Subcommands  []helpCommand
	FlagUsages   string
	GlobalUsages string
}

func ttyWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// wrapTTY wraps a string to the width of the terminal, or 80 no terminal
// is detected.
func wrapTTY(s string) string {
	return wordwrap.WrapString(s, uint(ttyWidth()))
}

// newStyledOutput returns a termenv output for w. Tests always get the
// colorless profile so that results are deterministic.
func newStyledOutput(w io.Writer) *termenv.Output {
	if flag.Lookup("test.v") != nil {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w)
}

func newHelpTemplate(out *termenv.Output) *template.Template {
	return template.Must(
		template.New("usage").Funcs(
			template.FuncMap{
				"wrapTTY": wrapTTY,
				"prettyHeader": func(s string) string {
					return out.String(strings.ToUpper(s) + ":").Foreground(out.Color(headerColor)).String()
				},
				"keyword": func(s string) string {
					return out.String(s).Foreground(out.Color(optionColor)).String()
				},
				"joinStrings": func(s []string) string {
					return strings.Join(s, ", ")
				},
			},
		).Parse(helpTemplateRaw),
	)
}

// RenderHelp is the default HelpFunc.
func RenderHelp(w io.Writer, topic HelpTopic) error {
	data := helpData{
		Usage: usageLine(topic),
		Short: topic.Short,
	}

	if cmd := topic.Command; cmd != nil {
		if cmd.Short != "" {
			data.Short = cmd.Short
		}
		data.Long = cmd.Long
		data.Aliases = cmd.Aliases
		for _, a := range cmd.Args {
			d := a.Definition()
			typ := string(d.Type)
			if d.Type == EnumType {
				typ = strings.Join(d.Values, "|")
			}
			if d.Optional {
				typ += " (optional)"
			}
			data.Args = append(data.Args, helpArg{Name: a.Name, Type: typ, Description: d.Description})
		}
		data.FlagUsages = FlagSet(strings.Join(topic.Path, " "), NormalizeFlags(cmd.Flags)).FlagUsages()
	}

	if topic.Node != nil {
		for _, name := range topic.Node.Children() {
			child := topic.Node.Child(name)
			if child.Command != nil && child.Command.Hidden {
				continue
			}
			short := ""
			if child.Command != nil {
				short = child.Command.Short
			}
			data.Subcommands = append(data.Subcommands, helpCommand{Name: name, Short: short})
		}
	}

	if len(topic.GlobalFlags) > 0 {
		data.GlobalUsages = FlagSet("global", topic.GlobalFlags).FlagUsages()
	}

	// We buffer writes because the newlineLimiter writes one byte at a time.
	outBuf := bufio.NewWriter(w)
	limited := &newlineLimiter{w: outBuf, limit: 2}
	tw := tabwriter.NewWriter(limited, 0, 0, 2, ' ', 0)
	if err := newHelpTemplate(newStyledOutput(w)).Execute(tw, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return outBuf.Flush()
}

func usageLine(topic HelpTopic) string {
	parts := append([]string{topic.AppName}, topic.Path...)
	if topic.Node != nil && len(topic.Node.Children()) > 0 {
		parts = append(parts, "<command>")
	}
	if topic.Command != nil {
		for _, a := range topic.Command.Args {
			if a.Definition().Optional {
				parts = append(parts, "["+a.Name+"]")
			} else {
				parts = append(parts, "<"+a.Name+">")
			}
		}
	}
	parts = append(parts, "[flags]")
	return strings.Join(parts, " ")
}

// FlagSet converts flag definitions into a pflag.FlagSet, for usage output.
func FlagSet(name string, defs map[string]FlagDefinition) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Usage = func() {}

	for _, n := range sortedKeys(defs) {
		d := defs[n]
		short := ""
		if len(d.Alias) == 1 && fs.ShorthandLookup(d.Alias) == nil {
			short = d.Alias
		}
		usage := flagUsage(d)
		v := Values{n: d.Default}

		switch {
		case d.Type == Boolean && d.Array:
			var defaults []bool
			if d.Default != nil {
				for _, s := range v.Strings(n) {
					defaults = append(defaults, parseBool(s))
				}
			}
			fs.BoolSliceP(n, short, defaults, usage)
		case d.Type == Boolean:
			fs.BoolP(n, short, v.Bool(n), usage)
		case d.Type == Number && d.Array:
			var defaults []float64
			if d.Default != nil {
				for _, s := range v.Strings(n) {
					defaults = append(defaults, toNumber(s))
				}
			}
			fs.Float64SliceP(n, short, defaults, usage)
		case d.Type == Number:
			fs.Float64P(n, short, v.Float(n), usage)
		case d.Array:
			var defaults []string
			if d.Default != nil {
				defaults = v.Strings(n)
			}
			fs.StringArrayP(n, short, defaults, usage)
		default:
			fs.StringP(n, short, v.String(n), usage)
		}

		if d.Hidden {
			_ = fs.MarkHidden(n)
		}
		if d.Deprecated != "" {
			_ = fs.MarkDeprecated(n, d.Deprecated)
		}
	}
	return fs
}

func flagUsage(d FlagDefinition) string {
	usage := d.Description
	var notes []string
	if d.Required {
		notes = append(notes, "required")
	}
	if len(d.Env) > 0 {
		envs := make([]string, len(d.Env))
		for i, e := range d.Env {
			envs[i] = "$" + e
		}
		notes = append(notes, "env: "+strings.Join(envs, ", "))
	}
	if len(notes) > 0 {
		usage = strings.TrimSpace(usage + " (" + strings.Join(notes, ", ") + ")")
	}
	return usage
}

// newLineLimiter makes working with Go templates more bearable. Without this,
// modifying the template is a slow toil of counting newlines and constantly
// checking that a change to one command's help doesn't break another.
type newlineLimiter struct {
	// w is not an interface since we call WriteRune byte-wise,
	// and the devirtualization overhead is significant.
	w     *bufio.Writer
	limit int

	newLineCounter int
}

// isSpace is a based on unicode.IsSpace, but only checks ASCII characters.
func isSpace(b byte) bool {
	switch b {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0x85, 0xA0:
		return true
	}
	return false
}

func (lm *newlineLimiter) Write(p []byte) (int, error) {
	for _, b := range p {
		switch {
		case b == '\r':
			continue
		case b == '\n':
			lm.newLineCounter++
			if lm.newLineCounter > lm.limit {
				continue
			}
		case !isSpace(b):
			lm.newLineCounter = 0
		}
		err := lm.w.WriteByte(b)
		if err != nil {
			return 0, err
		}
	}
	return len(p), nil
}
