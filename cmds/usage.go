package cmds

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strings"
	"text/tabwriter"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	writeCommands(tw, p.commands, 0)
	tw.Flush()
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command value, print each command once
	names := make(map[*Command][]string)
	var order []*Command
	for name, cmd := range commands {
		if _, ok := names[cmd]; !ok {
			order = append(order, cmd)
		}
		names[cmd] = append(names[cmd], name)
	}
	for _, cmd := range order {
		slices.Sort(names[cmd])
	}
	slices.SortFunc(order, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	indent := strings.Repeat("  ", depth)
	for _, cmd := range order {
		var desc string
		var subs map[string]*Command
		if cmd != nil {
			desc = cmd.Description
			subs = cmd.Subs
		}
		fmt.Fprintf(w, "%s%s\t%s%s\n", indent, strings.Join(names[cmd], ", "), argsHint(cmd), desc)
		if len(subs) > 0 {
			writeCommands(w, subs, depth+1)
		}
	}
}

func argsHint(cmd *Command) string {
	if cmd == nil || !cmd.Func.IsValid() {
		return ""
	}
	t := cmd.Func.Type()
	var parts []string
	for i := range t.NumIn() {
		in := t.In(i)
		if in.Kind() == reflect.Pointer {
			parts = append(parts, "["+in.Elem().Kind().String()+"]")
		} else {
			parts = append(parts, "<"+in.Kind().String()+">")
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ") + " "
}
