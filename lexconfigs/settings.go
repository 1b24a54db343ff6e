package lexconfigs

import (
	"cmp"
	"runtime"

	"github.com/reusee/pasclex/cmds"
	"github.com/reusee/pasclex/configs"
)

// OutputFormat names the renderer: table, json, yaml or toml.
type OutputFormat string

var formatFlag = cmds.Var[string]("-format", "output format: table, json, yaml or toml")

func (Module) OutputFormat(
	loader configs.Loader,
) OutputFormat {
	return cmp.Or(
		OutputFormat(*formatFlag),
		configs.First[OutputFormat](loader, "format"),
		"table",
	)
}

// Parallel bounds how many files are scanned at once.
type Parallel int

var parallelFlag = cmds.Var[int]("-parallel", "max files scanned concurrently")

func (Module) Parallel(
	loader configs.Loader,
) Parallel {
	return Parallel(cmp.Or(
		*parallelFlag,
		configs.First[int](loader, "parallel"),
		runtime.NumCPU(),
	))
}

// WrapWidth is the column at which diagnostics are wrapped.
type WrapWidth int

var wrapWidthFlag = cmds.Var[int]("-wrap-width", "wrap diagnostics at this column")

func (Module) WrapWidth(
	loader configs.Loader,
) WrapWidth {
	return WrapWidth(cmp.Or(
		*wrapWidthFlag,
		configs.First[int](loader, "wrap_width"),
		80,
	))
}

type ShowEOF bool

var showEOFFlag = cmds.Switch("-show-eof", "list the EOF token in output")

func (Module) ShowEOF(
	loader configs.Loader,
) ShowEOF {
	return ShowEOF(*showEOFFlag || configs.First[bool](loader, "show_eof"))
}
