package analyzer

import (
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/pasclex/lexconfigs"
	"github.com/reusee/pasclex/logs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs lexconfigs.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)
