package render

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pasclex/lexconfigs"
)

type Module struct {
	dscope.Module
	Configs lexconfigs.Module
}
