package lexconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pasclex/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
