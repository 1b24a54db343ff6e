package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pasclex/analyzer"
	"github.com/reusee/pasclex/debugs"
	"github.com/reusee/pasclex/render"
)

type Module struct {
	dscope.Module
	Analyzer analyzer.Module
	Render   render.Module
	Debugs   debugs.Module
}
