package main

import (
	"scaleforge/internal/library"
	"scaleforge/internal/sources/damusc"
	"scaleforge/internal/sources/mailinglist"
	"scaleforge/internal/sources/tetrachord"
	"scaleforge/internal/sources/xenharmonikon"
)

// allSources lists every source module in canonical build order. The
// build config selects which of these actually run.
func allSources() []library.Source {
	return []library.Source{
		tetrachord.New(),
		xenharmonikon.New(),
		damusc.New(),
		mailinglist.New(),
	}
}
