//go:build wasm

package main

import (
	"syscall/js"
)

func main() {
	// Export functions to JavaScript
	js.Global().Set("SwaramapLoadRegions", js.FuncOf(loadRegions))
	js.Global().Set("SwaramapMatch", js.FuncOf(match))
	js.Global().Set("SwaramapBuiltinRegions", js.FuncOf(builtinRegions))
	js.Global().Set("SwaramapRelease", js.FuncOf(release))

	// Keep WASM running
	<-make(chan struct{})
}
