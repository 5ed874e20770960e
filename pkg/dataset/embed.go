package dataset

import "embed"

// builtinFS embeds the built-in dataset directory.
// Contains the regions, artists, news and map states shipped with swaramap.
//
//go:embed data/*.yml
var builtinFS embed.FS

// builtinRoot is the directory inside builtinFS holding the dataset files.
const builtinRoot = "data"
