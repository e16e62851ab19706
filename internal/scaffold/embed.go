package scaffold

import "embed"

// scaffoldFS holds one directory per template set under scaffolds/.
//
//go:embed all:scaffolds
var scaffoldFS embed.FS
