// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

// package build contains build information for the vector module.
package build

import (
	_ "embed"
	"strings"
)

//go:embed version.txt
var version string

// Version of the module, read from version.txt at build time.
var Version = strings.TrimSpace(version)
