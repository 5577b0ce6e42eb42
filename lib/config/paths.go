package config

import (
	"path/filepath"
)

// CfgPath is a path from the config file. Relative paths are relative to
// the directory holding the config file, not to the working directory.
type CfgPath string

func (c CfgPath) Resolve(base string) CfgPath {
	if c == "" || filepath.IsAbs(string(c)) {
		return c
	}
	return CfgPath(filepath.Join(base, string(c)))
}
