package common

import (
	"path"
	"strconv"
	"strings"
)

// PkgAlias returns the name generated code uses to qualify an import of
// pkgPath: its last element, or the one before a major version suffix such as
// "/v2". Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if isMajorVersion(base) && path.Dir(pkgPath) != "." {
		return path.Base(path.Dir(pkgPath))
	}

	return base
}

func isMajorVersion(elem string) bool {
	n, ok := strings.CutPrefix(elem, "v")
	if !ok {
		return false
	}

	v, err := strconv.Atoi(n)

	return err == nil && v >= 2
}
