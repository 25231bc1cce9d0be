package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. This is best-effort and should never make generation fail
// harder.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}
	// The .debug suffix keeps the go tool from compiling the broken source.
	debugName := strings.TrimSuffix(filename, ".go") + ".go.debug"
	p := filepath.Join(outDir, debugName)

	return os.WriteFile(p, content, filePerm)
}
