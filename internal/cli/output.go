package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"go.uber.org/zap"
)

const outputPerm = 0o644

// writeOutput creates missing parent directories and atomically replaces path
// with text. A failed write leaves any previous file untouched.
func writeOutput(logger *zap.Logger, path, text string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return wrapWithSentinelAndContext(ErrCreateOutputDirFailed, err,
				fmt.Sprintf("failed to create output directory: %v", err),
				map[string]any{"output": path, "component": "writer"})
		}
	}

	// renameio handles temp file creation, fsync and the atomic rename.
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(outputPerm))
	if err != nil {
		return wrapWithSentinelAndContext(ErrWriteOutputFailed, err,
			fmt.Sprintf("failed to create pending output file: %v", err),
			map[string]any{"output": path, "component": "writer"})
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			logger.Debug("cleanup pending output file", zap.Error(err))
		}
	}()

	if _, err := pending.WriteString(text); err != nil {
		return wrapWithSentinelAndContext(ErrWriteOutputFailed, err,
			fmt.Sprintf("failed to write output: %v", err),
			map[string]any{"output": path, "component": "writer"})
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return wrapWithSentinelAndContext(ErrWriteOutputFailed, err,
			fmt.Sprintf("failed to replace output: %v", err),
			map[string]any{"output": path, "component": "writer"})
	}
	return nil
}
