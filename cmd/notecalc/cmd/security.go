package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// validateFilePath performs security checks on a file path argument:
// no traversal outside the working directory, a recognized extension,
// and a sane size cap before it's read into memory.
func validateFilePath(path string) error {
	cleanPath := filepath.Clean(path)
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("invalid path: path traversal detected")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cannot determine working directory: %w", err)
	}

	relPath, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return fmt.Errorf("invalid path: file must be within current directory")
	}

	ext := strings.ToLower(filepath.Ext(absPath))
	if ext != ".nc" && ext != ".notecalc" && ext != ".md" {
		return fmt.Errorf("invalid file extension: expected .nc, .notecalc, or .md")
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("invalid path: expected file, got directory")
	}

	const maxFileSize = 1 * 1024 * 1024
	if info.Size() > maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	return nil
}
