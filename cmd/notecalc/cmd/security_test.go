package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateFilePathRejectsTraversal(t *testing.T) {
	if err := validateFilePath("../../etc/passwd"); err == nil {
		t.Error("expected traversal path to be rejected")
	}
}

func TestValidateFilePathRejectsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("1 + 1"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	os.Chdir(dir)

	if err := validateFilePath("doc.txt"); err == nil {
		t.Error("expected unknown extension to be rejected")
	}
}

func TestValidateFilePathAcceptsKnownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.nc")
	if err := os.WriteFile(path, []byte("1 + 1"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	os.Chdir(dir)

	if err := validateFilePath("doc.nc"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
