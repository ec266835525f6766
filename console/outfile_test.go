package console

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

func setupFileState(t *testing.T) string {
	t.Helper()
	ResetState()
	t.Cleanup(ResetState)
	return filepath.Join(t.TempDir(), "out.log")
}

func TestSetOutputFileAppendAndTruncate(t *testing.T) {
	path := setupFileState(t)

	if err := SetOutputFile(path, true); err != nil {
		t.Fatal(err)
	}
	state.file.writeLine("first", "")
	CloseFile()

	// Reopening in append mode keeps existing content.
	if err := SetOutputFile(path, false); err != nil {
		t.Fatal(err)
	}
	state.file.writeLine("second", "")
	CloseFile()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first\nsecond\n" {
		t.Errorf("append mode content = %q", data)
	}

	// Truncate mode discards it.
	if err := SetOutputFile(path, true); err != nil {
		t.Fatal(err)
	}
	state.file.writeLine("fresh", "")
	CloseFile()

	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "fresh\n" {
		t.Errorf("truncate mode content = %q", data)
	}
}

func TestSetSamePathWhileOpenIsNoop(t *testing.T) {
	path := setupFileState(t)

	if err := SetOutputFile(path, true); err != nil {
		t.Fatal(err)
	}
	state.file.writeLine("keep", "")

	// Same path, truncate requested: must not reopen or discard.
	if err := SetOutputFile(path, true); err != nil {
		t.Fatal(err)
	}
	state.file.writeLine("more", "")
	CloseFile()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "keep\nmore\n" {
		t.Errorf("content = %q, want both lines", data)
	}
}

func TestSetOutputFilePathChangeClosesOld(t *testing.T) {
	pathA := setupFileState(t)
	pathB := pathA + ".b"

	if err := SetOutputFile(pathA, true); err != nil {
		t.Fatal(err)
	}
	if err := SetOutputFile(pathB, true); err != nil {
		t.Fatal(err)
	}
	if OutputFilePath() != pathB {
		t.Errorf("path = %q, want %q", OutputFilePath(), pathB)
	}
	state.file.writeLine("b-side", "")
	CloseFile()

	dataA, err := os.ReadFile(pathA)
	if err != nil {
		t.Fatal(err)
	}
	if len(dataA) != 0 {
		t.Errorf("old file received writes after path change: %q", dataA)
	}
}

func TestOpenFailureClearsState(t *testing.T) {
	setupFileState(t)
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "x.log")

	err := SetOutputFile(missing, true)
	if err == nil {
		t.Fatal("expected error opening file in a missing directory")
	}
	if OutputFilePath() != "" {
		t.Errorf("path not cleared after open failure: %q", OutputFilePath())
	}
}

var timestampRe = regexp.MustCompile(`^\[ \d{4}-\d{2}-\d{2}\+\d{2}:\d{2}\+\d{2}\.\d{6} \]  ERROR -> boom\n$`)

func TestWriteLineTimestampAndTag(t *testing.T) {
	path := setupFileState(t)

	if err := SetOutputFile(path, true); err != nil {
		t.Fatal(err)
	}
	SetTimestamps(true)
	state.file.writeLine("boom", "ERROR -> ")
	CloseFile()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !timestampRe.Match(data) {
		t.Errorf("record = %q, want timestamped ERROR record", data)
	}
}

func TestWriteLineStripsColors(t *testing.T) {
	path := setupFileState(t)

	if err := SetOutputFile(path, true); err != nil {
		t.Fatal(err)
	}
	colored, err := Colorize("red", "alert")
	if err != nil {
		t.Fatal(err)
	}
	state.file.writeLine(colored, "")
	CloseFile()

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(data) != "alert\n" {
		t.Errorf("record = %q, want color codes stripped", data)
	}
}

func TestRemoveFile(t *testing.T) {
	path := setupFileState(t)

	if err := SetOutputFile(path, true); err != nil {
		t.Fatal(err)
	}
	if err := RemoveFile(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("file still exists after RemoveFile: %v", err)
	}
}

func TestCloseFileWhenNotOpen(t *testing.T) {
	setupFileState(t)
	CloseFile() // must not panic
}
