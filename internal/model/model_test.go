package model

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewPlan(t *testing.T) {
	plan := NewPlan("/music", "The Beatles", "Abbey Road", "01 Come Together.mp3")

	wantDir := filepath.Join("/music", "The Beatles", "Abbey Road")
	if plan.Dir != wantDir {
		t.Errorf("Plan.Dir = %q, want %q", plan.Dir, wantDir)
	}

	wantTarget := filepath.Join(wantDir, "01 Come Together.mp3")
	if plan.Target != wantTarget {
		t.Errorf("Plan.Target = %q, want %q", plan.Target, wantTarget)
	}
}

func TestPlan_TargetExists(t *testing.T) {
	root := t.TempDir()

	plan := NewPlan(root, "Artist", "Album", "song.mp3")
	if plan.TargetExists() {
		t.Error("TargetExists() = true before the file was created")
	}

	if err := os.MkdirAll(plan.Dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(plan.Target, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}

	if !plan.TargetExists() {
		t.Error("TargetExists() = false after the file was created")
	}
}

func TestRunResult_Order(t *testing.T) {
	result := &RunResult{}

	if result.HasIssues() {
		t.Error("HasIssues() = true for an empty result")
	}

	result.AddError(ErrorFile{FileName: "a.mp3", Err: "first"})
	result.AddError(ErrorFile{FileName: "b.mp3", Err: "second"})
	result.AddSkip(SkipFile{FileName: "c.mp3"})

	if !result.HasIssues() {
		t.Error("HasIssues() = false after appending records")
	}
	if len(result.ErrorFiles) != 2 || len(result.ReplaceSkipFiles) != 1 {
		t.Fatalf("got %d errors and %d skips, want 2 and 1",
			len(result.ErrorFiles), len(result.ReplaceSkipFiles))
	}
	if result.ErrorFiles[0].FileName != "a.mp3" || result.ErrorFiles[1].FileName != "b.mp3" {
		t.Errorf("error records out of order: %q, %q",
			result.ErrorFiles[0].FileName, result.ErrorFiles[1].FileName)
	}
}
