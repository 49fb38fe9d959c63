package fileinfo

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestJoinParentBaseWithLocal(t *testing.T) {
	base := filepath.Join(string(filepath.Separator)+"tmp", "dir")
	name := "file.txt"
	joined := JoinPath(base, name)
	if joined != filepath.Join(base, name) {
		t.Fatalf("JoinPath(local) got %q", joined)
	}
	parent, ok := ParentPath(joined)
	if !ok || parent != base {
		t.Fatalf("ParentPath(local) got %q, %v", parent, ok)
	}
	if last := BaseName(joined); last != name {
		t.Fatalf("BaseName(local) got %q", last)
	}
}

func TestParentPathAtRootIsNoop(t *testing.T) {
	root := "/"
	if runtime.GOOS == "windows" {
		root = `C:\`
	}
	parent, ok := ParentPath(root)
	if ok {
		t.Fatalf("ParentPath(%q) should report no parent", root)
	}
	if parent != root {
		t.Fatalf("ParentPath(%q) got %q, want the root itself", root, parent)
	}
}

func TestParentPathTrailingSeparator(t *testing.T) {
	dir := t.TempDir()
	parent, ok := ParentPath(dir + string(filepath.Separator))
	if !ok || parent != filepath.Dir(dir) {
		t.Fatalf("ParentPath with trailing separator got %q, %v", parent, ok)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~")
	if err != nil || got != filepath.Clean(home) {
		t.Fatalf("ExpandPath(~) got %q, %v", got, err)
	}

	got, err = ExpandPath("~/docs")
	if err != nil || got != filepath.Join(home, "docs") {
		t.Fatalf("ExpandPath(~/docs) got %q, %v", got, err)
	}

	got, err = ExpandPath("  relative/dir  ")
	if err != nil || !filepath.IsAbs(got) {
		t.Fatalf("ExpandPath(relative) got %q, %v", got, err)
	}

	if _, err := ExpandPath("   "); err == nil {
		t.Fatal("ExpandPath should reject an empty path")
	}
}
