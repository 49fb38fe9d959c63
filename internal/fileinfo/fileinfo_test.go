package fileinfo

import (
	"testing"
	"time"
)

func TestFormatFileSize(t *testing.T) {
	testCases := []struct {
		size     int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{1073741824, "1.0 GB"},
		{1099511627776, "1.0 TB"},
	}

	for _, tc := range testCases {
		result := FormatFileSize(tc.size)
		if result != tc.expected {
			t.Errorf("For size %d, expected %s, got %s", tc.size, tc.expected, result)
		}
	}
}

func TestFormatEntrySize(t *testing.T) {
	if got := FormatEntrySize(DirectoryEntry{Name: "docs", IsDir: true}); got != "--" {
		t.Errorf("Expected '--' for directories, got %q", got)
	}
	if got := FormatEntrySize(DirectoryEntry{Name: "a.bin", SizeBytes: 2048}); got != "2.0 KB" {
		t.Errorf("Expected '2.0 KB', got %q", got)
	}
}

func TestDescribe(t *testing.T) {
	testCases := []struct {
		entry    DirectoryEntry
		expected string
	}{
		{DirectoryEntry{Name: "photos", IsDir: true}, "Folder"},
		{DirectoryEntry{Name: "photos.jpg", IsDir: true}, "Folder"},
		{DirectoryEntry{Name: "cat.JPG"}, "JPEG Image"},
		{DirectoryEntry{Name: "cat.jpeg"}, "JPEG Image"},
		{DirectoryEntry{Name: "shot.png"}, "PNG Image"},
		{DirectoryEntry{Name: "paper.pdf"}, "PDF Document"},
		{DirectoryEntry{Name: "notes.txt"}, "Text File"},
		{DirectoryEntry{Name: "Makefile"}, "File"},
		{DirectoryEntry{Name: "main.go"}, "GO File"},
	}

	for _, tc := range testCases {
		if got := Describe(tc.entry); got != tc.expected {
			t.Errorf("Describe(%q) = %q, want %q", tc.entry.Name, got, tc.expected)
		}
	}
}

func TestDirectoryEntryExt(t *testing.T) {
	testCases := map[string]string{
		"a.TXT":      "txt",
		"archive.gz": "gz",
		"noext":      "",
		".gitignore": "gitignore",
	}
	for name, want := range testCases {
		if got := (DirectoryEntry{Name: name}).Ext(); got != want {
			t.Errorf("Ext(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestEpochSentinel(t *testing.T) {
	if !EpochSentinel.Equal(time.Unix(0, 0)) {
		t.Errorf("EpochSentinel should be the Unix epoch, got %v", EpochSentinel)
	}
}
