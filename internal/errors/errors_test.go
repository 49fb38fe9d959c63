package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorTypeString(t *testing.T) {
	testCases := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeConfig, "config"},
		{ErrorTypeFileSystem, "filesystem"},
		{ErrorTypePreview, "preview"},
		{ErrorTypeUI, "ui"},
		{ErrorTypeWatcher, "watcher"},
		{ErrorTypeTheme, "theme"},
		{ErrorType(999), "unknown"},
	}

	for _, tc := range testCases {
		result := tc.errorType.String()
		if result != tc.expected {
			t.Errorf("For error type %v, expected '%s', got '%s'", tc.errorType, tc.expected, result)
		}
	}
}

func TestAppErrorError(t *testing.T) {
	err := &AppError{
		Type:      ErrorTypeFileSystem,
		Operation: "list_directory",
		Path:      "/home/user/documents",
		Message:   "permission denied",
		Err:       errors.New("access denied"),
	}

	expected := "filesystem error in list_directory [/home/user/documents]: permission denied"
	if err.Error() != expected {
		t.Errorf("Expected error message '%s', got '%s'", expected, err.Error())
	}

	err2 := &AppError{
		Type:      ErrorTypeConfig,
		Operation: "load_config",
		Message:   "invalid format",
	}

	expected2 := "config error in load_config: invalid format"
	if err2.Error() != expected2 {
		t.Errorf("Expected error message '%s', got '%s'", expected2, err2.Error())
	}
	if err2.Unwrap() != nil {
		t.Errorf("Expected unwrapped error to be nil, got %v", err2.Unwrap())
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("cause")

	testCases := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantPath string
	}{
		{"config", NewConfigError("load", "bad json", cause), ErrorTypeConfig, ""},
		{"filesystem", NewFileSystemError("list_directory", "/tmp/x", "cannot read", cause), ErrorTypeFileSystem, "/tmp/x"},
		{"preview", NewPreviewError("decode_image", "/tmp/a.png", "unable to decode image", cause), ErrorTypePreview, "/tmp/a.png"},
		{"ui", NewUIError("create_folder", "dialog failed", cause), ErrorTypeUI, ""},
		{"watcher", NewWatcherError("watch", "/tmp", "unable to monitor directory", cause), ErrorTypeWatcher, "/tmp"},
		{"theme", NewThemeError("load_font", "font missing", cause), ErrorTypeTheme, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Type != tc.wantType {
				t.Errorf("Expected type %v, got %v", tc.wantType, tc.err.Type)
			}
			if tc.err.Path != tc.wantPath {
				t.Errorf("Expected path %q, got %q", tc.wantPath, tc.err.Path)
			}
			if tc.err.Err != cause {
				t.Errorf("Expected wrapped error to be the cause, got %v", tc.err.Err)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	appErr := NewFileSystemError("list_directory", "/missing", "cannot read directory", fs.ErrNotExist)

	if !errors.Is(appErr, fs.ErrNotExist) {
		t.Error("errors.Is should see through AppError")
	}

	var appErrPtr *AppError
	if !errors.As(appErr, &appErrPtr) {
		t.Fatal("errors.As should work with AppError")
	}
	if appErrPtr.Type != ErrorTypeFileSystem {
		t.Error("errors.As should preserve the correct error type")
	}
}

func TestIsType(t *testing.T) {
	appErr := NewPreviewError("read_text", "/tmp/a.txt", "not valid UTF-8", nil)
	wrapped := fmt.Errorf("preview: %w", appErr)

	if !IsType(wrapped, ErrorTypePreview) {
		t.Error("IsType should match a wrapped preview error")
	}
	if IsType(wrapped, ErrorTypeFileSystem) {
		t.Error("IsType should not match a different type")
	}
	if IsType(errors.New("plain"), ErrorTypePreview) {
		t.Error("IsType should be false for non-AppError values")
	}
	if IsType(nil, ErrorTypePreview) {
		t.Error("IsType should be false for nil")
	}
}
