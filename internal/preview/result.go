package preview

import "image"

// Failure reasons shown in place of a preview
const (
	ReasonImageDecode = "unable to decode image"
	ReasonInvalidUTF8 = "not valid UTF-8"
	ReasonRead        = "unable to read file"
	ReasonInternal    = "preview failed"
)

// Result is one of Image, Text, PDFDelegate, Unsupported or Failed.
type Result interface {
	isResult()
}

// Image is a decoded bitmap.
type Image struct {
	Bitmap    image.Image
	Thumbnail image.Image // Bitmap scaled to fit the configured thumbnail size
	Width     int
	Height    int
	Format    string // decoder name, e.g. "png"
}

// Text is file content decoded as UTF-8.
type Text struct {
	Content   string
	Truncated bool
}

// PDFDelegate asks the caller to hand Path to a native PDF viewer.
type PDFDelegate struct {
	Path string
}

// Unsupported means no preview exists for this file type.
type Unsupported struct{}

// Failed carries a user-facing reason and the underlying error, if any.
type Failed struct {
	Reason string
	Err    error
}

func (Image) isResult()       {}
func (Text) isResult()        {}
func (PDFDelegate) isResult() {}
func (Unsupported) isResult() {}
func (Failed) isResult()      {}

func (f Failed) Error() string {
	if f.Err != nil {
		return f.Reason + ": " + f.Err.Error()
	}
	return f.Reason
}
