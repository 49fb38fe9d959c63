package preview

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"unicode/utf8"

	"github.com/nfnt/resize"

	"explorer/internal/constants"
	apperrors "explorer/internal/errors"
	"explorer/internal/fileinfo"
)

// Options bounds the preview payload
type Options struct {
	// TextLimit is the maximum number of characters in a text preview.
	TextLimit int
	// ThumbnailSize bounds both edges of Image.Thumbnail; 0 disables scaling.
	ThumbnailSize int
}

// DefaultOptions returns the limits used when the config does not set any.
func DefaultOptions() Options {
	return Options{
		TextLimit:     constants.DefaultTextPreviewLimit,
		ThumbnailSize: constants.DefaultThumbnailSize,
	}
}

// Resolver produces previews. It has no cache and no mutable state, so a
// single Resolver may serve concurrent calls.
type Resolver struct {
	fs         fileinfo.VFS
	opts       Options
	debugPrint func(format string, args ...interface{})
}

// NewResolver creates a Resolver reading through fs (nil means the local filesystem).
func NewResolver(fs fileinfo.VFS, opts Options, debugPrint func(format string, args ...interface{})) *Resolver {
	if fs == nil {
		fs = fileinfo.LocalFS{}
	}
	if opts.TextLimit <= 0 {
		opts.TextLimit = constants.DefaultTextPreviewLimit
	}
	if opts.ThumbnailSize < 0 {
		opts.ThumbnailSize = 0
	}
	if debugPrint == nil {
		debugPrint = func(string, ...interface{}) {}
	}
	return &Resolver{fs: fs, opts: opts, debugPrint: debugPrint}
}

// Resolve classifies path and loads its preview. It never panics; every
// failure is reported as Failed.
func (r *Resolver) Resolve(path string) (res Result) {
	defer func() {
		if p := recover(); p != nil {
			r.debugPrint("preview: panic resolving %s: %v", path, p)
			res = Failed{
				Reason: ReasonInternal,
				Err:    apperrors.NewPreviewError("resolve", path, ReasonInternal, fmt.Errorf("panic: %v", p)),
			}
		}
	}()

	kind := Classify(path)
	r.debugPrint("preview: %s classified as %s", path, kind)
	switch kind {
	case KindImage:
		return r.resolveImage(path)
	case KindText:
		return r.resolveText(path)
	case KindPDF:
		return PDFDelegate{Path: path}
	default:
		return Unsupported{}
	}
}

func (r *Resolver) resolveImage(path string) Result {
	rc, err := r.fs.Open(path)
	if err != nil {
		return readFailed(path, err)
	}
	defer rc.Close()

	img, format, err := image.Decode(bufio.NewReader(rc))
	if err != nil {
		return Failed{
			Reason: ReasonImageDecode,
			Err:    apperrors.NewPreviewError("decode_image", path, ReasonImageDecode, err),
		}
	}

	b := img.Bounds()
	return Image{
		Bitmap:    img,
		Thumbnail: r.thumbnail(img),
		Width:     b.Dx(),
		Height:    b.Dy(),
		Format:    format,
	}
}

func (r *Resolver) thumbnail(img image.Image) image.Image {
	size := r.opts.ThumbnailSize
	b := img.Bounds()
	if size <= 0 || (b.Dx() <= size && b.Dy() <= size) {
		return img
	}
	return resize.Thumbnail(uint(size), uint(size), img, resize.Lanczos3)
}

// resolveText reads at most TextLimit runes worth of bytes. Only the bytes
// that make up the shown runes are checked for valid UTF-8; anything after
// them marks the result truncated.
func (r *Resolver) resolveText(path string) Result {
	limit := r.opts.TextLimit
	maxBytes := int64(limit) * utf8.UTFMax

	rc, err := r.fs.Open(path)
	if err != nil {
		return readFailed(path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxBytes+1))
	if err != nil {
		return readFailed(path, err)
	}

	shown, ok := leadingRunes(data, limit)
	if !ok {
		return Failed{
			Reason: ReasonInvalidUTF8,
			Err:    apperrors.NewPreviewError("decode_text", path, ReasonInvalidUTF8, nil),
		}
	}
	return Text{Content: string(shown), Truncated: len(shown) < len(data)}
}

func readFailed(path string, err error) Failed {
	return Failed{
		Reason: ReasonRead,
		Err:    apperrors.NewPreviewError("read_file", path, ReasonRead, err),
	}
}

// leadingRunes returns the bytes of the first limit runes of b. ok is false
// when an invalid or incomplete sequence occurs among them.
func leadingRunes(b []byte, limit int) (prefix []byte, ok bool) {
	i := 0
	for n := 0; n < limit && i < len(b); n++ {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, false
		}
		i += size
	}
	return b[:i], true
}
