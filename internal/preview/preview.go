// Package preview turns an uploaded file into a displayable in-memory image.
package preview

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
)

var (
	ErrNotImage = errors.New("file is not an image")
	ErrTooLarge = errors.New("file exceeds upload limit")
	ErrDecode   = errors.New("image could not be decoded")
)

// File is an upload as received from the client.
type File struct {
	Name         string
	DeclaredType string
	Body         io.Reader
}

// Image is a decoded upload ready to be shown and sent to a generator.
type Image struct {
	Name     string
	MIMEType string
	Width    int
	Height   int
	// Data holds the bytes as uploaded.
	Data []byte
	// DataURL renders the preview; it embeds Data unless the image was downscaled.
	DataURL string
	Resized bool
}

// Options bound the decoder.
type Options struct {
	MaxBytes     int64
	MaxDimension int
}

// IsImageType reports whether a declared media type is an image type.
func IsImageType(declared string) bool {
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		mediaType = declared
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mediaType)), "image/")
}

// Decode validates the declared type, reads at most opts.MaxBytes and decodes
// the image. The declared type is checked before any byte is read.
func Decode(ctx context.Context, f File, opts Options) (*Image, error) {
	if !IsImageType(f.DeclaredType) {
		return nil, fmt.Errorf("%w: %q", ErrNotImage, f.DeclaredType)
	}

	data, err := io.ReadAll(io.LimitReader(f.Body, opts.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > opts.MaxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, opts.MaxBytes)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sniffed := http.DetectContentType(data)
	if !strings.HasPrefix(sniffed, "image/") {
		sniffed = f.DeclaredType
	}

	out := &Image{
		Name:     f.Name,
		MIMEType: sniffed,
		Width:    img.Bounds().Dx(),
		Height:   img.Bounds().Dy(),
		Data:     data,
	}

	if opts.MaxDimension > 0 && (out.Width > opts.MaxDimension || out.Height > opts.MaxDimension) {
		url, w, h, err := downscale(img, sniffed, opts.MaxDimension)
		if err != nil {
			return nil, err
		}
		out.DataURL, out.Width, out.Height, out.Resized = url, w, h, true
		return out, nil
	}

	out.DataURL = DataURL(sniffed, data)
	return out, nil
}

func downscale(img image.Image, mimeType string, maxDim int) (string, int, int, error) {
	fitted := imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)

	format, outType := imaging.JPEG, "image/jpeg"
	if mimeType == "image/png" || mimeType == "image/gif" {
		format, outType = imaging.PNG, "image/png"
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, format); err != nil {
		return "", 0, 0, fmt.Errorf("encode preview: %w", err)
	}
	b := fitted.Bounds()
	return DataURL(outType, buf.Bytes()), b.Dx(), b.Dy(), nil
}

// DataURL encodes bytes as a base64 data URL.
func DataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
