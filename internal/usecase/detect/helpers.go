package detect

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"

	"github.com/glucoin/glucoin-ai/internal/entity"
)

// uploadedImage carries both the decoded pixels (for the plausibility
// check) and the raw bytes (forwarded to the inference service).
type uploadedImage struct {
	filename string
	raw      []byte
	decoded  image.Image
}

func readUploadedImage(header *multipart.FileHeader) (*uploadedImage, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	decoded, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrUndecodableImage, err)
	}

	return &uploadedImage{
		filename: header.Filename,
		raw:      raw,
		decoded:  decoded,
	}, nil
}

func ptr[T any](v T) *T {
	return &v
}
