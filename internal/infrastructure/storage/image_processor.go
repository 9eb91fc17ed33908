package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

type ImageProcessor struct {
	MaxSize int64 // bytes (default: 5MB)
	MaxEdge int   // px, ảnh lớn hơn sẽ bị downscale trước khi upload
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{
		MaxSize: 5 * 1024 * 1024, // 5MB
		MaxEdge: 1600,
	}
}

// ValidateImage check JPEG/PNG, throw err nếu file > max size
func (p *ImageProcessor) ValidateImage(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return fmt.Errorf("image exceeds %dMB", p.MaxSize/(1024*1024))
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	switch format {
	case "jpeg", "png":
		return nil
	default:
		return fmt.Errorf("image format %s not allowed (only jpeg/png)", format)
	}
}

// Normalize downscale ảnh quá khổ về MaxEdge, re-encode JPEG chất lượng 90
// Ảnh đã nhỏ hơn MaxEdge được giữ nguyên bytes gốc
func (p *ImageProcessor) Normalize(data []byte) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	if cfg.Width <= p.MaxEdge && cfg.Height <= p.MaxEdge {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	resized := imaging.Fit(img, p.MaxEdge, p.MaxEdge, imaging.Lanczos)
	b := new(bytes.Buffer)
	if err := jpeg.Encode(b, resized, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("cannot encode resized image: %w", err)
	}
	return b.Bytes(), nil
}
