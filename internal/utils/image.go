package utils

import (
	"bytes"
	"image"
	"log"
	"strings"

	"project-registration-server/internal/common"
	"project-registration-server/internal/config"
	"project-registration-server/internal/consts"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	defaultJPEGQuality = 90
	defaultMaxPixels   = 40_000_000
)

// NormalizedPicture 归一化后的头像：固定 200x200 的 JPEG。
type NormalizedPicture struct {
	Data         []byte
	Width        int
	Height       int
	ContentType  string
	SourceFormat string
}

// NormalizePicture 按内容识别格式（不看文件名），缩放覆盖 200x200 画布后居中裁掉溢出部分，
// 再编码为 JPEG。无法识别或解码时返回 unsupported_format 错误。
func NormalizePicture(raw []byte, declaredContentType string) (*NormalizedPicture, error) {
	if len(raw) == 0 {
		return nil, common.NewUnsupportedFormatError("图片内容为空")
	}

	header, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, common.NewUnsupportedFormatError("不支持的图片格式")
	}
	// 解码会按声明尺寸一次性分配像素缓冲，必须在解码前拦截
	maxPixels := int64(config.Get().Picture.MaxPixels)
	if maxPixels <= 0 {
		maxPixels = defaultMaxPixels
	}
	if header.Width <= 0 || header.Height <= 0 || int64(header.Width)*int64(header.Height) > maxPixels {
		log.Printf("⚠️ 拒绝超大图片: %dx%d (%s)", header.Width, header.Height, format)
		return nil, common.NewUnsupportedFormatError("图片尺寸过大")
	}
	if declared := strings.TrimSpace(declaredContentType); declared != "" && !contentTypeMatches(declared, format) {
		log.Printf("⚠️ 图片声明类型 %s 与实际格式 %s 不一致", declared, format)
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, common.NewUnsupportedFormatError("图片解码失败")
	}

	size := consts.PictureCanvasSize
	canvas := imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)

	quality := config.Get().Picture.JPEGQuality
	if quality <= 0 || quality > 100 {
		quality = defaultJPEGQuality
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}

	bounds := canvas.Bounds()
	return &NormalizedPicture{
		Data:         buf.Bytes(),
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
		ContentType:  consts.PictureContentType,
		SourceFormat: format,
	}, nil
}

func contentTypeMatches(declared, format string) bool {
	declared = strings.ToLower(declared)
	if idx := strings.Index(declared, ";"); idx >= 0 {
		declared = strings.TrimSpace(declared[:idx])
	}
	switch format {
	case "jpeg":
		return declared == "image/jpeg" || declared == "image/jpg"
	case "bmp":
		return declared == "image/bmp" || declared == "image/x-ms-bmp"
	default:
		return declared == "image/"+format
	}
}
