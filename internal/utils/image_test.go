package utils

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"project-registration-server/internal/common"
	"project-registration-server/internal/config"
	"project-registration-server/internal/consts"
	"project-registration-server/internal/testutils"
)

// 测试内容：任意宽高比的 jpeg/png 都被归一化为 200x200 的 JPEG。
func TestNormalizePicture_ProducesSquareJPEG(t *testing.T) {
	cases := []struct {
		name     string
		raw      []byte
		declared string
		format   string
	}{
		{"wide_png", testutils.EncodePNG(t, 640, 120), "image/png", "png"},
		{"tall_png", testutils.EncodePNG(t, 90, 500), "image/png", "png"},
		{"small_jpeg", testutils.EncodeJPEG(t, 30, 40), "image/jpeg", "jpeg"},
		{"square_jpeg", testutils.EncodeJPEG(t, 200, 200), "", "jpeg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pic, err := NormalizePicture(tc.raw, tc.declared)
			if err != nil {
				t.Fatalf("NormalizePicture: %v", err)
			}
			if pic.Width != consts.PictureCanvasSize || pic.Height != consts.PictureCanvasSize {
				t.Fatalf("期望 200x200，实际 %dx%d", pic.Width, pic.Height)
			}
			if pic.ContentType != "image/jpeg" || pic.SourceFormat != tc.format {
				t.Fatalf("unexpected meta: %s %s", pic.ContentType, pic.SourceFormat)
			}
			decoded, err := jpeg.Decode(bytes.NewReader(pic.Data))
			if err != nil {
				t.Fatalf("输出应为合法 JPEG: %v", err)
			}
			if decoded.Bounds() != image.Rect(0, 0, 200, 200) {
				t.Fatalf("解码后尺寸不符: %v", decoded.Bounds())
			}
		})
	}
}

// 测试内容：格式按内容识别，声明类型不一致不影响处理。
func TestNormalizePicture_IgnoresDeclaredType(t *testing.T) {
	pic, err := NormalizePicture(testutils.EncodePNG(t, 50, 50), "image/jpeg")
	if err != nil {
		t.Fatalf("NormalizePicture: %v", err)
	}
	if pic.SourceFormat != "png" {
		t.Fatalf("期望识别为 png，实际 %s", pic.SourceFormat)
	}
}

func TestNormalizePicture_RejectsNonImage(t *testing.T) {
	for _, raw := range [][]byte{nil, []byte("definitely not an image"), {0xFF, 0xD8, 0xFF, 0x00}} {
		_, err := NormalizePicture(raw, "image/jpeg")
		if !common.IsErrorCode(err, common.ErrorCodeUnsupportedFormat) {
			t.Fatalf("期望 unsupported_format，实际 %v", err)
		}
	}
}

func TestContentTypeMatches(t *testing.T) {
	if !contentTypeMatches("image/JPG", "jpeg") || !contentTypeMatches("image/png; charset=binary", "png") {
		t.Fatalf("应视为匹配")
	}
	if contentTypeMatches("image/gif", "png") {
		t.Fatalf("不应匹配")
	}
}

// pngHeaderOnly 生成只含 IHDR/IEND 的 PNG：头部声明 w x h 的灰度图，但几乎没有数据。
func pngHeaderOnly(w, h uint32) []byte {
	var buf bytes.Buffer
	buf.Write([]byte("\x89PNG\r\n\x1a\n"))
	writeChunk := func(kind string, data []byte) {
		_ = binary.Write(&buf, binary.BigEndian, uint32(len(data)))
		crc := crc32.NewIEEE()
		crc.Write([]byte(kind))
		crc.Write(data)
		buf.WriteString(kind)
		buf.Write(data)
		_ = binary.Write(&buf, binary.BigEndian, crc.Sum32())
	}
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], w)
	binary.BigEndian.PutUint32(ihdr[4:8], h)
	ihdr[8] = 8 // 位深
	writeChunk("IHDR", ihdr)
	writeChunk("IEND", nil)
	return buf.Bytes()
}

// 测试内容：头部声明超大尺寸的小体积 PNG 在解码前即被拒绝，返回 unsupported_format。
func TestNormalizePicture_RejectsOversizedDimensions(t *testing.T) {
	raw := pngHeaderOnly(12000, 12000)
	if len(raw) > 100 {
		t.Fatalf("测试图片应只有头部: %d bytes", len(raw))
	}
	_, err := NormalizePicture(raw, "image/png")
	if !common.IsErrorCode(err, common.ErrorCodeUnsupportedFormat) {
		t.Fatalf("期望 unsupported_format，实际 %v", err)
	}
}

// 测试内容：像素上限可配置，真实编码的大幅空白 PNG 超出上限时被拒绝，上限内正常处理。
func TestNormalizePicture_RespectsConfiguredMaxPixels(t *testing.T) {
	cfg := testConfig()
	cfg.Picture.MaxPixels = 600 * 600
	config.Set(cfg)
	t.Cleanup(func() { config.Set(testConfig()) })

	blank := image.NewGray(image.Rect(0, 0, 800, 800))
	var buf bytes.Buffer
	if err := png.Encode(&buf, blank); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if _, err := NormalizePicture(buf.Bytes(), "image/png"); !common.IsErrorCode(err, common.ErrorCodeUnsupportedFormat) {
		t.Fatalf("期望 unsupported_format，实际 %v", err)
	}

	if _, err := NormalizePicture(testutils.EncodePNG(t, 600, 600), "image/png"); err != nil {
		t.Fatalf("上限内的图片应正常处理: %v", err)
	}
}
