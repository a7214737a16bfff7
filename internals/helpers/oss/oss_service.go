// file: internals/helpers/oss/oss_service.go
package oss

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	ossSDK "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"ecolearn_backend/internals/configs"
)

// OSSService is the file-storage collaborator: it receives raw uploaded
// media and returns a stable public URL. Only that reference is persisted.
type OSSService struct {
	Bucket    *ossSDK.Bucket
	PublicHost string
	Prefix    string
}

func envInt(key string, def int) int {
	if v := strings.TrimSpace(configs.GetEnv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := configs.GetEnv("OSS_ENDPOINT")
	keyID := configs.GetEnv("OSS_ACCESS_KEY_ID")
	keySecret := configs.GetEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := configs.GetEnv("OSS_BUCKET")
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("OSS env is incomplete")
	}

	client, err := ossSDK.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, err
	}

	host := configs.GetEnv("OSS_PUBLIC_HOST")
	if host == "" {
		host = fmt.Sprintf("https://%s.%s", bucketName, endpoint)
	}
	return &OSSService{Bucket: bucket, PublicHost: strings.TrimRight(host, "/"), Prefix: strings.Trim(prefix, "/")}, nil
}

/* =======================================================================
   Image decode (jpeg/png/webp, MIME sniff) + downscale + webp encode
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	// fallback by extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("unsupported image format: %s", ct)
}

// downscaleIfNeeded keeps aspect; CatmullRom for quality.
func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW > 0 && w > maxW) || (maxH > 0 && h > maxH) {
		scale := 1.0
		if maxW > 0 {
			scale = math.Min(scale, float64(maxW)/float64(w))
		}
		if maxH > 0 {
			scale = math.Min(scale, float64(maxH)/float64(h))
		}
		nw := int(math.Round(float64(w) * scale))
		nh := int(math.Round(float64(h) * scale))
		if nw < 1 {
			nw = 1
		}
		if nh < 1 {
			nh = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		return dst
	}
	return src
}

// ConvertToWebP re-encodes any supported upload to webp with env-tuned caps.
func ConvertToWebP(all []byte, filename string) ([]byte, error) {
	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}
	img = downscaleIfNeeded(img, envInt("IMAGE_WEBP_MAX_W", 1600), envInt("IMAGE_WEBP_MAX_H", 1600))

	quality := float32(envInt("IMAGE_WEBP_QUALITY", 80))
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

/* =======================================================================
   Upload
======================================================================= */

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func (s *OSSService) buildObjectKey(slot, filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if base == "" {
		base = "file"
	}
	parts := []string{}
	if s.Prefix != "" {
		parts = append(parts, s.Prefix)
	}
	if slot != "" {
		parts = append(parts, strings.Trim(slot, "/"))
	}
	parts = append(parts, fmt.Sprintf("%s-%d-%s.webp", base, time.Now().Unix(), randHex(4)))
	return strings.Join(parts, "/")
}

func (s *OSSService) PublicURL(key string) string {
	return s.PublicHost + "/" + key
}

// UploadAsWebP converts the multipart image and stores it under slot/,
// returning the stable public URL.
func (s *OSSService) UploadAsWebP(ctx context.Context, fh *multipart.FileHeader, slot string) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	all := new(bytes.Buffer)
	if _, err := all.ReadFrom(f); err != nil {
		return "", err
	}

	data, err := ConvertToWebP(all.Bytes(), fh.Filename)
	if err != nil {
		return "", err
	}

	key := s.buildObjectKey(slot, fh.Filename)
	opts := []ossSDK.Option{
		ossSDK.ContentType("image/webp"),
		ossSDK.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key)
}
