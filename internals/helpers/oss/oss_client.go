package helper

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

// OSSService membungkus bucket Aliyun OSS untuk bukti transfer.
type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	BucketName string
	Endpoint   string
	Prefix     string
}

func normalizeEndpoint(ep string) string {
	ep = strings.TrimSpace(ep)
	if ep == "" {
		return ep
	}
	if strings.HasPrefix(ep, "http://") || strings.HasPrefix(ep, "https://") {
		return ep
	}
	return "https://" + ep
}

// NewOSSServiceFromEnv bikin service dari ENV ALI_OSS_*. Prefix opsional
// (contoh: "proofs/").
func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := normalizeEndpoint(os.Getenv("ALI_OSS_ENDPOINT"))
	accessKey := os.Getenv("ALI_OSS_ACCESS_KEY")
	secretKey := os.Getenv("ALI_OSS_SECRET_KEY")
	bucketName := os.Getenv("ALI_OSS_BUCKET")

	if endpoint == "" || accessKey == "" || secretKey == "" || bucketName == "" {
		return nil, fmt.Errorf("ENV ALI_OSS_* belum lengkap")
	}

	cli, err := oss.New(endpoint, accessKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("oss init: %w", err)
	}
	bucket, err := cli.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss bucket: %w", err)
	}

	return &OSSService{
		Client:     cli,
		Bucket:     bucket,
		BucketName: bucketName,
		Endpoint:   endpoint,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

// PublicURL membentuk URL publik dari object key.
func (s *OSSService) PublicURL(key string) string {
	end := s.Endpoint
	end = strings.TrimPrefix(end, "https://")
	end = strings.TrimPrefix(end, "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

// ExtractKeyFromPublicURL ambil object key dari URL publik
// (https://{bucket}.{endpoint}/{key}).
func ExtractKeyFromPublicURL(publicURL string) (string, error) {
	if strings.TrimSpace(publicURL) == "" {
		return "", fmt.Errorf("empty url")
	}
	u := publicURL
	if i := strings.Index(u, "://"); i >= 0 {
		u = u[i+3:]
	}
	if i := strings.Index(u, "/"); i >= 0 && i+1 < len(u) {
		return u[i+1:], nil
	}
	return "", fmt.Errorf("cannot extract key from url: %s", publicURL)
}

// DeleteByPublicURL hapus objek berdasarkan URL publiknya.
func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := ExtractKeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	if err := s.Bucket.DeleteObject(key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

/* =======================================================================
   Upload bukti transfer: decode (jpeg/png/webp) → resize → WebP
======================================================================= */

const (
	proofMaxWidth  = 1600
	proofMaxHeight = 1600
	proofQuality   = 80
)

func decodeImage(all []byte) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("file kosong")
	}
	if img, err := jpeg.Decode(bytes.NewReader(all)); err == nil {
		return img, nil
	}
	if img, err := png.Decode(bytes.NewReader(all)); err == nil {
		return img, nil
	}
	if img, err := webp.Decode(bytes.NewReader(all)); err == nil {
		return img, nil
	}
	return nil, fmt.Errorf("format gambar tidak didukung (jpeg/png/webp)")
}

func resizeToFit(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return src
	}
	scale := float64(maxW) / float64(w)
	if s := float64(maxH) / float64(h); s < scale {
		scale = s
	}
	nw, nh := int(float64(w)*scale), int(float64(h)*scale)
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func (s *OSSService) buildObjectKey() string {
	ts := time.Now().Format("20060102_150405")
	key := fmt.Sprintf("%s_%s.webp", ts, randHex(3))
	if s.Prefix != "" {
		return s.Prefix + "/" + key
	}
	return key
}

// UploadProofImage re-encode gambar bukti ke WebP lalu upload.
// Return URL publik objek.
func (s *OSSService) UploadProofImage(ctx context.Context, r io.Reader) (string, error) {
	all, err := io.ReadAll(io.LimitReader(r, 5*1024*1024+1))
	if err != nil {
		return "", fmt.Errorf("baca file: %w", err)
	}
	if len(all) > 5*1024*1024 {
		return "", fmt.Errorf("ukuran file melebihi 5MB")
	}

	img, err := decodeImage(all)
	if err != nil {
		return "", err
	}
	img = resizeToFit(img, proofMaxWidth, proofMaxHeight)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: proofQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := s.buildObjectKey()
	if err := s.Bucket.PutObject(key, bytes.NewReader(buf.Bytes()),
		oss.ContentType("image/webp")); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return s.PublicURL(key), nil
}
