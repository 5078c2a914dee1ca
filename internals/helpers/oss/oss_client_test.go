package helper

import "testing"

func TestExtractKeyFromPublicURL(t *testing.T) {
	key, err := ExtractKeyFromPublicURL("https://bucket.oss-ap-southeast-5.aliyuncs.com/proofs/20250101_010203_ab12cd.webp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "proofs/20250101_010203_ab12cd.webp" {
		t.Fatalf("unexpected key %q", key)
	}
}

func TestExtractKeyFromPublicURLInvalid(t *testing.T) {
	if _, err := ExtractKeyFromPublicURL(""); err == nil {
		t.Fatal("expected error for empty url")
	}
	if _, err := ExtractKeyFromPublicURL("https://host-only"); err == nil {
		t.Fatal("expected error for url without path")
	}
}

func TestPublicURLRoundTrip(t *testing.T) {
	s := &OSSService{BucketName: "alumnifund", Endpoint: "https://oss-ap-southeast-5.aliyuncs.com", Prefix: "proofs"}
	url := s.PublicURL("proofs/x.webp")
	key, err := ExtractKeyFromPublicURL(url)
	if err != nil || key != "proofs/x.webp" {
		t.Fatalf("round trip failed: key=%q err=%v", key, err)
	}
}
