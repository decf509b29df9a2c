package utils

import (
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/princinho/ecomapi/config"
)

func TestUploadImagesToR2FileCountBounds(t *testing.T) {
	// No S3 call happens before the count check, so a bare client works.
	r2 := &R2Client{Bucket: "images", PublicDomain: "https://cdn.example.com"}
	ctx := context.Background()

	if _, err := UploadImagesToR2(ctx, r2, "shoes", nil); err == nil {
		t.Fatal("expected error for zero files")
	}
	five := make([]*multipart.FileHeader, 5)
	for i := range five {
		five[i] = &multipart.FileHeader{Filename: "img.png"}
	}
	if _, err := UploadImagesToR2(ctx, r2, "shoes", five); err == nil {
		t.Fatal("expected error for five files")
	} else if !strings.Contains(err.Error(), "images must be 1 to 4") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestR2PublicURL(t *testing.T) {
	r2 := &R2Client{Bucket: "images", PublicDomain: "https://cdn.example.com/"}
	got := r2.publicURL("uploads/shoes/1.png")
	if got != "https://cdn.example.com/images/uploads/shoes/1.png" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestNewR2ClientRequiresFullConfig(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{
		R2Bucket:      "images",
		R2AccessKeyID: "key",
		R2SecretKey:   "secret",
		// R2Endpoint missing
	}
	if _, err := NewR2Client(ctx, cfg); err == nil {
		t.Fatal("expected error for missing endpoint")
	}
}
