package handle

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/yeisme/tunevault/pkg/configs"
)

func uploadTestConfig() *configs.UploadConfig {
	return &configs.UploadConfig{
		AllowedTypes: []string{"audio/mpeg", "audio/flac"},
		MaxSizeMiB:   50,
	}
}

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)

	return &multipart.FileHeader{
		Filename: name,
		Header:   h,
		Size:     size,
	}
}

func TestValidateUploadFile(t *testing.T) {
	cfg := uploadTestConfig()

	tests := []struct {
		name    string
		file    *multipart.FileHeader
		wantErr bool
	}{
		{"allowed mp3", fileHeader("a.mp3", "audio/mpeg", 1 << 20), false},
		{"allowed flac at limit", fileHeader("b.flac", "audio/flac", 50 << 20), false},
		{"oversize", fileHeader("big.mp3", "audio/mpeg", 50<<20 + 1), true},
		{"video type rejected", fileHeader("v.mp4", "video/mp4", 1 << 20), true},
		{"missing content type", fileHeader("x.mp3", "", 1 << 20), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUploadFile(tt.file, cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateUploadFile(%s) error = %v, wantErr %v", tt.file.Filename, err, tt.wantErr)
			}
		})
	}
}
