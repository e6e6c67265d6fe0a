package metadata_test

import (
	"bytes"
	"testing"

	"github.com/yeisme/tunevault/pkg/internal/metadata"
)

func TestLanguageName(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"eng", "English"},
		{"ENG", "English"},
		{" jpn ", "Japanese"},
		{"chi", "Chinese"},
		{"zho", "Chinese"},
		{"und", ""},
		{"xxx", ""},
		{"", ""},
		{"tlh", "tlh"}, // 未知代码原样返回
	}

	for _, c := range cases {
		if got := metadata.LanguageName(c.code); got != c.want {
			t.Errorf("LanguageName(%q) = %q, want %q", c.code, got, c.want)
		}
	}
}

func TestProbeEmptyID3v2(t *testing.T) {
	// 最小的 ID3v2.4 标签：10 字节头，无任何帧，后跟填充音频数据
	buf := bytes.NewReader(append(
		[]byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 0},
		make([]byte, 64)...,
	))

	meta, err := metadata.Probe(buf)
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}

	if meta.Year != 0 {
		t.Errorf("expected zero year, got %d", meta.Year)
	}

	if meta.Language != "" {
		t.Errorf("expected empty language, got %q", meta.Language)
	}

	if meta.Picture != nil {
		t.Error("expected no picture")
	}
}

func TestProbeGarbageInput(t *testing.T) {
	buf := bytes.NewReader([]byte("definitely not an audio file"))

	if _, err := metadata.Probe(buf); err == nil {
		t.Fatal("expected error for unrecognized input")
	}
}
