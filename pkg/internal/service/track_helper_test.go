package service

import (
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestSanitizeObjectKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no whitespace", "song.mp3", "song.mp3"},
		{"single space", "my song.mp3", "my_song.mp3"},
		{"whitespace run", "my   song\t demo.flac", "my_song_demo.flac"},
		{"leading trailing", " song .ogg", "_song_.ogg"},
		{"unicode name", "周杰伦 七里香.mp3", "周杰伦_七里香.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeObjectKey(tt.in); got != tt.want {
				t.Errorf("sanitizeObjectKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPublicURL(t *testing.T) {
	got := publicURL("http://localhost:8080", RouteView, "my_song.mp3")
	if got != "http://localhost:8080/view/my_song.mp3" {
		t.Errorf("unexpected url: %s", got)
	}

	// 基础地址末尾斜杠不应产生双斜杠
	got = publicURL("http://localhost:8080/", RouteDownload, "a b.mp3")
	if got != "http://localhost:8080/download/a%20b.mp3" {
		t.Errorf("unexpected url: %s", got)
	}
}

func TestBuildCoverKey(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	key := buildCoverKey("my_song.mp3", "English", 2020, now, "jpg")

	pattern := regexp.MustCompile(`^my_song-English-2020-20260315\d{6}\.jpg$`)
	if !pattern.MatchString(key) {
		t.Errorf("cover key %q does not match expected pattern", key)
	}
}

func TestBuildCoverKeyMissingMetadata(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	key := buildCoverKey("track.flac", "", 0, now, "png")

	if !strings.HasPrefix(key, "track-null-null-20260315") {
		t.Errorf("missing metadata should use null segments, got %q", key)
	}

	if !strings.HasSuffix(key, ".png") {
		t.Errorf("extension should follow cover picture, got %q", key)
	}
}

func TestCoverKeyFromURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "http://localhost:8080/viewCoverImage/song-null-null-20260315123456.jpg", "song-null-null-20260315123456.jpg"},
		{"escaped", "http://localhost:8080/viewCoverImage/a%20b-null-null-20260315123456.jpg", "a b-null-null-20260315123456.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coverKeyFromURL(tt.in); got != tt.want {
				t.Errorf("coverKeyFromURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCoverKeyRoundTrip(t *testing.T) {
	now := time.Now().UTC()
	key := buildCoverKey(sanitizeObjectKey("深夜 电台.mp3"), "Chinese", 2021, now, "jpg")

	sanitized := sanitizeObjectKey(key)
	if sanitized != key {
		t.Errorf("cover key should not contain whitespace: %q", key)
	}

	url := publicURL("http://localhost:8080", RouteCoverView, key)
	if got := coverKeyFromURL(url); got != key {
		t.Errorf("round trip mismatch: got %q, want %q", got, key)
	}
}

func TestNewTrackIDConcurrent(t *testing.T) {
	const (
		goroutines = 8
		perG       = 200
	)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[string]bool, goroutines*perG)
	)

	for range goroutines {
		wg.Add(1)

		go func() {
			defer wg.Done()

			local := make([]string, 0, perG)
			for range perG {
				local = append(local, newTrackID(time.Now()))
			}

			mu.Lock()
			defer mu.Unlock()

			for _, id := range local {
				if ids[id] {
					t.Errorf("duplicate id generated: %s", id)
				}

				ids[id] = true
			}
		}()
	}

	wg.Wait()

	if len(ids) != goroutines*perG {
		t.Errorf("expected %d unique ids, got %d", goroutines*perG, len(ids))
	}
}

func TestNewTrackIDOrdering(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Second)

	id1 := newTrackID(t1)
	id2 := newTrackID(t2)

	if len(id1) != 26 || len(id2) != 26 {
		t.Fatalf("ulid length mismatch: %q %q", id1, id2)
	}

	if !(id1 < id2) {
		t.Errorf("ids should sort by time: %q >= %q", id1, id2)
	}
}
