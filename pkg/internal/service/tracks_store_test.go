package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/yeisme/tunevault/pkg/internal/model"
	"github.com/yeisme/tunevault/pkg/internal/storage/db"
)

// newTestTrackService 构造仅带数据库的服务实例.
// s3/mq/cache 留空：被测路径在触及对象存储前就应返回.
func newTestTrackService(t *testing.T) *TrackService {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "tracks.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := gdb.AutoMigrate(&model.TrackRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return &TrackService{
		dbClient: &db.Client{DB: gdb},
	}
}

func insertTestRecord(t *testing.T, ts *TrackService, key string, uploadedAt time.Time) model.TrackRecord {
	t.Helper()

	record := model.TrackRecord{
		ID:         newTrackID(uploadedAt),
		ObjectKey:  key,
		FileName:   key,
		Bucket:     "tunevault",
		UploadedAt: uploadedAt,
	}

	if err := ts.dbClient.Create(&record).Error; err != nil {
		t.Fatalf("insert record %s: %v", key, err)
	}

	return record
}

func TestDeleteTrackNotFound(t *testing.T) {
	ts := newTestTrackService(t)

	// s3Client 为空：记录缺失时必须在任何存储调用前返回
	_, err := ts.DeleteTrack(context.Background(), "01JXXXXXXXXXXXXXXXXXXXXXXX")
	if !errors.Is(err, ErrTrackNotFound) {
		t.Fatalf("expected ErrTrackNotFound, got %v", err)
	}
}

func TestDeleteTrackNotFoundAfterInsert(t *testing.T) {
	ts := newTestTrackService(t)
	insertTestRecord(t, ts, "existing.mp3", time.Now().UTC())

	_, err := ts.DeleteTrack(context.Background(), newTrackID(time.Now()))
	if !errors.Is(err, ErrTrackNotFound) {
		t.Fatalf("expected ErrTrackNotFound for unknown id, got %v", err)
	}
}

func TestListTracksOrderedByUploadTime(t *testing.T) {
	ts := newTestTrackService(t)

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	insertTestRecord(t, ts, "oldest.mp3", base)
	insertTestRecord(t, ts, "newest.mp3", base.Add(2*time.Hour))
	insertTestRecord(t, ts, "middle.mp3", base.Add(time.Hour))

	resp, err := ts.ListTracks(context.Background())
	if err != nil {
		t.Fatalf("list tracks: %v", err)
	}

	if resp.Total != 3 || len(resp.Files) != 3 {
		t.Fatalf("expected 3 records, got total=%d len=%d", resp.Total, len(resp.Files))
	}

	want := []string{"newest.mp3", "middle.mp3", "oldest.mp3"}
	for i, key := range want {
		if resp.Files[i].ObjectKey != key {
			t.Errorf("position %d: expected %s, got %s", i, key, resp.Files[i].ObjectKey)
		}
	}
}

func TestListTracksEmpty(t *testing.T) {
	ts := newTestTrackService(t)

	resp, err := ts.ListTracks(context.Background())
	if err != nil {
		t.Fatalf("list tracks: %v", err)
	}

	if resp.Total != 0 || len(resp.Files) != 0 {
		t.Errorf("expected empty list, got total=%d len=%d", resp.Total, len(resp.Files))
	}
}
