package queue_test

import (
	"testing"
	"time"

	"github.com/yeisme/tunevault/pkg/queue"
)

func TestWatermillMessageRoundTrip(t *testing.T) {
	payload := queue.TrackStoredPayload{
		Object: queue.ObjectRef{
			Bucket:      "tunevault",
			ObjectKey:   "some_track.mp3",
			Size:        1024,
			ContentType: "audio/mpeg",
		},
		RecordID: "01JABCDEF0123456789ABCDEF0",
		FileName: "some track.mp3",
		Year:     1999,
		Language: "English",
	}

	msg, err := queue.NewWatermillMessage(
		queue.TopicTrackStored, payload,
		queue.WithTraceID("trace-xyz"),
		queue.WithProducer("tunevault"),
	)
	if err != nil {
		t.Fatalf("build message: %v", err)
	}

	if msg.Metadata.Get("topic") != queue.TopicTrackStored {
		t.Errorf("topic metadata = %q", msg.Metadata.Get("topic"))
	}

	if msg.Metadata.Get("trace_id") != "trace-xyz" {
		t.Errorf("trace_id metadata = %q", msg.Metadata.Get("trace_id"))
	}

	env, err := queue.ParseTrackStored(msg)
	if err != nil {
		t.Fatalf("parse message: %v", err)
	}

	if env.Header.Topic != queue.TopicTrackStored {
		t.Errorf("header topic = %q", env.Header.Topic)
	}

	if env.Header.Version != queue.PayloadVersionV1 {
		t.Errorf("header version = %q", env.Header.Version)
	}

	if time.Since(env.Header.OccurredAt) > time.Minute {
		t.Errorf("occurred_at too old: %v", env.Header.OccurredAt)
	}

	if env.Payload.Object.ObjectKey != payload.Object.ObjectKey {
		t.Errorf("object key = %q", env.Payload.Object.ObjectKey)
	}

	if env.Payload.RecordID != payload.RecordID || env.Payload.Language != "English" {
		t.Errorf("payload mismatch: %+v", env.Payload)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := queue.Decode[queue.TrackStoredPayload]([]byte("{not json")); err == nil {
		t.Fatal("expected decode error")
	}
}
