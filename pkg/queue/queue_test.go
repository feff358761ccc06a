package queue

import (
	"testing"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	payload := FileTrashedPayload{
		File: FileRef{
			FileID:     "01ARZ3NDEKTSV4RRFFQ69G5FAV",
			Name:       "report.pdf",
			Type:       "pdf",
			StorageRef: "s3://bucket/report.pdf",
			ScopeID:    "org-1",
			OwnerID:    "alice@example.com",
		},
		RequestedBy: "bob@example.com",
	}

	env := Message[FileTrashedPayload]{
		Header:  NewEventHeader(TopicFileTrashed, WithProducer("filedrive"), WithTraceID("trace-1")),
		Payload: payload,
	}

	data, err := Encode(env)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := Decode[FileTrashedPayload](data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.Header.Topic != TopicFileTrashed {
		t.Errorf("topic = %q, want %q", got.Header.Topic, TopicFileTrashed)
	}

	if got.Header.Version != PayloadVersionV1 {
		t.Errorf("version = %q, want %q", got.Header.Version, PayloadVersionV1)
	}

	if got.Header.Producer != "filedrive" || got.Header.TraceID != "trace-1" {
		t.Errorf("header options not applied: %+v", got.Header)
	}

	if got.Payload != payload {
		t.Errorf("payload = %+v, want %+v", got.Payload, payload)
	}
}

func TestNewWatermillMessageMetadata(t *testing.T) {
	msg, err := NewWatermillMessage(TopicFilePurged, FilePurgedPayload{
		File:             FileRef{FileID: "01ARZ3NDEKTSV4RRFFQ69G5FAV", ScopeID: "org-1"},
		FavoritesRemoved: 2,
		Source:           "sweep",
	}, WithProducer("filedrive"))
	if err != nil {
		t.Fatalf("new message: %v", err)
	}

	if msg.UUID == "" {
		t.Error("message uuid is empty")
	}

	if got := msg.Metadata.Get("topic"); got != TopicFilePurged {
		t.Errorf("metadata topic = %q, want %q", got, TopicFilePurged)
	}

	env, err := ParseFilePurged(msg)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if env.Payload.FavoritesRemoved != 2 || env.Payload.Source != "sweep" {
		t.Errorf("payload = %+v", env.Payload)
	}

	if env.Payload.File.ScopeID != "org-1" {
		t.Errorf("scope_id = %q, want org-1", env.Payload.File.ScopeID)
	}
}

func TestHeaderOccurredAtIsUTC(t *testing.T) {
	hdr := NewEventHeader(TopicFavoriteToggled)
	if hdr.OccurredAt.Location() != nil && hdr.OccurredAt.Location().String() != "UTC" {
		t.Errorf("occurred_at location = %v, want UTC", hdr.OccurredAt.Location())
	}
}
