package fs

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/satchel/pkg/core"
)

func TestStoreRoundTrip(t *testing.T) {
	for _, ext := range []string{".json", ".yaml", ".msgpack"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "vault"+ext)
			store := NewStore(Config{Path: path})
			ctx := context.Background()

			if err := store.Write(ctx, sampleContainer()); err != nil {
				t.Fatalf("Write failed: %v", err)
			}

			loaded, report, err := store.Load(ctx)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if !report.Clean() {
				t.Errorf("clean archive reported drops: %+v", report)
			}

			for _, key := range core.Keys() {
				if loaded.Len(key) != 1 {
					t.Errorf("%s: want 1 item, got %d", key, loaded.Len(key))
				}
			}

			event := loaded.Items(core.HomeEvents)[0].(core.Event)
			if event.Title != "title1" || event.Description != "description1" {
				t.Errorf("event fields lost: %+v", event)
			}
			if note := loaded.Items(core.Notes)[0].(core.Note); note.Text != "text3" {
				t.Errorf("note fields lost: %+v", note)
			}
		})
	}
}

func TestStoreEmptyRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	store := NewStore(Config{Path: path})
	ctx := context.Background()

	if err := store.Write(ctx, core.NewContainer()); err != nil {
		t.Fatal(err)
	}
	loaded, _, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range core.Keys() {
		if loaded.Len(key) != 0 {
			t.Errorf("%s not empty", key)
		}
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(Config{Path: filepath.Join(t.TempDir(), "absent.json")})

	_, _, err := store.Load(context.Background())
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "absent.json") {
		t.Errorf("error should name the path: %v", err)
	}
}

func TestStoreLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewStore(Config{Path: path})

	_, _, err := store.Load(context.Background())
	if !errors.Is(err, core.ErrEnvelope) {
		t.Errorf("want ErrEnvelope, got %v", err)
	}
	if errors.Is(err, core.ErrNotFound) {
		t.Error("malformed and missing must be distinct")
	}
}

func TestStoreLoadPartialCorruption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	ctx := context.Background()

	// An envelope that is itself valid, with one truncated notes blob and
	// one unknown key.
	good1, _ := core.Note{Text: "one"}.Encode()
	good2, _ := core.Note{Text: "two"}.Encode()
	env := Envelope{
		"notes":   {good1, []byte(`{"text":"trunc`), good2},
		"archery": {[]byte(`{}`)},
	}
	data, err := (&JSONSerializer{}).Marshal(env)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(Config{Path: path})
	loaded, report, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("partial corruption must not fail the read: %v", err)
	}
	if loaded.Len(core.Notes) != 2 {
		t.Errorf("want the 2 valid notes, got %d", loaded.Len(core.Notes))
	}
	if report.DroppedItems != 1 || len(report.UnknownKeys) != 1 || report.UnknownKeys[0] != "archery" {
		t.Errorf("unexpected report: %+v", report)
	}
}

type explodingSerializer struct{}

func (explodingSerializer) Marshal(Envelope) ([]byte, error) {
	return nil, errors.New("exploded")
}

func (explodingSerializer) Unmarshal([]byte) (Envelope, error) {
	return nil, errors.New("exploded")
}

func TestStoreWriteFailureKeepsPreviousArchive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vault.json")
	ctx := context.Background()

	if err := NewStore(Config{Path: path}).Write(ctx, sampleContainer()); err != nil {
		t.Fatal(err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// A write that dies before reaching the disk must leave the previous
	// archive byte-identical and no temp files behind.
	bad := NewStore(Config{Path: path, Serializer: explodingSerializer{}})
	if err := bad.Write(ctx, sampleContainer()); err == nil {
		t.Fatal("expected write failure")
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("failed write corrupted the previous archive")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), TempFilePrefix) {
			t.Errorf("stray temp file: %s", e.Name())
		}
	}
}

func TestNewStorePicksSerializerByExtension(t *testing.T) {
	tests := []struct {
		path string
		want Serializer
	}{
		{"vault.json", &JSONSerializer{}},
		{"vault.YAML", &YAMLSerializer{}},
		{"vault.msgpack", &MsgpackSerializer{}},
		{"vault.db", &MsgpackSerializer{}}, // fallback
		{"vault", &MsgpackSerializer{}},
	}

	for _, tc := range tests {
		store := NewStore(Config{Path: tc.path})
		if gotT, wantT := storeSerializerType(store), serializerType(tc.want); gotT != wantT {
			t.Errorf("%s: got %s, want %s", tc.path, gotT, wantT)
		}
	}
}

func storeSerializerType(s *Store) string { return serializerType(s.serializer) }

func serializerType(s Serializer) string {
	switch s.(type) {
	case *JSONSerializer:
		return "json"
	case *YAMLSerializer:
		return "yaml"
	case *MsgpackSerializer:
		return "msgpack"
	}
	return "unknown"
}
