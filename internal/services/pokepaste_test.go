package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const rawExport = `Calyrex-Shadow @ Life Orb
Ability: As One (Spectrier)
Tera Type: Dark
EVs: 252 SpA / 4 SpD / 252 Spe
Timid Nature
- Astral Barrage
- Protect

Incineroar @ Safety Goggles
Ability: Intimidate
- Fake Out
`

func TestFetchRosterRaw(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/abc123/raw" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(rawExport))
	}))
	defer server.Close()

	svc := NewPasteService()
	result, err := svc.FetchRoster(context.Background(), server.URL+"/abc123")
	if err != nil {
		t.Fatalf("FetchRoster returned error: %v", err)
	}
	if result == nil {
		t.Fatal("FetchRoster returned nil result")
	}
	if len(result.Roster) != 2 {
		t.Fatalf("got %d roster entries, want 2", len(result.Roster))
	}
	if result.Roster[0].Name != "Calyrex-Shadow" || result.Roster[0].Item != "Life Orb" {
		t.Errorf("entry 0 = %q @ %q", result.Roster[0].Name, result.Roster[0].Item)
	}
	if result.Roster[1].Name != "Incineroar" {
		t.Errorf("entry 1 = %q, want Incineroar", result.Roster[1].Name)
	}
}

func TestFetchRosterHTMLFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/xyz/raw" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`<html><head><title>Rain Team</title></head><body><pre>` +
			rawExport + `</pre></body></html>`))
	}))
	defer server.Close()

	svc := NewPasteService()
	result, err := svc.FetchRoster(context.Background(), server.URL+"/xyz")
	if err != nil {
		t.Fatalf("FetchRoster returned error: %v", err)
	}
	if result == nil {
		t.Fatal("FetchRoster returned nil result")
	}
	if result.Title != "Rain Team" {
		t.Errorf("Title = %q, want %q", result.Title, "Rain Team")
	}
	if len(result.Roster) != 2 {
		t.Errorf("got %d roster entries, want 2", len(result.Roster))
	}
}

func TestFetchRosterNoRoster(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>paste not found</body></html>"))
	}))
	defer server.Close()

	svc := NewPasteService()
	result, err := svc.FetchRoster(context.Background(), server.URL+"/missing")
	if err != nil {
		t.Fatalf("FetchRoster returned error: %v", err)
	}
	if result != nil {
		t.Errorf("result = %+v, want nil for bodies without a roster", result)
	}
}

func TestFetchRosterCached(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(rawExport))
	}))
	defer server.Close()

	svc := NewPasteService()
	ctx := context.Background()
	if _, err := svc.FetchRoster(ctx, server.URL+"/cached"); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	first := hits.Load()
	if _, err := svc.FetchRoster(ctx, server.URL+"/cached"); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if hits.Load() != first {
		t.Errorf("second fetch hit the server (%d -> %d requests)", first, hits.Load())
	}
}
