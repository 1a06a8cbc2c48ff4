package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gustavoarielrecha-beep/AJC-POC/internal/config"
)

func TestStaticMissingDir(t *testing.T) {
	cfg := config.ServeConfig{Dir: filepath.Join(t.TempDir(), "dist"), HTTPAddr: "127.0.0.1:0"}
	if err := Static(context.Background(), cfg); err == nil {
		t.Error("expected an error for a missing asset directory")
	}
}

func TestStaticShutsDownOnCancel(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- Static(ctx, config.ServeConfig{Dir: dir, HTTPAddr: "127.0.0.1:0"})
	}()

	// Give the listener a moment to come up, then cancel.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("graceful shutdown should return nil, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down after cancellation")
	}
}

func TestCertPairExists(t *testing.T) {
	dir := t.TempDir()
	cert := filepath.Join(dir, "cert_ajc.crt")
	key := filepath.Join(dir, "cert_ajc.key")

	if certPairExists(cert, key) {
		t.Error("missing files must not count as a pair")
	}
	if err := os.WriteFile(cert, []byte("cert"), 0o600); err != nil {
		t.Fatal(err)
	}
	if certPairExists(cert, key) {
		t.Error("half a pair is not a pair")
	}
	if err := os.WriteFile(key, []byte("key"), 0o600); err != nil {
		t.Fatal(err)
	}
	if !certPairExists(cert, key) {
		t.Error("both files present, expected true")
	}
}
