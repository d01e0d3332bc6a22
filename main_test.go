package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ViniZap4/nurse-notes/config"
	"github.com/ViniZap4/nurse-notes/domain"
	httphandlers "github.com/ViniZap4/nurse-notes/http"
	"github.com/ViniZap4/nurse-notes/store"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func newService(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httphandlers.NewServer(store.NewSample(), zerolog.Nop())
	ts := httptest.NewServer(adaptor.FiberApp(srv.App()))
	t.Cleanup(ts.Close)
	return ts
}

func TestFetchCommand(t *testing.T) {
	ts := newService(t)
	path := filepath.Join(t.TempDir(), "nurse_notes.json")

	out, err := runRoot(t, "fetch", "--base-url", ts.URL, "--output", path)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "Retrieved 5 notes", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "note-1 2025-09-01 Patient reported mild chest pain"))
	assert.Equal(t, "Saved "+path, lines[6])
	assert.Contains(t, out, "Single note:")
	assert.Contains(t, out, `"id": "note-1"`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var saved []domain.Note
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Len(t, saved, 5)
}

func TestFetchCommandMissingNote(t *testing.T) {
	ts := newService(t)
	path := filepath.Join(t.TempDir(), "notes.yaml")

	_, err := runRoot(t, "fetch", "--base-url", ts.URL, "-o", path, "--id", "does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch note does-not-exist")

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestFetchCommandServiceDown(t *testing.T) {
	ts := newService(t)
	url := ts.URL
	ts.Close()

	path := filepath.Join(t.TempDir(), "nurse_notes.json")
	_, err := runRoot(t, "fetch", "--base-url", url, "-o", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch all notes")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestInvalidLogFlag(t *testing.T) {
	_, err := runRoot(t, "--log-format", "xml", "fetch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log format")
}

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return strconv.Itoa(port)
}

func TestServeLifecycle(t *testing.T) {
	a := &app{
		cfg: config.Config{
			Host:            "127.0.0.1",
			Port:            freePort(t),
			ShutdownTimeout: 5 * time.Second,
		},
		log: zerolog.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.serve(ctx)
	}()

	base := "http://" + a.cfg.Addr()
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	resp, err := http.Get(base + "/api/v1/notes/note-3")
	require.NoError(t, err)
	var note domain.Note
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&note))
	resp.Body.Close()
	assert.Equal(t, "note-3", note.ID)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}
