package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httphandlers "github.com/ViniZap4/nurse-notes/http"
	"github.com/ViniZap4/nurse-notes/store"
)

func newService(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httphandlers.NewServer(store.NewSample(), zerolog.Nop())
	ts := httptest.NewServer(adaptor.FiberApp(srv.App()))
	t.Cleanup(ts.Close)
	return ts
}

func TestEndToEnd(t *testing.T) {
	ts := newService(t)
	c, err := New(ts.URL + "/")
	require.NoError(t, err)

	notes, err := c.ListNotes(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 5)
	assert.Equal(t, "note-1", notes[0].ID)

	note, err := c.GetNote(context.Background(), "note-3")
	require.NoError(t, err)
	require.NotNil(t, note.PatientID)
	assert.Equal(t, "patient-1003", *note.PatientID)
	assert.Equal(t, "2025-09-02", note.NoteDate)
	assert.Equal(t, "new", note.Status)
	assert.Equal(t, time.Date(2025, 9, 2, 7, 50, 0, 0, time.UTC), note.CreatedAt.UTC())
}

func TestGetNoteNotFound(t *testing.T) {
	ts := newService(t)
	c, err := New(ts.URL)
	require.NoError(t, err)

	_, err = c.GetNote(context.Background(), "does-not-exist")
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Contains(t, se.Body, "Note not found")
	assert.Contains(t, err.Error(), "404 Not Found")
}

func TestServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "broken", http.StatusBadGateway)
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	require.NoError(t, err)

	_, err = c.ListNotes(context.Background())
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadGateway, se.Code)
	assert.Equal(t, "broken", se.Body)
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	c, err := New(ts.URL, WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	_, err = c.ListNotes(context.Background())
	require.Error(t, err)

	var ue *url.Error
	require.True(t, errors.As(err, &ue))
	assert.True(t, ue.Timeout())
}

func TestBadJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	require.NoError(t, err)

	_, err = c.GetNote(context.Background(), "note-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestNewInvalidBaseURL(t *testing.T) {
	for _, raw := range []string{"127.0.0.1:8000", "ftp://host", "://bad"} {
		_, err := New(raw)
		assert.Error(t, err, raw)
	}
}
