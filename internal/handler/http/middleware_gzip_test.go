package http

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/nutri-audit-sync/models"
)

func gunzip(t *testing.T, r io.Reader) []byte {
	t.Helper()
	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()

	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	return body
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		status         int
		body           string
		wantGzipped    bool
	}{
		{name: "compress when client accepts gzip", acceptEncoding: "gzip", status: http.StatusOK, body: `{"pending":3}`, wantGzipped: true},
		{name: "plain when client does not accept gzip", status: http.StatusOK, body: `{"pending":3}`},
		{name: "accept-encoding list", acceptEncoding: "deflate, gzip, br", status: http.StatusOK, body: "ok", wantGzipped: true},
		{name: "error bodies are compressed too", acceptEncoding: "gzip", status: http.StatusServiceUnavailable, body: "offline", wantGzipped: true},
		{name: "no content stays bodiless", acceptEncoding: "gzip", status: http.StatusNoContent},
		{name: "accepted stays bodiless", acceptEncoding: "gzip", status: http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = io.WriteString(w, tt.body)
				}
			})

			req := httptest.NewRequest(http.MethodGet, "/api/sync/status", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))

			if tt.wantGzipped {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, string(gunzip(t, rec.Body)))
				return
			}
			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestGZip_ImplicitStatus(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "first ")
		_, _ = io.WriteString(w, "second")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "first second", string(gunzip(t, rec.Body)))
}

func TestRouter_GzipsSyncStatus(t *testing.T) {
	f := newHandlerFixture(t)
	f.engine.EXPECT().Status(gomock.Any()).Return(models.SyncStatus{Pending: 2}, nil)

	rec := f.do(http.MethodGet, "/api/sync/status", http.Header{"Accept-Encoding": {"gzip"}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.SyncStatus
	require.NoError(t, json.Unmarshal(gunzip(t, rec.Body), &got))
	assert.Equal(t, 2, got.Pending)
}

func TestRouter_EmptyReportNotGzipped(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/api/sync/report", http.Header{"Accept-Encoding": {"gzip"}})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}
