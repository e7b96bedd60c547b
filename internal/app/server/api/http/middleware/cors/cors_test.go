package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		origins     []string
		origin      string
		method      string
		preflight   bool
		wantStatus  int
		wantAllowed string
	}{
		{name: "wildcard", origins: []string{"*"}, origin: "http://ui.test", method: http.MethodGet, wantStatus: http.StatusOK, wantAllowed: "*"},
		{name: "listed origin", origins: []string{"http://ui.test"}, origin: "http://ui.test", method: http.MethodGet, wantStatus: http.StatusOK, wantAllowed: "http://ui.test"},
		{name: "unlisted origin", origins: []string{"http://ui.test"}, origin: "http://evil.test", method: http.MethodGet, wantStatus: http.StatusOK},
		{name: "no origin header", origins: []string{"*"}, method: http.MethodGet, wantStatus: http.StatusOK},
		{name: "preflight", origins: []string{"*"}, origin: "http://ui.test", method: http.MethodOptions, preflight: true, wantStatus: http.StatusNoContent, wantAllowed: "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/todos", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
			}
			rec := httptest.NewRecorder()

			Handler(tt.origins)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
