package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_GetAndPostJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/pets/1":
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 1, "name": "Dolly"})
		case r.Method == http.MethodPost && r.URL.Path == "/sessions":
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{"session_id": "abc"})
		default:
			http.Error(w, "pet not found", http.StatusNotFound)
		}
	}))
	defer ts.Close()

	c, err := New(ts.URL+"/", 0)
	require.NoError(t, err)
	require.Equal(t, ts.URL, c.BaseURL)

	var pet struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, c.GetJSON(context.Background(), "pets/1", &pet))
	require.Equal(t, "Dolly", pet.Name)

	var sess struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, c.PostJSON(context.Background(), "/sessions", map[string]any{}, &sess))
	require.Equal(t, "abc", sess.SessionID)

	err = c.GetJSON(context.Background(), "/pets/999", nil)
	require.Error(t, err)
	require.Equal(t, http.StatusNotFound, StatusCode(err))
	require.Contains(t, err.Error(), "pet not found")
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New("", 0)
	require.Error(t, err)

	_, err = New("not a url", 0)
	require.Error(t, err)
}
