package feed

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    []float64
		wantErr bool
	}{
		{name: "array", status: http.StatusOK, body: `[1, 2, 3.5]`, want: []float64{1, 2, 3.5}},
		{name: "empty array", status: http.StatusOK, body: `[]`, want: []float64{}},
		{name: "null", status: http.StatusOK, body: `null`, want: []float64{}},
		{name: "not numbers", status: http.StatusOK, body: `["a"]`, wantErr: true},
		{name: "server error", status: http.StatusInternalServerError, body: `[]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := Fetch(context.Background(), srv.URL)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetch_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[1]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Fetch(ctx, srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseList(t *testing.T) {
	got, err := ParseList(" 1, 2,3.5 ,-4")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3.5, -4}, got)

	got, err = ParseList("")
	require.NoError(t, err)
	assert.Equal(t, []float64{}, got)

	got, err = ParseList("1,Inf,-Inf")
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.True(t, math.IsInf(got[1], 1))
	assert.True(t, math.IsInf(got[2], -1))

	_, err = ParseList("1,,2")
	assert.Error(t, err)

	_, err = ParseList("1,x")
	assert.Error(t, err)
}
