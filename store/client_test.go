// ABOUTME: Tests for the remote store client
// ABOUTME: Uses httptest servers to verify query building, decoding, and error mapping
package store

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/opsdash/models"
)

func TestList_BuildsQueryAndHeaders(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	var gotAPIKey, gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-key")
	rows, err := c.List(context.Background(), "clients", Query{
		Filters: []Filter{Eq("status", "active")},
		Order:   &Order{Field: "name", Ascending: true},
		Limit:   10,
	})
	require.NoError(t, err)
	assert.Empty(t, rows)

	assert.Equal(t, "/rest/v1/clients", gotPath)
	assert.Equal(t, "*", gotQuery["select"])
	assert.Equal(t, "eq.active", gotQuery["status"])
	assert.Equal(t, "name.asc", gotQuery["order"])
	assert.Equal(t, "10", gotQuery["limit"])
	assert.Equal(t, "secret-key", gotAPIKey)
	assert.Equal(t, "Bearer secret-key", gotAuth)
}

func TestList_DescendingOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "date.desc", r.URL.Query().Get("order"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k")
	_, err := c.List(context.Background(), "financials", Query{Order: &Order{Field: "date"}})
	require.NoError(t, err)
}

func TestFetch_DecodesTypedRows(t *testing.T) {
	id := uuid.NewString()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"` + id + `","name":"TechCorp Solutions","status":"active","mrr_value":2499,"health_score":85}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k")
	rows, err := Fetch[models.Client](context.Background(), c, "clients", Query{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0].ID)
	assert.Equal(t, "TechCorp Solutions", rows[0].Name)
	assert.Equal(t, 2499.0, rows[0].MRRValue)
	assert.Equal(t, 85.0, rows[0].HealthScore)
}

func TestFetch_MissingFieldsDecodeAsZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"bare"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k")
	rows, err := Fetch[models.Client](context.Background(), c, "clients", Query{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].MRRValue)
}

func TestList_RemoteErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"relation does not exist"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k")
	_, err := c.List(context.Background(), "nope", Query{})
	require.Error(t, err)

	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, "list", remoteErr.Op)
	assert.Equal(t, "nope", remoteErr.Collection)
	assert.Equal(t, "relation does not exist", remoteErr.Message)
}

func TestList_StatusFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "k")
	_, err := c.List(context.Background(), "clients", Query{})
	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Contains(t, remoteErr.Message, "500")
}

func TestList_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL, "k")
	_, err := c.List(context.Background(), "clients", Query{})
	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.NotEmpty(t, remoteErr.Message)
}

func TestInsert_PostsRecord(t *testing.T) {
	var gotMethod, gotPrefer, gotContentType string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPrefer = r.Header.Get("Prefer")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL, "k")
	err := c.Insert(context.Background(), "financials", models.FinancialRecord{
		Type:     models.TypeExpense,
		Category: "API Costs",
		Amount:   500,
		Date:     "2026-02-18",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "return=minimal", gotPrefer)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "expense", gotBody["type"])
	assert.Equal(t, "API Costs", gotBody["category"])
	assert.Equal(t, 500.0, gotBody["amount"])
}

func TestInsert_SurfacesRemoteMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"duplicate key value"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k")
	err := c.Insert(context.Background(), "clients", models.Client{Name: "dup"})

	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, "insert", remoteErr.Op)
	assert.Equal(t, "duplicate key value", remoteErr.Message)
}

func TestPing(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k")
	require.NoError(t, c.Ping(context.Background()))
	assert.Equal(t, 1, calls, "ping is a single attempt")
}
