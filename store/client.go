// ABOUTME: HTTP client for the remote row store (PostgREST-style REST API)
// ABOUTME: Exposes List/Insert against named collections with equality filters and ordering
package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RemoteError is any failure talking to the remote store. The message is
// human-readable and safe to surface in the UI.
type RemoteError struct {
	Op         string
	Collection string
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Collection, e.Message)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Filter is an equality-style predicate on one field. Op follows PostgREST
// operator names ("eq", "neq", "gt", ...); OpEq covers everything the
// dashboard needs.
type Filter struct {
	Field string
	Op    string
	Value string
}

// OpEq is the equality filter operator.
const OpEq = "eq"

// Eq builds an equality filter on field.
func Eq(field, value string) Filter {
	return Filter{Field: field, Op: OpEq, Value: value}
}

// Order sorts results by one field.
type Order struct {
	Field     string
	Ascending bool
}

// Query carries the optional list parameters.
type Query struct {
	Filters []Filter
	Order   *Order
	Limit   int
}

// Client talks to one remote store endpoint. All operations are single
// attempt; there are no retries and no client-side timeout, so cancellation
// is entirely up to the caller's context.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a store client for the given endpoint and credential.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{},
	}
}

// List fetches all rows of a collection matching the query. Rows come back
// as raw JSON objects; use Fetch for typed decoding.
func (c *Client) List(ctx context.Context, collection string, q Query) ([]jsoniter.RawMessage, error) {
	body, err := c.list(ctx, collection, q)
	if err != nil {
		return nil, err
	}

	var rows []jsoniter.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, &RemoteError{Op: "list", Collection: collection, Message: "invalid response body", Err: err}
	}
	return rows, nil
}

// Insert writes one record to a collection. The remote store assigns the ID.
func (c *Client) Insert(ctx context.Context, collection string, record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return &RemoteError{Op: "insert", Collection: collection, Message: "could not encode record", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.collectionURL(collection), bytes.NewReader(payload))
	if err != nil {
		return &RemoteError{Op: "insert", Collection: collection, Message: err.Error(), Err: err}
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.http.Do(req)
	if err != nil {
		return &RemoteError{Op: "insert", Collection: collection, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{Op: "insert", Collection: collection, Message: remoteMessage(resp)}
	}
	return nil
}

// Ping probes the endpoint with a minimal read. Used at startup as a
// connectivity check; callers log failures and carry on.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.list(ctx, "clients", Query{Limit: 1})
	return err
}

func (c *Client) list(ctx context.Context, collection string, q Query) ([]byte, error) {
	params := url.Values{}
	params.Set("select", "*")
	for _, f := range q.Filters {
		params.Set(f.Field, f.Op+"."+f.Value)
	}
	if q.Order != nil {
		dir := "desc"
		if q.Order.Ascending {
			dir = "asc"
		}
		params.Set("order", q.Order.Field+"."+dir)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.collectionURL(collection)+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &RemoteError{Op: "list", Collection: collection, Message: err.Error(), Err: err}
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RemoteError{Op: "list", Collection: collection, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{Op: "list", Collection: collection, Message: remoteMessage(resp)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteError{Op: "list", Collection: collection, Message: "failed to read response", Err: err}
	}
	return body, nil
}

func (c *Client) collectionURL(collection string) string {
	return c.baseURL + "/rest/v1/" + collection
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
}

// remoteMessage extracts the store's error message from a failed response,
// falling back to the HTTP status line.
func remoteMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(body) > 0 {
		var remote struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &remote) == nil && remote.Message != "" {
			return remote.Message
		}
	}
	return resp.Status
}

// Fetch lists a collection and decodes every row into T. This is the one
// load path shared by all tabs: each view differs only in collection name,
// row type, and the aggregate it derives afterwards.
func Fetch[T any](ctx context.Context, c *Client, collection string, q Query) ([]T, error) {
	body, err := c.list(ctx, collection, q)
	if err != nil {
		return nil, err
	}

	var rows []T
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, &RemoteError{Op: "list", Collection: collection, Message: "invalid response body", Err: err}
	}
	return rows, nil
}
