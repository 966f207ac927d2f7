package dataservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

var ErrMissingDataServiceURL = errors.New("missing DATA_SERVICE_URL")
var ErrMissingDataServiceKey = errors.New("missing DATA_SERVICE_API_KEY")

const restPrefix = "/rest/v1/"

// Client speaks the tabular REST protocol of the external data service.
//
// Every request carries the static service key both as the apikey header and
// as a bearer token. Reads are GETs with a select list and filter predicates
// in the query string; conditional updates are PATCHes whose query string is
// the WHERE clause; procedure calls are POSTs to /rpc/<name>.
//
// Requests use the transport's default timeout and are never retried here;
// callers surface failures as-is.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func New(baseURL, apiKey string) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingDataServiceURL
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingDataServiceKey
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, httpc: http.DefaultClient}, nil
}

// Get reads rows from table into out (a pointer to a slice of row structs).
func (c *Client) Get(ctx context.Context, table string, q *Query, out any) error {
	return c.do(ctx, http.MethodGet, restPrefix+table, q, nil, false, out)
}

// Insert POSTs a row. When out is non-nil the representation-return mode is
// requested and the created row(s) are decoded into it.
func (c *Client) Insert(ctx context.Context, table string, body any, out any) error {
	return c.do(ctx, http.MethodPost, restPrefix+table, nil, body, out != nil, out)
}

// Update PATCHes the rows matched by q, setting the columns in body.
//
// The representation-return mode is always requested so callers can inspect
// the affected row set; an empty set means the WHERE clause matched nothing,
// which is how a lost claim race is detected.
func (c *Client) Update(ctx context.Context, table string, q *Query, body any, out any) error {
	return c.do(ctx, http.MethodPatch, restPrefix+table, q, body, true, out)
}

// Delete removes the rows matched by q.
func (c *Client) Delete(ctx context.Context, table string, q *Query) error {
	return c.do(ctx, http.MethodDelete, restPrefix+table, q, nil, false, nil)
}

// RPC calls a stored procedure with named parameters.
func (c *Client) RPC(ctx context.Context, function string, params any, out any) error {
	return c.do(ctx, http.MethodPost, restPrefix+"rpc/"+function, nil, params, false, out)
}

func (c *Client) do(ctx context.Context, method, path string, q *Query, body any, wantRepresentation bool, out any) error {
	u := c.baseURL + path
	if q != nil {
		if enc := q.Encode(); enc != "" {
			u += "?" + enc
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if wantRepresentation {
		req.Header.Set("Prefer", "return=representation")
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	text, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		log.Printf("[dataservice][client] %s %s failed status=%d", method, path, res.StatusCode)
		return errorFromResponse(res.StatusCode, text)
	}

	if out == nil || len(bytes.TrimSpace(text)) == 0 {
		return nil
	}
	return json.Unmarshal(text, out)
}

// errorFromResponse extracts a message from a JSON error body field if
// present, else the raw response text, else a generic "HTTP <status>".
func errorFromResponse(status int, text []byte) error {
	var body struct {
		Message          string `json:"message"`
		ErrorText        string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(text, &body); err == nil {
		for _, msg := range []string{body.Message, body.ErrorText, body.ErrorDescription} {
			if msg != "" {
				return errors.New(msg)
			}
		}
	}
	if raw := strings.TrimSpace(string(text)); raw != "" {
		return errors.New(raw)
	}
	return fmt.Errorf("HTTP %d", status)
}

// Query builds the filter/projection query string of a request. Predicates
// keep insertion order, which keeps request URLs deterministic for tests.
type Query struct {
	pairs []pair
}

type pair struct {
	key   string
	value string
}

func NewQuery() *Query {
	return &Query{}
}

func (q *Query) add(key, value string) *Query {
	q.pairs = append(q.pairs, pair{key: key, value: value})
	return q
}

func (q *Query) Select(cols ...string) *Query {
	return q.add("select", strings.Join(cols, ","))
}

func (q *Query) Eq(col, value string) *Query {
	return q.add(col, "eq."+value)
}

func (q *Query) IsNull(col string) *Query {
	return q.add(col, "is.null")
}

func (q *Query) IsTrue(col string) *Query {
	return q.add(col, "is.true")
}

func (q *Query) Gte(col string, value int) *Query {
	return q.add(col, "gte."+strconv.Itoa(value))
}

func (q *Query) Lte(col string, value int) *Query {
	return q.add(col, "lte."+strconv.Itoa(value))
}

func (q *Query) Order(col, dir string) *Query {
	return q.add("order", col+"."+dir)
}

func (q *Query) Limit(n int) *Query {
	return q.add("limit", strconv.Itoa(n))
}

func (q *Query) Encode() string {
	parts := make([]string, 0, len(q.pairs))
	for _, p := range q.pairs {
		parts = append(parts, p.key+"="+url.QueryEscape(p.value))
	}
	return strings.Join(parts, "&")
}
