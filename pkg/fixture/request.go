package fixture

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// RequestOption adjusts an outgoing request before it is sent.
type RequestOption func(req *http.Request) error

// WithHeader sets a request header. Authorization is always replaced by
// the fixture's bearer token.
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) error {
		req.Header.Set(key, value)
		return nil
	}
}

// WithQuery appends a query parameter.
func WithQuery(key, value string) RequestOption {
	return func(req *http.Request) error {
		q := req.URL.Query()
		q.Add(key, value)
		req.URL.RawQuery = q.Encode()
		return nil
	}
}

// WithJSON encodes v as the request body.
func WithJSON(v any) RequestOption {
	return func(req *http.Request) error {
		data, err := json.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "encode json body")
		}
		setBody(req, data)
		req.Header.Set("Content-Type", "application/json")
		return nil
	}
}

// WithBody sends the content of r as the request body.
func WithBody(r io.Reader, contentType string) RequestOption {
	return func(req *http.Request) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return errors.Wrap(err, "read request body")
		}
		setBody(req, data)
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		return nil
	}
}

func setBody(req *http.Request, data []byte) {
	req.Body = io.NopCloser(bytes.NewReader(data))
	req.ContentLength = int64(len(data))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// JSON decodes the body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errors.Wrap(err, "decode json response")
	}
	return nil
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// IsSuccess reports whether the status is in the 2xx class.
func (r *Response) IsSuccess() bool {
	return r.StatusCode/100 == 2
}

func (f *Fixture) request(method, path string, opts ...RequestOption) (*Response, error) {
	method = strings.ToUpper(method)
	req, err := http.NewRequestWithContext(f.ctx, method, f.opts.Host+path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s %s", method, path)
	}
	for _, opt := range opts {
		if err := opt(req); err != nil {
			return nil, err
		}
	}
	req.Header.Set("Authorization", "Bearer "+f.opts.Token)

	resp, err := f.opts.Client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, req.URL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read response of %s %s", method, req.URL)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
