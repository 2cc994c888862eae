package suitectl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"suited/pkg/types"
)

// Client is a thin HTTP client for the suited daemon API.
type Client struct {
	base string
	http *http.Client
}

// NewClient targets a daemon at base, e.g. "http://localhost:8080".
func NewClient(base string) *Client {
	return &Client{base: base, http: &http.Client{Timeout: 5 * time.Minute}}
}

func (c *Client) do(method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.base+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var apiErr types.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s (%d)", apiErr.Error, apiErr.Code)
		}
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Status() (types.StatusResponse, error) {
	var out types.StatusResponse
	err := c.do(http.MethodGet, "/status", nil, &out)
	return out, err
}

func (c *Client) Suites() (types.SuitesResponse, error) {
	var out types.SuitesResponse
	err := c.do(http.MethodGet, "/suites", nil, &out)
	return out, err
}

func (c *Client) SuiteStatus(name string) (types.SuiteStatus, error) {
	var out types.SuiteStatus
	err := c.do(http.MethodGet, "/suites/"+name, nil, &out)
	return out, err
}

func (c *Client) Register(cfg types.SuiteConfig) error {
	return c.do(http.MethodPost, "/suites", cfg, nil)
}

func (c *Client) Load(name string, force bool) (types.SuiteStatus, error) {
	path := "/suites/" + name + "/load"
	if force {
		path += "?force=1"
	}
	var out types.SuiteStatus
	err := c.do(http.MethodPost, path, nil, &out)
	return out, err
}

func (c *Client) Unload(name string) error {
	return c.do(http.MethodPost, "/suites/"+name+"/unload", nil, nil)
}

func (c *Client) Checkout(name string) error {
	return c.do(http.MethodPost, "/suites/"+name+"/checkout", nil, nil)
}

func (c *Client) Release(name string) error {
	return c.do(http.MethodPost, "/suites/"+name+"/release", nil, nil)
}

func (c *Client) Optimize() (types.OptimizeReport, error) {
	var out types.OptimizeReport
	err := c.do(http.MethodPost, "/optimize", nil, &out)
	return out, err
}

func (c *Client) Cleanup() (types.CleanupReport, error) {
	var out types.CleanupReport
	err := c.do(http.MethodPost, "/cleanup", nil, &out)
	return out, err
}
