package dataset

import (
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"

	"code.cloudfoundry.org/lager/v3"
)

const (
	DefaultURL              = "https://data.cms.gov/data-api/v1/dataset/f8610e87-ba25-43a3-a49e-927dbc8701ae/data"
	DefaultTokenHeader      = "X-App-Token"
	DefaultTotalCountHeader = "X-Total-Count"

	// NoOffset leaves the offset query parameter off the request.
	NoOffset = -1
)

type httpClient interface {
	Do(*http.Request) (*http.Response, error)
}

type Client struct {
	URL         string
	TokenHeader string
	HTTPClient  httpClient
	Logger      lager.Logger
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

type TransportError struct {
	Offset     int
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("http status %d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}

func IsTransportError(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

func (c *Client) Get(offset, limit int, token string) (*Response, error) {
	reqURL, err := c.pageURL(offset, limit)
	if err != nil {
		return nil, &TransportError{Offset: offset, Message: fmt.Sprintf("build url: %s", err)}
	}

	request, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, &TransportError{Offset: offset, Message: fmt.Sprintf("http new request: %s", err)}
	}
	if token != "" {
		request.Header.Set(c.tokenHeader(), token)
	}

	c.Logger.Debug("get-page", lager.Data{"URL": reqURL})

	resp, err := c.HTTPClient.Do(request)
	if err != nil {
		return nil, &TransportError{Offset: offset, Message: fmt.Sprintf("http client do: %s", err)}
	}
	defer resp.Body.Close() // untested

	respBytes, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Offset: offset, Message: fmt.Sprintf("body read: %s", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.Logger.Error("http-client", errors.New(http.StatusText(resp.StatusCode)), lager.Data{
			"body":   truncate(respBytes, 500),
			"code":   resp.StatusCode,
			"offset": offset,
		})
		return nil, &TransportError{
			Offset:     offset,
			StatusCode: resp.StatusCode,
			Message:    truncate(respBytes, 500),
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBytes,
	}, nil
}

func (c *Client) pageURL(offset, limit int) (string, error) {
	u, err := url.Parse(c.URL)
	if err != nil {
		return "", err
	}
	query := u.Query()
	if offset >= 0 {
		query.Set("offset", strconv.Itoa(offset))
	}
	query.Set("limit", strconv.Itoa(limit))
	u.RawQuery = query.Encode()
	return u.String(), nil
}

func (c *Client) tokenHeader() string {
	if c.TokenHeader == "" {
		return DefaultTokenHeader
	}
	return c.TokenHeader
}

func truncate(b []byte, max int) string {
	if len(b) > max {
		return string(b[:max])
	}
	return string(b)
}
