package worldbank

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointURL(t *testing.T) {
	c := NewClient(WithBaseURL("https://api.worldbank.org/v2"))
	q := Query{Country: "CAN", Indicator: "SP.POP.TOTL", StartYear: 2018, EndYear: 2020, Limit: 10}

	got := c.EndpointURL(q)
	u, err := url.Parse(got)
	require.NoError(t, err)

	assert.Equal(t, "/v2/country/CAN/indicator/SP.POP.TOTL", u.Path)
	assert.Equal(t, "json", u.Query().Get("format"))
	assert.Equal(t, "2018:2020", u.Query().Get("date"))
	assert.Equal(t, "10", u.Query().Get("per_page"))
}

func TestEndpointURLEscapesCodes(t *testing.T) {
	c := NewClient(WithBaseURL("http://example.test"))
	q := Query{Country: "C N", Indicator: "SP/POP", StartYear: 2018, EndYear: 2020, Limit: 5}

	got := c.EndpointURL(q)
	assert.Contains(t, got, "/country/C%20N/")
	assert.Contains(t, got, "/indicator/SP%2FPOP?")
}

func TestEndpointURLClampsPerPage(t *testing.T) {
	c := NewClient(WithBaseURL("http://example.test"))
	q := Query{Country: "CAN", Indicator: "SP.POP.TOTL", StartYear: 2018, EndYear: 2020, Limit: 50}

	u, err := url.Parse(c.EndpointURL(q))
	require.NoError(t, err)
	assert.Equal(t, "20", u.Query().Get("per_page"))
}

func TestFetchSendsAcceptHeader(t *testing.T) {
	var gotAccept, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotPath = r.URL.Path
		w.Write([]byte(`[{"page":1},[]]`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	q := Query{Country: "CAN", Indicator: "SP.POP.TOTL", StartYear: 2018, EndYear: 2020, Limit: 10}

	body, endpoint, err := c.Fetch(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "/country/CAN/indicator/SP.POP.TOTL", gotPath)
	assert.Contains(t, endpoint, srv.URL)
	assert.JSONEq(t, `[{"page":1},[]]`, string(body))
}

func TestFetchNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	q := Query{Country: "CAN", Indicator: "SP.POP.TOTL", StartYear: 2018, EndYear: 2020, Limit: 10}

	_, _, err := c.Fetch(context.Background(), q)
	require.Error(t, err)

	se, ok := AsStatusError(err)
	require.True(t, ok, "expected a StatusError, got %v", err)
	assert.Equal(t, http.StatusBadGateway, se.StatusCode)
}

func TestFetchNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(WithBaseURL(srv.URL))
	q := Query{Country: "CAN", Indicator: "SP.POP.TOTL", StartYear: 2018, EndYear: 2020, Limit: 10}

	_, _, err := c.Fetch(context.Background(), q)
	require.Error(t, err)
	_, ok := AsStatusError(err)
	assert.False(t, ok, "network failure is not a status error")
}

func TestFetchHonorsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q := Query{Country: "CAN", Indicator: "SP.POP.TOTL", StartYear: 2018, EndYear: 2020, Limit: 10}
	_, _, err := c.Fetch(ctx, q)
	require.Error(t, err)
}
