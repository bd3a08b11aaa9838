package geo

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBaseURL = "https://geo.example.com/v1"

func newTestClient() *Client {
	cfg := ClientConfig{
		BaseURL: testBaseURL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 2,
			WaitTime:    10 * time.Millisecond,
			MaxWaitTime: 50 * time.Millisecond,
		},
		CB: CBConfig{
			MaxRequests:  5,
			Interval:     60 * time.Second,
			Timeout:      15 * time.Second,
			FailureRatio: 0.6,
		},
	}
	client := NewClient(cfg, zap.NewNop())

	// Activate httpmock for this client's HTTP transport
	httpmock.ActivateNonDefault(client.client.GetClient())

	return client
}

func TestCountries(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/countries",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "test-key", req.Header.Get("X-CSCAPI-KEY"))
			resp := httpmock.NewStringResponse(http.StatusOK, `[
				{"id":101,"name":"India","iso2":"IN","emoji":"🇮🇳"},
				{"id":232,"name":"Vietnam","iso2":"VN"}
			]`)
			resp.Header.Set("Content-Type", "application/json")
			return resp, nil
		})

	countries, err := client.Countries(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "India", countries[0].Name)
	assert.Equal(t, "VN", countries[1].ISO2)
}

func TestStates(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/countries/IN/states",
		httpmock.NewStringResponder(http.StatusOK, `[
			{"id":4028,"name":"Kerala","state_code":"KL"},
			{"id":4030,"name":"Goa","state_code":"GA"}
		]`).HeaderSet(http.Header{"Content-Type": []string{"application/json"}}))

	states, err := client.States(context.Background(), "IN")
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, "KL", states[0].StateCode)
}

func TestCitiesByState(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/countries/IN/states/KL/cities",
		httpmock.NewStringResponder(http.StatusOK, `[
			{"id":57895,"name":"Kochi"},
			{"id":57912,"name":"Munnar"}
		]`).HeaderSet(http.Header{"Content-Type": []string{"application/json"}}))

	cities, err := client.CitiesByState(context.Background(), "IN", "KL")
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "Kochi", cities[0].Name)
}

func TestUpstreamError(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/countries",
		httpmock.NewStringResponder(http.StatusUnauthorized, `{"error":"Unauthorized"}`))

	_, err := client.Countries(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestCircuitBreakerOpensAfterFailures(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/countries",
		httpmock.NewStringResponder(http.StatusInternalServerError, `{"error":"boom"}`))

	for i := 0; i < 5; i++ {
		_, _ = client.Countries(context.Background())
	}

	// The breaker is now open: calls fail fast without touching the wire.
	before := httpmock.GetTotalCallCount()
	_, err := client.Countries(context.Background())
	require.Error(t, err)
	assert.Equal(t, before, httpmock.GetTotalCallCount())
}
