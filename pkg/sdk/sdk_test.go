package sdk_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethanbaker/states-api/internal/api"
	states_module "github.com/ethanbaker/states-api/internal/api/modules/states"
	funfact_store "github.com/ethanbaker/states-api/internal/stores/funfact"
	"github.com/ethanbaker/states-api/pkg/catalog"
	"github.com/ethanbaker/states-api/pkg/sdk"
	"github.com/ethanbaker/states-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, values map[string]string) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Default()
	require.NoError(t, err)

	service := states_module.NewStatesService(cat, funfact_store.NewInMemoryStore())
	server := httptest.NewServer(api.NewEngine(utils.NewConfig(values), service))
	t.Cleanup(server.Close)
	return server
}

func TestClientReads(t *testing.T) {
	server := newTestServer(t, nil)
	client := sdk.NewClient(server.URL+"/api/", "")
	ctx := context.Background()

	states, err := client.ListStates(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, states, 50)

	contig := true
	states, err = client.ListStates(ctx, &contig)
	require.NoError(t, err)
	assert.Len(t, states, 48)

	contig = false
	states, err = client.ListStates(ctx, &contig)
	require.NoError(t, err)
	assert.Len(t, states, 2)

	state, err := client.GetState(ctx, "ga")
	require.NoError(t, err)
	assert.Equal(t, "Georgia", state.Name)
	assert.Equal(t, "Atlanta", state.CapitalCity)

	capital, err := client.GetCapital(ctx, "GA")
	require.NoError(t, err)
	assert.Equal(t, "Atlanta", capital.Capital)

	nickname, err := client.GetNickname(ctx, "GA")
	require.NoError(t, err)
	assert.Equal(t, "Peach State", nickname.Nickname)

	population, err := client.GetPopulation(ctx, "GA")
	require.NoError(t, err)
	assert.Equal(t, "10,711,908", population.Population)

	admission, err := client.GetAdmission(ctx, "GA")
	require.NoError(t, err)
	assert.Equal(t, "1788-01-02", admission.Admitted)
}

func TestClientFunFacts(t *testing.T) {
	server := newTestServer(t, map[string]string{"API_KEY": "secret"})
	client := sdk.NewClient(server.URL, "secret")
	ctx := context.Background()

	record, err := client.AddFunFacts(ctx, "GA", "Peaches", "Coca-Cola")
	require.NoError(t, err)
	assert.Equal(t, "GA", record.StateCode)
	assert.Equal(t, []string{"Peaches", "Coca-Cola"}, record.Funfacts)

	record, err = client.UpdateFunFact(ctx, "GA", 2, "Home of Coca-Cola")
	require.NoError(t, err)
	assert.Equal(t, []string{"Peaches", "Home of Coca-Cola"}, record.Funfacts)

	record, err = client.DeleteFunFact(ctx, "GA", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Home of Coca-Cola"}, record.Funfacts)

	fact, err := client.GetRandomFunFact(ctx, "GA")
	require.NoError(t, err)
	assert.Equal(t, "Home of Coca-Cola", fact)

	state, err := client.GetState(ctx, "GA")
	require.NoError(t, err)
	assert.Equal(t, []string{"Home of Coca-Cola"}, state.Funfacts)
}

func TestClientErrors(t *testing.T) {
	server := newTestServer(t, nil)
	client := sdk.NewClient(server.URL, "")
	ctx := context.Background()

	var apiErr *sdk.APIError

	_, err := client.GetState(ctx, "XX")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
	assert.Equal(t, "Invalid state abbreviation parameter", apiErr.Message)

	_, err = client.GetRandomFunFact(ctx, "GA")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
	assert.Equal(t, "No Fun Facts found for Georgia", apiErr.Message)

	_, err = client.AddFunFacts(ctx, "GA")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)

	_, err = client.AddFunFacts(ctx, "GA", "A")
	require.NoError(t, err)

	_, err = client.UpdateFunFact(ctx, "GA", 5, "B")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
	assert.Equal(t, "No Fun Fact found at that index for Georgia", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "400")
}

func TestClientMissingKey(t *testing.T) {
	server := newTestServer(t, map[string]string{"API_KEY": "secret"})
	client := sdk.NewClient(server.URL, "")

	_, err := client.AddFunFacts(context.Background(), "GA", "A")
	var apiErr *sdk.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.GreaterOrEqual(t, apiErr.Code, http.StatusBadRequest)
}

func TestDecodeNonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL, "").WithHTTPClient(server.Client())
	_, err := client.GetCapital(context.Background(), "GA")

	var apiErr *sdk.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Code)
	assert.Equal(t, "gateway down", apiErr.Message)
}
