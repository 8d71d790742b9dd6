package main

import (
	"context"
	"testing"

	"github.com/BielosX/wombat/pokedex/src/config"
	"github.com/BielosX/wombat/pokedex/src/export"
	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubClient struct {
	id int
}

func (s *stubClient) FetchList(context.Context, int) ([]pokeapi.Pokemon, error) {
	return nil, nil
}

func (s *stubClient) FetchByID(_ context.Context, id int) (*pokeapi.Pokemon, error) {
	s.id = id
	return &pokeapi.Pokemon{Id: id, Name: "mew"}, nil
}

type stubExporter struct {
	limit int
}

func (s *stubExporter) Export(_ context.Context, limit int) (*export.Result, error) {
	s.limit = limit
	return &export.Result{Count: limit}, nil
}

func TestMain(m *testing.M) {
	sugar = zap.NewNop().Sugar()
	m.Run()
}

func TestHandleExportDefaultsLimit(t *testing.T) {
	exporter := &stubExporter{}
	h := &handlers{exporter: exporter, defaultLimit: 60}

	result, err := h.handleExport(context.Background(), ListRequest{})

	require.NoError(t, err)
	assert.Equal(t, 60, exporter.limit)
	assert.Equal(t, 60, result.Count)
}

func TestHandleExportPassesLimit(t *testing.T) {
	exporter := &stubExporter{}
	h := &handlers{exporter: exporter, defaultLimit: 60}

	_, err := h.handleExport(context.Background(), ListRequest{Limit: 151})

	require.NoError(t, err)
	assert.Equal(t, 151, exporter.limit)
}

func TestHandlePokemon(t *testing.T) {
	client := &stubClient{}
	h := &handlers{client: client}

	pokemon, err := h.handlePokemon(context.Background(), PokemonRequest{Id: 151})

	require.NoError(t, err)
	assert.Equal(t, 151, client.id)
	assert.Equal(t, "mew", pokemon.Name)
}

func TestLambdaHandlerPokemonDoesNotNeedBucket(t *testing.T) {
	client := &stubClient{}
	cfg := &config.Config{Handler: "pokemon", ListLimit: 60}

	handler, err := lambdaHandler(context.Background(), cfg, client)

	require.NoError(t, err)
	handlePokemon, ok := handler.(func(context.Context, PokemonRequest) (*pokeapi.Pokemon, error))
	require.True(t, ok, "unexpected handler type %T", handler)
	pokemon, err := handlePokemon(context.Background(), PokemonRequest{Id: 151})
	require.NoError(t, err)
	assert.Equal(t, 151, client.id)
	assert.Equal(t, "mew", pokemon.Name)
}

func TestLambdaHandlerExportRequiresBucket(t *testing.T) {
	cfg := &config.Config{Handler: "export", ListLimit: 60}

	handler, err := lambdaHandler(context.Background(), cfg, &stubClient{})

	assert.Nil(t, handler)
	assert.ErrorContains(t, err, "BUCKET_NAME is not set")
}

func TestLambdaHandlerUnknown(t *testing.T) {
	handler, err := lambdaHandler(context.Background(), &config.Config{Handler: "scheduler"}, &stubClient{})

	assert.Nil(t, handler)
	assert.ErrorContains(t, err, `unknown handler "scheduler"`)
}
