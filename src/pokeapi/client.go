package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BielosX/wombat/pokedex/src/httpclient"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultBaseUrl = "https://pokeapi.co/api/v2"
	DefaultLimit   = 60
)

// HTTPClient is the transport the client fetches JSON documents with.
type HTTPClient interface {
	Get(ctx context.Context, url string, headers map[string]string) (httpclient.Response, error)
}

// StatusError is returned when PokeAPI answers with a non-2xx status.
type StatusError struct {
	Url        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.Url, e.StatusCode)
}

type Client struct {
	baseUrl string
	client  HTTPClient
	sugar   *zap.SugaredLogger
}

func NewClient(client HTTPClient, baseUrl string, sugar *zap.SugaredLogger) *Client {
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	return &Client{
		baseUrl: strings.TrimSuffix(baseUrl, "/"),
		client:  client,
		sugar:   sugar,
	}
}

func (c *Client) getAndDecode(ctx context.Context, url string, target any) error {
	resp, err := c.client.Get(ctx, url, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return &StatusError{Url: url, StatusCode: resp.StatusCode()}
	}
	return json.Unmarshal(resp.Body(), target)
}

func (c *Client) fetchPokemon(ctx context.Context, url string, target *PokemonResponse) error {
	c.sugar.Infof("Fetching Pokemon %s", url)
	return c.getAndDecode(ctx, url, target)
}

// FetchList fetches one index page of size limit and resolves every entry concurrently.
// The result keeps the index order. A single failed request fails the whole call and the
// error is returned as produced by that request.
func (c *Client) FetchList(ctx context.Context, limit int) ([]Pokemon, error) {
	pokemons, err := c.listPokemons(ctx, limit)
	if err != nil {
		c.sugar.Errorf("Failed to fetch Pokemon list: %s", err)
		return nil, err
	}
	return pokemons, nil
}

func (c *Client) listPokemons(ctx context.Context, limit int) ([]Pokemon, error) {
	url := fmt.Sprintf("%s/pokemon?limit=%d", c.baseUrl, limit)
	var result PokemonListResult
	if err := c.getAndDecode(ctx, url, &result); err != nil {
		return nil, err
	}
	// Each goroutine owns exactly one slot, so no locking is needed.
	responses := make([]PokemonResponse, len(result.Results))
	// The first failure cancels the requests still in flight; the call fails either way.
	group, groupCtx := errgroup.WithContext(ctx)
	for i, entry := range result.Results {
		i, entry := i, entry
		group.Go(func() error {
			return c.fetchPokemon(groupCtx, entry.Url, &responses[i])
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	pokemons := make([]Pokemon, 0, len(responses))
	for _, response := range responses {
		pokemon, err := ToPokemon(response)
		if err != nil {
			return nil, err
		}
		pokemons = append(pokemons, pokemon)
	}
	return pokemons, nil
}

// FetchByID fetches and projects a single Pokemon. A missing id surfaces as a *StatusError.
func (c *Client) FetchByID(ctx context.Context, id int) (*Pokemon, error) {
	url := fmt.Sprintf("%s/pokemon/%d", c.baseUrl, id)
	var response PokemonResponse
	if err := c.fetchPokemon(ctx, url, &response); err != nil {
		c.sugar.Errorf("Failed to fetch Pokemon %d: %s", id, err)
		return nil, err
	}
	pokemon, err := ToPokemon(response)
	if err != nil {
		c.sugar.Errorf("Failed to fetch Pokemon %d: %s", id, err)
		return nil, err
	}
	return &pokemon, nil
}
