package pokeapi

import (
	"errors"
	"fmt"
)

var ErrMalformedRecord = errors.New("malformed pokemon record")

type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Pokemon is the display shape of a single PokemonResponse.
type Pokemon struct {
	Id             int      `json:"id"`
	Name           string   `json:"name"`
	Image          string   `json:"image"`
	ThumbnailImage string   `json:"thumbnailImage"`
	Height         int      `json:"height"`
	Weight         int      `json:"weight"`
	Abilities      []string `json:"abilities"`
	Types          []string `json:"types"`
	Stats          []Stat   `json:"stats"`
}

// ToPokemon projects a detail record. Upstream order is kept for abilities, types and stats,
// and hidden abilities are not filtered out.
func ToPokemon(response PokemonResponse) (Pokemon, error) {
	if err := validate(response); err != nil {
		return Pokemon{}, err
	}
	abilities := make([]string, 0, len(response.Abilities))
	for _, ability := range response.Abilities {
		abilities = append(abilities, ability.Ability.Name)
	}
	types := make([]string, 0, len(response.Types))
	for _, pokemonType := range response.Types {
		types = append(types, pokemonType.Type.Name)
	}
	stats := make([]Stat, 0, len(response.Stats))
	for _, stat := range response.Stats {
		stats = append(stats, Stat{Name: stat.Stat.Name, Value: stat.BaseStat})
	}
	return Pokemon{
		Id:             response.Id,
		Name:           response.Name,
		Image:          stringOrEmpty(response.Sprites.Other.OfficialArtwork.FrontDefault),
		ThumbnailImage: stringOrEmpty(response.Sprites.FrontDefault),
		Height:         response.Height,
		Weight:         response.Weight,
		Abilities:      abilities,
		Types:          types,
		Stats:          stats,
	}, nil
}

func validate(response PokemonResponse) error {
	switch {
	case response.Id == 0:
		return fmt.Errorf("%w: missing id", ErrMalformedRecord)
	case response.Name == "":
		return fmt.Errorf("%w: missing name", ErrMalformedRecord)
	case response.Sprites == nil:
		return fmt.Errorf("%w: %s has no sprites", ErrMalformedRecord, response.Name)
	case response.Sprites.Other == nil || response.Sprites.Other.OfficialArtwork == nil:
		return fmt.Errorf("%w: %s has no official artwork", ErrMalformedRecord, response.Name)
	case response.Abilities == nil:
		return fmt.Errorf("%w: %s has no abilities", ErrMalformedRecord, response.Name)
	case response.Types == nil:
		return fmt.Errorf("%w: %s has no types", ErrMalformedRecord, response.Name)
	case response.Stats == nil:
		return fmt.Errorf("%w: %s has no stats", ErrMalformedRecord, response.Name)
	}
	return nil
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
