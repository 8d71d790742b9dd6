package pokeapi

type PokemonListResultEntry struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

type PokemonListResult struct {
	Count    int                      `json:"count"`
	Next     *string                  `json:"next"`
	Previous *string                  `json:"previous"`
	Results  []PokemonListResultEntry `json:"results"`
}

// NamedEntry is PokeAPI's NamedAPIResource: a name plus the URL of the full resource.
type NamedEntry struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

type PokemonAbility struct {
	Ability  NamedEntry `json:"ability"`
	IsHidden bool       `json:"is_hidden"`
	Slot     int        `json:"slot"`
}

type PokemonType struct {
	Slot int        `json:"slot"`
	Type NamedEntry `json:"type"`
}

type PokemonStat struct {
	BaseStat int        `json:"base_stat"`
	Effort   int        `json:"effort"`
	Stat     NamedEntry `json:"stat"`
}

// Sprite URLs are nullable upstream, the enclosing objects are not.
type PokemonArtwork struct {
	FrontDefault *string `json:"front_default"`
}

type PokemonOtherSprites struct {
	OfficialArtwork *PokemonArtwork `json:"official-artwork"`
}

type PokemonSprites struct {
	FrontDefault *string             `json:"front_default"`
	Other        *PokemonOtherSprites `json:"other"`
}

type PokemonResponse struct {
	Id        int              `json:"id"`
	Name      string           `json:"name"`
	Height    int              `json:"height"`
	Weight    int              `json:"weight"`
	Sprites   *PokemonSprites  `json:"sprites"`
	Abilities []PokemonAbility `json:"abilities"`
	Types     []PokemonType    `json:"types"`
	Stats     []PokemonStat    `json:"stats"`
}
