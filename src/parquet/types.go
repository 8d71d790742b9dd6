package parquet

import "github.com/BielosX/wombat/pokedex/src/pokeapi"

type Pokemon struct {
	Id             int32    `parquet:"name=id, type=INT32"`
	Name           string   `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Image          string   `parquet:"name=image, type=BYTE_ARRAY, convertedtype=UTF8"`
	ThumbnailImage string   `parquet:"name=thumbnail_image, type=BYTE_ARRAY, convertedtype=UTF8"`
	Height         int32    `parquet:"name=height, type=INT32"`
	Weight         int32    `parquet:"name=weight, type=INT32"`
	Abilities      []string `parquet:"name=abilities, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=REPEATED"`
	Types          []string `parquet:"name=types, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=REPEATED"`
	StatNames      []string `parquet:"name=stat_names, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=REPEATED"`
	StatValues     []int32  `parquet:"name=stat_values, type=INT32, repetitiontype=REPEATED"`
}

// ToPokemon flattens stats into two parallel columns, StatNames[i] belongs to StatValues[i].
func ToPokemon(pokemon pokeapi.Pokemon) Pokemon {
	statNames := make([]string, 0, len(pokemon.Stats))
	statValues := make([]int32, 0, len(pokemon.Stats))
	for _, stat := range pokemon.Stats {
		statNames = append(statNames, stat.Name)
		statValues = append(statValues, int32(stat.Value))
	}
	return Pokemon{
		Id:             int32(pokemon.Id),
		Name:           pokemon.Name,
		Image:          pokemon.Image,
		ThumbnailImage: pokemon.ThumbnailImage,
		Height:         int32(pokemon.Height),
		Weight:         int32(pokemon.Weight),
		Abilities:      append([]string{}, pokemon.Abilities...),
		Types:          append([]string{}, pokemon.Types...),
		StatNames:      statNames,
		StatValues:     statValues,
	}
}
