package csv

import (
	"io"
	"testing"

	"github.com/BielosX/wombat/pokedex/src/parquet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPokemonWriter(t *testing.T) {
	w := NewPokemonWriter()
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write(parquet.Pokemon{
		Id:             25,
		Name:           "pikachu",
		Image:          "b.png",
		ThumbnailImage: "a.png",
		Height:         4,
		Weight:         60,
		Abilities:      []string{"static", "lightning-rod"},
		Types:          []string{"electric"},
		StatNames:      []string{"hp", "attack"},
		StatValues:     []int32{35, 55},
	}))
	require.NoError(t, w.Write(parquet.Pokemon{Id: 132, Name: "ditto, the copycat"}))
	require.NoError(t, w.Finish())

	content, err := io.ReadAll(w.BufferReader())

	require.NoError(t, err)
	assert.Equal(t,
		"id,name,image,thumbnail_image,height,weight,abilities,types,stat_names,stat_values\n"+
			"25,pikachu,b.png,a.png,4,60,static;lightning-rod,electric,hp;attack,35;55\n"+
			"132,\"ditto, the copycat\",,,0,0,,,,\n",
		string(content))
	assert.Equal(t, len(content), w.Size())
}
