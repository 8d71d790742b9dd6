package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/BielosX/wombat/pokedex/src/parquet"
	"github.com/BielosX/wombat/pokedex/src/utils"
	"github.com/xitongsys/parquet-go-source/buffer"
)

// ListSeparator joins the elements of repeated columns into one cell.
const ListSeparator = ";"

type PokemonWriter struct {
	buffer *buffer.BufferFile
	writer *csv.Writer
	fields []reflect.StructField
}

const InitialCapacity = 1024 * 1024

// NewPokemonWriter writes parquet.Pokemon rows, columns named after their parquet tags.
func NewPokemonWriter() *PokemonWriter {
	bufferFile := buffer.NewBufferFileCapacity(InitialCapacity)
	writer := csv.NewWriter(bufferFile)
	fields := utils.GetFields(parquet.Pokemon{})
	return &PokemonWriter{
		buffer: bufferFile,
		writer: writer,
		fields: fields,
	}
}

func (w *PokemonWriter) WriteHeader() error {
	var parquetNames []string
	for _, field := range w.fields {
		tag := field.Tag.Get("parquet")
		properties := utils.ParquetTagToKeyValue(tag)
		parquetNames = append(parquetNames, properties["name"])
	}
	return w.writer.Write(parquetNames)
}

func (w *PokemonWriter) Write(pokemon parquet.Pokemon) error {
	value := reflect.ValueOf(pokemon)
	var converted []string
	for _, field := range w.fields {
		converted = append(converted, formatValue(value.FieldByName(field.Name)))
	}
	return w.writer.Write(converted)
}

func formatValue(value reflect.Value) string {
	if value.Kind() != reflect.Slice {
		return fmt.Sprint(value.Interface())
	}
	elements := make([]string, 0, value.Len())
	for i := 0; i < value.Len(); i++ {
		elements = append(elements, fmt.Sprint(value.Index(i).Interface()))
	}
	return strings.Join(elements, ListSeparator)
}

func (w *PokemonWriter) Finish() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return err
	}
	_, err := w.buffer.Seek(0, io.SeekStart)
	return err
}

func (w *PokemonWriter) Size() int {
	return len(w.buffer.Bytes())
}

func (w *PokemonWriter) BufferReader() io.Reader {
	return w.buffer
}
