package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/BielosX/wombat/pokedex/src/csv"
	"github.com/BielosX/wombat/pokedex/src/parquet"
	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PokemonSource interface {
	FetchList(ctx context.Context, limit int) ([]pokeapi.Pokemon, error)
}

type Uploader interface {
	PutFile(ctx context.Context, reader io.Reader, bucket, key, contentType string) error
}

type Publisher interface {
	Publish(ctx context.Context, topicArn, message string, attributes map[string]string) error
}

type Result struct {
	RunID           string `json:"runId"`
	Count           int    `json:"count"`
	ParquetFileName string `json:"parquetFileName"`
	CsvFileName     string `json:"csvFileName"`
}

type Exporter struct {
	source     PokemonSource
	uploader   Uploader
	publisher  Publisher
	bucketName string
	topicArn   string
	sugar      *zap.SugaredLogger
	newRunID   func() string
}

// NewExporter builds an Exporter. With an empty topicArn no notice is published.
func NewExporter(source PokemonSource,
	uploader Uploader,
	publisher Publisher,
	bucketName, topicArn string,
	sugar *zap.SugaredLogger) *Exporter {
	return &Exporter{
		source:     source,
		uploader:   uploader,
		publisher:  publisher,
		bucketName: bucketName,
		topicArn:   topicArn,
		sugar:      sugar,
		newRunID:   uuid.NewString,
	}
}

// Export fetches one page of Pokemon and stores it in S3 as Parquet and CSV.
// An empty page writes nothing and returns a nil Result.
func (e *Exporter) Export(ctx context.Context, limit int) (*Result, error) {
	e.sugar.Infof("Starting export, limit: %d", limit)
	pokemons, err := e.source.FetchList(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch pokemon list: %w", err)
	}
	e.sugar.Infof("Got %d Pokemon results", len(pokemons))
	if len(pokemons) == 0 {
		return nil, nil
	}

	pokemonWriter, err := parquet.NewPokemonWriter()
	if err != nil {
		e.sugar.Errorf("Failed to create Pokemon Parquet Writer: %s", err)
		return nil, err
	}
	csvWriter := csv.NewPokemonWriter()
	if err := csvWriter.WriteHeader(); err != nil {
		return nil, err
	}
	for _, pokemon := range pokemons {
		entry := parquet.ToPokemon(pokemon)
		e.sugar.Debugf("Writing Pokemon %s", entry.Name)
		if err := pokemonWriter.WritePokemon(&entry); err != nil {
			e.sugar.Errorf("Error writing Pokemon to Parquet: %s", err)
			return nil, err
		}
		if err := csvWriter.Write(entry); err != nil {
			e.sugar.Errorf("Error writing Pokemon to CSV: %s", err)
			return nil, err
		}
	}
	if err := pokemonWriter.Finish(); err != nil {
		return nil, err
	}
	if err := csvWriter.Finish(); err != nil {
		return nil, err
	}

	runID := e.newRunID()
	firstId := pokemons[0].Id
	lastId := pokemons[len(pokemons)-1].Id
	result := &Result{
		RunID:           runID,
		Count:           len(pokemons),
		ParquetFileName: fmt.Sprintf("pokemons/%d_%d_%s.parquet", firstId, lastId, runID),
		CsvFileName:     fmt.Sprintf("pokemons/%d_%d_%s.csv", firstId, lastId, runID),
	}
	e.sugar.Infof("Sending parquet file of size %d to S3", pokemonWriter.Size())
	err = e.uploader.PutFile(ctx, pokemonWriter.BufferReader(), e.bucketName, result.ParquetFileName, "application/vnd.apache.parquet")
	if err != nil {
		e.sugar.Errorf("Failed to upload %s: %s", result.ParquetFileName, err)
		return nil, fmt.Errorf("upload parquet: %w", err)
	}
	e.sugar.Infof("Sending CSV file of size %d to S3", csvWriter.Size())
	err = e.uploader.PutFile(ctx, csvWriter.BufferReader(), e.bucketName, result.CsvFileName, "text/csv")
	if err != nil {
		e.sugar.Errorf("Failed to upload %s: %s", result.CsvFileName, err)
		return nil, fmt.Errorf("upload csv: %w", err)
	}

	if err := e.notify(ctx, result); err != nil {
		e.sugar.Errorf("Failed to publish export notice: %s", err)
		return nil, fmt.Errorf("publish notice: %w", err)
	}
	return result, nil
}

func (e *Exporter) notify(ctx context.Context, result *Result) error {
	if e.topicArn == "" || e.publisher == nil {
		return nil
	}
	message, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return e.publisher.Publish(ctx, e.topicArn, string(message), map[string]string{
		"run_id": result.RunID,
		"count":  strconv.Itoa(result.Count),
	})
}
