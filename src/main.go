package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BielosX/wombat/pokedex/src/cli"
	"github.com/BielosX/wombat/pokedex/src/config"
	"github.com/BielosX/wombat/pokedex/src/export"
	"github.com/BielosX/wombat/pokedex/src/httpclient"
	"github.com/BielosX/wombat/pokedex/src/logger"
	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"github.com/BielosX/wombat/pokedex/src/s3"
	"github.com/BielosX/wombat/pokedex/src/sns"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"go.uber.org/zap"
)

var sugar *zap.SugaredLogger

type ListRequest struct {
	Limit int `json:"limit"`
}

type PokemonRequest struct {
	Id int `json:"id"`
}

type handlers struct {
	client       cli.PokemonFetcher
	exporter     cli.ExportRunner
	defaultLimit int
}

func (h *handlers) handleExport(ctx context.Context, request ListRequest) (*export.Result, error) {
	limit := request.Limit
	if limit == 0 {
		limit = h.defaultLimit
	}
	sugar.Infof("Starting Export Handler, limit: %d", limit)
	return h.exporter.Export(ctx, limit)
}

func (h *handlers) handlePokemon(ctx context.Context, request PokemonRequest) (*pokeapi.Pokemon, error) {
	sugar.Infof("Starting Pokemon Handler, id: %d", request.Id)
	return h.client.FetchByID(ctx, request.Id)
}

func newExporter(ctx context.Context, cfg *config.Config, source export.PokemonSource) (*export.Exporter, error) {
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("BUCKET_NAME is not set")
	}
	var options []func(*awsconfig.LoadOptions) error
	if cfg.AWSRegion != "" {
		options = append(options, awsconfig.WithRegion(cfg.AWSRegion))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("load AWS SDK config: %w", err)
	}
	return export.NewExporter(source, s3.NewClient(awsCfg), sns.NewClient(awsCfg), cfg.BucketName, cfg.TopicARN, sugar), nil
}

// lambdaHandler picks the handler named by _HANDLER. Only the export handler needs AWS.
func lambdaHandler(ctx context.Context, cfg *config.Config, client cli.PokemonFetcher) (any, error) {
	h := &handlers{client: client, defaultLimit: cfg.ListLimit}
	switch cfg.Handler {
	case "export":
		exporter, err := newExporter(ctx, cfg, client)
		if err != nil {
			return nil, fmt.Errorf("create exporter: %w", err)
		}
		h.exporter = exporter
		return h.handleExport, nil
	case "pokemon":
		return h.handlePokemon, nil
	default:
		return nil, fmt.Errorf("unknown handler %q", cfg.Handler)
	}
}

func syncLogger() {
	_ = sugar.Sync()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	sugar, err = logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer syncLogger()

	client := pokeapi.NewClient(httpclient.NewRestyClient(cfg.HTTPTimeout), cfg.BaseURL, sugar)

	if os.Getenv("AWS_LAMBDA_RUNTIME_API") == "" {
		os.Exit(runCli(cfg, client))
	}

	handler, err := lambdaHandler(context.Background(), cfg, client)
	if err != nil {
		sugar.Fatalf("Failed to start Lambda: %s", err)
	}
	lambda.Start(handler)
}

func runCli(cfg *config.Config, client *pokeapi.Client) int {
	defer syncLogger()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	factory := func(ctx context.Context) (cli.ExportRunner, error) {
		exporter, err := newExporter(ctx, cfg, client)
		if err != nil {
			return nil, err
		}
		return exporter, nil
	}
	if err := cli.RootCommand(client, factory, cfg.ListLimit).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "pokedex: %v\n", err)
		return 1
	}
	return 0
}
