// Command availability runs a single fabric/paint producibility check from
// the terminal, useful for trying prompts against the configured model.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/mousa-mostafa/capitone-Furniture/internal/availability"
	"github.com/mousa-mostafa/capitone-Furniture/internal/config"
	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
	logx "github.com/mousa-mostafa/capitone-Furniture/pkg/logger"
)

func main() {
	product := flag.String("product", "", "product name to check")
	fabric := flag.String("fabric", "", "requested fabric color")
	paint := flag.String("paint", "", "requested wood paint")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("load config")
	}
	logx.Init(cfg.Environment)

	ctx := context.Background()
	client, err := availability.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logx.Fatal().Err(err).Msg("init availability client")
	}

	result, err := client.Check(ctx, availability.Request{
		ProductName: *product,
		Fabric:      *fabric,
		Paint:       domain.WoodPaint(*paint),
	})
	if err != nil {
		logx.Fatal().Err(err).Msg("check failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logx.Fatal().Err(err).Msg("encode result")
	}
}
