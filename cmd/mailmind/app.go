package main

import (
	"fmt"
	"os"
	"time"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"

	"github.com/mailmind-ai/mailmind"
	"github.com/mailmind-ai/mailmind/config"
	"github.com/mailmind-ai/mailmind/exchange"
	"github.com/mailmind-ai/mailmind/logging"
	"github.com/mailmind-ai/mailmind/model"
	"github.com/mailmind-ai/mailmind/model/anthropic"
	"github.com/mailmind-ai/mailmind/model/openai"
)

// newAssistant loads configuration and wires the assistant façade. Flags
// override the config file; a missing dataset file falls back to the
// built-in sample so every command works out of the box.
func newAssistant(withModel bool) (*mailmind.Assistant, config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, cfg, err
	}
	if dataFile != "" {
		cfg.Data.File = dataFile
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger := logging.NewSlogLogger(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format, false)

	var source *exchange.MockSource
	if _, statErr := os.Stat(cfg.Data.File); statErr == nil {
		source, err = exchange.LoadMockSource(cfg.Data.File, exchange.WithLogger(logger))
		if err != nil {
			return nil, cfg, err
		}
	} else {
		logger.Warn("dataset file not found, using built-in sample data", "path", cfg.Data.File)
		source = exchange.NewMockSource(exchange.SampleDataset(time.Now()), exchange.WithLogger(logger))
	}

	var m model.Model
	if withModel {
		m, err = buildModel(cfg.Model)
		if err != nil {
			return nil, cfg, err
		}
	}

	assistant := mailmind.New(func(o *mailmind.Options) {
		o.Source = source
		o.Model = m
		o.MaxIterations = cfg.Limits.MaxIterations
		o.HistorySize = cfg.Limits.HistorySize
		o.Logger = logger
	})
	return assistant, cfg, nil
}

// buildModel constructs the configured model provider.
func buildModel(cfg config.Model) (model.Model, error) {
	switch cfg.Provider {
	case "anthropic":
		return anthropic.NewModel(func(o *anthropic.Options) {
			if cfg.Name != "" {
				o.Model = anthropicsdk.Model(cfg.Name)
			}
			o.APIKey = cfg.APIKey
			o.BaseURL = cfg.BaseURL
		}), nil
	case "openai":
		return openai.NewModel(func(o *openai.Options) {
			if cfg.Name != "" {
				o.Model = cfg.Name
			}
			o.APIKey = cfg.APIKey
			o.BaseURL = cfg.BaseURL
		}), nil
	case "mock":
		return model.NewMockModel("mock-model", "mock"), nil
	default:
		return nil, fmt.Errorf("unsupported model provider: %q", cfg.Provider)
	}
}
