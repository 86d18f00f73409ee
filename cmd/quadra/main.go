package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/quadra/internal/cli"
	"github.com/alexanderramin/quadra/internal/config"
	"github.com/alexanderramin/quadra/internal/llm"
	"github.com/alexanderramin/quadra/internal/store"
	"github.com/alexanderramin/quadra/internal/summary"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// QUADRA_CONFIG_DIR relocates the config directory; the credential
	// itself only ever comes from the config file.
	cfg, err := config.Load(os.Getenv("QUADRA_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LogLLMCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	chatClient := llm.NewChatClient(cfg.Chat, observer)

	taskStore := store.New()
	store.Seed(taskStore)

	app := &cli.App{
		Store:     taskStore,
		Summaries: summary.NewService(chatClient),
	}

	return cli.NewRootCmd(app).Execute()
}
