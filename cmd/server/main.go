package main

import (
	"fmt"
	"log"

	"gen-obras/internal/auth"
	"gen-obras/internal/config"
	"gen-obras/internal/handlers"
	"gen-obras/internal/llm"
	"gen-obras/internal/server"
	"gen-obras/internal/workspace"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "gen-obras",
		Short:         "Construction management web app",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	root.AddCommand(newHashPasswordCmd())

	if err := root.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	users, err := auth.NewTable(cfg.Credentials)
	if err != nil {
		return fmt.Errorf("credentials: %w", err)
	}

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LLM.LogCalls {
		observer = llm.NewLogObserver(log.Default())
	}
	client, err := llm.NewClient(cfg.LLM, observer)
	if err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	spaces := workspace.NewRegistry(cfg.SessionTTL)
	h := handlers.New(users, llm.NewGateway(client), spaces)
	r := server.NewRouter(cfg, spaces, h)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s (llm provider %s, model %s)", addr, cfg.LLM.Provider, cfg.LLM.Model)
	if err := r.Run(addr); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
