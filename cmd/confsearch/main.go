// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/poiesic/confsearch"
	"github.com/poiesic/confsearch/ai"
	"github.com/poiesic/confsearch/core"
	"github.com/poiesic/confsearch/server"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "confsearch",
		Usage: "Natural-language search over conference programs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "query",
				Usage:     "Answer a free-text query against a conference program",
				ArgsUsage: "<query text>",
				Action:    queryCommand,
				Flags:     append(corpusFlags(), aiFlags()...),
			},
			{
				Name:   "overview",
				Usage:  "Print corpus-level statistics of a conference program",
				Action: overviewCommand,
				Flags:  corpusFlags(),
			},
			{
				Name:      "session",
				Usage:     "Look up a single session by its program identifier",
				ArgsUsage: "<session id>",
				Action:    sessionCommand,
				Flags:     corpusFlags(),
			},
			{
				Name:   "serve",
				Usage:  "Serve query resolution over HTTP",
				Action: serveCommand,
				Flags: append(append(corpusFlags(), aiFlags()...),
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address",
						Value: ":8080",
					}),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// corpusFlags covers where the program comes from: a JSON file, an existing
// on-disk corpus directory, or both (file loads, directory persists).
func corpusFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "program",
			Aliases: []string{"p"},
			Usage:   "Path to a conference program JSON file to load",
		},
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to a BadgerDB corpus directory (in-memory if omitted)",
		},
	}
}

func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "api-key",
			Usage:   "API key for delegated query resolution (enables AI mode)",
			EnvVars: []string{"OPENAI_API_KEY"},
		},
		&cli.StringFlag{
			Name:  "ai-host",
			Usage: "OpenAI-compatible chat API host URL",
			Value: "https://api.openai.com/v1",
		},
		&cli.StringFlag{
			Name:  "ai-model",
			Usage: "Chat model for delegated query resolution",
			Value: "gpt-4.1-nano-2025-04-14",
		},
	}
}

// openService builds the facade from the corpus and AI flags, loading the
// program file when one is given.
func openService(c *cli.Context) (*confsearch.Service, error) {
	programPath := c.String("program")
	dbPath := c.String("db")
	if programPath == "" && dbPath == "" {
		return nil, fmt.Errorf("either --program or --db is required")
	}

	opts := []confsearch.ServiceOption{}
	if dbPath != "" {
		opts = append(opts, confsearch.WithDatabasePath(dbPath))
	}
	if c.String("api-key") != "" {
		opts = append(opts, confsearch.WithAIConfig(ai.NewConfig(
			ai.WithHost(c.String("ai-host")),
			ai.WithModel(c.String("ai-model")),
			ai.WithToken(c.String("api-key")),
		)))
	}

	svc, err := confsearch.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}

	if programPath != "" {
		if err := svc.LoadProgramFile(c.Context, programPath); err != nil {
			svc.Close()
			return nil, fmt.Errorf("failed to load program: %w", err)
		}
	}

	return svc, nil
}

func queryCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("query text is required")
	}
	queryText := strings.Join(c.Args().Slice(), " ")

	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	response, err := svc.Search(c.Context, queryText)
	if err != nil {
		return err
	}

	printResponse(response)
	return nil
}

func printResponse(response *core.QueryResponse) {
	fmt.Println(response.Summary)
	fmt.Println()
	fmt.Println(response.ContextualSummary)

	for _, result := range response.Results {
		fmt.Println()
		fmt.Printf("%s (%s)\n", result.SessionTitle, result.SessionID)
		fmt.Printf("  %s | %s %s-%s | %s | %s\n",
			result.SessionType,
			result.Schedule.Date, result.Schedule.StartTime, result.Schedule.EndTime,
			result.Location, result.Track)
		for _, paper := range result.Papers {
			fmt.Printf("  - %s (%s)\n", paper.PaperTitle, paper.PaperID)
			for _, author := range paper.Authors {
				if author.Institution != "" {
					fmt.Printf("      %s, %s\n", author.FullName, author.Institution)
				} else {
					fmt.Printf("      %s\n", author.FullName)
				}
			}
		}
	}
}

func overviewCommand(c *cli.Context) error {
	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	overview, err := svc.Overview(c.Context)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", overview.Name)
	fmt.Printf("%s, %s\n", overview.Dates, overview.Location)
	fmt.Printf("Days:     %d\n", overview.TotalDays)
	fmt.Printf("Sessions: %d\n", overview.TotalSessions)
	fmt.Printf("Papers:   %d\n", overview.TotalPapers)
	return nil
}

func sessionCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("exactly one session id is required")
	}
	sessionID := c.Args().First()

	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	session, err := svc.Repository().GetSession(c.Context, core.IDFromContent(sessionID))
	if err != nil {
		return fmt.Errorf("session %q: %w", sessionID, err)
	}

	fmt.Printf("%s (%s)\n", session.Title, session.SessionIDInternal)
	fmt.Printf("  %s | %s %s-%s | %s | %s\n",
		session.SessionType,
		session.Schedule.Date, session.Schedule.StartTime, session.Schedule.EndTime,
		session.Location, session.Track)
	for _, paper := range session.Papers {
		fmt.Printf("  - %s (%s)\n", paper.Title, paper.PaperIDInternal)
	}
	return nil
}

func serveCommand(c *cli.Context) error {
	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	srv := server.New(svc)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(c.String("addr"))
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		slog.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
