// Copyright 2026 Filmdex Authors
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
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/filmdex/filmdex"
	"github.com/filmdex/filmdex/catalog"
)

func main() {
	app := &cli.App{
		Name:  "filmdex",
		Usage: "Concurrent keyword search over an in-memory movie catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.IntFlag{
				Name:    "permits",
				Aliases: []string{"p"},
				Usage:   "Maximum number of searches running simultaneously",
				Value:   filmdex.DefaultPermits,
			},
			&cli.DurationFlag{
				Name:  "pace",
				Usage: "Artificial delay inside each search, keeps concurrency observable",
				Value: filmdex.DefaultPace,
			},
			&cli.StringSliceFlag{
				Name:    "keyword",
				Aliases: []string{"k"},
				Usage:   "Keyword to search for (repeatable)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file (permits, pace_ms, keywords)",
			},
		},
		Before: setupLogger,
		Action: runSearches,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runSearches(c *cli.Context) error {
	permits := c.Int("permits")
	pace := c.Duration("pace")
	keywords := c.StringSlice("keyword")

	if path := c.String("config"); path != "" {
		cfg, err := loadConfig(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		// Explicit flags win over config file values.
		if !c.IsSet("permits") && cfg.Permits > 0 {
			permits = cfg.Permits
		}
		if !c.IsSet("pace") && cfg.PaceMs > 0 {
			pace = time.Duration(cfg.PaceMs) * time.Millisecond
		}
		if !c.IsSet("keyword") && len(cfg.Keywords) > 0 {
			keywords = cfg.Keywords
		}
	}

	if len(keywords) == 0 {
		keywords = defaultKeywords()
	}

	cat := catalog.New(sampleRecords())

	driver, err := filmdex.New(cat,
		filmdex.WithPermits(permits),
		filmdex.WithPace(pace),
	)
	if err != nil {
		return fmt.Errorf("initialize driver: %w", err)
	}

	if err := driver.Run(c.Context, keywords); err != nil {
		return fmt.Errorf("run searches: %w", err)
	}
	return nil
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
