package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/rs/zerolog"

	"github.com/gomanga/mangadex"
	"github.com/gomanga/mangadex/pkg/types"
)

func main() {
	username := os.Getenv("MANGADEX_USERNAME")
	password := os.Getenv("MANGADEX_PASSWORD")

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()

	client, err := mangadex.NewClient(&mangadex.Config{
		UserAgent: "mangadex-example/1.0",
		Logger:    &logger,
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx := context.Background()

	if err := client.Ping(ctx); err != nil {
		log.Fatalf("API unreachable: %v", err)
	}
	fmt.Println("API is up.")

	// Search works without credentials.
	list, err := client.SearchManga(ctx, &types.MangaSearchOptions{
		Title:      "one piece",
		Pagination: types.Pagination{Limit: 5},
	})
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	fmt.Printf("Found %d manga (showing %d):\n", list.Total, len(list.Results))
	for _, entry := range list.Results {
		title := entry.Data.Attributes.Title["en"]
		if title == "" {
			for _, t := range entry.Data.Attributes.Title {
				title = t
				break
			}
		}
		fmt.Printf("  %s  %s\n", entry.Data.ID, title)
	}

	// The rest needs an account.
	if username == "" || password == "" {
		fmt.Println("Set MANGADEX_USERNAME and MANGADEX_PASSWORD to exercise authenticated calls.")
		return
	}

	if _, err := client.Login(ctx, username, password); err != nil {
		log.Fatalf("Login failed: %v", err)
	}

	me, err := client.Me(ctx)
	if err != nil {
		log.Fatalf("Failed to fetch logged user: %v", err)
	}
	fmt.Printf("Logged in as %s\n", me.Data.Attributes.Username)

	followed, err := client.ListFollowedManga(ctx, types.Pagination{Limit: 10})
	if err != nil {
		log.Fatalf("Failed to list followed manga: %v", err)
	}
	fmt.Printf("Following %d manga.\n", followed.Total)

	if err := client.Logout(ctx); err != nil {
		log.Printf("Logout failed: %v", err)
	}
}
