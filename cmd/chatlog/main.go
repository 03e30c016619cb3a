// Command chatlog inspects the chat audit trail written by chatd.
// It opens the stores directly, so chatd must be stopped when searching or editing the dictionary.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"world-chat/auth"
	"world-chat/domain"
	"world-chat/repositories"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	BlugeFilepath  string `envconfig:"BLUGE_FILEPATH" required:"true"`
	PageSize       int    `envconfig:"CHATLOG_PAGE_SIZE" default:"50"`
	AuthSecret     string `envconfig:"AUTH_SECRET"`
	// CHATLOG_COLOURS enables colorized headers
	Colours bool `envconfig:"CHATLOG_COLOURS" default:"true"`
}

func main() {
	sender := flag.Uint64("sender", 0, "List the chat of a player GUID, newest first")
	cursor := flag.String("cursor", "", "Resume a -sender listing after this cursor")
	search := flag.String("search", "", "Full-text search of the chat log")
	kind := flag.Int("kind", 0, "Restrict -search to a chat kind")
	page := flag.Int("page", 0, "Page of -search results")
	addWords := flag.String("censor-add", "", "Comma separated words added to the censor dictionary")
	removeWord := flag.String("censor-remove", "", "Word removed from the censor dictionary")
	listWords := flag.Bool("censor-list", false, "List the censor dictionary")
	token := flag.Uint64("token", 0, "Print a gateway token for a player GUID")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "Lifetime of the -token")
	security := flag.Int("security", 0, "Security tier carried by the -token")
	flag.Parse()

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger := logs.GetLoggerFromLevel(slog.LevelWarn)

	var err error
	switch {
	case *sender != 0:
		err = withBadger(config, true, func(db *badger.DB) error {
			return listSender(config, db, logger, domain.GUID(*sender), *cursor)
		})
	case *search != "":
		err = searchIndex(config, logger, repositories.SearchQuery{Text: *search, Kind: domain.Kind(*kind), Page: *page})
	case *addWords != "":
		err = withBadger(config, false, func(db *badger.DB) error {
			return repositories.NewCensorDictionary(db).Add(strings.Split(*addWords, ",")...)
		})
	case *removeWord != "":
		err = withBadger(config, false, func(db *badger.DB) error {
			return repositories.NewCensorDictionary(db).Remove(*removeWord)
		})
	case *listWords:
		err = withBadger(config, true, func(db *badger.DB) error {
			words, err := repositories.NewCensorDictionary(db).Words()
			if err != nil {
				return err
			}
			header(config, fmt.Sprintf("%d censored words", len(words)))
			fmt.Println(strings.Join(words, "\n"))
			return nil
		})
	case *token != 0:
		err = printToken(config, domain.GUID(*token), domain.SecurityTier(*security), *tokenTTL)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func withBadger(config Config, readOnly bool, fn func(db *badger.DB) error) error {
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(readOnly).
		WithBypassLockGuard(readOnly).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	return fn(db)
}

func listSender(config Config, db *badger.DB, logger *slog.Logger, sender domain.GUID, cursor string) error {
	chatLog := repositories.NewChatLogRepository(db, logger, lo.ToPtr(config.PageSize))
	records, next, err := chatLog.BySender(sender, lo.EmptyableToPtr(cursor))
	if err != nil {
		return err
	}

	header(config, fmt.Sprintf("Chat of %d", sender))
	table := newTable([]string{"At", "Kind", "Audience", "Target", "Language", "Text"})
	for _, r := range records {
		table.Append([]string{
			r.At.Format("2006-01-02 15:04:05"),
			r.Kind.String(),
			r.Audience.String(),
			r.Target,
			r.Detected,
			r.Text,
		})
	}
	table.Render()
	if len(records) == config.PageSize && next != nil {
		fmt.Printf("\nNext page: -sender %d -cursor %s\n", sender, *next)
	}
	return nil
}

func searchIndex(config Config, logger *slog.Logger, query repositories.SearchQuery) error {
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer writer.Close()

	hits, total, err := repositories.NewChatLogIndex(writer, logger, config.PageSize).Search(context.Background(), query)
	if err != nil {
		return err
	}

	header(config, fmt.Sprintf("%d matches for %q", total, query.Text))
	table := newTable([]string{"At", "Sender", "Kind", "Language", "Score", "Text"})
	for _, h := range hits {
		table.Append([]string{
			h.At.Format("2006-01-02 15:04:05"),
			h.SenderName,
			h.Kind.String(),
			h.Detected,
			strconv.FormatFloat(h.Score, 'f', 2, 64),
			h.Text,
		})
	}
	table.Render()
	return nil
}

func printToken(config Config, player domain.GUID, security domain.SecurityTier, ttl time.Duration) error {
	if config.AuthSecret == "" {
		return fmt.Errorf("AUTH_SECRET is required to sign tokens")
	}
	signed, err := auth.GenerateToken([]byte(config.AuthSecret), player, security, ttl)
	if err != nil {
		return err
	}
	fmt.Println(signed)
	return nil
}

func header(config Config, title string) {
	title = fmt.Sprintf("  ====== %s ======", title)
	if config.Colours {
		title = color.New(color.BgBlack, color.FgGreen).Render(title)
	}
	fmt.Println(title)
}

func newTable(columns []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(columns)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
