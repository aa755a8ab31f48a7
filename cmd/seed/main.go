// Seed prepares a data directory for first use: default admin and
// chatbot credentials, the built-in synonym map, and optionally a
// starter campus info section so the bot answers something out of the
// box.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/campusflow/campus-assistant-go/internal/auth"
	"github.com/campusflow/campus-assistant-go/internal/config"
	"github.com/campusflow/campus-assistant-go/internal/logger"
	"github.com/campusflow/campus-assistant-go/internal/storage"
	"github.com/campusflow/campus-assistant-go/internal/synonym"
)

var (
	starterFlag = flag.Bool("starter-info", false, "Seed a starter campus info section")
	forceFlag   = flag.Bool("force-synonyms", false, "Overwrite stored synonyms with the built-in map")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	log.Info("Starting seed tool")

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		log.WithError(err).Error("Failed to open document store")
		os.Exit(1)
	}
	log.WithField("dir", store.Dir()).Info("Document store opened")

	ctx := context.Background()

	authSvc := auth.New(store, cfg.AuthSalt)
	if err := authSvc.EnsureDefaults(ctx); err != nil {
		log.WithError(err).Error("Failed to seed auth records")
		os.Exit(1)
	}
	log.WithField("hint", auth.DefaultPasswordHint).Info("Auth records ready")

	if err := seedSynonyms(ctx, store, *forceFlag, log); err != nil {
		log.WithError(err).Error("Failed to seed synonyms")
		os.Exit(1)
	}

	if *starterFlag {
		if err := seedStarterInfo(ctx, store, log); err != nil {
			log.WithError(err).Error("Failed to seed starter info")
			os.Exit(1)
		}
	}

	log.Info("Seed complete")
}

// seedSynonyms writes the built-in synonym map when the store has none
// yet, or unconditionally with -force-synonyms.
func seedSynonyms(ctx context.Context, store *storage.Store, force bool, log *logger.Logger) error {
	existing, err := store.Synonyms(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 && !force {
		log.WithField("terms", len(existing)).Info("Synonyms already present, skipping")
		return nil
	}

	defaults := synonym.Defaults()
	if err := store.SaveSynonyms(ctx, defaults); err != nil {
		return err
	}
	log.WithField("terms", len(defaults)).Info("Synonyms seeded")
	return nil
}

// seedStarterInfo creates a General section with a welcome item, so a
// fresh install has at least one answerable info query.
func seedStarterInfo(ctx context.Context, store *storage.Store, log *logger.Logger) error {
	info, err := store.Info(ctx)
	if err != nil {
		return err
	}
	if len(info) > 0 {
		log.WithField("sections", len(info)).Info("Info catalog already present, skipping")
		return nil
	}

	if err := store.AddInfoSection(ctx, "General"); err != nil {
		return err
	}
	if err := store.AddInfoItem(ctx, "General", "About this assistant",
		"I can help you find study materials, previous year question papers, and campus information. Ask me anything!",
		[]string{"help", "about", "assistant"}); err != nil {
		return err
	}
	log.Info("Starter info section seeded")
	return nil
}
