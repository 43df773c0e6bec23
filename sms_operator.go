package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/CedricFinance/sms_operator/config"
	"github.com/CedricFinance/sms_operator/interpreter"
	"github.com/CedricFinance/sms_operator/nexmo"
	"github.com/CedricFinance/sms_operator/repository"
	"github.com/CedricFinance/sms_operator/ubidots"
	"github.com/slack-go/slack"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lookup, err := ubidots.NewClient(cfg.Ubidots.BaseURL, cfg.Ubidots.Token)
	if err != nil {
		log.Fatal(err)
	}

	sender, err := nexmo.NewClient(cfg.Vonage.BaseURL, cfg.Vonage.APISecret)
	if err != nil {
		log.Fatal(err)
	}

	operator := &Operator{
		Interpreter:   interpreter.New(lookup, sender, cfg.Keyword),
		DefaultAPIKey: cfg.Vonage.APIKey,
	}

	var logs CommandLogReader
	if cfg.DatabaseDSN != "" {
		db, err := repository.Open(cfg.DatabaseDSN)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}

		repo := repository.New(db)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = repo.CreateTables(ctx)
		cancel()
		if err != nil {
			db.Close()
			log.Fatalf("failed to create tables: %v", err)
		}

		operator.Store = repo
		logs = repo
		log.Printf("Command log enabled")
	}

	if cfg.Slack.Enabled() {
		operator.Slack = slack.New(cfg.Slack.Token)
		operator.Channel = cfg.Slack.Channel
		log.Printf("Slack notifications enabled on channel %s", cfg.Slack.Channel)
	}

	log.Printf("Listening on port %s", cfg.Port)
	log.Printf("Vonage inbound webhook: http://localhost:%s/webhooks/inbound", cfg.Port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), NewRouter(operator, logs)))
}
