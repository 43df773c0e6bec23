// ubidots-seed pushes values to a Ubidots device so SMS data requests have
// something to answer with:
//
//	ubidots-seed -device balcony humidity=50.87 temperature=36.39
//
// The token is read the same way as the server, from UBIDOTS_TOKEN or the
// SMS_OPERATOR_CONFIG file.
package main

import (
	"context"
	"flag"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/CedricFinance/sms_operator/config"
	"github.com/CedricFinance/sms_operator/ubidots"
)

func main() {
	device := flag.String("device", "", "device label")
	flag.Parse()

	if *device == "" || flag.NArg() == 0 {
		log.Fatal("usage: ubidots-seed -device <label> <variable>=<value>...")
	}

	values, err := parseValues(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := config.LoadUbidots()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	client, err := ubidots.NewClient(cfg.Ubidots.BaseURL, cfg.Ubidots.Token)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := client.SendValues(ctx, *device, values); err != nil {
		log.Fatal(err)
	}
	log.Printf("sent %d value(s) to %s", len(values), *device)
}

func parseValues(args []string) (map[string]any, error) {
	values := make(map[string]any, len(args))
	for _, arg := range args {
		label, raw, ok := strings.Cut(arg, "=")
		if !ok || label == "" {
			return nil, &invalidValue{arg: arg}
		}
		number, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &invalidValue{arg: arg}
		}
		values[strings.ToLower(label)] = number
	}
	return values, nil
}

type invalidValue struct {
	arg string
}

func (e *invalidValue) Error() string {
	return "invalid value " + strconv.Quote(e.arg) + ", expected <variable>=<number>"
}
