package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/ratedesk/ratedesk/infra/initializer"
	"github.com/ratedesk/ratedesk/pkg/config"
	"github.com/ratedesk/ratedesk/pkg/convert"
	"github.com/ratedesk/ratedesk/pkg/domain"
)

func main() {
	argsLen := len(os.Args)
	if argsLen < 2 {
		fmt.Println("Usage: cli <command> [arguments]")
		fmt.Println("Commands: convert <amount> <from> <to>, rates, units, clear-cache")
		return
	}
	cmd := os.Args[1]

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Println("Failed to load configuration:", err)
		return
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		fmt.Println("Failed to initialize dependencies:", err)
		return
	}

	// Surface advisory events the way the old desktop form showed dialogs.
	deps.EventBus.Subscribe(domain.EventTypeOfflineModeEngaged.String(), func(_ context.Context, e domain.Event) {
		if offline, ok := e.(domain.OfflineModeEngaged); ok {
			color.Yellow("Offline mode: using cached exchange rates (age %s)", offline.SnapshotAge.Round(time.Second))
		}
	})
	deps.EventBus.Subscribe(domain.EventTypeCacheCleared.String(), func(_ context.Context, _ domain.Event) {
		color.Cyan("Rate cache has been cleared.")
	})

	ctx := context.Background()

	switch cmd {
	case "convert":
		if argsLen < 5 {
			fmt.Println("Usage: convert <amount> <from> <to>")
			return
		}
		amount, err := strconv.ParseFloat(os.Args[2], 64)
		if err != nil {
			color.Red("Invalid amount: %v", err)
			return
		}
		from, to := os.Args[3], os.Args[4]
		if !deps.Units.IsSupported(from) || !deps.Units.IsSupported(to) {
			color.Red("Supported units: %s", strings.Join(deps.Units.ListSupported(), ", "))
			return
		}
		snapshot, err := deps.Rates.GetRates(ctx)
		if err != nil {
			color.Red("Could not get exchange rates: %v", err)
			return
		}
		result, err := convert.Convert(snapshot, domain.ConversionRequest{
			Amount:   amount,
			FromUnit: from,
			ToUnit:   to,
		})
		if err != nil {
			color.Red("Conversion failed: %v", err)
			return
		}
		meta := deps.Units.Get(result.ToUnit)
		color.Green("%.*f %s", meta.Decimals, result.Value, result.ToUnit)
	case "rates":
		snapshot, err := deps.Rates.GetRates(ctx)
		if err != nil {
			color.Red("Could not get exchange rates: %v", err)
			return
		}
		fmt.Printf("Origin: %s, fetched at %d\n", snapshot.Origin, snapshot.FetchedAt)
		fmt.Printf("BTC/USD: %.2f\n", snapshot.CryptoUSDPrice)
		fmt.Printf("XAU/USD (oz): %.2f\n", snapshot.MetalUSDPricePerOz)
		for _, code := range deps.Units.ListSupported() {
			if rate, ok := snapshot.FiatRates[code]; ok {
				fmt.Printf("%s: %.4f\n", code, rate)
			}
		}
	case "units":
		fmt.Println(strings.Join(deps.Units.ListSupported(), "\n"))
	case "clear-cache":
		if err := deps.Rates.ClearCache(ctx); err != nil {
			color.Red("Failed to clear cache: %v", err)
		}
	default:
		fmt.Println("Unknown command:", cmd)
	}
}
