// Command lifekline generates a life K-line chart for the given birth
// information and prints the canonical result as JSON.
//
// Configuration comes from the environment (a .env file is honored):
// DEEPSEEK_API_KEY, DEEPSEEK_BASE_URL, LIFEKLINE_MODEL, LIFEKLINE_LOG_LEVEL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	stdslog "log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/baobaozi233/lifekline/core/client"
	"github.com/baobaozi233/lifekline/internal/prompt"
	"github.com/baobaozi233/lifekline/internal/utils"
	"github.com/baobaozi233/lifekline/providers/ai/deepseek"
	obslog "github.com/baobaozi233/lifekline/providers/observability/slog"
)

func main() {
	var info prompt.BirthInfo
	flag.StringVar(&info.Name, "name", "", "name (optional)")
	flag.StringVar(&info.Gender, "gender", "male", "gender: male or female")
	flag.StringVar(&info.Calendar, "calendar", "solar", "calendar of the birth date: solar or lunar")
	flag.StringVar(&info.Date, "date", "", "birth date, YYYY-MM-DD (required)")
	flag.IntVar(&info.Hour, "hour", 12, "birth hour, 0-23")
	flag.StringVar(&info.Place, "place", "", "birth place (optional)")
	flag.Parse()

	if info.Date == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := stdslog.New(stdslog.NewTextHandler(os.Stderr, &stdslog.HandlerOptions{
		Level: obslog.GetLogLevelFromEnv(),
	}))

	c, err := client.New(
		deepseek.New(),
		client.WithObserver(obslog.New(logger)),
	)
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}

	result, err := c.GenerateChart(context.Background(), info)
	if err != nil {
		log.Fatalf("chart generation failed: %v", err)
	}

	fmt.Println(utils.JSONToString(result, true))
}
