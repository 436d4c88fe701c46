// Command give-me-the-odds computes the probability that the ship reaches
// its destination before the countdown expires, given two input files:
//
//	give-me-the-odds [flags] <millennium-falcon.json> <empire.json>
//
// The probability is printed on stdout; diagnostics go to stderr. With
// -verbose, a day-by-day itinerary of the optimal route follows the
// probability. Start and destination default to Tatooine and Endor and can
// be overridden with flags or the FALCON_START / FALCON_DESTINATION
// environment variables (a .env file is honored when present).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/falconry/odds"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("mission aborted", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("give-me-the-odds", flag.ExitOnError)
	verbose := fs.Bool("verbose", false, "print the optimal itinerary day by day")
	start := fs.String("start", "", "departure planet (default Tatooine)")
	destination := fs.String("destination", "", "target planet (default Endor)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: give-me-the-odds [flags] <millennium-falcon.json> <empire.json>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("expected 2 input files, got %d", fs.NArg())
	}

	// .env is optional; explicit flags beat environment, environment beats defaults.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded environment from .env")
	}
	from := pick(*start, os.Getenv("FALCON_START"), odds.DefaultStart)
	to := pick(*destination, os.Getenv("FALCON_DESTINATION"), odds.DefaultDestination)

	calc, err := odds.NewCalculatorFromFile(fs.Arg(0), odds.WithEndpoints(from, to))
	if err != nil {
		return err
	}

	probability, err := calc.GiveMeTheOddsFile(fs.Arg(1))
	if err != nil {
		return err
	}

	fmt.Println(strconv.FormatFloat(probability, 'f', -1, 64))

	if *verbose {
		fmt.Println()
		fmt.Println(calc.Itinerary())
	}

	return nil
}

// pick returns the first non-empty value.
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
