package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os"

	"staymeter/internal/adapters/ingest/spreadsheet"
	"staymeter/internal/core/stay"
	"staymeter/internal/platform/logger"
)

func main() {
	var (
		file  = flag.String("file", "", "input spreadsheet (.csv, .xlsx, .xlsm)")
		sheet = flag.String("sheet", "", "worksheet name (xlsx only, default first sheet)")

		tech      = flag.String("technician", "Technician", "technician column")
		arrival   = flag.String("arrival", "Arrival Time", "arrival time column")
		departure = flag.String("departure", "Departure Time", "departure time column")
		model     = flag.String("model", "", "terminal model column (optional)")
		affiliate = flag.String("affiliate", "", "affiliate column (optional)")
		repDate   = flag.String("report-date", "", "report date column (optional)")
		failure   = flag.String("failure-reason", "", "failure reason column (optional)")

		iqrK         = flag.Float64("iqr", 1.5, "Tukey multiplier for anomaly fences")
		topN         = flag.Int("top", 10, "cap for the affiliate failure listing")
		withInvalid  = flag.Bool("include-invalid", false, "include negative durations in the fence population")
		errorOnEmpty = flag.Bool("error-on-empty", false, "fail instead of emitting empty tables")
		pretty       = flag.Bool("pretty", true, "indent the JSON output")
	)
	flag.Parse()

	if *file == "" {
		log.Fatal("-file is required")
	}

	l := logger.Get()

	ds, err := spreadsheet.Load(*file, *sheet)
	if err != nil {
		l.Fatal().Err(err).Str("file", *file).Msg("load failed")
	}

	cols := stay.Columns{
		Technician:    *tech,
		Arrival:       *arrival,
		Departure:     *departure,
		TerminalModel: *model,
		Affiliate:     *affiliate,
		ReportDate:    *repDate,
		FailureReason: *failure,
	}
	opts := stay.Options{
		IQRMultiplier:       *iqrK,
		TopAffiliates:       *topN,
		IncludeInvalidInIQR: *withInvalid,
		ErrorOnEmpty:        *errorOnEmpty,
	}

	res, err := stay.Analyze(ds, cols, opts)
	if err != nil {
		var se *stay.SchemaError
		if errors.As(err, &se) {
			l.Fatal().Strs("missing", se.Missing).Msg("dataset missing required columns")
		}
		l.Fatal().Err(err).Msg("analysis failed")
	}

	if res.ParseFailures > 0 {
		l.Warn().
			Int("rows", res.TotalRows).
			Int("parse_failures", res.ParseFailures).
			Msg("some rows were dropped")
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(res); err != nil {
		l.Fatal().Err(err).Msg("encode failed")
	}
}
