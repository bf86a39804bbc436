package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/bzimmer/workout"
)

func rates(c *cli.Context) (*workout.Rates, error) {
	var err error
	var fp io.ReadCloser
	switch c.IsSet("config") {
	case true:
		log.Info().Str("file", c.String("config")).Msg("config")
		fp, err = os.Open(c.String("config"))
	case false:
		log.Info().Str("file", "etc/rates.json").Msg("config")
		fp, err = workout.Content.Open("etc/rates.json")
	}
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return workout.LoadRates(fp)
}

func summarize(c *cli.Context) error {
	rates, err := rates(c)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if c.NArg() > 0 {
		fp, err := os.Open(c.Args().First())
		if err != nil {
			return err
		}
		defer fp.Close()
		in = fp
	}

	entries, err := workout.LoadLog(in)
	if err != nil {
		return err
	}

	sessions := make([]workout.Session, 0, len(entries))
	for _, entry := range entries {
		s, err := entry.Session(rates)
		if err != nil {
			return err
		}
		log.Info().
			Str("kind", s.Kind()).
			Dur("duration", s.Duration()).
			Float64("calories", s.Calories()).
			Msg("workout")
		sessions = append(sessions, s)
	}

	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(workout.NewSummary(sessions))
}

func main() {
	app := &cli.App{
		Name:      "workout",
		HelpName:  "workout",
		Usage:     "Workout Log",
		ArgsUsage: "[workout log file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "file with calorie burn rates",
			},
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			log.Error().Err(err).Msg(c.App.Name)
		},
		Before: func(c *cli.Context) error {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			zerolog.DurationFieldUnit = time.Millisecond
			zerolog.DurationFieldInteger = false
			log.Logger = log.Output(
				zerolog.ConsoleWriter{
					Out:        c.App.ErrWriter,
					NoColor:    false,
					TimeFormat: time.RFC3339,
				},
			)
			return nil
		},
		Action: summarize,
	}
	if err := app.RunContext(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}
