package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/compta-server/internal/config"
	"github.com/carson-networks/compta-server/internal/handlers/v1/report"
	"github.com/carson-networks/compta-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/compta-server/internal/model"
	"github.com/carson-networks/compta-server/internal/operator"
	"github.com/carson-networks/compta-server/internal/service"
	"github.com/carson-networks/compta-server/internal/storage"
)

var dataDirFlag = &cli.StringFlag{
	Name:    "data-dir",
	Aliases: []string{"d"},
	Value:   "./data",
	EnvVars: []string{"DATA_DIR"},
	Usage:   "directory holding Compta_<year>.json and settings.json",
}

func newApp(logger *logrus.Logger, out io.Writer) *cli.App {
	return &cli.App{
		Name:      "compta",
		Usage:     "compute personal-finance reports from a data directory",
		Writer:    out,
		ErrWriter: logger.Out,
		Commands: []*cli.Command{
			reportCommand(logger, out),
			archiveCommand(logger, out),
			importCommand(logger, out),
		},
	}
}

func reportCommand(logger *logrus.Logger, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "print the dashboard of a scope and period as JSON",
		Flags: []cli.Flag{
			dataDirFlag,
			&cli.StringFlag{Name: "scope", Value: "all", Usage: "all, current or saving"},
			&cli.StringFlag{Name: "name", Usage: "account name, empty for every account of the scope"},
			&cli.IntFlag{Name: "year", Usage: "calendar year, defaults to the current year"},
			&cli.IntFlag{Name: "month", Usage: "month 1-12, 0 for the whole year"},
			&cli.BoolFlag{Name: "dump", Usage: "print the raw dashboard structure instead of JSON"},
		},
		Action: func(c *cli.Context) error {
			scope, err := model.ParseScope(c.String("scope"), c.String("name"))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			period, err := periodFromFlags(c.Int("year"), c.Int("month"), time.Now())
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			svc, err := openFileService(c.String("data-dir"), logger)
			if err != nil {
				return err
			}
			d, err := svc.Report.Dashboard(c.Context, scope, period)
			if err != nil {
				return err
			}

			if c.Bool("dump") {
				spew.Fdump(out, d)
				return nil
			}
			return writeJSON(out, report.FromDashboard(d))
		},
	}
}

func archiveCommand(logger *logrus.Logger, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "archive",
		Usage: "print the year/month index, or one month's transactions with --year and --month",
		Flags: []cli.Flag{
			dataDirFlag,
			&cli.IntFlag{Name: "year"},
			&cli.IntFlag{Name: "month"},
		},
		Action: func(c *cli.Context) error {
			svc, err := openFileService(c.String("data-dir"), logger)
			if err != nil {
				return err
			}

			year, month := c.Int("year"), c.Int("month")
			if year != 0 && month != 0 {
				if month < 1 || month > 12 {
					return cli.Exit("month must be between 1 and 12", 2)
				}
				txs, err := svc.Report.ArchiveMonth(c.Context, year, time.Month(month))
				if err != nil {
					return err
				}
				return writeJSON(out, transaction.FromModels(txs))
			}

			years, err := svc.Report.Archive(c.Context)
			if err != nil {
				return err
			}
			return writeJSON(out, years)
		},
	}
}

func importCommand(logger *logrus.Logger, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "copy every record of a data directory into the configured backend",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Required: true, Usage: "source data directory"},
		},
		Action: func(c *cli.Context) error {
			source, err := openFileService(c.String("from"), logger)
			if err != nil {
				return err
			}
			records, err := source.Transaction.AllTransactions(c.Context)
			if err != nil {
				return err
			}

			env, err := config.ProcessEnvironmentVariables()
			if err != nil {
				return err
			}
			store, err := storage.Open(env, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			delegator := operator.NewOperatorDelegator(store, 1, logger)
			delegator.Start()
			defer delegator.Stop()

			target := service.NewService(store, delegator, service.Options{})
			imported, err := target.Transaction.ImportTransactions(c.Context, records)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "imported %d of %d transactions\n", imported, len(records))
			return err
		},
	}
}

// openFileService serves reads from a data directory. Writes are not wired.
func openFileService(dir string, logger *logrus.Logger) (*service.Service, error) {
	store, err := storage.NewFileStorage(dir, logger)
	if err != nil {
		return nil, err
	}
	return service.NewService(store, nil, service.Options{}), nil
}

func periodFromFlags(year, month int, now time.Time) (model.Period, error) {
	if year == 0 {
		year = now.Year()
	}
	if month < 0 || month > 12 {
		return model.Period{}, fmt.Errorf("month must be between 0 and 12, got %d", month)
	}
	if month == 0 {
		return model.YearPeriod(year), nil
	}
	return model.MonthPeriod(year, time.Month(month)), nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
