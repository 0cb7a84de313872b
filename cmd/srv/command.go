package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "devtask-ledger"
	app.Usage = "Backend for the on-chain developer task ledger"

	chainConfigFlag := &cli.StringFlag{
		Name:  "chain-config",
		Usage: "Path of a toml file overriding the chain settings",
	}

	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start the api service",
			Flags:       []cli.Flag{chainConfigFlag},
			Category:    "Api",
			Description: `Serves the public read api and, when a chain contract is configured, runs the event indexer alongside it.`,
		},
		{
			Action:      server.startMigrate,
			Name:        "migrate",
			Usage:       "Migrate the database schema",
			Category:    "Database",
			Description: `Creates or updates every table the service needs.`,
		},
		{
			Action:   server.startRecalculate,
			Name:     "recalculate",
			Usage:    "Rebuild developer task counters from the task table",
			Category: "Database",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "address",
					Usage: "Recalculate a single developer instead of all of them",
				},
			},
			Description: `Reconciliation tool for counters that drifted from the task table.`,
		},
	}

	s.app = app
}
