package main

import (
	"github.com/devtask-ledger/backend/internal/entity"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(cctx *cli.Context) error {
	if err := s.loadConfig(cctx); err != nil {
		return err
	}

	s.loadLogger()
	if err := s.loadDatabase(); err != nil {
		return err
	}

	if err := entity.MigrateTable(s.db); err != nil {
		return err
	}

	s.logger.Infof("Migration completed")
	return nil
}
