package main

import (
	"github.com/urfave/cli/v2"
)

const recalculatePageSize = 500

func (s *srv) startRecalculate(cctx *cli.Context) error {
	if err := s.loadConfig(cctx); err != nil {
		return err
	}

	s.loadLogger()
	if err := s.loadDatabase(); err != nil {
		return err
	}

	s.loadCache()
	defer s.closeRedis()

	s.loadRepos()
	s.loadDomains()

	if address := cctx.String("address"); address != "" {
		count, err := s.ingestDomain.RecalculateTaskCount(s.ctx, address)
		if err != nil {
			return err
		}

		s.logger.Infof("Recalculated %s to %d tasks", address, count)
		return nil
	}

	// Page by address: the sweep rewrites task counts, so any count-ordered
	// pagination would shift under it.
	total := 0
	cursor := ""
	for {
		developers, err := s.developerRepo.GetPage(s.ctx, cursor, recalculatePageSize)
		if err != nil {
			return err
		}

		if len(developers) == 0 {
			break
		}

		for _, developer := range developers {
			if _, err := s.ingestDomain.RecalculateTaskCount(s.ctx, developer.Address); err != nil {
				s.logger.Errorf("Cannot recalculate %s: %v", developer.Address, err)
				continue
			}

			total++
		}

		cursor = developers[len(developers)-1].Address
	}

	s.logger.Infof("Recalculated %d developers", total)
	return nil
}
