package main

import (
	"net/http"

	"github.com/devtask-ledger/backend/internal/middleware"
	"github.com/devtask-ledger/backend/pkg/router"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(cctx *cli.Context) error {
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
	s.loadRouter()

	if s.configs.Chain.APIURL != "" && s.configs.Chain.ContractAddress != "" {
		go s.indexerDomain.Start(s.ctx)
	} else {
		s.logger.Infof("No chain contract configured, the indexer is disabled")
	}

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: cors.AllowAll().Handler(s.router.Handler()),
	}

	s.logger.Infof("Starting server on %s", s.configs.ApiServer.Address())
	if err := s.server.ListenAndServe(); err != nil {
		return err
	}

	s.logger.Infof("Server stopped")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	apiRouter := s.router.Group("/api")
	{
		router.GET(apiRouter, "/health", s.healthDomain.Check)
		router.GET(apiRouter, "/stats/global", s.statisticDomain.GetGlobalStats)
		router.GET(apiRouter, "/leaderboard", s.statisticDomain.GetLeaderboard)
		router.GET(apiRouter, "/search", s.statisticDomain.SearchDevelopers)

		router.GET(apiRouter, "/developers", s.developerDomain.GetList)
		router.GET(apiRouter, "/developers/{address}", s.developerDomain.GetProfile)
		router.GET(apiRouter, "/developers/{address}/tasks", s.developerDomain.GetTasks)
		router.GET(apiRouter, "/developers/{address}/achievements", s.developerDomain.GetAchievements)

		router.GET(apiRouter, "/tasks/recent", s.taskDomain.GetRecent)
		router.GET(apiRouter, "/tasks/{txId}", s.taskDomain.GetByTxID)

		router.GET(apiRouter, "/activity", s.activityDomain.GetRecent)
	}
}
