package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-campaign-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-campaign-api/infrastructure/repository"
	"github.com/vfg2006/creator-campaign-api/internal/api"
	"github.com/vfg2006/creator-campaign-api/internal/config"
	"github.com/vfg2006/creator-campaign-api/internal/presenting"
	"github.com/vfg2006/creator-campaign-api/internal/usecases/campaign"
	"github.com/vfg2006/creator-campaign-api/internal/usecases/creator"
	"github.com/vfg2006/creator-campaign-api/internal/usecases/invitation"
	"github.com/vfg2006/creator-campaign-api/internal/usecases/ranking"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	campaignRepo := repository.NewCampaignRepository(pgConn)
	creatorRepo := repository.NewCreatorRepository(pgConn)
	invitationRepo := repository.NewInvitationRepository(pgConn)

	// A URL base das imagens é resolvida uma única vez na configuração
	presenter := presenting.NewPresenter(cfg.Storage.BaseURL)
	logrus.WithField("storage_base_url", cfg.Storage.BaseURL).Debug("Presenter configurado")

	campaignService := campaign.NewService(campaignRepo, presenter)
	creatorService := creator.NewService(creatorRepo, presenter)
	invitationService := invitation.NewService(invitationRepo)
	rankingService := ranking.NewCreatorRankingService(
		campaignRepo,
		creatorRepo,
		invitationRepo,
		presenter,
		cfg.Ranking.TopCreatorsLimit,
	)

	server, err := api.New(
		cfg,
		campaignService,
		creatorService,
		invitationService,
		rankingService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados, já validada por ping em NewConnection
func pgconn(ctx context.Context, dbConfig config.Database) postgres.Conn {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
