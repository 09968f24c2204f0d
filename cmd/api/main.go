package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/Kyosue/vetra/infrastructure/database/postgres"
	"github.com/Kyosue/vetra/infrastructure/repository"
	"github.com/Kyosue/vetra/internal/api"
	"github.com/Kyosue/vetra/internal/config"
	"github.com/Kyosue/vetra/internal/scheduler"
	"github.com/Kyosue/vetra/internal/usecases/authenticating"
	"github.com/Kyosue/vetra/internal/usecases/inventory"
	"github.com/Kyosue/vetra/internal/usecases/reporting"
	"github.com/Kyosue/vetra/internal/usecases/selling"
	"github.com/sirupsen/logrus"
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

	userRepo := repository.NewUserRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	reportSnapshotRepo := repository.NewReportSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	inventoryService := inventory.NewService(productRepo)
	sellingService := selling.NewService(pgConn, saleRepo, productRepo, userRepo, cfg)
	reportService := reporting.NewService(saleRepo, reportSnapshotRepo, cfg)

	// Inicializa o agendador de snapshot diário de relatório
	reportSnapshotSyncService := scheduler.NewReportSnapshotSyncService(
		reportService,
		reportSnapshotRepo,
		cfg,
	)

	if err := reportSnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot de relatório")
	} else {
		logrus.Info("Agendador de snapshot de relatório iniciado com sucesso")
	}
	defer reportSnapshotSyncService.Stop()

	server, err := api.New(
		cfg,
		reportService,
		inventoryService,
		sellingService,
		authenticator,
		reportSnapshotSyncService,
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

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
