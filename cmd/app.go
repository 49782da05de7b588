package main

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/dtroode/mycard-server/internal/api/http/context"
	"github.com/dtroode/mycard-server/internal/config"
	"github.com/dtroode/mycard-server/internal/logger"
	"github.com/dtroode/mycard-server/internal/model"
	"github.com/dtroode/mycard-server/internal/repository/postgres"
	"github.com/dtroode/mycard-server/internal/service"
	storage "github.com/dtroode/mycard-server/internal/storage/minio"
	"github.com/dtroode/mycard-server/internal/token"
)

// app holds the wired services shared by the commands.
type app struct {
	cfg    *config.Config
	logger *logger.Logger
	db     *postgres.Connection

	contextManager *httpctx.Manager
	sessions       *service.Session
	cards          *service.Card
	profiles       *service.Profile
	auth           *service.Auth
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	images, err := newImageStorage(ctx, cfg.Storage)
	if err != nil {
		db.Close()
		return nil, err
	}
	if images == nil {
		logger.Info("image uploads disabled")
	}

	cardRepo := postgres.NewCardRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	userRepo := postgres.NewUserRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	ctxMgr := httpctx.NewManager()

	sessions := service.NewSession(userRepo, tokenManager, ctxMgr, logger)
	identity := service.NewIdentity(sessions, logger)
	cards := service.NewCard(cardRepo, identity, images, logger)

	return &app{
		cfg:            cfg,
		logger:         logger,
		db:             db,
		contextManager: ctxMgr,
		sessions:       sessions,
		cards:          cards,
		profiles:       service.NewProfile(profileRepo, sessions, cards, cfg.Cards.OwnerPolicy, logger),
		auth:           service.NewAuth(sessions, userRepo, profileRepo, logger),
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database", "error", err)
	}
}

// newImageStorage returns nil when uploads are disabled.
func newImageStorage(ctx context.Context, cfg config.Storage) (model.Storage, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	client, err := storage.NewClient(ctx, minioClient, cfg.Bucket, cfg.PublicURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage client: %w", err)
	}

	return client, nil
}
