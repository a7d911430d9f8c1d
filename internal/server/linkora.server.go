package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"linkora-server/internal/config"
	"linkora-server/internal/domain"
	"linkora-server/internal/handler"
	"linkora-server/internal/repository"
	"linkora-server/internal/router"
	"linkora-server/internal/usecase"
	"linkora-server/internal/ws"
	"linkora-server/pkg/utils"
	"linkora-server/pkg/utils/id"
)

// New wires the stores, usecases, event router, hub, and HTTP surface.
// All dependencies are explicit; nothing lives in package globals.
func New(cfg config.AppConfig) (*http.Server, error) {
	sf, err := id.NewSnowflake(cfg.SnowflakeNode)
	if err != nil {
		return nil, fmt.Errorf("init snowflake: %w", err)
	}

	identityRepo := repository.NewIdentityRepo(sf)
	socialRepo := repository.NewSocialRepo(sf)
	sessionRepo := repository.NewSessionRepo()

	if err := seedAdmin(identityRepo, cfg); err != nil {
		return nil, err
	}

	authUC := usecase.NewAuthUsecase(identityRepo, sessionRepo)
	feedUC := usecase.NewFeedUsecase(socialRepo)

	hub := ws.NewHub(ws.NewRouter(authUC, feedUC))
	go hub.Run()

	r := chi.NewRouter()
	router.SetupRoutes(
		r,
		handler.NewStaticHandler(cfg.StaticDir),
		handler.NewAdminHandler(authUC),
		handler.NewWSHandler(hub),
	)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}, nil
}

// seedAdmin inserts the bootstrap administrator before any connection
// is accepted.
func seedAdmin(repo *repository.IdentityRepo, cfg config.AppConfig) error {
	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	repo.Seed(&domain.User{
		ID:           "1",
		Email:        cfg.AdminEmail,
		Username:     cfg.AdminUsername,
		Name:         cfg.AdminName,
		PasswordHash: hash,
		IsVerified:   true,
		IsAdmin:      true,
		Avatar:       "",
		JoinedDate:   time.Now(),
	})
	return nil
}
