// seed crea la cuenta admin inicial si no existe todavía.
//
// Uso: go run ./cmd/seed
// Email y password se toman de SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD
// (por defecto admin@erp.local / cámbiame al primer login).
// Idempotente: si el email ya está registrado no hace nada.
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/erp-backend/internal/domain/entity"
	"github.com/tu-usuario/erp-backend/internal/infrastructure/postgres"
	"github.com/tu-usuario/erp-backend/pkg/config"
	"github.com/tu-usuario/erp-backend/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@erp.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin12345"
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repo := postgres.NewUserRepository(pool)
	existing, err := repo.GetByEmail(email)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar admin")
	}
	if existing != nil {
		log.Info().Str("email", email).Msg("el admin ya existe, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}
	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Administrador",
		Role:         entity.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear admin")
	}
	log.Info().Str("email", email).Msg("admin creado")
}
