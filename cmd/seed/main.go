package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/planning-docs-service/internal/config"
	"github.com/planning-docs-service/internal/domain"
	"github.com/planning-docs-service/internal/pkg/logger"
	"github.com/planning-docs-service/internal/repository/sqlstore"
	"github.com/planning-docs-service/internal/usecase"
	"go.uber.org/zap"
)

var (
	defaultScales = []string{"Text", "Blueprints/Material effects", "1:1000", "1:5000", "1:8000", "1:12000", "1:100000"}
	defaultTypes  = []string{"Design", "Informative", "Prescriptive", "Technical", "Agreement", "Conflict", "Consultation", "Action"}

	defaultStakeholders = []domain.Stakeholder{
		{Name: "LKAB", Color: "#000000"},
		{Name: "Kiruna kommun", Color: "#8C99B5"},
		{Name: "Regional authority", Color: "#A68D96"},
		{Name: "Architecture firms", Color: "#B8C09E"},
		{Name: "Citizens", Color: "#A9C4D6"},
		{Name: "Others", Color: "#9A9A9A"},
	}
)

func main() {
	plannerPassword := flag.String("planner-password", "planner", "password for the urban planner account")
	residentPassword := flag.String("resident-password", "resident", "password for the resident account")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	db, err := sqlstore.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := db.Migrate(ctx); err != nil {
		log.Fatal("Failed to apply schema", zap.Error(err))
	}

	catalogRepo := sqlstore.NewCatalogRepository(db)
	for _, name := range defaultScales {
		if _, err := catalogRepo.AddScale(ctx, name); err != nil {
			log.Fatal("Failed to add scale", zap.String("scale", name), zap.Error(err))
		}
	}
	for _, name := range defaultTypes {
		if _, err := catalogRepo.AddType(ctx, name); err != nil {
			log.Fatal("Failed to add document type", zap.String("type", name), zap.Error(err))
		}
	}

	stakeholderRepo := sqlstore.NewStakeholderRepository(db)
	for _, s := range defaultStakeholders {
		if _, err := stakeholderRepo.Create(ctx, s.Name, s.Color); err != nil {
			log.Fatal("Failed to add stakeholder", zap.String("stakeholder", s.Name), zap.Error(err))
		}
	}

	userRepo := sqlstore.NewUserRepository(db)
	users := []struct {
		user     domain.User
		password string
	}{
		{domain.User{Username: "planner", Name: "Urban", Surname: "Planner", Role: domain.RolePlanner}, *plannerPassword},
		{domain.User{Username: "resident", Name: "Kiruna", Surname: "Resident", Role: domain.RoleResident}, *residentPassword},
	}
	for _, u := range users {
		hash, err := usecase.HashPassword(u.password)
		if err != nil {
			log.Fatal("Failed to hash password", zap.Error(err))
		}
		u.user.PasswordHash = hash
		if _, err := userRepo.Create(ctx, u.user); err != nil {
			log.Fatal("Failed to add user", zap.String("username", u.user.Username), zap.Error(err))
		}
	}

	log.Info("Seed data inserted",
		zap.Int("scales", len(defaultScales)),
		zap.Int("types", len(defaultTypes)),
		zap.Int("stakeholders", len(defaultStakeholders)),
		zap.Int("users", len(users)))
}
