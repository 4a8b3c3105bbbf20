// Command seeder populates the database with demo accounts and calendar
// slots for local development. It is idempotent: existing demo accounts
// are reused and their calendars left alone.
//
// Every demo account logs in with the password from --password
// (default "password123").
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/slotswapper/backend/internal/adapter/postgres"
	eventrepo "github.com/slotswapper/backend/internal/adapter/postgres/event"
	userrepo "github.com/slotswapper/backend/internal/adapter/postgres/user"
	"github.com/slotswapper/backend/internal/app"
	"github.com/slotswapper/backend/internal/config"
	"github.com/slotswapper/backend/internal/domain"
)

type demoUser struct {
	name  string
	email string
	slots []demoSlot
}

type demoSlot struct {
	title    string
	dayAhead int
	hour     int
	status   domain.EventStatus
}

var demoUsers = []demoUser{
	{
		name:  "Alice Demo",
		email: "alice@example.com",
		slots: []demoSlot{
			{"Morning support shift", 1, 9, domain.EventStatusSwappable},
			{"Team planning", 1, 14, domain.EventStatusBusy},
			{"Friday on-call", 4, 18, domain.EventStatusSwappable},
		},
	},
	{
		name:  "Bob Demo",
		email: "bob@example.com",
		slots: []demoSlot{
			{"Evening support shift", 1, 18, domain.EventStatusSwappable},
			{"Code review block", 2, 10, domain.EventStatusBusy},
		},
	},
	{
		name:  "Carol Demo",
		email: "carol@example.com",
		slots: []demoSlot{
			{"Weekend deploy window", 5, 11, domain.EventStatusSwappable},
		},
	},
}

func main() {
	password := flag.String("password", "password123", "password for all demo accounts")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	events := eventrepo.New(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, demo := range demoUsers {
		if err := seedUser(ctx, logger, users, events, demo, string(hash)); err != nil {
			logger.Error("seed user failed",
				slog.String("email", demo.email),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	logger.Info("demo data seeded", slog.Int("users", len(demoUsers)))
}

func seedUser(
	ctx context.Context,
	logger *slog.Logger,
	users *userrepo.Repo,
	events *eventrepo.Repo,
	demo demoUser,
	passwordHash string,
) error {
	now := time.Now().UTC()

	created, err := users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Name:         demo.name,
		Email:        demo.email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		logger.Info("demo user already present, skipping", slog.String("email", demo.email))
		return nil
	}
	if err != nil {
		return err
	}

	for _, slot := range demo.slots {
		start := now.AddDate(0, 0, slot.dayAhead).
			Truncate(24 * time.Hour).
			Add(time.Duration(slot.hour) * time.Hour)

		_, err := events.Create(ctx, &domain.Event{
			ID:        uuid.New(),
			Title:     slot.title,
			StartTime: start,
			EndTime:   start.Add(time.Hour),
			Status:    slot.status,
			OwnerID:   created.ID,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
	}

	logger.Info("demo user seeded",
		slog.String("email", demo.email),
		slog.Int("slots", len(demo.slots)),
	)
	return nil
}
