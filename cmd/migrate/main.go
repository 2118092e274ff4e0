package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"

	"github.com/campusbook/CB-ReservationService/internal/config"
)

// Утилита миграций схемы БД.
//
//	go run ./cmd/migrate -cmd up
//	go run ./cmd/migrate -cmd down -steps 1
//
// Строка подключения берется из config.toml; переменная окружения
// DATABASE_URL (в том числе из .env) имеет приоритет.
func main() {
	var (
		configPath     = flag.String("config", "config.toml", "путь к файлу конфигурации")
		migrationsPath = flag.String("path", "file://migrations", "источник миграций")
		command        = flag.String("cmd", "up", "команда: up, down, version")
		steps          = flag.Int("steps", 0, "число шагов для down (0 — все)")
	)
	flag.Parse()

	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Printf("Failed to load config: %v\n", err)
			os.Exit(1)
		}
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
			cfg.Database.User, cfg.Database.Password,
			cfg.Database.Host, cfg.Database.Port,
			cfg.Database.DBName, cfg.Database.SSLMode)
	}

	m, err := migrate.New(*migrationsPath, dsn)
	if err != nil {
		fmt.Printf("Failed to initialize migrations: %v\n", err)
		os.Exit(1)
	}
	defer func() { _, _ = m.Close() }()

	switch *command {
	case "up":
		err = m.Up()
	case "down":
		if *steps > 0 {
			err = m.Steps(-*steps)
		} else {
			err = m.Down()
		}
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil {
			fmt.Printf("Failed to get version: %v\n", verr)
			os.Exit(1)
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)
		return
	default:
		fmt.Printf("Unknown command %q\n", *command)
		os.Exit(1)
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("No migrations to apply")
			return
		}
		fmt.Printf("Migration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Migrations applied successfully")
}
