package db

import (
	"database/sql"
	"embed"
	"log"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// InitDB инициализирует соединение с базой данных и применяет миграции
func InitDB(dsn string) *sql.DB {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Ошибка при открытии базы данных: %v", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatalf("Ошибка при подключении к базе данных: %v", err)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Не удалось выбрать диалект миграций: %v", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatalf("Не удалось применить миграции: %v", err)
	}

	log.Println("База данных успешно инициализирована")
	return db
}
