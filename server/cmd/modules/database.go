package modules

import (
	"context"
	"fmt"
	"log"

	"entgo.io/ent/dialect/sql/schema"
	_ "github.com/lib/pq"

	"feedline/server/ent"
)

func ConnectDB(cfg *Config) *ent.Client {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort,
		cfg.DBUser, cfg.DBPassword,
		cfg.DBName, cfg.SSLMode,
	)
	client, err := ent.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("не удалось подключиться к базе: %v", err)
	}
	return client
}

func MigrateDB(client *ent.Client, reset bool) {
	if reset {
		log.Println("⚠️  Полный сброс базы данных с удалением колонок и индексов...")
		if err := client.Schema.Create(
			context.Background(),
			schema.WithDropIndex(true),
			schema.WithDropColumn(true),
		); err != nil {
			log.Fatalf("ошибка сброса схемы: %v", err)
		}
		log.Println("✅ Сброс базы завершён.")
	} else {
		if err := client.Schema.Create(context.Background()); err != nil {
			log.Fatalf("ошибка миграции схемы: %v", err)
		}
		log.Println("✅ Миграция завершена.")
	}
}
