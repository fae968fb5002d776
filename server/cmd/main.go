package main

import (
	"flag"
	"log"

	"feedline/server/cmd/modules"
	shareds3 "feedline/shared/s3"

	_ "github.com/lib/pq"
)

func main() {
	// Путь к .env
	modules.InitEnv()

	cfg, err := modules.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Ошибка конфигурации: %v", err)
	}

	resetDB := flag.Bool("reset-db", false, "drop and recreate all tables and columns")
	seedDB := flag.Bool("seed", false, "populate the database with demo data")
	flag.Parse()

	// Подключение к БД
	client := modules.ConnectDB(cfg)
	defer client.Close()

	// Миграции
	modules.MigrateDB(client, *resetDB)

	if *seedDB {
		if cfg.Env == "production" {
			log.Fatalln("❌ Сидинг демо-данных в production запрещён")
		}
		if err := modules.Seed(client); err != nil {
			log.Fatalf("❌ Ошибка сидинга: %v", err)
		}
	}

	// S3 опционален: без него /upload просто не регистрируется
	s3Client, err := shareds3.NewS3Client()
	if err != nil {
		log.Printf("⚠️  S3 не настроен, загрузка аватаров отключена: %v", err)
		s3Client = nil
	}

	httpServer := modules.SetupHTTPServer(cfg, client, s3Client)
	modules.StartHTTPServer(httpServer)
}
