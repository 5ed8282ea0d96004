package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	MaxConns int
}

func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

func NewPostgresDB(cfg Config) (*sql.DB, error) {
	var db *sql.DB
	var err error
	maxRetries := 10

	for i := 1; i <= maxRetries; i++ {
		log.Printf("connecting to database (attempt %d/%d)...", i, maxRetries)
		db, err = sql.Open("postgres", cfg.DSN())
		if err == nil {
			err = db.Ping()
		}

		if err == nil {
			log.Println("database connected")
			configurePool(db, cfg.MaxConns)
			return db, nil
		}

		if db != nil {
			db.Close()
		}
		log.Printf("database not ready yet, waiting 2 seconds...")
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect to database: %w", err)
}

func configurePool(db *sql.DB, maxConns int) {
	if maxConns <= 0 {
		maxConns = 25
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)
	db.SetConnMaxLifetime(5 * time.Minute)
}
