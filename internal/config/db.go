package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

var (
	DB   *sql.DB
	dbMu sync.Mutex
)

// schemaSQLite stores dates as text so values round-trip exactly as submitted.
const schemaSQLite = `
CREATE TABLE IF NOT EXISTS shipments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	so TEXT NOT NULL,
	dn TEXT NOT NULL,
	customer_name_and_address TEXT NOT NULL,
	phone TEXT NOT NULL,
	name TEXT NOT NULL,
	destination TEXT NOT NULL,
	etd TEXT NOT NULL,
	eta TEXT NOT NULL,
	logistic_partner TEXT NOT NULL,
	booking_date TEXT NOT NULL,
	packing TEXT NOT NULL,
	chromascan TEXT NOT NULL,
	weight TEXT NOT NULL,
	volume TEXT NOT NULL,
	delivery_status TEXT NOT NULL
)`

const schemaMySQL = `
CREATE TABLE IF NOT EXISTS shipments (
	id BIGINT NOT NULL AUTO_INCREMENT,
	so TEXT NOT NULL,
	dn TEXT NOT NULL,
	customer_name_and_address TEXT NOT NULL,
	phone TEXT NOT NULL,
	name TEXT NOT NULL,
	destination TEXT NOT NULL,
	etd TEXT NOT NULL,
	eta TEXT NOT NULL,
	logistic_partner TEXT NOT NULL,
	booking_date TEXT NOT NULL,
	packing TEXT NOT NULL,
	chromascan TEXT NOT NULL,
	weight TEXT NOT NULL,
	volume TEXT NOT NULL,
	delivery_status TEXT NOT NULL,
	PRIMARY KEY (id)
)`

// ConnectDB initializes the shared DB connection (idempotent).
// sqlite3 is the default backend: a single on-disk file next to the binary.
// DB_DRIVER=mysql with DB_DSN switches to MySQL without touching query code.
func ConnectDB(env Env) *sql.DB {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		return DB
	}

	var (
		db  *sql.DB
		err error
	)

	switch env.DBDriver {
	case "mysql":
		dsn := env.DBDSN
		if dsn == "" {
			log.Fatal("DB_DSN is required when DB_DRIVER=mysql")
		}
		db, err = sql.Open("mysql", dsn)
		if err != nil {
			log.Fatalf("failed to open mysql: %v", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(10 * time.Minute)
		db.SetConnMaxIdleTime(5 * time.Minute)
	case "sqlite3":
		db, err = sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000", env.DBPath))
		if err != nil {
			log.Fatalf("failed to open sqlite database: %v", err)
		}
		// single writer; avoids SQLITE_BUSY under concurrent requests
		db.SetMaxOpenConns(1)
	default:
		log.Fatalf("unsupported DB_DRIVER %q (want sqlite3 or mysql)", env.DBDriver)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	DB = db
	log.Printf("connected to %s database", env.DBDriver)
	return DB
}

// InitSchema creates the shipments table if it does not exist yet.
func InitSchema(db *sql.DB, driver string) error {
	schema := schemaSQLite
	if driver == "mysql" {
		schema = schemaMySQL
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create shipments table: %w", err)
	}
	return nil
}

func EnsureDB() error {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB == nil {
		return fmt.Errorf("database is not connected")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return DB.PingContext(ctx)
}

func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		_ = DB.Close()
		DB = nil
	}
}
