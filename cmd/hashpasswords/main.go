// Command hashpasswords backfills bcrypt hashes for accounts whose stored
// password is still plaintext. Run once, then disable the legacy fallback
// with ALLOW_LEGACY_PASSWORDS=false.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/opencampus/sims-api/config"
	"github.com/opencampus/sims-api/utils/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	getEnv, err := config.Get()
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}

	connectStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv.DB_HOST, getEnv.DB_PORT, getEnv.DB_USER_NAME, getEnv.DB_PASSWORD, getEnv.DB_NAME, getEnv.DB_SSL_MODE)

	db, err := sql.Open("postgres", connectStr)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	rows, err := db.Query(`SELECT id, username, password_hash FROM users ORDER BY id`)
	if err != nil {
		log.Fatalf("Failed to query users: %v", err)
	}
	defer rows.Close()

	type pending struct {
		id       int64
		username string
		hash     string
	}
	var toMigrate []pending

	for rows.Next() {
		var p pending
		if err := rows.Scan(&p.id, &p.username, &p.hash); err != nil {
			log.Fatalf("Failed to scan user row: %v", err)
		}
		// Already-hashed values are left alone.
		if strings.HasPrefix(p.hash, "$2a$") || strings.HasPrefix(p.hash, "$2b$") || strings.HasPrefix(p.hash, "$2y$") {
			continue
		}
		toMigrate = append(toMigrate, p)
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("Failed to read user rows: %v", err)
	}

	if len(toMigrate) == 0 {
		log.Println("All passwords are already hashed. Nothing to do.")
		return
	}

	log.Printf("Hashing %d plaintext passwords...", len(toMigrate))

	migrated := 0
	for _, p := range toMigrate {
		hash, err := auth.HashPassword(p.hash)
		if err != nil {
			log.Printf("Skipping user %s (id=%d): %v", p.username, p.id, err)
			continue
		}
		if _, err := db.Exec(`UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, hash, p.id); err != nil {
			log.Fatalf("Failed to update user %s (id=%d): %v", p.username, p.id, err)
		}
		migrated++
	}

	log.Printf("Done. Hashed %d of %d accounts.", migrated, len(toMigrate))
	log.Println("Set ALLOW_LEGACY_PASSWORDS=false once logins have been verified.")
}
