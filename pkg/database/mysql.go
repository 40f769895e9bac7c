package database

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/festwish/wish-service/environments"
	"github.com/festwish/wish-service/pkg/logger"
)

func NewMySQLDB(cfg environments.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&collation=utf8mb4_unicode_ci",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName,
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Infof("Connected to MySQL database")
	return db, nil
}

func RunMigrations(db *sqlx.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS festivals (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			slug VARCHAR(100) NOT NULL UNIQUE,
			name VARCHAR(200) NOT NULL,
			description TEXT,
			religion_culture VARCHAR(100) NOT NULL DEFAULT '',
			typical_month VARCHAR(20) NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_festivals_culture (religion_culture),
			INDEX idx_festivals_month (typical_month)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS relationships (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			display_name VARCHAR(200) NOT NULL,
			category VARCHAR(100) NOT NULL DEFAULT '',
			sort_order INT NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_relationships_category (category)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS wish_messages (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			festival_id BIGINT NOT NULL,
			relationship_id BIGINT NOT NULL,
			message_text TEXT NOT NULL,
			tone VARCHAR(50) NOT NULL DEFAULT 'warm',
			language VARCHAR(10) NOT NULL DEFAULT 'en',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_wish_messages_pair (festival_id, relationship_id, is_active),
			FOREIGN KEY (festival_id) REFERENCES festivals(id),
			FOREIGN KEY (relationship_id) REFERENCES relationships(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS festival_quotes (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			festival_id BIGINT NOT NULL,
			quote_text TEXT NOT NULL,
			author VARCHAR(200) NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_festival_quotes_festival (festival_id, is_active),
			FOREIGN KEY (festival_id) REFERENCES festivals(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS festival_images (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			festival_id BIGINT NOT NULL,
			image_url VARCHAR(500) NOT NULL,
			alt_text VARCHAR(500) NOT NULL DEFAULT '',
			is_card_template BOOLEAN NOT NULL DEFAULT FALSE,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_festival_images_festival (festival_id, is_active),
			FOREIGN KEY (festival_id) REFERENCES festivals(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS user_uploaded_images (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			image_url VARCHAR(500) NOT NULL,
			storage_path VARCHAR(500) NOT NULL,
			original_filename VARCHAR(300) NOT NULL DEFAULT '',
			file_size BIGINT NOT NULL DEFAULT 0,
			mime_type VARCHAR(100) NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_user_images_user (user_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS generated_wishes (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT,
			festival_id BIGINT NOT NULL,
			relationship_id BIGINT NOT NULL,
			recipient_name VARCHAR(200),
			custom_message TEXT,
			final_message TEXT NOT NULL,
			message_id BIGINT,
			quote_id BIGINT,
			image_id BIGINT,
			user_image_id BIGINT,
			channel_type VARCHAR(50) NOT NULL DEFAULT 'download',
			generated_card_url VARCHAR(500),
			sent_status VARCHAR(20) NOT NULL DEFAULT 'pending',
			sent_at DATETIME,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_wishes_user (user_id),
			INDEX idx_wishes_status (sent_status),
			FOREIGN KEY (festival_id) REFERENCES festivals(id),
			FOREIGN KEY (relationship_id) REFERENCES relationships(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	}

	for _, schema := range schemas {
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	logger.Infof("Database migrations completed")

	return nil
}
