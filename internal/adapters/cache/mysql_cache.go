package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/safeguard/risk-filter/internal/core"
)

// MySQLCache is a MySQL implementation of the VerdictCache interface for
// deployments where several filter instances share one cache.
type MySQLCache struct {
	db          *sql.DB
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
}

// NewMySQLCache creates a new MySQL verdict cache. The DSN must enable
// parseTime so TIMESTAMP columns scan into time.Time.
func NewMySQLCache(dsn string, logger *zap.Logger, cleanupFreq time.Duration) (*MySQLCache, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS verdict_cache (
			content_hash VARCHAR(64) PRIMARY KEY,
			verdict JSON,
			last_seen TIMESTAMP,
			expires_at TIMESTAMP,
			INDEX idx_expires_at (expires_at)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	cache := &MySQLCache{
		db:          db,
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}

	// Start background cleanup
	go cache.startCleanupTask()

	return cache, nil
}

// Get retrieves a cached verdict by content hash
func (c *MySQLCache) Get(ctx context.Context, contentHash string) (*core.VerdictEntry, error) {
	var verdictJSON []byte
	var lastSeen, expiresAt time.Time

	err := c.db.QueryRowContext(ctx, `
		SELECT verdict, last_seen, expires_at
		FROM verdict_cache
		WHERE content_hash = ? AND expires_at > NOW()
	`, contentHash).Scan(&verdictJSON, &lastSeen, &expiresAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}

	entry := &core.VerdictEntry{
		ContentHash: contentHash,
		LastSeen:    lastSeen,
		ExpiresAt:   expiresAt,
	}
	if err := json.Unmarshal(verdictJSON, &entry.Verdict); err != nil {
		return nil, fmt.Errorf("failed to decode cached verdict: %w", err)
	}

	return entry, nil
}

// Set stores a verdict entry
func (c *MySQLCache) Set(ctx context.Context, entry *core.VerdictEntry) error {
	verdictJSON, err := json.Marshal(entry.Verdict)
	if err != nil {
		return fmt.Errorf("failed to encode verdict: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO verdict_cache (content_hash, verdict, last_seen, expires_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE verdict = VALUES(verdict),
			last_seen = VALUES(last_seen), expires_at = VALUES(expires_at)
	`, entry.ContentHash, verdictJSON, entry.LastSeen, entry.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to insert cache entry: %w", err)
	}
	return nil
}

// Delete removes a verdict entry
func (c *MySQLCache) Delete(ctx context.Context, contentHash string) error {
	_, err := c.db.ExecContext(ctx, `
		DELETE FROM verdict_cache
		WHERE content_hash = ?
	`, contentHash)
	if err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

// Cleanup removes expired entries
func (c *MySQLCache) Cleanup(ctx context.Context) error {
	result, err := c.db.ExecContext(ctx, `
		DELETE FROM verdict_cache
		WHERE expires_at <= NOW()
	`)
	if err != nil {
		return fmt.Errorf("failed to clean up expired entries: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.logger.Warn("Failed to get rows affected during cleanup", zap.Error(err))
	} else {
		c.logger.Debug("Cleaned up expired cache entries", zap.Int64("expired_count", rowsAffected))
	}
	return nil
}

// startCleanupTask starts a background task to clean up expired entries
func (c *MySQLCache) startCleanupTask() {
	if c.cleanupFreq <= 0 {
		return
	}

	ticker := time.NewTicker(c.cleanupFreq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Cleanup(context.Background()); err != nil {
				c.logger.Error("Failed to clean up cache", zap.Error(err))
			}
		case <-c.stopCh:
			return
		}
	}
}

// Stop stops the background cleanup task and closes the database connection
func (c *MySQLCache) Stop() {
	close(c.stopCh)
	if err := c.db.Close(); err != nil {
		c.logger.Error("Failed to close MySQL connection", zap.Error(err))
	}
}
