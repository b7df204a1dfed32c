package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/leadforge/leadctl/internal/models"
)

// SQLiteUserRepository implements UserRepository for SQLite/libsql.
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewSQLiteUserRepository creates a new SQLite user repository.
func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Create inserts a new user.
func (r *SQLiteUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = ulid.Make().String()
	}
	if user.Role == "" {
		user.Role = models.RoleSales
	}
	user.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, username, email, password_hash, role, is_active,
			failed_login_attempts, locked_until, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		string(user.Role),
		boolToInt(user.IsActive),
		user.FailedLoginAttempts,
		formatNullableTime(user.LockedUntil),
		user.CreatedAt.Format(time.RFC3339),
	)

	return err
}

// GetByUsername retrieves a user by username. Returns nil if not found.
func (r *SQLiteUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, role, is_active,
			   failed_login_attempts, locked_until, created_at
		FROM users
		WHERE username = ?
	`, username)

	var (
		u           models.User
		role        string
		isActive    int
		lockedUntil sql.NullString
		createdAt   string
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &role,
		&isActive, &u.FailedLoginAttempts, &lockedUntil, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	u.Role = models.UserRole(role)
	u.IsActive = isActive != 0
	u.LockedUntil = parseNullableTime(lockedUntil)
	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &u, nil
}

// Count returns the total number of users.
func (r *SQLiteUserRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}
