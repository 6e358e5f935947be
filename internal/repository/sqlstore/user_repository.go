package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/planning-docs-service/internal/domain"
	"github.com/planning-docs-service/internal/domain/repository"
)

type userRepository struct {
	db *DB
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{db: db}
}

// GetByUsername возвращает пользователя; отсутствующий логин - nil, nil
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := r.db.Rebind(`SELECT id, username, name, surname, role, password_hash
		FROM users WHERE username = ?`)

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user domain.User) (int64, error) {
	query := r.db.Rebind(`INSERT INTO users (username, name, surname, role, password_hash)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`)

	var id int64
	if err := r.db.QueryRowxContext(ctx, query,
		user.Username, user.Name, user.Surname, user.Role, user.PasswordHash,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert user %q: %w", user.Username, err)
	}
	return id, nil
}
