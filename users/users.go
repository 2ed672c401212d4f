package users

import (
	"context"
	"time"
)

type Service interface {
	Create(ctx context.Context, create *NewUser) (*User, error)
	Get(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// User is the authentication identity. Token issuance happens in the external
// identity service; the password hash is stored here so that service can
// verify credentials against the same database.
type User struct {
	Id           int64     `bson:"_id,omitempty" json:"id"`
	FullName     string    `bson:"nome_completo" json:"nome_completo"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"senha_hash" json:"-"`
	CreatedAt    time.Time `bson:"criado_em" json:"criado_em"`
}

type NewUser struct {
	FullName string `json:"nome_completo"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}
