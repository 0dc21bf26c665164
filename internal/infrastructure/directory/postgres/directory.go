package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"

	"linktern/internal/database"
	"linktern/internal/domain/account"
	"linktern/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const pgUniqueViolation = "23505"

// Directory is the first-party account backend. It satisfies both
// account.Directory and account.ProfileReader on top of the shared pgx pool.
type Directory struct {
	db     database.DB
	jwt    jwt.Service
	logger *log.Logger
}

func NewDirectory(db database.DB, jwtSvc jwt.Service, logger *log.Logger) *Directory {
	return &Directory{db: db, jwt: jwtSvc, logger: logger}
}

func (d *Directory) CreateCredential(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", &account.CredentialError{Reason: account.ReasonBadCredType}
	}
	if len(password) < 8 {
		return "", &account.CredentialError{Reason: account.ReasonBadPassword}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", &account.CredentialError{Reason: account.ReasonBadCredType, Err: err}
	}

	id := uuid.NewString()
	_, err = d.db.Exec(ctx,
		`INSERT INTO identities (id, email, password_hash) VALUES ($1, $2, $3)`,
		id, email, string(hash),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", &account.CredentialError{Reason: account.ReasonEmailTaken}
		}
		return "", &account.CredentialError{Reason: account.ReasonBadCredType, Err: err}
	}

	return id, nil
}

func (d *Directory) SignIn(ctx context.Context, email, password string) (account.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var (
		id   string
		hash string
		role *string
	)
	row := d.db.QueryRow(ctx,
		`SELECT i.id, i.password_hash, l.role
		 FROM identities i
		 LEFT JOIN identity_links l ON l.id = i.id
		 WHERE i.email = $1`,
		email,
	)
	if err := row.Scan(&id, &hash, &role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Session{}, &account.CredentialError{Reason: account.ReasonUnauthorized}
		}
		return account.Session{}, &account.CredentialError{Reason: account.ReasonUnauthorized, Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return account.Session{}, &account.CredentialError{Reason: account.ReasonUnauthorized}
	}

	r := account.Role("")
	if role != nil {
		r = account.Role(*role)
	}

	access, err := d.jwt.GenerateAccessToken(id, email, r)
	if err != nil {
		return account.Session{}, err
	}
	refresh, err := d.jwt.GenerateRefreshToken(id)
	if err != nil {
		return account.Session{}, err
	}

	return account.Session{
		Identity:     account.Identity{ID: id, Email: email},
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// SignOut records the revocation for audit. Tokens stay self-contained JWTs,
// so a lost insert only loses the audit row, not any security boundary the
// app relies on.
func (d *Directory) SignOut(ctx context.Context, token string) error {
	sum := sha256.Sum256([]byte(token))
	_, err := d.db.Exec(ctx,
		`INSERT INTO revoked_tokens (token_hash) VALUES ($1) ON CONFLICT (token_hash) DO NOTHING`,
		hex.EncodeToString(sum[:]),
	)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
