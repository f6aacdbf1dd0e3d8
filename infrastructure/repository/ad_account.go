package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

const (
	adAccountsTable = "ad_accounts aa"
)

// AdAccountRepository caches ad accounts fetched from the Meta API. Accounts
// are a single global scope; rows are keyed by the normalized account id.
type AdAccountRepository interface {
	Upsert(accounts []*domain.AdAccount) (int, error)
	List() ([]*domain.AdAccount, error)
	OldestUpdatedAt() (*time.Time, error)
}

type adAccountRepository struct {
	conn *postgres.Connection
}

func NewAdAccountRepository(conn *postgres.Connection) AdAccountRepository {
	return &adAccountRepository{
		conn: conn,
	}
}

func (r *adAccountRepository) Upsert(accounts []*domain.AdAccount) (int, error) {
	if len(accounts) == 0 {
		return 0, nil
	}

	query := squirrel.StatementBuilder.
		Insert("ad_accounts").
		Columns("id", "name", "status", "currency", "timezone", "updated_at")

	for _, acc := range accounts {
		query = query.Values(
			domain.NormalizeAccountID(acc.ID),
			acc.Name,
			acc.Status,
			acc.Currency,
			acc.Timezone,
			squirrel.Expr("NOW()"),
		)
	}

	query = query.Suffix(`
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			currency = EXCLUDED.currency,
			timezone = EXCLUDED.timezone,
			updated_at = NOW()
	`).PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("building ad accounts upsert: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return 0, fmt.Errorf("upserting ad accounts: %w", err)
	}

	return len(accounts), nil
}

func (r *adAccountRepository) List() ([]*domain.AdAccount, error) {
	sqlQuery, args, err := squirrel.
		Select("aa.id, aa.name, aa.status, aa.currency, aa.timezone").
		From(adAccountsTable).
		OrderBy("aa.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building ad accounts query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("listing ad accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		acc := &domain.AdAccount{}
		if err := rows.Scan(&acc.ID, &acc.Name, &acc.Status, &acc.Currency, &acc.Timezone); err != nil {
			return nil, fmt.Errorf("scanning ad account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ad accounts: %w", err)
	}

	return accounts, nil
}

func (r *adAccountRepository) OldestUpdatedAt() (*time.Time, error) {
	sqlQuery, args, err := squirrel.
		Select("MIN(aa.updated_at)").
		From(adAccountsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building ad accounts staleness query: %w", err)
	}

	var oldest sql.NullTime
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&oldest); err != nil {
		return nil, fmt.Errorf("reading ad accounts staleness: %w", err)
	}

	if !oldest.Valid {
		return nil, nil
	}

	return &oldest.Time, nil
}
