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
	adsTable = "ads a"
)

// AdRepository caches ads per owning ad account. Rows are keyed by
// (account_id, id).
type AdRepository interface {
	Upsert(accountID string, ads []*domain.Ad) (int, error)
	List(accountIDs []string) ([]*domain.Ad, error)
	OldestUpdatedAt(accountIDs []string) (*time.Time, error)
}

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

func (r *adRepository) Upsert(accountID string, ads []*domain.Ad) (int, error) {
	if len(ads) == 0 {
		return 0, nil
	}

	scope := domain.NormalizeAccountID(accountID)

	query := squirrel.StatementBuilder.
		Insert("ads").
		Columns("account_id", "id", "campaign_id", "name", "status", "updated_at")

	for _, ad := range ads {
		query = query.Values(
			scope,
			ad.ID,
			ad.CampaignID,
			ad.Name,
			ad.Status,
			squirrel.Expr("NOW()"),
		)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, id) DO UPDATE SET
			campaign_id = EXCLUDED.campaign_id,
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			updated_at = NOW()
	`).PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("building ads upsert: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return 0, fmt.Errorf("upserting ads: %w", err)
	}

	return len(ads), nil
}

func (r *adRepository) List(accountIDs []string) ([]*domain.Ad, error) {
	sqlQuery, args, err := squirrel.
		Select("a.account_id, a.id, a.campaign_id, a.name, a.status").
		From(adsTable).
		Where(squirrel.Eq{"a.account_id": normalizeScopes(accountIDs)}).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building ads query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("listing ads: %w", err)
	}
	defer rows.Close()

	ads := make([]*domain.Ad, 0)
	for rows.Next() {
		ad := &domain.Ad{}
		if err := rows.Scan(&ad.AccountID, &ad.ID, &ad.CampaignID, &ad.Name, &ad.Status); err != nil {
			return nil, fmt.Errorf("scanning ad: %w", err)
		}
		ads = append(ads, ad)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ads: %w", err)
	}

	return ads, nil
}

func (r *adRepository) OldestUpdatedAt(accountIDs []string) (*time.Time, error) {
	sqlQuery, args, err := squirrel.
		Select("MIN(a.updated_at)").
		From(adsTable).
		Where(squirrel.Eq{"a.account_id": normalizeScopes(accountIDs)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building ads staleness query: %w", err)
	}

	var oldest sql.NullTime
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&oldest); err != nil {
		return nil, fmt.Errorf("reading ads staleness: %w", err)
	}

	if !oldest.Valid {
		return nil, nil
	}

	return &oldest.Time, nil
}
