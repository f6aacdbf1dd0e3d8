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
	campaignsTable = "campaigns c"
)

// CampaignRepository caches campaigns per owning ad account. Rows are keyed
// by (account_id, id).
type CampaignRepository interface {
	Upsert(accountID string, campaigns []*domain.Campaign) (int, error)
	List(accountIDs []string) ([]*domain.Campaign, error)
	OldestUpdatedAt(accountIDs []string) (*time.Time, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) Upsert(accountID string, campaigns []*domain.Campaign) (int, error) {
	if len(campaigns) == 0 {
		return 0, nil
	}

	scope := domain.NormalizeAccountID(accountID)

	query := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns("account_id", "id", "name", "status", "objective", "updated_at")

	for _, campaign := range campaigns {
		query = query.Values(
			scope,
			campaign.ID,
			campaign.Name,
			campaign.Status,
			campaign.Objective,
			squirrel.Expr("NOW()"),
		)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			objective = EXCLUDED.objective,
			updated_at = NOW()
	`).PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("building campaigns upsert: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return 0, fmt.Errorf("upserting campaigns: %w", err)
	}

	return len(campaigns), nil
}

func (r *campaignRepository) List(accountIDs []string) ([]*domain.Campaign, error) {
	sqlQuery, args, err := squirrel.
		Select("c.account_id, c.id, c.name, c.status, c.objective").
		From(campaignsTable).
		Where(squirrel.Eq{"c.account_id": normalizeScopes(accountIDs)}).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building campaigns query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("listing campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign := &domain.Campaign{}
		if err := rows.Scan(
			&campaign.AccountID,
			&campaign.ID,
			&campaign.Name,
			&campaign.Status,
			&campaign.Objective,
		); err != nil {
			return nil, fmt.Errorf("scanning campaign: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating campaigns: %w", err)
	}

	return campaigns, nil
}

func (r *campaignRepository) OldestUpdatedAt(accountIDs []string) (*time.Time, error) {
	sqlQuery, args, err := squirrel.
		Select("MIN(c.updated_at)").
		From(campaignsTable).
		Where(squirrel.Eq{"c.account_id": normalizeScopes(accountIDs)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building campaigns staleness query: %w", err)
	}

	var oldest sql.NullTime
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&oldest); err != nil {
		return nil, fmt.Errorf("reading campaigns staleness: %w", err)
	}

	if !oldest.Valid {
		return nil, nil
	}

	return &oldest.Time, nil
}

// normalizeScopes strips the account prefix from every scope so stored and
// queried identifiers always compare equal.
func normalizeScopes(accountIDs []string) []string {
	scopes := make([]string, 0, len(accountIDs))
	for _, id := range accountIDs {
		scopes = append(scopes, domain.NormalizeAccountID(id))
	}
	return scopes
}
