// Package repository provides database operations for partner records.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maxclaim_backend/internal/routing/domain"
	"maxclaim_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const partnerNotFoundMsg = "partner not found"

// Repository provides database operations for partners.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new partners repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const partnerColumns = ` id, company_name, partner_type, tier, sub_type, zip_code, state,
	service_regions, billing_status, status, monthly_budget, created_at, updated_at `

// ListCandidates returns the partner population routing filters against.
// The store rejects nobody; eligibility is the routing engine's job.
func (r *Repository) ListCandidates(ctx context.Context) ([]domain.Partner, error) {
	query := `SELECT` + partnerColumns + `FROM partners ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	var partners []domain.Partner
	for rows.Next() {
		partner, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("list candidates: %w", err)
		}
		partners = append(partners, partner)
	}

	return partners, rows.Err()
}

// ListWithAdBudget returns approved partners whose ad config carries a
// positive monthly budget. The rotation worker recomputes allocations for
// these.
func (r *Repository) ListWithAdBudget(ctx context.Context) ([]domain.Partner, error) {
	query := `SELECT` + partnerColumns + `FROM partners
		WHERE status = 'approved' AND monthly_budget > 0
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list with ad budget: %w", err)
	}
	defer rows.Close()

	var partners []domain.Partner
	for rows.Next() {
		partner, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("list with ad budget: %w", err)
		}
		partners = append(partners, partner)
	}

	return partners, rows.Err()
}

// GetByID fetches a single partner.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domain.Partner, error) {
	query := `SELECT` + partnerColumns + `FROM partners WHERE id = $1`

	partner, err := scanPartner(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Partner{}, apperr.NotFound(partnerNotFoundMsg)
		}
		return domain.Partner{}, fmt.Errorf("get partner: %w", err)
	}

	return partner, nil
}

// UpdateStatus changes a partner's approval status.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE partners SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update partner status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(partnerNotFoundMsg)
	}
	return nil
}

// UpdateAdConfig changes a partner's monthly advertising budget.
func (r *Repository) UpdateAdConfig(ctx context.Context, id uuid.UUID, cfg domain.AdConfig) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE partners SET monthly_budget = $2, updated_at = now() WHERE id = $1`, id, cfg.MonthlyBudget)
	if err != nil {
		return fmt.Errorf("update partner ad config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(partnerNotFoundMsg)
	}
	return nil
}

// RoutedLead is a persisted routing outcome for one claim.
type RoutedLead struct {
	ID           uuid.UUID
	ClaimRef     string
	PartnerID    uuid.UUID
	MatchScore   float64
	MatchReasons []string
	Selection    string
	CreatedAt    time.Time
}

// CreateRoutedLead persists the winning assignment for a claim.
func (r *Repository) CreateRoutedLead(ctx context.Context, lead RoutedLead) error {
	query := `
		INSERT INTO routed_leads (
			id, claim_ref, partner_id, match_score, match_reasons,
			selection_mode, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		lead.ID,
		lead.ClaimRef,
		lead.PartnerID,
		lead.MatchScore,
		lead.MatchReasons,
		lead.Selection,
		lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create routed lead: %w", err)
	}

	return nil
}

// RegionAllocation is one stored row of a partner's budget allocation.
type RegionAllocation struct {
	PartnerID       uuid.UUID
	Region          string
	AllocatedBudget float64
	Percentage      float64
	Priority        string
	ComputedAt      time.Time
}

// ReplaceAllocations swaps a partner's stored budget allocation in one
// transaction. The rotation worker calls this nightly; replacing the full
// set keeps the operation idempotent per run.
func (r *Repository) ReplaceAllocations(ctx context.Context, partnerID uuid.UUID, allocations []RegionAllocation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("replace allocations: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM region_allocations WHERE partner_id = $1`, partnerID); err != nil {
		return fmt.Errorf("replace allocations: %w", err)
	}

	for _, a := range allocations {
		_, err := tx.Exec(ctx, `
			INSERT INTO region_allocations (
				partner_id, region, allocated_budget, percentage, priority, computed_at
			) VALUES ($1, $2, $3, $4, $5, $6)`,
			partnerID, a.Region, a.AllocatedBudget, a.Percentage, a.Priority, a.ComputedAt,
		)
		if err != nil {
			return fmt.Errorf("replace allocations: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// ListAllocations returns the stored allocation rows for a partner.
func (r *Repository) ListAllocations(ctx context.Context, partnerID uuid.UUID) ([]RegionAllocation, error) {
	query := `
		SELECT partner_id, region, allocated_budget, percentage, priority, computed_at
		FROM region_allocations
		WHERE partner_id = $1
		ORDER BY allocated_budget DESC
	`

	rows, err := r.pool.Query(ctx, query, partnerID)
	if err != nil {
		return nil, fmt.Errorf("list allocations: %w", err)
	}
	defer rows.Close()

	var allocations []RegionAllocation
	for rows.Next() {
		var a RegionAllocation
		if err := rows.Scan(&a.PartnerID, &a.Region, &a.AllocatedBudget, &a.Percentage, &a.Priority, &a.ComputedAt); err != nil {
			return nil, fmt.Errorf("list allocations: %w", err)
		}
		allocations = append(allocations, a)
	}

	return allocations, rows.Err()
}

// AddDailyStats folds flushed impression counters into the daily stats
// table. Upsert keeps the flush idempotent per (partner, day).
func (r *Repository) AddDailyStats(ctx context.Context, partnerID uuid.UUID, day time.Time, impressions, wins int64) error {
	query := `
		INSERT INTO partner_daily_stats (partner_id, day, impressions, wins)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (partner_id, day)
		DO UPDATE SET impressions = EXCLUDED.impressions, wins = EXCLUDED.wins
	`

	_, err := r.pool.Exec(ctx, query, partnerID, day, impressions, wins)
	if err != nil {
		return fmt.Errorf("add daily stats: %w", err)
	}

	return nil
}

func scanPartner(row pgx.Row) (domain.Partner, error) {
	var p domain.Partner
	var monthlyBudget float64
	err := row.Scan(
		&p.ID,
		&p.CompanyName,
		&p.Type,
		&p.Tier,
		&p.SubType,
		&p.ZipCode,
		&p.State,
		&p.ServiceRegions,
		&p.BillingStatus,
		&p.Status,
		&monthlyBudget,
		new(time.Time),
		new(time.Time),
	)
	if err != nil {
		return domain.Partner{}, err
	}
	p.AdConfig = domain.AdConfig{MonthlyBudget: monthlyBudget}
	return p, nil
}
