// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/creator-campaign-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-campaign-api/internal/domain"
)

//go:generate mockgen -source=campaign.go -destination=mocks/campaign.go -package=mocks

const (
	campaignsTable = "campaigns c"
)

var campaignColumns = []string{
	"c.id",
	"c.name",
	"c.description",
	"c.budget",
	"c.launch_date",
	"c.assigned_by",
	"c.assigned_channels",
	"c.image_key",
	"c.assigned_image_key",
	"c.campaign_created_date",
}

type CampaignRepository interface {
	ListCampaigns(ctx context.Context) ([]*domain.Campaign, error)
	GetCampaignByID(ctx context.Context, id string) (*domain.Campaign, error)
	CampaignExists(ctx context.Context, id string) (bool, error)
	CreateCampaign(ctx context.Context, campaign *domain.Campaign) error
	UpdateCampaign(ctx context.Context, update *domain.CampaignUpdate) error
	DeleteCampaign(ctx context.Context, id string) error
}

type campaignRepository struct {
	conn postgres.Queryer
}

func NewCampaignRepository(conn postgres.Queryer) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func buildListCampaignsQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		OrderBy("c.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

// ListCampaigns retorna todas as campanhas ordenadas por ID, já com os convites e criadores
func (r *campaignRepository) ListCampaigns(ctx context.Context) ([]*domain.Campaign, error) {
	sqlQuery, args, err := buildListCampaignsQuery().ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, translateError(err, "erro ao listar campanhas")
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear campanha")
		}

		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	if err := r.attachInvitations(ctx, campaigns); err != nil {
		return nil, err
	}

	return campaigns, nil
}

// GetCampaignByID retorna nil, nil quando a campanha não existe
func (r *campaignRepository) GetCampaignByID(ctx context.Context, id string) (*domain.Campaign, error) {
	sqlQuery, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err, "erro ao buscar campanha")
	}

	if err := r.attachInvitations(ctx, []*domain.Campaign{campaign}); err != nil {
		return nil, err
	}

	return campaign, nil
}

func (r *campaignRepository) CampaignExists(ctx context.Context, id string) (bool, error) {
	sqlQuery, args, err := squirrel.
		Select("1").
		Prefix("SELECT EXISTS (").
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": id}).
		Suffix(")").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "erro ao construir a query")
	}

	var exists bool
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&exists); err != nil {
		return false, translateError(err, "erro ao verificar campanha")
	}

	return exists, nil
}

func buildInsertCampaignQuery(campaign *domain.Campaign) squirrel.InsertBuilder {
	channels := campaign.AssignedChannels
	if channels == nil {
		channels = []string{}
	}

	return squirrel.StatementBuilder.
		Insert("campaigns").
		Columns(
			"id",
			"name",
			"description",
			"budget",
			"launch_date",
			"assigned_by",
			"assigned_channels",
			"image_key",
			"assigned_image_key",
		).
		Values(
			campaign.ID,
			campaign.Name,
			campaign.Description,
			campaign.Budget,
			campaign.LaunchDate,
			campaign.AssignedBy,
			pq.Array(channels),
			campaign.ImageKey,
			campaign.AssignedImageKey,
		).
		Suffix("RETURNING campaign_created_date").
		PlaceholderFormat(squirrel.Dollar)
}

// CreateCampaign insere a campanha e preenche a data de criação gerada pelo banco
func (r *campaignRepository) CreateCampaign(ctx context.Context, campaign *domain.Campaign) error {
	sqlQuery, args, err := buildInsertCampaignQuery(campaign).ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de inserção")
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&campaign.CampaignCreatedDate); err != nil {
		return translateError(err, "erro ao inserir campanha")
	}

	if campaign.InvitedCreators == nil {
		campaign.InvitedCreators = make([]*domain.Invitation, 0)
	}

	return nil
}

func buildUpdateCampaignQuery(update *domain.CampaignUpdate) squirrel.UpdateBuilder {
	queryBuilder := squirrel.
		Update("campaigns").
		Where(squirrel.Eq{"id": update.ID}).
		PlaceholderFormat(squirrel.Dollar)

	// Adiciona apenas os campos que foram fornecidos para atualização
	if update.Name != nil {
		queryBuilder = queryBuilder.Set("name", *update.Name)
	}

	if update.Description != nil {
		queryBuilder = queryBuilder.Set("description", *update.Description)
	}

	if update.Budget != nil {
		queryBuilder = queryBuilder.Set("budget", *update.Budget)
	}

	if update.LaunchDate != nil {
		queryBuilder = queryBuilder.Set("launch_date", *update.LaunchDate)
	}

	if update.AssignedBy != nil {
		queryBuilder = queryBuilder.Set("assigned_by", *update.AssignedBy)
	}

	if update.AssignedChannels != nil {
		channels := *update.AssignedChannels
		if channels == nil {
			channels = []string{}
		}
		queryBuilder = queryBuilder.Set("assigned_channels", pq.Array(channels))
	}

	if update.ImageKey != nil {
		queryBuilder = queryBuilder.Set("image_key", *update.ImageKey)
	}

	if update.AssignedImageKey != nil {
		queryBuilder = queryBuilder.Set("assigned_image_key", *update.AssignedImageKey)
	}

	return queryBuilder
}

func (r *campaignRepository) UpdateCampaign(ctx context.Context, update *domain.CampaignUpdate) error {
	if update == nil || update.ID == "" {
		return errors.New("ID is required")
	}

	sqlQuery, args, err := buildUpdateCampaignQuery(update).ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de atualização")
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return translateError(err, "erro ao atualizar campanha")
	}

	return checkAffected(result)
}

// DeleteCampaign remove a campanha; os convites caem junto pelo ON DELETE CASCADE
func (r *campaignRepository) DeleteCampaign(ctx context.Context, id string) error {
	sqlQuery, args, err := squirrel.
		Delete("campaigns").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de remoção")
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return translateError(err, "erro ao remover campanha")
	}

	return checkAffected(result)
}

func (r *campaignRepository) attachInvitations(ctx context.Context, campaigns []*domain.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}

	ids := make([]string, 0, len(campaigns))
	for _, campaign := range campaigns {
		ids = append(ids, campaign.ID)
	}

	invitationsByCampaign, err := listInvitationsWithCreators(ctx, r.conn, ids)
	if err != nil {
		return err
	}

	for _, campaign := range campaigns {
		invitations, ok := invitationsByCampaign[campaign.ID]
		if !ok {
			invitations = make([]*domain.Invitation, 0)
		}
		campaign.InvitedCreators = invitations
	}

	return nil
}

func scanCampaign(row scanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	err := row.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.Description,
		&campaign.Budget,
		&campaign.LaunchDate,
		&campaign.AssignedBy,
		pq.Array(&campaign.AssignedChannels),
		&campaign.ImageKey,
		&campaign.AssignedImageKey,
		&campaign.CampaignCreatedDate,
	)
	if err != nil {
		return nil, err
	}

	return campaign, nil
}

func checkAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "error getting rows affected")
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
