package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/creator-campaign-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-campaign-api/internal/domain"
)

//go:generate mockgen -source=invitation.go -destination=mocks/invitation.go -package=mocks

const (
	invitedCreatorsTable = "invited_creators ic"
)

type InvitationRepository interface {
	CreateInvitation(ctx context.Context, invitation *domain.Invitation) error
	DeleteInvitation(ctx context.Context, campaignID, creatorID string) (int64, error)
	ListInvitedCreatorIDs(ctx context.Context, campaignID string) (map[string]struct{}, error)
}

type invitationRepository struct {
	conn postgres.Queryer
}

func NewInvitationRepository(conn postgres.Queryer) InvitationRepository {
	return &invitationRepository{
		conn: conn,
	}
}

// CreateInvitation falha com ErrDuplicate se o par campanha/criador já existir
// e com ErrReferenceNotFound se a campanha ou o criador não existirem
func (r *invitationRepository) CreateInvitation(ctx context.Context, invitation *domain.Invitation) error {
	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert("invited_creators").
		Columns("id", "campaign_id", "creator_id").
		Values(invitation.ID, invitation.CampaignID, invitation.CreatorID).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de inserção")
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&invitation.CreatedAt); err != nil {
		return translateError(err, "erro ao inserir convite")
	}

	return nil
}

// DeleteInvitation retorna a quantidade de convites removidos
func (r *invitationRepository) DeleteInvitation(ctx context.Context, campaignID, creatorID string) (int64, error) {
	sqlQuery, args, err := squirrel.
		Delete("invited_creators").
		Where(squirrel.Eq{"campaign_id": campaignID, "creator_id": creatorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir query de remoção")
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, translateError(err, "erro ao remover convite")
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "error getting rows affected")
	}

	return deleted, nil
}

// ListInvitedCreatorIDs retorna o conjunto de criadores já convidados para a campanha
func (r *invitationRepository) ListInvitedCreatorIDs(ctx context.Context, campaignID string) (map[string]struct{}, error) {
	sqlQuery, args, err := squirrel.
		Select("ic.creator_id").
		From(invitedCreatorsTable).
		Where(squirrel.Eq{"ic.campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, translateError(err, "erro ao listar convites")
	}
	defer rows.Close()

	invited := make(map[string]struct{})
	for rows.Next() {
		var creatorID string
		if err := rows.Scan(&creatorID); err != nil {
			return nil, errors.Wrap(err, "erro ao ler convite")
		}

		invited[creatorID] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao iterar sobre os resultados")
	}

	return invited, nil
}

func buildInvitationsWithCreatorsQuery(campaignIDs []string) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"ic.id",
			"ic.campaign_id",
			"ic.creator_id",
			"ic.created_at",
			"cr.id",
			"cr.name",
			"cr.city",
			"cr.country",
			"cr.followers",
			"cr.platforms",
			"cr.image_key",
			"cr.created_at",
		).
		From(invitedCreatorsTable).
		Join("creators cr ON cr.id = ic.creator_id").
		Where(squirrel.Eq{"ic.campaign_id": campaignIDs}).
		OrderBy("ic.created_at ASC", "ic.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

// listInvitationsWithCreators agrupa por campanha os convites já unidos aos seus criadores
func listInvitationsWithCreators(ctx context.Context, conn postgres.Queryer, campaignIDs []string) (map[string][]*domain.Invitation, error) {
	sqlQuery, args, err := buildInvitationsWithCreatorsQuery(campaignIDs).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, translateError(err, "erro ao listar convites das campanhas")
	}
	defer rows.Close()

	invitationsByCampaign := make(map[string][]*domain.Invitation)
	for rows.Next() {
		invitation := &domain.Invitation{Creator: &domain.Creator{}}

		err := rows.Scan(
			&invitation.ID,
			&invitation.CampaignID,
			&invitation.CreatorID,
			&invitation.CreatedAt,
			&invitation.Creator.ID,
			&invitation.Creator.Name,
			&invitation.Creator.City,
			&invitation.Creator.Country,
			&invitation.Creator.Followers,
			pq.Array(&invitation.Creator.Platforms),
			&invitation.Creator.ImageKey,
			&invitation.Creator.CreatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear convite")
		}

		invitationsByCampaign[invitation.CampaignID] = append(invitationsByCampaign[invitation.CampaignID], invitation)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return invitationsByCampaign, nil
}
