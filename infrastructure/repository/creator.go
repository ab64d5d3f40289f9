package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/creator-campaign-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-campaign-api/internal/domain"
)

//go:generate mockgen -source=creator.go -destination=mocks/creator.go -package=mocks

const (
	creatorsTable = "creators cr"
)

type CreatorRepository interface {
	ListCreators(ctx context.Context) ([]*domain.Creator, error)
	CreateCreator(ctx context.Context, creator *domain.Creator) error
}

type creatorRepository struct {
	conn postgres.Queryer
}

func NewCreatorRepository(conn postgres.Queryer) CreatorRepository {
	return &creatorRepository{
		conn: conn,
	}
}

// A ordem de inserção serve de desempate para o ranking de criadores
func buildListCreatorsQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("cr.id, cr.name, cr.city, cr.country, cr.followers, cr.platforms, cr.image_key, cr.created_at").
		From(creatorsTable).
		OrderBy("cr.created_at ASC", "cr.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *creatorRepository) ListCreators(ctx context.Context) ([]*domain.Creator, error) {
	sqlQuery, args, err := buildListCreatorsQuery().ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, translateError(err, "erro ao listar criadores")
	}
	defer rows.Close()

	creators := make([]*domain.Creator, 0)
	for rows.Next() {
		creator, err := scanCreator(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear criador")
		}

		creators = append(creators, creator)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return creators, nil
}

func (r *creatorRepository) CreateCreator(ctx context.Context, creator *domain.Creator) error {
	platforms := creator.Platforms
	if platforms == nil {
		platforms = []string{}
	}

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert("creators").
		Columns("id", "name", "city", "country", "followers", "platforms", "image_key").
		Values(
			creator.ID,
			creator.Name,
			creator.City,
			creator.Country,
			creator.Followers,
			pq.Array(platforms),
			creator.ImageKey,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de inserção")
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&creator.CreatedAt); err != nil {
		return translateError(err, "erro ao inserir criador")
	}

	return nil
}

func scanCreator(row scanner) (*domain.Creator, error) {
	creator := &domain.Creator{}

	err := row.Scan(
		&creator.ID,
		&creator.Name,
		&creator.City,
		&creator.Country,
		&creator.Followers,
		pq.Array(&creator.Platforms),
		&creator.ImageKey,
		&creator.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return creator, nil
}
