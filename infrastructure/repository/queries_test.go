package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-campaign-api/internal/domain"
)

func TestBuildListCampaignsQuery(t *testing.T) {
	sqlQuery, args, err := buildListCampaignsQuery().ToSql()
	require.NoError(t, err)

	assert.Contains(t, sqlQuery, "FROM campaigns c")
	assert.Contains(t, sqlQuery, "ORDER BY c.id ASC")
	assert.Empty(t, args)
}

func TestBuildListCreatorsQuery_OrdersByInsertion(t *testing.T) {
	sqlQuery, _, err := buildListCreatorsQuery().ToSql()
	require.NoError(t, err)

	assert.Contains(t, sqlQuery, "ORDER BY cr.created_at ASC, cr.id ASC")
}

func TestBuildInvitationsWithCreatorsQuery(t *testing.T) {
	sqlQuery, args, err := buildInvitationsWithCreatorsQuery([]string{"z1", "z2"}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sqlQuery, "JOIN creators cr ON cr.id = ic.creator_id")
	assert.Contains(t, sqlQuery, "ic.campaign_id IN ($1,$2)")
	assert.Equal(t, []interface{}{"z1", "z2"}, args)
}

func TestBuildUpdateCampaignQuery(t *testing.T) {
	name := "Lançamento de verão"
	budget := 1500.5

	sqlQuery, args, err := buildUpdateCampaignQuery(&domain.CampaignUpdate{
		ID:     "zabc",
		Name:   &name,
		Budget: &budget,
	}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE campaigns SET name = $1, budget = $2 WHERE id = $3", sqlQuery)
	assert.Equal(t, []interface{}{name, budget, "zabc"}, args)
}

func TestBuildInsertCampaignQuery(t *testing.T) {
	launch := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	sqlQuery, args, err := buildInsertCampaignQuery(&domain.Campaign{
		ID:          "zabc",
		Name:        "Campanha",
		Description: "Descrição",
		Budget:      1000,
		LaunchDate:  &launch,
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sqlQuery, "INSERT INTO campaigns")
	assert.Contains(t, sqlQuery, "RETURNING campaign_created_date")
	require.Len(t, args, 9)
	assert.Equal(t, "zabc", args[0])
}
