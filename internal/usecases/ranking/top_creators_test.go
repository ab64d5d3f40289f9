package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-campaign-api/internal/domain"
)

func TestTopCreators(t *testing.T) {
	c1 := &domain.Creator{ID: "c1", Followers: 500}
	c2 := &domain.Creator{ID: "c2", Followers: 900}
	c3 := &domain.Creator{ID: "c3", Followers: 100}

	tests := []struct {
		name     string
		creators []*domain.Creator
		excluded map[string]struct{}
		limit    int
		expected []string
	}{
		{
			name:     "exclui convidados e ordena por seguidores",
			creators: []*domain.Creator{c1, c2, c3},
			excluded: map[string]struct{}{"c2": {}},
			limit:    2,
			expected: []string{"c1", "c3"},
		},
		{
			name:     "sem exclusões respeita o limite",
			creators: []*domain.Creator{c1, c2, c3},
			excluded: map[string]struct{}{},
			limit:    2,
			expected: []string{"c2", "c1"},
		},
		{
			name:     "limite maior que a quantidade disponível",
			creators: []*domain.Creator{c3, c1},
			excluded: nil,
			limit:    10,
			expected: []string{"c1", "c3"},
		},
		{
			name:     "todos convidados",
			creators: []*domain.Creator{c1, c2},
			excluded: map[string]struct{}{"c1": {}, "c2": {}},
			limit:    4,
			expected: []string{},
		},
		{
			name:     "limite zero retorna vazio",
			creators: []*domain.Creator{c1, c2, c3},
			limit:    0,
			expected: []string{},
		},
		{
			name:     "exclusão de ID inexistente é ignorada",
			creators: []*domain.Creator{c1},
			excluded: map[string]struct{}{"desconhecido": {}},
			limit:    4,
			expected: []string{"c1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TopCreators(tt.creators, tt.excluded, tt.limit)
			assert.Equal(t, tt.expected, ids(result))
		})
	}
}

func TestTopCreators_TiesKeepInputOrder(t *testing.T) {
	creators := []*domain.Creator{
		{ID: "b", Followers: 300},
		{ID: "a", Followers: 700},
		{ID: "d", Followers: 300},
		{ID: "c", Followers: 300},
	}

	result := TopCreators(creators, nil, 3)

	assert.Equal(t, []string{"a", "b", "d"}, ids(result))
}

func TestTopCreators_DoesNotMutateInput(t *testing.T) {
	creators := []*domain.Creator{
		{ID: "c1", Followers: 1},
		{ID: "c2", Followers: 2},
	}

	TopCreators(creators, nil, 2)

	assert.Equal(t, []string{"c1", "c2"}, ids(creators))
}

func ids(creators []*domain.Creator) []string {
	result := make([]string, 0, len(creators))
	for _, creator := range creators {
		result = append(result, creator.ID)
	}
	return result
}
