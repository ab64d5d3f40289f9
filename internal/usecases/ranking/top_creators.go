package ranking

import (
	"sort"

	"github.com/vfg2006/creator-campaign-api/internal/domain"
)

// TopCreators retorna até limit criadores fora de excluded, do maior para o menor número de seguidores.
// Empates preservam a ordem de entrada, que o repositório entrega por ordem de cadastro.
func TopCreators(creators []*domain.Creator, excluded map[string]struct{}, limit int) []*domain.Creator {
	if limit <= 0 {
		return []*domain.Creator{}
	}

	eligible := make([]*domain.Creator, 0, len(creators))
	for _, creator := range creators {
		if _, invited := excluded[creator.ID]; invited {
			continue
		}

		eligible = append(eligible, creator)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Followers > eligible[j].Followers
	})

	if len(eligible) > limit {
		eligible = eligible[:limit]
	}

	return eligible
}
