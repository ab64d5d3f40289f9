package utils

import (
	"fmt"
	"strconv"
)

type magnitude struct {
	divisor int64
	suffix  string
}

// Avaliadas da maior para a menor, a primeira que couber vence
var followerMagnitudes = []magnitude{
	{divisor: 1_000_000_000, suffix: "B"},
	{divisor: 1_000_000, suffix: "M"},
	{divisor: 1_000, suffix: "K"},
}

// FormatFollowers abrevia a contagem de seguidores com uma casa decimal (1500 -> "1.5K").
// Valores abaixo de mil (e negativos) saem como o inteiro, sem sufixo.
func FormatFollowers(count int64) string {
	for _, m := range followerMagnitudes {
		if count >= m.divisor {
			tenths := roundHalfUpTenths(count, m.divisor)
			return fmt.Sprintf("%d.%d%s", tenths/10, tenths%10, m.suffix)
		}
	}

	return strconv.FormatInt(count, 10)
}

// roundHalfUpTenths retorna count/divisor em décimos, arredondando metade para cima.
// Aritmética inteira evita erros de ponto flutuante como 1.25 -> 1.2.
func roundHalfUpTenths(count, divisor int64) int64 {
	whole := count / divisor
	remainder := count % divisor

	return whole*10 + (remainder*10+divisor/2)/divisor
}
