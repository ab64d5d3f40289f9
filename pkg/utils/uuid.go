package utils

import (
	"fmt"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 12

	campaignIDPrefix = "z"
)

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}

// GenerateCampaignID mantém o formato legado dos IDs de campanha: "z" + UUID v4
func GenerateCampaignID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%s", campaignIDPrefix, id.String()), nil
}

func GenerateUUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	return id.String(), nil
}
