package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GeneratePrefixedID gera um identificador curto com prefixo de tipo, no
// formato con_xxxxxxxxxxxx. O prefixo torna o tipo do registro legível em
// logs e no Telegram.
func GeneratePrefixedID(prefix string) (string, error) {
	id, err := gonanoid.Generate(characters, 12)
	if err != nil {
		return "", err
	}
	return prefix + "_" + id, nil
}
