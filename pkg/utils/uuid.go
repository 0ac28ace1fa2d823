package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateBatchID gera o identificador de um lote de importação. O prefixo
// torna o id reconhecível em logs e na tabela de auditoria.
func GenerateBatchID() (string, error) {
	id, err := gonanoid.Generate(characters, 12)
	if err != nil {
		return "", err
	}
	return "IMP-" + id, nil
}
