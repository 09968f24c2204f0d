package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateReceiptNumber gera o identificador curto impresso no recibo.
func GenerateReceiptNumber() (string, error) {
	return gonanoid.Generate(characters, 10)
}
