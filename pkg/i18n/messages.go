package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	apperrors "rpg-api/backend/pkg/errors"
)

func init() {
	pt := PortugueseBR
	message.SetString(pt, apperrors.CodeCharacterNotFound, "Personagem com o nome '%s' não foi encontrado.")
	message.SetString(pt, apperrors.CodeDefenseTooLow, "Requisição inválida: a Defesa não pode ser menor que 10. Sugestão: defina um valor de Defesa igual ou maior que 10.")
	message.SetString(pt, apperrors.CodeIntelligenceTooHigh, "Requisição inválida: a Inteligência não pode ser maior que 30. Sugestão: defina um valor de Inteligência igual ou menor que 30.")
	message.SetString(pt, apperrors.CodeMageIntelligenceTooLow, "Um Mago não pode ter Inteligência menor que 35.")
	message.SetString(pt, apperrors.CodeInvalidRequest, "Requisição inválida: %s")
	message.SetString(pt, apperrors.CodeRouteNotFound, "Rota não encontrada: %s")

	en := language.English
	message.SetString(en, apperrors.CodeCharacterNotFound, "Character named '%s' was not found.")
	message.SetString(en, apperrors.CodeDefenseTooLow, "Invalid request: Defense cannot be lower than 10. Suggestion: set a Defense value of 10 or more.")
	message.SetString(en, apperrors.CodeIntelligenceTooHigh, "Invalid request: Intelligence cannot be greater than 30. Suggestion: set an Intelligence value of 30 or less.")
	message.SetString(en, apperrors.CodeMageIntelligenceTooLow, "A Mage cannot have Intelligence lower than 35.")
	message.SetString(en, apperrors.CodeInvalidRequest, "Invalid request: %s")
	message.SetString(en, apperrors.CodeRouteNotFound, "Route not found: %s")
}
