package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации
	ErrValidationFailed     = errors.New("validation failed")
	ErrPlayoffsAlreadyExist = errors.New("playoff fixtures already exist for this tournament")
	ErrNotPlayoffFixture    = errors.New("only playoff fixtures can be reset")
	ErrExportDisabled       = errors.New("schedule export is not configured")

	// Ошибки авторизации
	ErrForbiddenOperation = errors.New("operation not allowed for the current user")

	// Ошибки хранилища: запись не удалась, часть пакета могла сохраниться
	ErrPersistence = errors.New("fixture store operation failed")

	// Ошибки, специфичные для сущностей
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrFixtureNotFound    = errors.New("fixture not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrVenueNotFound      = errors.New("venue not found")
)
