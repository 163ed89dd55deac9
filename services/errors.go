package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrValidationFailed       = errors.New("validation failed")
	ErrPasswordTooShort       = errors.New("password is too short")
	ErrNameRequired           = errors.New("name is required")
	ErrRoundInvalid           = errors.New("round number must be positive")
	ErrMatchPlayersIdentical  = errors.New("a player cannot be paired against themselves")
	ErrMatchAlreadyCompleted  = errors.New("match result has already been recorded")
	ErrWinnerNotInMatch       = errors.New("winner must be one of the match participants")
	ErrPlayerNotOnRoster      = errors.New("player is not on the tournament roster")
	ErrPlayerAlreadyDropped   = errors.New("player has already dropped from the tournament")
	ErrPlayerNotInWorkspace   = errors.New("player does not belong to this workspace")
	ErrLeagueNotInWorkspace   = errors.New("league does not belong to this workspace")
	ErrTournamentNotActive    = errors.New("tournament is not active")
	ErrTournamentNotDraft     = errors.New("tournament has already started")
	ErrTournamentCompleted    = errors.New("tournament has already been completed")
	ErrStandingsInconsistent  = errors.New("standings cannot be computed from the stored match data")

	// Ошибки конфликтов
	ErrUserEmailConflict      = errors.New("email address is already in use")
	ErrWorkspaceNameConflict  = errors.New("workspace name is already in use")
	ErrLeagueNameConflict     = errors.New("league name is already in use")
	ErrPlayerNameConflict     = errors.New("player name is already in use in this workspace")
	ErrTournamentNameConflict = errors.New("tournament name already exists")
	ErrRosterConflict         = errors.New("player is already enrolled in this tournament")

	// Ошибки аутентификации и авторизации
	ErrAuthInvalidCredentials = errors.New("invalid email or password")
	ErrForbiddenOperation     = errors.New("operation not allowed for the current user")

	// Ошибки, специфичные для сущностей
	ErrUserNotFound       = errors.New("user not found")
	ErrWorkspaceNotFound  = errors.New("workspace not found")
	ErrLeagueNotFound     = errors.New("league not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrMatchNotFound      = errors.New("match not found")
)
