package apperror

import "errors"

// word validation.
var (
	ErrLengthOutOfRange   = errors.New("word length is out of range")
	ErrWrongAlphabet      = errors.New("word contains letters outside the alphabet")
	ErrLettersUnavailable = errors.New("word cannot be built from the start word letters")
	ErrAlreadyUsed        = errors.New("word was already used")
	ErrEmptyWord          = errors.New("word is empty")
)

// persistence and recovery.
var (
	ErrSessionNotFound  = errors.New("no active session")
	ErrSessionCorrupted = errors.New("session is corrupted")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrRecovery         = errors.New("could not recover interrupted game")
)

var ErrGameFinished = errors.New("game is already finished")
