package wordcheck

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/word-duel/internal/apperror"
	"github.com/rocketscienceinc/word-duel/internal/entity"
)

const (
	MinStartWordLength = 8
	MaxStartWordLength = 30
)

type Alphabet int

const (
	Latin Alphabet = iota
	Cyrillic
)

// ErrorKey - names the rule a word broke, doubles as the message key.
type ErrorKey string

const (
	KeyNone               ErrorKey = ""
	KeyLengthOutOfRange   ErrorKey = "ErrorWordLength"
	KeyWrongAlphabet      ErrorKey = "LanguageError"
	KeyLettersUnavailable ErrorKey = "ErrorInvalidLetters"
	KeyAlreadyUsed        ErrorKey = "ErrorWordUsed"
	KeyEmptyWord          ErrorKey = "ErrorEmptyWord"
)

type CheckResult struct {
	IsValid  bool
	ErrorKey ErrorKey
}

func valid() CheckResult {
	return CheckResult{IsValid: true}
}

func invalid(key ErrorKey) CheckResult {
	return CheckResult{ErrorKey: key}
}

// Err - returns the sentinel error matching the failed rule, nil when valid.
func (that CheckResult) Err() error {
	switch that.ErrorKey {
	case KeyLengthOutOfRange:
		return apperror.ErrLengthOutOfRange
	case KeyWrongAlphabet:
		return apperror.ErrWrongAlphabet
	case KeyLettersUnavailable:
		return apperror.ErrLettersUnavailable
	case KeyAlreadyUsed:
		return apperror.ErrAlreadyUsed
	case KeyEmptyWord:
		return apperror.ErrEmptyWord
	default:
		return nil
	}
}

// AlphabetFor - maps a game language to the alphabet its words must use.
func AlphabetFor(language string) Alphabet {
	if language == entity.LanguageRussian {
		return Cyrillic
	}

	return Latin
}

// Normalize - the only form in which words are compared or stored.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

type Validator struct {
	alphabet Alphabet
}

func New(alphabet Alphabet) *Validator {
	return &Validator{alphabet: alphabet}
}

func (that *Validator) Alphabet() Alphabet {
	return that.alphabet
}

func (that *Validator) ValidateStartWord(word string) CheckResult {
	word = Normalize(word)

	length := utf8.RuneCountInString(word)
	if length < MinStartWordLength || length > MaxStartWordLength {
		return invalid(KeyLengthOutOfRange)
	}

	if !that.inAlphabet(word) {
		return invalid(KeyWrongAlphabet)
	}

	return valid()
}

func (that *Validator) ValidateMove(word, startWord string, usedWords entity.WordSet) CheckResult {
	word = Normalize(word)

	if word == "" {
		return invalid(KeyEmptyWord)
	}

	if !that.inAlphabet(word) {
		return invalid(KeyWrongAlphabet)
	}

	if !canBuildFrom(word, Normalize(startWord)) {
		return invalid(KeyLettersUnavailable)
	}

	if usedWords.Contains(word) {
		return invalid(KeyAlreadyUsed)
	}

	return valid()
}

func (that *Validator) inAlphabet(word string) bool {
	script := unicode.Latin
	if that.alphabet == Cyrillic {
		script = unicode.Cyrillic
	}

	for _, r := range word {
		if !unicode.IsLetter(r) || !unicode.Is(script, r) {
			return false
		}
	}

	return true
}

// canBuildFrom - multiset containment: no letter is used more often than the source has it.
func canBuildFrom(word, source string) bool {
	available := make(map[rune]int, utf8.RuneCountInString(source))
	for _, r := range source {
		available[r]++
	}

	for _, r := range word {
		if available[r] == 0 {
			return false
		}
		available[r]--
	}

	return true
}
