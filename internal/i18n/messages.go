package i18n

// Message ids of the embedded catalogs in locales/.
const (
	GameTitle             = "GameTitle"
	Separator             = "Separator"
	RulesTitle            = "RulesTitle"
	Rule1                 = "Rule1"
	Rule2                 = "Rule2"
	Rule3                 = "Rule3"
	Rule4                 = "Rule4"
	ChooseLanguage        = "ChooseLanguage"
	LanguageOption1       = "LanguageOption1"
	LanguageOption2       = "LanguageOption2"
	LanguageChoice        = "LanguageChoice"
	LocalisationError     = "LocalisationError"
	UseSavedPlayers       = "UseSavedPlayers"
	CurrentPlayers        = "CurrentPlayers"
	EnterNewPlayerName    = "EnterNewPlayerName"
	PlayerName            = "PlayerName"
	FoundExistingPlayer   = "FoundExistingPlayer"
	DuplicatePlayerName   = "DuplicatePlayerName"
	EnterStartWord        = "EnterStartWord"
	StartWordSet          = "StartWordSet"
	PressEnterToStart     = "PressEnterToStart"
	PressEnterToContinue  = "PressEnterToContinue"
	CurrentStartWord      = "CurrentStartWord"
	PlayerTurn            = "PlayerTurn"
	TimeLimit             = "TimeLimit"
	WordsUsedCount        = "WordsUsedCount"
	AvailableCommands     = "AvailableCommands"
	WordsHistory          = "WordsHistory"
	WordListFormat        = "WordListFormat"
	EnterWordPrompt       = "EnterWordPrompt"
	WordAccepted          = "WordAccepted"
	TimeExpired           = "TimeExpired"
	PlayerLost            = "PlayerLost"
	PlayerLostSimple      = "PlayerLostSimple"
	Winner                = "Winner"
	CommandShowWords      = "CommandShowWords"
	CommandScore          = "CommandScore"
	CommandTotalScore     = "CommandTotalScore"
	UnknownCommand        = "UnknownCommand"
	GameOver              = "GameOver"
	PlayerWins            = "PlayerWins"
	GameStatistics        = "GameStatistics"
	TotalWordsNamed       = "TotalWordsNamed"
	AllNamedWords         = "AllNamedWords"
	GameWasInterrupted    = "GameWasInterrupted"
	Abandoned             = "Abandoned"
	ExitMessage           = "ExitMessage"
	SessionLoadError      = "SessionLoadError"
	SessionSaveError      = "SessionSaveError"
	StatsSaveError        = "StatsSaveError"
	ResultSaveError       = "ResultSaveError"
	ErrorWordLength       = "ErrorWordLength"
	LanguageError         = "LanguageError"
	ErrorInvalidLetters   = "ErrorInvalidLetters"
	ErrorWordUsed         = "ErrorWordUsed"
	ErrorEmptyWord        = "ErrorEmptyWord"
	InterruptedGameNotice = "InterruptedGameNotice"
)
