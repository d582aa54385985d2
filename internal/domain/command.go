package domain

// Command is the canonical navigation vocabulary. Surface spellings live in
// the terminal locale tables; nothing below the transport layer sees them.
type Command int

const (
	CmdInvalid Command = iota
	CmdAdvance
	CmdRetreat
	CmdRepeat
	CmdShowCode
	CmdShowSolution
	CmdAddNote
	CmdListNotes
	CmdSetBookmark
	CmdJumpToBookmark
	CmdToggleReview
	CmdEditContent
	CmdImportLesson
	CmdQuit
)

var commandNames = map[Command]string{
	CmdInvalid:        "INVALID",
	CmdAdvance:        "ADVANCE",
	CmdRetreat:        "RETREAT",
	CmdRepeat:         "REPEAT",
	CmdShowCode:       "SHOW_CODE",
	CmdShowSolution:   "SHOW_SOLUTION",
	CmdAddNote:        "ADD_NOTE",
	CmdListNotes:      "LIST_NOTES",
	CmdSetBookmark:    "SET_BOOKMARK",
	CmdJumpToBookmark: "JUMP_TO_BOOKMARK",
	CmdToggleReview:   "TOGGLE_REVIEW",
	CmdEditContent:    "EDIT_CONTENT",
	CmdImportLesson:   "IMPORT_LESSON",
	CmdQuit:           "QUIT",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "INVALID"
}

type Mode int

const (
	ModeTraining Mode = iota + 1
	ModeChallenge
)
