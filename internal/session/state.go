package session

// State is a step of the session state machine.
type State int

const (
	StateMainMenu State = iota
	StateExecuting
	StatePostAction
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main-menu"
	case StateExecuting:
		return "executing"
	case StatePostAction:
		return "post-action"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Action is a user action selectable from the main menu.
type Action int

const (
	ActionNone Action = iota
	ActionAdd
	ActionLookupName
	ActionLookupDate
	ActionDump
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionLookupName:
		return "lookup-name"
	case ActionLookupDate:
		return "lookup-date"
	case ActionDump:
		return "dump"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// menuChoices maps main menu answers to actions.
var menuChoices = map[string]Action{
	"1": ActionAdd,
	"2": ActionLookupName,
	"3": ActionLookupDate,
	"4": ActionDump,
	"5": ActionQuit,
}

var menuLines = [5]string{
	"1: Enter a new birthday date",
	"2: Check someone's birthday",
	"3: Learn whose birthday it's for a certain day",
	"4: Print all the dates",
	"5: Quit",
}

// Post-action answers.
const (
	choiceRepeat = "1"
	choiceMenu   = "2"
	choiceQuit   = "3"
)
