package command

import "fmt"

// ErrorKind enumerates the user-facing command failures
type ErrorKind int

const (
	// UnknownCharacter means the lookup found no character for the query
	UnknownCharacter ErrorKind = iota + 1
	// UnknownMove means the character matched but the move query did not
	UnknownMove
	// WrongArguments means the command was missing its character or move
	WrongArguments
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownCharacter:
		return "unknown_character"
	case UnknownMove:
		return "unknown_move"
	case WrongArguments:
		return "wrong_arguments"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// DispatchError is a command failure that is reported back to the channel.
// Query holds the user's text exactly as typed; it is empty for WrongArguments.
type DispatchError struct {
	Kind  ErrorKind
	Query string
}

func (e *DispatchError) Error() string {
	if e.Query == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Query)
}

// Message renders the sentence sent to chat
func (e *DispatchError) Message() string {
	switch e.Kind {
	case UnknownCharacter:
		return fmt.Sprintf("Currently unknown character: '%s'", e.Query)
	case UnknownMove:
		return fmt.Sprintf("Currently unknown move: '%s'", e.Query)
	case WrongArguments:
		return usageHint
	default:
		panic(fmt.Sprintf("unhandled dispatch error kind %d", int(e.Kind)))
	}
}

const usageHint = "Invalid args, try: !frames <char> <move_query>"

func errUnknownCharacter(query string) *DispatchError {
	return &DispatchError{Kind: UnknownCharacter, Query: query}
}

func errUnknownMove(query string) *DispatchError {
	return &DispatchError{Kind: UnknownMove, Query: query}
}

func errWrongArguments() *DispatchError {
	return &DispatchError{Kind: WrongArguments}
}
