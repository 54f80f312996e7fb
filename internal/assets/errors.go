package assets

// badRequestError marks resolve-request validation failures for 400 mapping.
type badRequestError struct{ msg string }

func (e badRequestError) Error() string { return e.msg }

// ErrUnknownKind reports an unrecognized resolve kind.
func ErrUnknownKind(kind string) error { return badRequestError{msg: "unknown resolve kind: " + kind} }

// ErrUnknownToken reports a token name not in the enum.
func ErrUnknownToken(token string) error { return badRequestError{msg: "unknown token: " + token} }

// ErrUnknownCharacter reports a character name not in the roster.
func ErrUnknownCharacter(ch string) error { return badRequestError{msg: "unknown character: " + ch} }

// IsBadRequest reports whether err indicates an invalid resolve request.
func IsBadRequest(err error) bool {
	_, ok := err.(badRequestError)
	return ok
}
