package errorvalues

import "errors"

var (
	ErrUserNotFound       = errors.New("user doesn't exists")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUsernameInvalid    = errors.New("username doesn't fit the rules")
	ErrInvalidToken       = errors.New("invalid token")
	ErrChallengeMalformed = errors.New("challenge message is malformed")
	ErrChallengeExpired   = errors.New("challenge message is too old")
	ErrChallengeReplayed  = errors.New("challenge nonce already used")
	ErrSignatureInvalid   = errors.New("signature doesn't match wallet address")
	ErrStreakNotFound     = errors.New("no streak record for this week")
	ErrDayAlreadyClaimed  = errors.New("day already claimed")
	ErrDayNotClaimable    = errors.New("day is not claimable today")
)
