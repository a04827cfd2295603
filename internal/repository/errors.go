package repository

import "errors"

// Not-found is an ordinary outcome, not a fault: every lookup, update,
// delete and move on a missing id returns one of these sentinels and
// nothing else. Callers translate them at the HTTP boundary.
var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrMemberNotFound    = errors.New("team member not found")
	ErrTeamNotFound      = errors.New("team not found")
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrAPIKeyNotFound    = errors.New("api key not found")
)
