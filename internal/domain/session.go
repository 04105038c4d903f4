package domain

import "fmt"

type UserID string

// Identity is the stable result of a sign-in: the user id plus the bearer
// token the document store accepts for that user.
type Identity struct {
	UserID UserID
	Token  string
}

// Session is established exactly once per process run and shared read-only
// afterward. It scopes every collection operation to one deployment (AppID)
// and one user.
type Session struct {
	Identity Identity
	AppID    string
}

func (s Session) Ready() bool {
	return s.Identity.UserID != "" && s.AppID != ""
}

// CollectionPath addresses the user's prompt collection. Documents from two
// users or two deployments never share a path.
func (s Session) CollectionPath() string {
	return fmt.Sprintf("artifacts/%s/users/%s/prompts", s.AppID, s.Identity.UserID)
}

func (s Session) DocumentPath(id PromptID) string {
	return fmt.Sprintf("%s/%s", s.CollectionPath(), id)
}
