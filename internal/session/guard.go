package session

import "github.com/johanmora/ganaderia-backend/internal/models"

// Decision is the outcome of a client-side route guard. These checks are a
// UX convenience only; the server re-verifies everything.
type Decision int

const (
	// DecisionWait: resolution in flight, render a placeholder, no redirect.
	DecisionWait Decision = iota
	DecisionRender
	DecisionRedirectLogin
	DecisionRedirectHome
)

// Guard decides access to a protected view. An empty required set means any
// authenticated session may enter.
func Guard(s Session, loading bool, required ...models.Role) Decision {
	if loading {
		return DecisionWait
	}
	if !s.Authenticated() {
		return DecisionRedirectLogin
	}
	if len(required) == 0 {
		return DecisionRender
	}
	for _, r := range required {
		if s.Role == r {
			return DecisionRender
		}
	}
	return DecisionRedirectHome
}

// PublicOnlyGuard inverts Guard for views like login: an authenticated
// session is sent home instead.
func PublicOnlyGuard(s Session, loading bool) Decision {
	if loading {
		return DecisionWait
	}
	if s.Authenticated() {
		return DecisionRedirectHome
	}
	return DecisionRender
}
