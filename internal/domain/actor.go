package domain

// Actor is the explicit acting context for every core operation: who is
// calling and on behalf of which establishment. Handlers build it from the
// authenticated request; nothing below the handlers reads ambient state.
type Actor struct {
	UserID          uint
	EstablishmentID uint
}
