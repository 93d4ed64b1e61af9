package kernel

// Actor identifies who triggered a change. The zero value is the system
// itself, used for automatic transitions and background reconciliation.
type Actor struct {
	userID *UUID
}

// SystemActor returns the actor used for changes nobody asked for explicitly.
func SystemActor() Actor {
	return Actor{}
}

// NewUserActor returns an actor for an authenticated user.
func NewUserActor(userID UUID) (Actor, error) {
	if err := userID.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{userID: &userID}, nil
}

// UserID returns nil for the system actor.
func (a Actor) UserID() *UUID {
	return a.userID
}

func (a Actor) IsSystem() bool {
	return a.userID == nil
}
