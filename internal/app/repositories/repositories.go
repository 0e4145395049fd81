package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository behind one constructor so the
// bootstrap wiring stays flat.
type Repositories struct {
	Users         *UserRepository
	Tokens        *TokenRepository
	Publications  *PublicationRepository
	Theses        *TheseRepository
	Masters       *MasterRepository
	Actus         *ActuRepository
	Presentations *PresentationRepository
}

// NewRepositories creates all repositories sharing the given pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(db),
		Tokens:        NewTokenRepository(db),
		Publications:  NewPublicationRepository(db),
		Theses:        NewTheseRepository(db),
		Masters:       NewMasterRepository(db),
		Actus:         NewActuRepository(db),
		Presentations: NewPresentationRepository(db),
	}
}
