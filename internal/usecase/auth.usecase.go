package usecase

import (
	"linkora-server/internal/domain"
	"linkora-server/internal/repository"
	"linkora-server/pkg/utils"
	xerrors "linkora-server/pkg/utils/errors"
)

// AuthUsecase covers the identity lifecycle: registration, email
// verification, login, avatar updates, and the public listing. Input is
// validated here before any store is touched; the repositories own the
// uniqueness and credential rules.
type AuthUsecase struct {
	identity *repository.IdentityRepo
	sessions *repository.SessionRepo
}

func NewAuthUsecase(identity *repository.IdentityRepo, sessions *repository.SessionRepo) *AuthUsecase {
	return &AuthUsecase{identity: identity, sessions: sessions}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Register validates the request and stores a pending verification,
// returning the one-time code for delivery to the requester only.
func (uc *AuthUsecase) Register(req RegisterRequest) (string, error) {
	if req.Email == "" || req.Password == "" || req.Username == "" || req.Name == "" {
		return "", xerrors.ErrMalformedEvent
	}
	if !utils.ValidateEmail(req.Email) {
		return "", xerrors.ErrInvalidEmailFormat
	}
	return uc.identity.Register(req.Email, req.Username, req.Name, req.Password)
}

// VerifyEmail turns a pending registration into a verified user. This
// does not authenticate the initiating connection; only Login binds a
// session.
func (uc *AuthUsecase) VerifyEmail(email, code string) (*domain.User, error) {
	if email == "" || code == "" {
		return nil, xerrors.ErrMalformedEvent
	}
	return uc.identity.VerifyEmail(email, code)
}

// Login verifies credentials and binds the connection's session.
func (uc *AuthUsecase) Login(connID, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, xerrors.ErrMalformedEvent
	}
	user, err := uc.identity.Login(email, password)
	if err != nil {
		return nil, err
	}
	uc.sessions.Bind(connID, user)
	return user, nil
}

// SetAvatar updates the user's avatar reference.
func (uc *AuthUsecase) SetAvatar(userID, avatarRef string) (*domain.User, error) {
	if userID == "" || avatarRef == "" {
		return nil, xerrors.ErrMalformedEvent
	}
	return uc.identity.SetAvatar(userID, avatarRef)
}

// Disconnect releases the connection's session binding. Idempotent.
func (uc *AuthUsecase) Disconnect(connID string) {
	uc.sessions.Unbind(connID)
}

// Session returns the user bound to a connection, if any.
func (uc *AuthUsecase) Session(connID string) (*domain.User, bool) {
	return uc.sessions.Lookup(connID)
}

// ListPublic returns all users with the password hash stripped.
func (uc *AuthUsecase) ListPublic() []*domain.User {
	return uc.identity.ListPublic()
}
