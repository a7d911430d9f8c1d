package repository

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"sync"
	"time"

	"linkora-server/internal/domain"
	"linkora-server/pkg/utils"
	xerrors "linkora-server/pkg/utils/errors"
	"linkora-server/pkg/utils/id"
)

// IdentityRepo owns the in-memory user table and the pending
// verification entries. Every method holds the lock for the whole
// operation so uniqueness checks and inserts are a single atomic step.
type IdentityRepo struct {
	mu      sync.RWMutex
	users   []*domain.User // insertion order, for listing
	byEmail map[string]*domain.User
	byName  map[string]*domain.User
	byID    map[string]*domain.User
	pending map[string]*domain.PendingVerification
	sf      *id.Snowflake
}

func NewIdentityRepo(sf *id.Snowflake) *IdentityRepo {
	return &IdentityRepo{
		byEmail: make(map[string]*domain.User),
		byName:  make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
		pending: make(map[string]*domain.PendingVerification),
		sf:      sf,
	}
}

// Seed inserts a pre-verified user, bypassing the verification flow.
// Used for the bootstrap admin account before connections are accepted.
func (r *IdentityRepo) Seed(user *domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insert(user)
}

// Register stores a pending verification for email and returns the
// generated 6-digit code. Uniqueness is enforced against verified users
// only; a pending entry for the same email is overwritten.
func (r *IdentityRepo) Register(email, username, name, password string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[email]; ok {
		return "", xerrors.ErrEmailTaken
	}
	if _, ok := r.byName[username]; ok {
		return "", xerrors.ErrUsernameTaken
	}

	code, err := generateCode()
	if err != nil {
		return "", err
	}
	r.pending[email] = &domain.PendingVerification{
		Email:     email,
		Username:  username,
		Name:      name,
		Password:  password,
		Code:      code,
		CreatedAt: time.Now(),
	}
	return code, nil
}

// VerifyEmail consumes the pending entry on an exact code match and
// creates the user. A code mismatch leaves the entry intact so the
// requester may retry. Uniqueness is re-checked at creation time: two
// pending registrations for the same username can both pass Register,
// so the second verification must fail here.
func (r *IdentityRepo) VerifyEmail(email, code string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pv, ok := r.pending[email]
	if !ok {
		return nil, xerrors.ErrNoPendingVerification
	}
	if pv.Code != code {
		return nil, xerrors.ErrInvalidCode
	}
	if _, ok := r.byEmail[pv.Email]; ok {
		return nil, xerrors.ErrEmailTaken
	}
	if _, ok := r.byName[pv.Username]; ok {
		return nil, xerrors.ErrUsernameTaken
	}

	hashed, err := utils.HashPassword(pv.Password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		ID:           r.sf.Generate(),
		Email:        pv.Email,
		Username:     pv.Username,
		Name:         pv.Name,
		PasswordHash: hashed,
		IsVerified:   true,
		IsAdmin:      false,
		Avatar:       "",
		JoinedDate:   time.Now(),
	}
	r.insert(user)
	delete(r.pending, email)
	return user, nil
}

// Login verifies credentials through the bcrypt comparison, never
// plaintext equality.
func (r *IdentityRepo) Login(email, password string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok || !utils.CheckPassword(user.PasswordHash, password) {
		return nil, xerrors.ErrInvalidCredentials
	}
	return user, nil
}

// SetAvatar mutates the user's avatar reference in place.
func (r *IdentityRepo) SetAvatar(userID, avatarRef string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[userID]
	if !ok {
		return nil, xerrors.ErrUserNotFound
	}
	user.Avatar = avatarRef
	return user, nil
}

// ListPublic returns all users in insertion order with the password
// hash stripped.
func (r *IdentityRepo) ListPublic() []*domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u.Public())
	}
	return out
}

// PendingFor reports whether a verification is still pending for email.
func (r *IdentityRepo) PendingFor(email string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.pending[email]
	return ok
}

func (r *IdentityRepo) insert(user *domain.User) {
	r.users = append(r.users, user)
	r.byEmail[user.Email] = user
	r.byName[user.Username] = user
	r.byID[user.ID] = user
}

// generateCode returns a random 6-digit numeric code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(100000+n.Int64(), 10), nil
}
