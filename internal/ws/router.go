package ws

import (
	"encoding/json"
	"errors"

	"linkora-server/internal/usecase"
	xerrors "linkora-server/pkg/utils/errors"
)

// Emitter is the delivery surface the router fans out through. The hub
// implements it; tests substitute a recorder.
type Emitter interface {
	Unicast(c *Client, msg []byte)
	Broadcast(msg []byte)
}

// Router validates inbound events against the stores, applies the
// mutation, and decides what is emitted to whom. It runs on the hub
// goroutine, so handlers never race each other.
type Router struct {
	auth *usecase.AuthUsecase
	feed *usecase.FeedUsecase
}

func NewRouter(auth *usecase.AuthUsecase, feed *usecase.FeedUsecase) *Router {
	return &Router{auth: auth, feed: feed}
}

func (rt *Router) Dispatch(em Emitter, c *Client, msg Message) {
	switch msg.Type {
	case EvtRegister:
		rt.handleRegister(em, c, msg.Data)
	case EvtVerifyEmail:
		rt.handleVerifyEmail(em, c, msg.Data)
	case EvtLogin:
		rt.handleLogin(em, c, msg.Data)
	case EvtCreatePost:
		rt.handleCreatePost(em, c, msg.Data)
	case EvtLikePost:
		rt.handleLikePost(em, c, msg.Data)
	case EvtAddComment:
		rt.handleAddComment(em, c, msg.Data)
	case EvtUploadAvatar:
		rt.handleUploadAvatar(em, c, msg.Data)
	default:
		em.Unicast(c, mustEncode(EvtEventError, "unknown event type: "+msg.Type))
	}
}

// HandleDisconnect releases the connection's session binding.
func (rt *Router) HandleDisconnect(connID string) {
	rt.auth.Disconnect(connID)
}

type verificationSentPayload struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (rt *Router) handleRegister(em Emitter, c *Client, data json.RawMessage) {
	var req usecase.RegisterRequest
	if err := decodeStrict(data, &req); err != nil {
		em.Unicast(c, mustEncode(EvtRegisterError, err.Error()))
		return
	}
	code, err := rt.auth.Register(req)
	if err != nil {
		em.Unicast(c, mustEncode(EvtRegisterError, err.Error()))
		return
	}
	// The code goes back to the requester only, never broadcast.
	em.Unicast(c, mustEncode(EvtVerificationSent, verificationSentPayload{Email: req.Email, Code: code}))
}

type verifyEmailRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (rt *Router) handleVerifyEmail(em Emitter, c *Client, data json.RawMessage) {
	var req verifyEmailRequest
	if err := decodeStrict(data, &req); err != nil {
		em.Unicast(c, mustEncode(EvtVerificationError, err.Error()))
		return
	}
	user, err := rt.auth.VerifyEmail(req.Email, req.Code)
	if err != nil {
		em.Unicast(c, mustEncode(EvtVerificationError, err.Error()))
		return
	}
	em.Unicast(c, mustEncode(EvtVerificationSuccess, user.Public()))
	em.Broadcast(mustEncode(EvtNewUserRegistered, user.Public()))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (rt *Router) handleLogin(em Emitter, c *Client, data json.RawMessage) {
	var req loginRequest
	if err := decodeStrict(data, &req); err != nil {
		em.Unicast(c, mustEncode(EvtLoginError, err.Error()))
		return
	}
	user, err := rt.auth.Login(c.ID, req.Email, req.Password)
	if err != nil {
		em.Unicast(c, mustEncode(EvtLoginError, err.Error()))
		return
	}
	em.Unicast(c, mustEncode(EvtLoginSuccess, user.Public()))
	em.Broadcast(mustEncode(EvtUserOnline, user.Public()))
}

func (rt *Router) handleCreatePost(em Emitter, c *Client, data json.RawMessage) {
	var req usecase.CreatePostRequest
	if err := decodeStrict(data, &req); err != nil {
		em.Unicast(c, mustEncode(EvtEventError, err.Error()))
		return
	}
	post, err := rt.feed.CreatePost(req)
	if err != nil {
		em.Unicast(c, mustEncode(EvtEventError, err.Error()))
		return
	}
	em.Broadcast(mustEncode(EvtNewPost, post))
}

func (rt *Router) handleLikePost(em Emitter, c *Client, data json.RawMessage) {
	var req usecase.LikePostRequest
	if err := decodeStrict(data, &req); err != nil {
		em.Unicast(c, mustEncode(EvtEventError, err.Error()))
		return
	}
	post, err := rt.feed.ToggleLike(req)
	if errors.Is(err, xerrors.ErrMalformedEvent) {
		em.Unicast(c, mustEncode(EvtEventError, err.Error()))
		return
	}
	if err != nil {
		// Missing post: deliberately no emission.
		return
	}
	em.Broadcast(mustEncode(EvtPostUpdated, post))
}

func (rt *Router) handleAddComment(em Emitter, c *Client, data json.RawMessage) {
	var req usecase.AddCommentRequest
	if err := decodeStrict(data, &req); err != nil {
		em.Unicast(c, mustEncode(EvtEventError, err.Error()))
		return
	}
	post, err := rt.feed.AddComment(req)
	if errors.Is(err, xerrors.ErrMalformedEvent) {
		em.Unicast(c, mustEncode(EvtEventError, err.Error()))
		return
	}
	if err != nil {
		// Missing post: deliberately no emission.
		return
	}
	em.Broadcast(mustEncode(EvtPostUpdated, post))
}

type uploadAvatarRequest struct {
	UserID    string `json:"userId"`
	AvatarURL string `json:"avatarUrl"`
}

func (rt *Router) handleUploadAvatar(em Emitter, c *Client, data json.RawMessage) {
	var req uploadAvatarRequest
	if err := decodeStrict(data, &req); err != nil {
		em.Unicast(c, mustEncode(EvtEventError, err.Error()))
		return
	}
	user, err := rt.auth.SetAvatar(req.UserID, req.AvatarURL)
	if errors.Is(err, xerrors.ErrMalformedEvent) {
		em.Unicast(c, mustEncode(EvtEventError, err.Error()))
		return
	}
	if err != nil {
		// Missing user: deliberately no emission.
		return
	}
	em.Broadcast(mustEncode(EvtUserUpdated, user.Public()))
}
