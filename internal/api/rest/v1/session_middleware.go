package v1

import (
	"net/http"
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/errs"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/sessions"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"
	"github.com/gin-gonic/gin"
)

// SessionMiddleware defines the guards that read the caller's session token
type SessionMiddleware interface {
	// AuthorizeUser rejects requests without a valid, unrevoked token.
	AuthorizeUser(ctx *gin.Context)
	// AuthorizeGuest rejects requests that carry a valid token.
	AuthorizeGuest(ctx *gin.Context)
	// AttachLoginStatus never rejects. It attaches the caller or an anonymous state.
	AttachLoginStatus(ctx *gin.Context)
	// BlacklistToken revokes the caller's token until it expires.
	BlacklistToken(ctx *gin.Context)
}

type sessionMiddleware struct {
	issuer    sessions.TokenIssuer
	blacklist sessions.TokenBlacklist
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(issuer sessions.TokenIssuer, blacklist sessions.TokenBlacklist) SessionMiddleware {
	return &sessionMiddleware{
		issuer:    issuer,
		blacklist: blacklist,
	}
}

// verify returns the session of a present, unrevoked and valid token.
func (m *sessionMiddleware) verify(token string) (users.UserState, time.Time, bool) {
	if token == "" || m.blacklist.Contains(token) {
		return users.UserState{}, time.Time{}, false
	}
	state, expiresAt, err := m.issuer.Verify(token)
	if err != nil {
		return users.UserState{}, time.Time{}, false
	}
	return state, expiresAt, true
}

func (m *sessionMiddleware) AuthorizeUser(ctx *gin.Context) {
	token := bearerToken(ctx)
	state, expiresAt, ok := m.verify(token)
	if !ok {
		abortWithMessage(ctx, http.StatusUnauthorized, errs.MsgInvalidToken)
		return
	}

	setSession(ctx, state, token, expiresAt)
	ctx.Next()
}

func (m *sessionMiddleware) AuthorizeGuest(ctx *gin.Context) {
	if _, _, ok := m.verify(bearerToken(ctx)); ok {
		abortWithMessage(ctx, http.StatusForbidden, errs.MsgMustBeLoggedOut)
		return
	}
	ctx.Next()
}

func (m *sessionMiddleware) AttachLoginStatus(ctx *gin.Context) {
	token := bearerToken(ctx)
	if state, expiresAt, ok := m.verify(token); ok {
		setSession(ctx, state, token, expiresAt)
	} else {
		ctx.Set(userStateKey, users.AnonymousState())
	}
	ctx.Next()
}

func (m *sessionMiddleware) BlacklistToken(ctx *gin.Context) {
	token := ctx.GetString(tokenKey)
	expiresAt := ctx.GetTime(tokenExpiresAtKey)

	if token == "" {
		token = bearerToken(ctx)
		var ok bool
		if _, expiresAt, ok = m.verify(token); !ok {
			// Nothing to revoke: the token is already unusable
			ctx.Next()
			return
		}
	}

	m.blacklist.Add(token, expiresAt)
	ctx.Next()
}
