package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
	"github.com/n-smith-public/cs4241e25-final-project/pkg/apierrors"
)

const (
	CookieAuth        = "auth"
	CookieEmail       = "email"
	CookieDisplayName = "displayName"

	sessionKey = "session"
	tokenKey   = "sessionToken"
)

// SessionMiddleware resolves the session cookies into a domain.Session without rejecting anything.
// The email cookie has to agree with the server-side session; a mismatch counts as no session.
func SessionMiddleware(auth ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := rawCookie(c, CookieAuth)
		email := rawCookie(c, CookieEmail)
		if token == "" || email == "" {
			c.Next()
			return
		}

		session, err := auth.Authenticate(c.Request.Context(), token)
		switch {
		case err == nil && domain.NormalizeEmail(email) == session.Email:
			c.Set(sessionKey, session)
			c.Set(tokenKey, token)
		case err != nil && !isUnauthorized(err):
			zap.L().Warn("failed to resolve session", zap.Error(err))
		}
		c.Next()
	}
}

func GetSession(c *gin.Context) (domain.Session, bool) {
	value, exists := c.Get(sessionKey)
	if !exists {
		return domain.Session{}, false
	}
	session, ok := value.(domain.Session)
	return session, ok
}

func GetSessionToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}

// RequireSession rejects API calls without a session.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetSession(c); !ok {
			lang := GetLang(c)
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.MsgUnauthorized, lang),
			)
			return
		}
		c.Next()
	}
}

// RequirePageSession sends visitors without a session to the login page.
func RequirePageSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetSession(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectIfAuthenticated keeps signed-in users away from the login and register pages.
func RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetSession(c); ok {
			c.Redirect(http.StatusFound, "/home")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetSessionCookies writes the three session cookies together, all ending when the session does.
func SetSessionCookies(c *gin.Context, session domain.Session, token string, now time.Time, secure bool) {
	maxAge := int(session.ExpiresAt.Sub(now).Seconds())
	if maxAge <= 0 {
		ClearSessionCookies(c, secure)
		return
	}
	setCookie(c, CookieAuth, token, maxAge, true, secure)
	setCookie(c, CookieEmail, session.Email, maxAge, true, secure)
	setCookie(c, CookieDisplayName, url.PathEscape(session.DisplayName), maxAge, false, secure)
}

func ClearSessionCookies(c *gin.Context, secure bool) {
	setCookie(c, CookieAuth, "", -1, true, secure)
	setCookie(c, CookieEmail, "", -1, true, secure)
	setCookie(c, CookieDisplayName, "", -1, false, secure)
}

func setCookie(c *gin.Context, name, value string, maxAge int, httpOnly, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: httpOnly,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func rawCookie(c *gin.Context, name string) string {
	cookie, err := c.Request.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func isUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrSessionNotFound)
}
