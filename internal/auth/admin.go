package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Allowlist holds the set of administrator email addresses. Membership is
// case-insensitive.
type Allowlist struct {
	emails map[string]struct{}
}

// NewAllowlist builds an Allowlist from the configured admin emails.
func NewAllowlist(emails []string) *Allowlist {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		set[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	return &Allowlist{emails: set}
}

// Contains reports whether the email is on the allow-list.
func (a *Allowlist) Contains(email string) bool {
	_, ok := a.emails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

// AdminRequired ensures the authenticated user's email is on the admin
// allow-list. It MUST be used after AuthRequired.
func AdminRequired(allowlist *Allowlist) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := GetUserEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if !allowlist.Contains(email) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}
