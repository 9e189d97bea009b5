package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"

	"github.com/storalia/bodega/internal/domain"
)

const identityKey = "identity"

// Identity resolves the calling operator from a Bearer token and stores a
// domain.Identity in the request context. Resolution is best-effort: requests
// without a token, or with one that fails validation, proceed anonymously and
// audit stamps fall back to the system actor. Route-level authorization is
// not this middleware's job.
func Identity(jwtSvc jwt.Service, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		parsed, err := jwtSvc.ValidateAndParse(token)
		if err != nil {
			c.Next()
			return
		}

		id, err := strconv.ParseUint(parsed.UserID, 10, 32)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.GetByID(c.Request.Context(), uint(id), false)
		if err != nil {
			c.Next()
			return
		}

		c.Set(identityKey, domain.Identity{
			Name:  user.FullName,
			Email: user.Email,
			Role:  user.Role,
		})
		c.Next()
	}
}

// IdentityFromContext returns the resolved operator identity, or the zero
// Identity when the request is anonymous.
func IdentityFromContext(c *gin.Context) domain.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(domain.Identity); ok {
			return id
		}
	}
	return domain.Identity{}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
