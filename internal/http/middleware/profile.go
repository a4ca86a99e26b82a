package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurpe/jobmarket/internal/auth"
	"github.com/nurpe/jobmarket/internal/model"
)

const profileContextKey = "resolvedProfile"

// ProfileResolver loads the profile record for a caller id.
type ProfileResolver interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*model.Profile, error)
}

// Profile resolves the caller identity for every request. The caller
// identifies itself either with a bearer access token or a plain
// profile_id header; either way the referenced profile must exist or
// the request is rejected before any handler runs.
func Profile(parser *auth.Parser, resolver ProfileResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, ok := callerID(c, parser)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid profile identity"})
			return
		}

		profile, err := resolver.GetProfile(c.Request.Context(), profileID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown profile"})
			return
		}

		c.Set(profileContextKey, *profile)
		c.Next()
	}
}

// MustProfile returns the profile attached by the Profile middleware.
func MustProfile(c *gin.Context) (model.Profile, bool) {
	value, exists := c.Get(profileContextKey)
	if !exists {
		return model.Profile{}, false
	}
	profile, ok := value.(model.Profile)
	return profile, ok
}

func callerID(c *gin.Context, parser *auth.Parser) (uuid.UUID, bool) {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		id, err := parser.Parse(authHeader[7:])
		if err != nil {
			return uuid.Nil, false
		}
		return id, true
	}

	raw := strings.TrimSpace(c.GetHeader("profile_id"))
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
