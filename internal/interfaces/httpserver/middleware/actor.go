// Package middleware holds gin middleware for the navigator API.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// actorIDKey is the gin context key holding the resolved actor identity.
const actorIDKey = "actorID"

// actorIDHeader carries the caller's identity. Single-tenant deployments
// omit it and fall back to the configured default.
const actorIDHeader = "X-Actor-ID"

// Actor resolves the acting identity for each request and stashes it in the
// gin context.
func Actor(defaultActorID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := strings.TrimSpace(c.GetHeader(actorIDHeader))
		if actorID == "" {
			actorID = defaultActorID
		}
		c.Set(actorIDKey, actorID)
		c.Next()
	}
}

// ActorID returns the actor identity resolved by the Actor middleware.
func ActorID(c *gin.Context) string {
	return c.GetString(actorIDKey)
}
