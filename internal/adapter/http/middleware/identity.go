package middleware

import (
	"net/http"
	"strings"

	"nagrik_seva/internal/domain/entities"
	"nagrik_seva/pkg"

	"github.com/gin-gonic/gin"
)

const (
	actorContextKey = "staff_actor"
	userContextKey  = "user_id"

	headerActorID   = "X-Actor-Id"
	headerActorName = "X-Actor-Name"
	headerActorRole = "X-Actor-Role"
	headerUserID    = "X-User-Id"
)

var (
	errMissingActor = pkg.NewDomainErrorSimple("MISSING_ACTOR", "Staff identity headers required", http.StatusUnauthorized)
	errInvalidRole  = pkg.NewDomainErrorSimple("INVALID_ROLE", "Unknown staff role", http.StatusUnauthorized)
	errMissingUser  = pkg.NewDomainErrorSimple("MISSING_USER", "User identity header required", http.StatusUnauthorized)
)

// RequireActor parses the staff identity headers set by the upstream
// authenticator into an Actor. Requests without a valid identity never reach
// the handlers.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := entities.Actor{
			ID:   strings.TrimSpace(c.GetHeader(headerActorID)),
			Name: strings.TrimSpace(c.GetHeader(headerActorName)),
			Role: entities.StaffRole(strings.TrimSpace(c.GetHeader(headerActorRole))),
		}
		if actor.ID == "" {
			c.AbortWithStatusJSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
			return
		}
		if !actor.Role.IsValid() {
			c.AbortWithStatusJSON(errInvalidRole.HTTPStatus, errInvalidRole.ToHTTPError())
			return
		}
		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// RequireUser parses the end-user identity header.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(headerUserID))
		if userID == "" {
			c.AbortWithStatusJSON(errMissingUser.HTTPStatus, errMissingUser.ToHTTPError())
			return
		}
		c.Set(userContextKey, userID)
		c.Next()
	}
}

// ActorFrom returns the Actor installed by RequireActor.
func ActorFrom(c *gin.Context) entities.Actor {
	if v, ok := c.Get(actorContextKey); ok {
		if actor, ok := v.(entities.Actor); ok {
			return actor
		}
	}
	return entities.Actor{}
}

// UserFrom returns the user id installed by RequireUser.
func UserFrom(c *gin.Context) string {
	if v, ok := c.Get(userContextKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
