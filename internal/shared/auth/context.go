// Package auth carries the authenticated identity through request handling.
// Authentication here is a teacher-registry existence check; the resulting
// Context is passed explicitly into every operation that requires it.
package auth

import "github.com/gin-gonic/gin"

// ContextKey is the gin context key under which middleware stores the
// authenticated Context.
const ContextKey = "auth_context"

// Context identifies the teacher a request was authenticated as.
type Context struct {
	Username    string
	DisplayName string
}

// FromGin extracts the authenticated Context set by the middleware.
func FromGin(c *gin.Context) (Context, bool) {
	v, exists := c.Get(ContextKey)
	if !exists {
		return Context{}, false
	}
	authCtx, ok := v.(Context)
	return authCtx, ok
}
