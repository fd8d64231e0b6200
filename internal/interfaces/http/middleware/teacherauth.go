package middleware

import (
	"github.com/gin-gonic/gin"

	"schoolhub/internal/domain/teacher"
	"schoolhub/internal/shared/auth"
	"schoolhub/internal/shared/errors"
	"schoolhub/internal/shared/logger"
	"schoolhub/internal/shared/utils"
)

// TeacherAuth authenticates requests against the teacher registry. The caller
// identifies itself with the username query parameter; a request whose
// username is missing or unknown is rejected with 401. On success an
// auth.Context carrying the teacher's identity is stored on the request for
// downstream handlers.
func TeacherAuth(teachers teacher.Repository, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Query("username")
		if username == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Unauthorized"))
			c.Abort()
			return
		}

		t, err := teachers.GetByUsername(c.Request.Context(), username)
		if err != nil {
			log.Errorw("failed to check teacher registry",
				"username", username,
				"error", err)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		if t == nil {
			log.Warnw("rejected request from unknown teacher",
				"username", username,
				"path", c.Request.URL.Path)
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Unauthorized"))
			c.Abort()
			return
		}

		c.Set(auth.ContextKey, auth.Context{
			Username:    t.Username(),
			DisplayName: t.DisplayName(),
		})
		c.Next()
	}
}
