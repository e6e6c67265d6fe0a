package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/tunevault/pkg/internal/service"
	"github.com/yeisme/tunevault/pkg/log"
	"github.com/yeisme/tunevault/pkg/rule"
)

// DeleteTrack 删除记录及其存储对象.
func DeleteTrack(c *gin.Context) {
	l := log.Logger()

	// 记录 ID 为 26 位 ULID
	id := c.Param("id")
	if err := rule.ValidateVar(id, "required,len=26,alphanum"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	svc := service.NewTrackService(c.Request.Context())

	resp, err := svc.DeleteTrack(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTrackNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "track not found"})
			return
		}

		l.Error().Err(err).Str("id", id).Msg("failed to delete track")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}
