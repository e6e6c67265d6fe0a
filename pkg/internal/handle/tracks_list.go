package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/tunevault/pkg/internal/service"
	"github.com/yeisme/tunevault/pkg/log"
)

// ListTracks 返回全部文件记录及其物化链接.
func ListTracks(c *gin.Context) {
	svc := service.NewTrackService(c.Request.Context())

	resp, err := svc.ListTracks(c.Request.Context())
	if err != nil {
		log.Logger().Error().Err(err).Msg("failed to list tracks")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}
