package handle

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/tunevault/pkg/configs"
	"github.com/yeisme/tunevault/pkg/internal/service"
	"github.com/yeisme/tunevault/pkg/log"
)

// UploadTracks 处理音频文件批量上传.
// 边界校验在此完成：空批次、类型白名单、大小上限，逐文件失败不阻断整批.
func UploadTracks(c *gin.Context) {
	l := log.Logger()

	form, err := c.MultipartForm()
	if err != nil {
		l.Warn().Err(err).Msg("failed to parse multipart form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})

		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		l.Warn().Msg("no files provided in upload request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files provided"})

		return
	}

	uploadCfg := configs.GetConfig().Upload

	inputs := make([]service.UploadInput, 0, len(files))
	opened := make([]multipart.File, 0, len(files))

	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()

	for _, file := range files {
		if err := validateUploadFile(file, &uploadCfg); err != nil {
			l.Warn().Err(err).Str("filename", file.Filename).Msg("rejected upload file")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

			return
		}

		src, openErr := file.Open()
		if openErr != nil {
			l.Error().Err(openErr).Str("filename", file.Filename).Msg("failed to open uploaded file")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process file"})

			return
		}

		opened = append(opened, src)
		inputs = append(inputs, service.UploadInput{
			FileName:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Size:        file.Size,
			Reader:      src,
		})
	}

	svc := service.NewTrackService(c.Request.Context())

	resp, err := svc.UploadTracks(c.Request.Context(), inputs)
	if err != nil {
		l.Error().Err(err).Msg("failed to upload tracks")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}

// validateUploadFile 校验单个文件的类型与大小.
func validateUploadFile(file *multipart.FileHeader, cfg *configs.UploadConfig) error {
	contentType := file.Header.Get("Content-Type")
	if !cfg.TypeAllowed(contentType) {
		return fmt.Errorf("unsupported content type %q for %s", contentType, file.Filename)
	}

	if file.Size > cfg.MaxSizeBytes() {
		return fmt.Errorf("file %s exceeds size limit of %d MiB", file.Filename, cfg.MaxSizeMiB)
	}

	return nil
}
