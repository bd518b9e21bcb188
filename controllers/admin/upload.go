package admin

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resto-go-pos/config"
	"resto-go-pos/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type UploadController struct {
	cfg config.UploadConfig
}

func NewUploadController(cfg config.UploadConfig) *UploadController {
	return &UploadController{cfg: cfg}
}

// Image stores an uploaded image on disk under a random name and returns
// the public URL.
func (ctl *UploadController) Image(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		Resp.Err(c, response.INVALID_PARAMS, "missing file")
		return
	}

	if file.Size > int64(ctl.cfg.MaxSizeMB)*1024*1024 {
		Resp.Err(c, response.INVALID_PARAMS, fmt.Sprintf("file exceeds %dMB limit", ctl.cfg.MaxSizeMB))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		Resp.Err(c, response.INVALID_PARAMS, "unsupported file type")
		return
	}

	if err := os.MkdirAll(ctl.cfg.Dir, 0o755); err != nil {
		Resp.Err(c, response.INTERNAL_ERROR, "failed to prepare upload dir")
		return
	}

	name := uuid.New().String() + ext
	dst := filepath.Join(ctl.cfg.Dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		Resp.Err(c, response.INTERNAL_ERROR, "failed to save file")
		return
	}

	Resp.Succ(c, gin.H{"url": ctl.cfg.PublicBase + "/" + name})
}
