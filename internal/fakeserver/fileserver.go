package fakeserver

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/model"
)

var allowedUploadTypes = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "pdf": true, "txt": true,
}

const maxUploadBytes = 5 << 20

type fileEntry struct {
	record  model.FileRecord
	content []byte
}

// FileHandler serves uploads, per-user listings and raw downloads.
// Downloads are deliberately unauthenticated; the real service hands out
// shareable links.
func (c *Cluster) FileHandler() http.Handler {
	r := gin.New()
	r.POST("/upload", c.upload)
	// "/files/download/:id" and "/files/:user" collide in the route tree,
	// so both go through one wildcard.
	r.GET("/files/*path", c.filesDispatch)
	r.DELETE("/files/*path", c.deleteFile)
	return r
}

func (c *Cluster) upload(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, detail("file field is required"))
		return
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if !allowedUploadTypes[ext] {
		ctx.JSON(http.StatusBadRequest, detail("File type not allowed"))
		return
	}
	if header.Size > maxUploadBytes {
		ctx.JSON(http.StatusBadRequest, detail("File too large"))
		return
	}

	f, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, detail("failed to read upload"))
		return
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, detail("failed to read upload"))
		return
	}

	record := model.FileRecord{
		ID:               uuid.NewString(),
		OriginalFilename: header.Filename,
		FileType:         ext,
		FileSize:         header.Size,
		Description:      ctx.PostForm("description"),
		UserID:           ctx.PostForm("user_id"),
		UploadTime:       time.Now().UTC(),
	}

	c.mu.Lock()
	c.files[record.ID] = fileEntry{record: record, content: content}
	c.fileOrder = append(c.fileOrder, record.ID)
	c.mu.Unlock()
	ctx.JSON(http.StatusOK, record)
}

func (c *Cluster) filesDispatch(ctx *gin.Context) {
	path := strings.TrimPrefix(ctx.Param("path"), "/")
	if id, ok := strings.CutPrefix(path, "download/"); ok {
		c.download(ctx, id)
		return
	}
	c.listFiles(ctx, path)
}

func (c *Cluster) listFiles(ctx *gin.Context, user string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	records := []model.FileRecord{}
	for _, id := range c.fileOrder {
		if entry, ok := c.files[id]; ok && entry.record.UserID == user {
			records = append(records, entry.record)
		}
	}
	ctx.JSON(http.StatusOK, records)
}

func (c *Cluster) download(ctx *gin.Context, id string) {
	c.mu.Lock()
	entry, ok := c.files[id]
	c.mu.Unlock()
	if !ok {
		ctx.JSON(http.StatusNotFound, detail("File not found"))
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+entry.record.OriginalFilename+`"`)
	ctx.Data(http.StatusOK, "application/octet-stream", entry.content)
}

func (c *Cluster) deleteFile(ctx *gin.Context) {
	id := strings.TrimPrefix(ctx.Param("path"), "/")
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.files[id]; !ok {
		ctx.JSON(http.StatusNotFound, detail("File not found"))
		return
	}
	delete(c.files, id)
	for i, fid := range c.fileOrder {
		if fid == id {
			c.fileOrder = append(c.fileOrder[:i], c.fileOrder[i+1:]...)
			break
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "File deleted"})
}
