package handler

import (
	"net/http"
	"os"
	"sync"

	"slidecraft/backend/internal/model"

	"github.com/gin-gonic/gin"
)

// PptxMIME identifies the download as a presentation document
const PptxMIME = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

var (
	presentations   = make(map[string]*model.PresentationMeta)
	presentationsMu sync.RWMutex
)

// StorePresentation registers a generated presentation for download
func StorePresentation(meta *model.PresentationMeta) {
	presentationsMu.Lock()
	presentations[meta.ID] = meta
	presentationsMu.Unlock()
}

// GetPresentation looks up a registry entry by ID
func GetPresentation(id string) *model.PresentationMeta {
	presentationsMu.RLock()
	defer presentationsMu.RUnlock()
	return presentations[id]
}

func HandleGetPresentation(c *gin.Context) {
	meta := GetPresentation(c.Param("id"))
	if meta == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Presentation not found", "code": "NOT_FOUND"})
		return
	}
	c.JSON(http.StatusOK, meta.ToResponse())
}

func HandleDownloadPresentation(c *gin.Context) {
	meta := GetPresentation(c.Param("id"))
	if meta == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Presentation not found", "code": "NOT_FOUND"})
		return
	}

	if _, err := os.Stat(meta.Path); err != nil {
		c.JSON(http.StatusGone, gin.H{"error": "Presentation file no longer exists", "code": "FILE_GONE"})
		return
	}

	c.Header("Content-Type", PptxMIME)
	c.FileAttachment(meta.Path, meta.Filename)
}

// HandleDeletePresentation is the reset control: it discards the registry
// entry but leaves the file on disk
func HandleDeletePresentation(c *gin.Context) {
	id := c.Param("id")

	presentationsMu.Lock()
	_, ok := presentations[id]
	delete(presentations, id)
	presentationsMu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Presentation not found", "code": "NOT_FOUND"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "discarded"})
}
