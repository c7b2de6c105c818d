package controllers

import (
	"io"
	"net/http"
	"strings"

	"backend/utils"

	"github.com/gin-gonic/gin"
)

// Upload bounds for photo uploads; consent PDFs and other non-image files
// pass through untouched.
const (
	uploadMaxWidth  = 1600
	uploadMaxHeight = 1600
	uploadQuality   = 80
)

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// POST /uploads  multipart {file, folder}
func (h *UploadController) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	folder := c.PostForm("folder")

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "image/") {
		compressed, ct, err := utils.CompressImage(data, uploadMaxWidth, uploadMaxHeight, uploadQuality)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not process image"})
			return
		}
		if ct != "" {
			data = compressed
			contentType = ct
		}
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, key, err := utils.UploadToS3(data, folder, fileHeader.Filename, contentType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "url": url, "path": key})
}
