package v1

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Register PNG decoder
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go-jobmatch-backend/config"
	"go-jobmatch-backend/internal/delivery/http/middleware"
	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"golang.org/x/image/draw"
)

type JobSeekerHandler struct {
	jobSeekerUC domain.JobSeekerUsecase
	config      *config.Config
}

func NewJobSeekerHandler(protected *gin.RouterGroup, jobSeekerUC domain.JobSeekerUsecase, cfg *config.Config) {
	handler := &JobSeekerHandler{jobSeekerUC: jobSeekerUC, config: cfg}

	jobseekers := protected.Group("/jobseekers")
	{
		jobseekers.GET("/me/profile", handler.GetProfile)
		jobseekers.PUT("/me/profile", handler.UpdateProfile)
		jobseekers.POST("/me/image",
			middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig()),
			handler.UploadProfileImage)
	}
}

// GetProfile godoc
// @Summary      Get own profile
// @Tags         jobseekers
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /jobseekers/me/profile [get]
func (h *JobSeekerHandler) GetProfile(c *gin.Context) {
	profile, err := h.jobSeekerUC.GetProfile(c, "")
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile fetched", profile)
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Save the job seeker profile; a registered portfolio is re-synced from it
// @Tags         jobseekers
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.JobSeekerProfile  true  "Profile"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  response.Envelope
// @Router       /jobseekers/me/profile [put]
func (h *JobSeekerHandler) UpdateProfile(c *gin.Context) {
	var profile domain.JobSeekerProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.jobSeekerUC.UpdateProfile(c, &profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", nil)
}

// UploadProfileImage godoc
// @Summary      Upload profile image
// @Description  Upload a profile photo. Images are downscaled and re-encoded as JPEG.
// @Tags         jobseekers
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Router       /jobseekers/me/image [post]
func (h *JobSeekerHandler) UploadProfileImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("No file uploaded"))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer src.Close()

	fileBytes, err := io.ReadAll(src)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	contentType := http.DetectContentType(fileBytes)
	if !strings.HasPrefix(contentType, "image/") {
		c.Error(apperror.BadRequest("Only image uploads are allowed"))
		return
	}

	finalBytes, err := compressImage(fileBytes, 1200, 80)
	if err != nil {
		slog.Warn("image compression failed, using original", "error", err)
		finalBytes = fileBytes
	}

	filename := fmt.Sprintf("%d_%s.jpg", time.Now().UnixNano(), sanitizeFilename(file.Filename))

	publicURL, err := h.uploadToStorage(finalBytes, filename)
	if err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to store image", err))
		return
	}

	if err := h.jobSeekerUC.SetProfileImage(c, "", publicURL); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Image uploaded", gin.H{"url": publicURL})
}

// uploadToStorage pushes the image to the storage bucket and returns its
// public URL
func (h *JobSeekerHandler) uploadToStorage(data []byte, filename string) (string, error) {
	if h.config.SupabaseUrl == "" || h.config.SupabaseKey == "" {
		return "", fmt.Errorf("storage not configured")
	}

	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", h.config.SupabaseUrl, h.config.StorageBucket, filename)

	req, err := http.NewRequest("POST", uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+h.config.SupabaseKey)
	req.Header.Set("Content-Type", "image/jpeg")
	req.Header.Set("x-upsert", "true") // Overwrite if exists

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("storage upload failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", h.config.SupabaseUrl, h.config.StorageBucket, filename), nil
}

// compressImage downscales to maxDimension on the long edge and re-encodes as
// JPEG at the given quality
func compressImage(data []byte, maxDimension, quality int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	newWidth, newHeight := width, height
	if width > height {
		if width > maxDimension {
			newWidth = maxDimension
			newHeight = int(float64(height) * float64(maxDimension) / float64(width))
		}
	} else {
		if height > maxDimension {
			newHeight = maxDimension
			newWidth = int(float64(width) * float64(maxDimension) / float64(height))
		}
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeFilename keeps ASCII alphanumerics, underscores and dashes; the
// storage backend rejects non-ASCII object names
func sanitizeFilename(filename string) string {
	base := filename
	if idx := strings.LastIndex(filename, "."); idx > 0 {
		base = filename[:idx]
	}
	base = strings.ReplaceAll(base, " ", "_")

	var result strings.Builder
	for _, r := range base {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			result.WriteRune(r)
		}
	}

	if result.Len() == 0 {
		return "file"
	}
	return result.String()
}
