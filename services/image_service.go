package services

import (
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"hotel-booking-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const uploadsRoot = "uploads"

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

type ImageService struct {
	DB *gorm.DB
}

func NewImageService(db *gorm.DB) *ImageService {
	return &ImageService{DB: db}
}

// SaveUpload stores a multipart image under ./uploads/<subdir> with a uuid
// filename after sniffing the MIME type, and returns the path kept in the DB.
func SaveUpload(c *gin.Context, fileHeader *multipart.FileHeader, subdir string) (string, error) {
	if fileHeader.Size > 5*1024*1024 {
		return "", fmt.Errorf("file size exceeds maximum limit of 5 MB")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	buffer := make([]byte, 512)
	if _, err := src.Read(buffer); err != nil {
		return "", err
	}
	mimeType := http.DetectContentType(buffer)

	allowed := false
	for _, t := range allowedImageTypes {
		if mimeType == t {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", fmt.Errorf("invalid file type %s, allowed types: %v", mimeType, allowedImageTypes)
	}

	dir := filepath.Join(uploadsRoot, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, filepath.Join(dir, filename)); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join(subdir, filename)), nil
}

// SaveBase64Image decodes a data-URL or bare base64 payload to disk and
// returns the stored path.
func SaveBase64Image(b64 string, subdir string) (string, error) {
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	dir := filepath.Join(uploadsRoot, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := uuid.New().String() + ".jpg"
	fullpath := filepath.Join(dir, filename)
	if err := os.WriteFile(fullpath, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subdir, filename)), nil
}

func (s *ImageService) Create(image *models.HotelImage) error {
	return s.DB.Omit("Hotel", "Author").Create(image).Error
}

func (s *ImageService) GetByUID(uid uuid.UUID) (models.HotelImage, error) {
	var image models.HotelImage
	err := s.DB.First(&image, "uid = ?", uid).Error
	return image, err
}

func (s *ImageService) ListByHotel(hotelUID uuid.UUID) ([]models.HotelImage, error) {
	var images []models.HotelImage
	err := s.DB.Where("hotel_uid = ?", hotelUID).Order("uploaded DESC").Find(&images).Error
	return images, err
}

// Delete removes the DB row and best-effort removes the file on disk.
func (s *ImageService) Delete(uid uuid.UUID) error {
	var image models.HotelImage
	if err := s.DB.First(&image, "uid = ?", uid).Error; err != nil {
		return err
	}
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM room_images WHERE image_uid = ?", uid).Error; err != nil {
			return err
		}
		return tx.Delete(&models.HotelImage{}, "uid = ?", uid).Error
	}); err != nil {
		return err
	}
	if image.FilePath != "" {
		_ = os.Remove(filepath.Join(uploadsRoot, image.FilePath))
	}
	return nil
}
