package banners

import (
	"net/http"

	"marketplace-admin/database"
	"marketplace-admin/internal/domain/vendors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GET /vendor-banners?vendorProfileId=
func ListBanners(c *gin.Context) {
	vendorProfileID := c.Query("vendorProfileId")
	if vendorProfileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Vendor Profile ID is required"})
		return
	}

	var list []vendors.Banner
	err := database.DB.
		Where("vendor_profile_id = ?", vendorProfileID).
		Order("sort_order").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch banners"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// POST /vendor-banners
func CreateBanner(c *gin.Context) {
	var input struct {
		VendorProfileID string `json:"vendor_profile_id" binding:"required"`
		ImageURL        string `json:"image_url" binding:"required"`
		SortOrder       int    `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Vendor Profile ID and image URL are required"})
		return
	}

	var profile vendors.VendorProfile
	if err := database.DB.First(&profile, "id = ?", input.VendorProfileID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Vendor not found"})
		return
	}

	banner := vendors.Banner{
		ID:              uuid.NewString(),
		VendorProfileID: input.VendorProfileID,
		ImageURL:        input.ImageURL,
		SortOrder:       input.SortOrder,
		IsActive:        true,
	}
	if err := database.DB.Create(&banner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create banner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": banner})
}

type reorderRequest struct {
	Banners []struct {
		ID        string `json:"id" binding:"required"`
		SortOrder int    `json:"sort_order"`
	} `json:"banners" binding:"required"`
}

// PUT /vendor-banners/reorder
func ReorderBanners(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Banners) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Banners array is required"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, b := range req.Banners {
			if err := tx.Model(&vendors.Banner{}).
				Where("id = ?", b.ID).
				Update("sort_order", b.SortOrder).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to reorder banners"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Banners reordered successfully"})
}

// DELETE /vendor-banners/:id
func DeleteBanner(c *gin.Context) {
	var banner vendors.Banner
	if err := database.DB.First(&banner, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Banner not found"})
		return
	}

	if err := database.DB.Delete(&banner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete banner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Banner deleted successfully"})
}
