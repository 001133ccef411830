package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"villa_api/internal/dto"        // Wire-facing shapes
	"villa_api/internal/repository" // Persistence layer

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ListVillaNumbersHandler returns all villa numbers
func ListVillaNumbersHandler(villaNumbers repository.VillaNumberRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := villaNumbers.GetAll(0, 1) // No paging on this surface
		if err != nil {
			// Persistence failure, return internal server error
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, dto.OK(http.StatusOK, dto.ToVillaNumberDTOs(result)))
	}
}

// GetVillaNumberHandler returns a single villa number by its room number
func GetVillaNumberHandler(villaNumbers repository.VillaNumberRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32) // Parse the path number
		// A number of 0 or a malformed number is invalid
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, "Invalid villa number"))
			return
		}
		villaNumber, err := villaNumbers.GetByNumber(uint(id)) // Fetch the villa number
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		// Unknown number, return not found
		if villaNumber == nil {
			c.JSON(http.StatusNotFound, dto.Error(http.StatusNotFound, "Villa number not found"))
			return
		}
		c.JSON(http.StatusOK, dto.OK(http.StatusOK, dto.ToVillaNumberDTO(villaNumber)))
	}
}

// CreateVillaNumberHandler creates a villa number, validating that the number
// is free and that the referenced villa exists
func CreateVillaNumberHandler(villaNumbers repository.VillaNumberRepository, villas repository.VillaRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.VillaNumberCreateDTO // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, err.Error()))
			return
		}
		// The room number must not be taken
		existing, err := villaNumbers.GetByNumber(req.VillaNo)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		if existing != nil {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, "Villa number already exists"))
			return
		}
		// The referenced villa must exist
		villa, err := villas.GetByID(req.VillaID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		if villa == nil {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, "Villa Id is Invalid"))
			return
		}
		villaNumber := dto.FromVillaNumberCreateDTO(&req) // Build the entity
		if err := villaNumbers.Create(&villaNumber); err != nil {
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		// Log the creation with context
		logrus.WithFields(logrus.Fields{
			"villa_no": villaNumber.VillaNo, // Room number
			"villa_id": villaNumber.VillaID, // Owning villa id
		}).Info("Villa number created")
		// Point the caller at the new resource's get endpoint
		c.Header("Location", "/api/VillaNumber/"+strconv.Itoa(int(villaNumber.VillaNo)))
		c.JSON(http.StatusCreated, dto.OK(http.StatusCreated, dto.ToVillaNumberDTO(&villaNumber)))
	}
}

// UpdateVillaNumberHandler replaces a villa number in full, validating the
// referenced villa
func UpdateVillaNumberHandler(villaNumbers repository.VillaNumberRepository, villas repository.VillaRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32) // Parse the path number
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, "Invalid villa number"))
			return
		}
		var req dto.VillaNumberUpdateDTO // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, err.Error()))
			return
		}
		// The body number must match the path number
		if req.VillaNo != uint(id) {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, "Villa number mismatch"))
			return
		}
		// The referenced villa must exist
		villa, err := villas.GetByID(req.VillaID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		if villa == nil {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, "Villa Id is Invalid"))
			return
		}
		villaNumber, err := villaNumbers.GetByNumber(uint(id)) // Fetch the entity to update
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		if villaNumber == nil {
			c.JSON(http.StatusNotFound, dto.Error(http.StatusNotFound, "Villa number not found"))
			return
		}
		dto.ApplyVillaNumberUpdateDTO(villaNumber, &req) // Map the DTO onto the entity
		if err := villaNumbers.Update(villaNumber); err != nil {
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, dto.OK(http.StatusOK, dto.ToVillaNumberDTO(villaNumber)))
	}
}

// DeleteVillaNumberHandler removes a villa number and returns its last known state
func DeleteVillaNumberHandler(villaNumbers repository.VillaNumberRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32) // Parse the path number
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, "Invalid villa number"))
			return
		}
		villaNumber, err := villaNumbers.GetByNumber(uint(id)) // Fetch the entity to delete
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		if villaNumber == nil {
			c.JSON(http.StatusNotFound, dto.Error(http.StatusNotFound, "Villa number not found"))
			return
		}
		if err := villaNumbers.Remove(villaNumber); err != nil {
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		// Log the deletion with context
		logrus.WithFields(logrus.Fields{
			"villa_no": villaNumber.VillaNo, // Room number
			"villa_id": villaNumber.VillaID, // Owning villa id
		}).Info("Villa number deleted")
		c.JSON(http.StatusOK, dto.OK(http.StatusOK, dto.ToVillaNumberDTO(villaNumber)))
	}
}
