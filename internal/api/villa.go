package api

import (
	"context"       // Context for Redis operations
	"encoding/json" // Pagination header serialization
	"net/http"      // HTTP status codes
	"strconv"       // String conversion
	"strings"       // String manipulation
	"time"          // Cache TTL

	"villa_api/internal/domain"     // Domain models
	"villa_api/internal/dto"        // Wire-facing shapes
	"villa_api/internal/repository" // Persistence layer
	"villa_api/internal/utils"      // Cache and patch helpers

	"github.com/gin-gonic/gin"         // Gin web framework
	"github.com/gin-gonic/gin/binding" // Struct validation for patched documents
	"github.com/redis/go-redis/v9"     // Redis client
	"github.com/sirupsen/logrus"       // Logging library
)

const villaCacheTTL = 60 * time.Second // TTL for cached villa reads

// villaCacheKey builds the per-villa cache key
func villaCacheKey(id uint) string {
	return "villa:id:" + strconv.Itoa(int(id))
}

// setPaginationHeader echoes the pagination parameters back to the caller
func setPaginationHeader(c *gin.Context, pageNumber, pageSize int) {
	b, _ := json.Marshal(dto.Pagination{PageNumber: pageNumber, PageSize: pageSize})
	c.Header("X-Pagination", string(b)) // Structured pagination header
}

// ListVillasHandler returns all villas, optionally filtered by exact
// occupancy and a case-insensitive name substring search
func ListVillasHandler(villas repository.VillaRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		occupancy, _ := strconv.Atoi(c.DefaultQuery("occupancy", "0"))   // Exact-match occupancy filter
		search := c.Query("search")                                      // Name substring filter
		pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "0"))     // 0 means no paging
		pageNumber, _ := strconv.Atoi(c.DefaultQuery("pageNumber", "1")) // Pages start at 1
		if pageNumber < 1 {
			pageNumber = 1 // Default page number
		}

		ctx := context.Background() // Context for Redis operations
		// Cache key covers every query parameter that shapes the result
		cacheKey := "villas:occupancy=" + strconv.Itoa(occupancy) +
			":search=" + strings.ToLower(search) +
			":size=" + strconv.Itoa(pageSize) +
			":page=" + strconv.Itoa(pageNumber)
		var cached []dto.VillaDTO
		// Serve from cache when possible, TTL bounds the staleness
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			setPaginationHeader(c, pageNumber, pageSize)
			c.JSON(http.StatusOK, dto.OK(http.StatusOK, cached))
			return
		}

		var result []domain.Villa
		var err error
		// Occupancy filters at the database, search is applied in memory below
		if occupancy > 0 {
			result, err = villas.GetAll(pageSize, pageNumber, "occupancy = ?", occupancy)
		} else {
			result, err = villas.GetAll(pageSize, pageNumber)
		}
		if err != nil {
			// Persistence failure, return internal server error
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		// Case-insensitive substring match on the name
		if search != "" {
			needle := strings.ToLower(search)
			filtered := result[:0]
			for _, v := range result {
				if strings.Contains(strings.ToLower(v.Name), needle) {
					filtered = append(filtered, v)
				}
			}
			result = filtered
		}

		villaDTOs := dto.ToVillaDTOs(result)                      // Map onto wire shapes
		_ = utils.SetCache(ctx, rdb, cacheKey, villaDTOs, villaCacheTTL) // Best-effort cache fill
		setPaginationHeader(c, pageNumber, pageSize)              // Echo pagination parameters
		c.JSON(http.StatusOK, dto.OK(http.StatusOK, villaDTOs))  // Return the list
	}
}

// GetVillaHandler returns a single villa by id
func GetVillaHandler(villas repository.VillaRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32) // Parse the path id
		// An id of 0 or a malformed id is invalid
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, "Invalid villa id"))
			return
		}
		ctx := context.Background() // Context for Redis operations
		var cached dto.VillaDTO
		// Serve from cache when possible
		if found, cerr := utils.GetCache(ctx, rdb, villaCacheKey(uint(id)), &cached); cerr == nil && found {
			c.JSON(http.StatusOK, dto.OK(http.StatusOK, cached))
			return
		}
		villa, err := villas.GetByID(uint(id)) // Fetch the villa
		if err != nil {
			// Persistence failure, return internal server error
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		// Unknown id, return not found
		if villa == nil {
			c.JSON(http.StatusNotFound, dto.Error(http.StatusNotFound, "Villa not found"))
			return
		}
		villaDTO := dto.ToVillaDTO(villa)                                      // Map onto the wire shape
		_ = utils.SetCache(ctx, rdb, villaCacheKey(villa.ID), villaDTO, villaCacheTTL) // Best-effort cache fill
		c.JSON(http.StatusOK, dto.OK(http.StatusOK, villaDTO))
	}
}

// CreateVillaHandler creates a villa, rejecting duplicate names
func CreateVillaHandler(villas repository.VillaRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.VillaCreateDTO // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, err.Error()))
			return
		}
		// Fast-path duplicate check, case-insensitive on the name
		existing, err := villas.GetByName(req.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		if existing != nil {
			// Duplicate name, return bad request with a descriptive error
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, "Villa already exists"))
			return
		}
		villa := dto.FromVillaCreateDTO(&req) // Build the entity
		// The unique index on name catches the race two concurrent creates can win
		if err := villas.Create(&villa); err != nil {
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		// Log the creation with context
		logrus.WithFields(logrus.Fields{
			"villa_id": villa.ID,   // Generated villa id
			"name":     villa.Name, // Villa name
		}).Info("Villa created")
		// Point the caller at the new resource's get-by-id endpoint
		c.Header("Location", "/api/Villa/"+strconv.Itoa(int(villa.ID)))
		c.JSON(http.StatusCreated, dto.OK(http.StatusCreated, dto.ToVillaDTO(&villa)))
	}
}

// UpdateVillaHandler replaces a villa in full. Success is signaled as a plain
// HTTP 200 with a matching envelope status.
func UpdateVillaHandler(villas repository.VillaRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32) // Parse the path id
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, "Invalid villa id"))
			return
		}
		var req dto.VillaUpdateDTO // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, err.Error()))
			return
		}
		// The body id must match the path id
		if req.ID != uint(id) {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, "Villa id mismatch"))
			return
		}
		villa, err := villas.GetByID(uint(id)) // Fetch the villa to update
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		if villa == nil {
			c.JSON(http.StatusNotFound, dto.Error(http.StatusNotFound, "Villa not found"))
			return
		}
		dto.ApplyVillaUpdateDTO(villa, &req) // Map the DTO onto the entity
		if err := villas.Update(villa); err != nil {
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		// Drop the stale per-villa cache entry
		_ = utils.DeleteCache(context.Background(), rdb, villaCacheKey(villa.ID))
		c.JSON(http.StatusOK, dto.OK(http.StatusOK, dto.ToVillaDTO(villa)))
	}
}

// PatchVillaHandler applies an RFC 6902 patch document to the update-shaped
// projection of a villa and persists the merged entity
func PatchVillaHandler(villas repository.VillaRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32) // Parse the path id
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, "Invalid villa id"))
			return
		}
		villa, err := villas.GetByID(uint(id)) // Fetch the villa to patch
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		if villa == nil {
			c.JSON(http.StatusNotFound, dto.Error(http.StatusNotFound, "Villa not found"))
			return
		}
		patchBody, err := c.GetRawData() // The raw patch document
		if err != nil || len(patchBody) == 0 {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, "Missing patch document"))
			return
		}
		updateDTO := dto.ToVillaUpdateDTO(villa) // Project onto the update shape
		// Apply the patch onto the projection
		if err := utils.ApplyJSONPatch(&updateDTO, patchBody); err != nil {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, err.Error()))
			return
		}
		// The patched projection must keep its id and pass validation
		if updateDTO.ID != uint(id) {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, "Villa id mismatch"))
			return
		}
		if err := binding.Validator.ValidateStruct(&updateDTO); err != nil {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, err.Error()))
			return
		}
		dto.ApplyVillaUpdateDTO(villa, &updateDTO) // Merge back onto the entity
		if err := villas.Update(villa); err != nil {
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		// Drop the stale per-villa cache entry
		_ = utils.DeleteCache(context.Background(), rdb, villaCacheKey(villa.ID))
		c.Status(http.StatusNoContent) // No content on success
	}
}

// DeleteVillaHandler removes a villa and returns its last known state.
// Routed behind the JWT and admin-only middleware.
func DeleteVillaHandler(villas repository.VillaRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32) // Parse the path id
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, dto.Error(http.StatusBadRequest, "Invalid villa id"))
			return
		}
		villa, err := villas.GetByID(uint(id)) // Fetch the villa to delete
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		if villa == nil {
			c.JSON(http.StatusNotFound, dto.Error(http.StatusNotFound, "Villa not found"))
			return
		}
		if err := villas.Remove(villa); err != nil {
			c.JSON(http.StatusInternalServerError, dto.Error(http.StatusInternalServerError, err.Error()))
			return
		}
		// Log the deletion with context
		logrus.WithFields(logrus.Fields{
			"villa_id": villa.ID,   // Deleted villa id
			"name":     villa.Name, // Villa name
		}).Info("Villa deleted")
		// Drop the stale per-villa cache entry
		_ = utils.DeleteCache(context.Background(), rdb, villaCacheKey(villa.ID))
		c.JSON(http.StatusOK, dto.OK(http.StatusOK, dto.ToVillaDTO(villa)))
	}
}
