package api

import (
	"net/http"
	"testing"

	"villa_api/internal/domain"
	"villa_api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVillaNumber_RoundTrip(t *testing.T) {
	r, _ := newTestServer(t)

	req := dto.VillaNumberCreateDTO{VillaNo: 101, VillaID: 1, SpecialDetails: "sea view"}
	w := doJSON(t, r, http.MethodPost, "/api/VillaNumber", req, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/VillaNumber/101", w.Header().Get("Location"))

	w = doJSON(t, r, http.MethodGet, "/api/VillaNumber/101", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var fetched dto.VillaNumberDTO
	decodeResult(t, w, &fetched)
	assert.Equal(t, uint(101), fetched.VillaNo)
	assert.Equal(t, uint(1), fetched.VillaID)
	assert.Equal(t, "sea view", fetched.SpecialDetails)
}

func TestCreateVillaNumber_InvalidVillaIDNeverPersists(t *testing.T) {
	r, gdb := newTestServer(t)

	req := dto.VillaNumberCreateDTO{VillaNo: 102, VillaID: 999}
	w := doJSON(t, r, http.MethodPost, "/api/VillaNumber", req, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, env.ErrorMessages, "Villa Id is Invalid")

	var count int64
	require.NoError(t, gdb.Model(&domain.VillaNumber{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateVillaNumber_DuplicateNumber(t *testing.T) {
	r, _ := newTestServer(t)

	req := dto.VillaNumberCreateDTO{VillaNo: 103, VillaID: 1}
	w := doJSON(t, r, http.MethodPost, "/api/VillaNumber", req, "")
	require.Equal(t, http.StatusCreated, w.Code)

	req.VillaID = 2
	w = doJSON(t, r, http.MethodPost, "/api/VillaNumber", req, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, env.ErrorMessages, "Villa number already exists")
}

func TestUpdateVillaNumber_ValidatesVillaID(t *testing.T) {
	r, _ := newTestServer(t)

	create := dto.VillaNumberCreateDTO{VillaNo: 104, VillaID: 1}
	w := doJSON(t, r, http.MethodPost, "/api/VillaNumber", create, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Pointing at a missing villa is rejected before anything persists
	update := dto.VillaNumberUpdateDTO{VillaNo: 104, VillaID: 999}
	w = doJSON(t, r, http.MethodPut, "/api/VillaNumber/104", update, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A valid villa id goes through
	update.VillaID = 2
	update.SpecialDetails = "moved"
	w = doJSON(t, r, http.MethodPut, "/api/VillaNumber/104", update, "")
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.VillaNumberDTO
	decodeResult(t, w, &updated)
	assert.Equal(t, uint(2), updated.VillaID)
	assert.Equal(t, "moved", updated.SpecialDetails)
}

func TestUpdateVillaNumber_NumberMismatch(t *testing.T) {
	r, _ := newTestServer(t)

	update := dto.VillaNumberUpdateDTO{VillaNo: 105, VillaID: 1}
	w := doJSON(t, r, http.MethodPut, "/api/VillaNumber/104", update, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteVillaNumber(t *testing.T) {
	r, _ := newTestServer(t)

	create := dto.VillaNumberCreateDTO{VillaNo: 106, VillaID: 1}
	w := doJSON(t, r, http.MethodPost, "/api/VillaNumber", create, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/VillaNumber/106", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/VillaNumber/106", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetVillaNumber_ZeroAndUnknown(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/VillaNumber/0", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/VillaNumber/999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListVillaNumbers(t *testing.T) {
	r, _ := newTestServer(t)

	for _, no := range []uint{201, 202} {
		w := doJSON(t, r, http.MethodPost, "/api/VillaNumber", dto.VillaNumberCreateDTO{VillaNo: no, VillaID: 1}, "")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/VillaNumber", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var numbers []dto.VillaNumberDTO
	decodeResult(t, w, &numbers)
	assert.Len(t, numbers, 2)
}
