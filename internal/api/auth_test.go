package api

import (
	"net/http"
	"testing"

	"villa_api/internal/domain"
	"villa_api/internal/dto"
	"villa_api/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin_Flow(t *testing.T) {
	r, _ := newTestServer(t)

	reg := dto.RegistrationRequest{
		Name:     "Alice Admin",
		UserName: "alice",
		Password: "password123",
		Role:     domain.RoleAdmin,
	}
	w := doJSON(t, r, http.MethodPost, "/api/UsersAuth/register", reg, "")
	require.Equal(t, http.StatusOK, w.Code)

	var registered dto.UserDTO
	env := decodeResult(t, w, &registered)
	assert.True(t, env.IsSuccess)
	assert.Equal(t, "alice", registered.UserName)

	// Correct credentials return a token and the mapped user
	login := dto.LoginRequest{UserName: "Alice", Password: "password123"}
	w = doJSON(t, r, http.MethodPost, "/api/UsersAuth/login", login, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	decodeResult(t, w, &resp)
	require.NotNil(t, resp.User)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, registered.ID, resp.User.ID)

	claims, err := utils.ParseJWT(resp.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestLogin_WrongPasswordNeverIssuesToken(t *testing.T) {
	r, _ := newTestServer(t)

	reg := dto.RegistrationRequest{Name: "Bob", UserName: "bob", Password: "password123"}
	w := doJSON(t, r, http.MethodPost, "/api/UsersAuth/register", reg, "")
	require.Equal(t, http.StatusOK, w.Code)

	login := dto.LoginRequest{UserName: "bob", Password: "wrong"}
	w = doJSON(t, r, http.MethodPost, "/api/UsersAuth/login", login, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.IsSuccess)
	assert.Contains(t, env.ErrorMessages, "User or password is incorrect")
	assert.Empty(t, env.Result)
}

func TestLogin_UnknownUsername(t *testing.T) {
	r, _ := newTestServer(t)

	login := dto.LoginRequest{UserName: "ghost", Password: "password123"}
	w := doJSON(t, r, http.MethodPost, "/api/UsersAuth/login", login, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	r, _ := newTestServer(t)

	reg := dto.RegistrationRequest{Name: "Carol", UserName: "carol", Password: "password123"}
	w := doJSON(t, r, http.MethodPost, "/api/UsersAuth/register", reg, "")
	require.Equal(t, http.StatusOK, w.Code)

	// Case differs, the uniqueness check still matches
	reg.UserName = "CAROL"
	w = doJSON(t, r, http.MethodPost, "/api/UsersAuth/register", reg, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, env.ErrorMessages, "Username already exists")
}

func TestRegister_UnknownRoleSurfacesError(t *testing.T) {
	r, _ := newTestServer(t)

	reg := dto.RegistrationRequest{Name: "Eve", UserName: "eve", Password: "password123", Role: "superuser"}
	w := doJSON(t, r, http.MethodPost, "/api/UsersAuth/register", reg, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, env.ErrorMessages, "Error while registering")
}

func TestRegister_MissingFieldsAreRejected(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/UsersAuth/register", map[string]string{"username": "solo"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
