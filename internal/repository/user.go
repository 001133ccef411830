package repository

import (
	"errors"  // Error construction
	"strings" // String manipulation

	"villa_api/internal/domain" // Domain models
	"villa_api/internal/dto"    // Wire-facing shapes
	"villa_api/internal/utils"  // JWT and password helpers

	"gorm.io/gorm" // GORM ORM library
)

// UserRepository is the auth service: uniqueness check, credential
// verification with token issuance, and registration with role assignment.
type UserRepository interface {
	IsUniqueUser(username string) (bool, error)                // True when no user owns the username
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)   // Verify credentials and issue a token
	Register(req *dto.RegistrationRequest) (*dto.UserDTO, error) // Create a user with a hashed password
}

// userRepository is the GORM-backed implementation of UserRepository
type userRepository struct {
	db          *gorm.DB // Database handle
	jwtSecret   string   // Symmetric signing key
	defaultRole string   // Role assigned when the request leaves it empty
}

// NewUserRepository creates the auth service over the given database
func NewUserRepository(db *gorm.DB, jwtSecret, defaultRole string) UserRepository {
	if defaultRole == "" {
		defaultRole = domain.RoleCustomer // Customer unless configured otherwise
	}
	return &userRepository{db: db, jwtSecret: jwtSecret, defaultRole: defaultRole}
}

// IsUniqueUser reports whether no existing user has the username. The
// comparison is case-insensitive to match the login lookup.
func (r *userRepository) IsUniqueUser(username string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.User{}).
		Where("LOWER(user_name) = ?", strings.ToLower(username)).
		Count(&count).Error // Count matching users
	if err != nil {
		return false, err // Database error
	}
	return count == 0, nil // Unique when nothing matched
}

// Login verifies the credentials and issues a 7-day token embedding the
// user's id and first assigned role. An unknown username or a password
// mismatch returns an empty response rather than an error.
func (r *userRepository) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var user domain.User
	// Case-insensitive username lookup with roles preloaded
	err := r.db.Preload("Roles").
		Where("LOWER(user_name) = ?", strings.ToLower(req.UserName)).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &dto.LoginResponse{}, nil // Unknown user, empty result
	}
	if err != nil {
		return nil, err // Database error
	}
	// Verify the password against the stored hash
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return &dto.LoginResponse{}, nil // Wrong password, empty result
	}
	// The token carries the first assigned role
	role := ""
	if len(user.Roles) > 0 {
		role = user.Roles[0].Name
	}
	token, err := utils.GenerateJWT(user.ID, role, r.jwtSecret) // Issue the token
	if err != nil {
		return nil, err // Signing failure
	}
	userDTO := dto.ToUserDTO(&user) // Map the user onto its wire shape
	return &dto.LoginResponse{Token: token, User: &userDTO}, nil
}

// Register creates a user with a hashed password and assigns the requested
// role. Failures propagate to the caller instead of being swallowed.
func (r *userRepository) Register(req *dto.RegistrationRequest) (*dto.UserDTO, error) {
	// Resolve and validate the requested role
	roleName := req.Role
	if roleName == "" {
		roleName = r.defaultRole // Fall back to the configured default
	}
	if roleName != domain.RoleAdmin && roleName != domain.RoleCustomer {
		return nil, errors.New("unknown role: " + roleName)
	}
	// Hash the password before anything touches the database
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err // Hashing failure
	}
	var user domain.User
	// Create the user and its role link atomically
	err = r.db.Transaction(func(tx *gorm.DB) error {
		// Ensure the known roles exist, idempotently
		for _, name := range []string{domain.RoleAdmin, domain.RoleCustomer} {
			if err := tx.Where(domain.Role{Name: name}).FirstOrCreate(&domain.Role{Name: name}).Error; err != nil {
				return err // Role seeding failure
			}
		}
		var role domain.Role
		// Fetch the role to assign
		if err := tx.Where("name = ?", roleName).First(&role).Error; err != nil {
			return err
		}
		user = domain.User{
			UserName: req.UserName, // Username
			Name:     req.Name,     // Display name
			Email:    req.UserName, // Email mirrors the username
			Password: hash,         // Hashed password
			Roles:    []domain.Role{role},
		}
		// The unique index on user_name is the authoritative duplicate guard
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err // Surface the failure to the controller
	}
	userDTO := dto.ToUserDTO(&user) // Map the user onto its wire shape
	return &userDTO, nil
}
