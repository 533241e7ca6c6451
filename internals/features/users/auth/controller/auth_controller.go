package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ansarullah_backend/internals/features/users/auth/dto"
	authModel "ansarullah_backend/internals/features/users/auth/model"
	"ansarullah_backend/internals/features/users/auth/service"
	subUserModel "ansarullah_backend/internals/features/users/subuser/model"
	helper "ansarullah_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Login verifies username/password and issues an access token. The role
// embedded in the token is read back from the account row.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user subUserModel.SubUserModel
	if err := ctrl.DB.Where("sub_user_username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		log.Printf("[ERROR] Login lookup failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to process login")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SubUserPassword), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, expiresAt, err := service.IssueAccessToken(&user)
	if err != nil {
		log.Printf("[ERROR] Token issue failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to process login")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
	log.Printf("[SUCCESS] Login: %s (role: %s)", user.SubUserUsername, user.SubUserRole)

	return helper.Success(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        dto.NewAuthUserResponse(&user),
	})
}

// Logout blacklists the presented token until well past its expiry.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "No active session")
	}

	entry := authModel.TokenBlacklist{
		Token:     raw,
		ExpiredAt: service.TokenExpiry(raw),
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		// Already blacklisted tokens hit the unique constraint; logout is
		// still a success from the client's point of view.
		log.Printf("[WARN] Token blacklist insert: %v", err)
	}

	c.ClearCookie("access_token")
	return helper.Success(c, "Logout successful", nil)
}

// Me returns the account behind the current token.
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user subUserModel.SubUserModel
	if err := ctrl.DB.Where("sub_user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Account no longer exists")
		}
		log.Printf("[ERROR] Me lookup failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load account")
	}

	return helper.Success(c, "OK", dto.NewAuthUserResponse(&user))
}
