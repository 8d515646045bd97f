package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ecotrack-api/models"
	"ecotrack-api/repositories"
	"ecotrack-api/utils"
)

// Mailer sends account emails. Satisfied by services.EmailService; tests
// substitute a fake.
type Mailer interface {
	SendVerificationEmail(email, name, token string) error
	SendWelcomeEmail(email, name string) error
}

type AuthController struct {
	db        *gorm.DB
	scoreRepo *repositories.EcoScoreRepository
	jwtSecret string
	mailer    Mailer
}

func NewAuthController(db *gorm.DB, scoreRepo *repositories.EcoScoreRepository, jwtSecret string, mailer Mailer) *AuthController {
	return &AuthController{
		db:        db,
		scoreRepo: scoreRepo,
		jwtSecret: jwtSecret,
		mailer:    mailer,
	}
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    models.User `json:"userData"`
}

func (ac *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		ID:                uuid.New().String(),
		Name:              req.Name,
		Email:             req.Email,
		Password:          string(hashedPassword),
		EmailVerified:     false,
		VerificationToken: generateVerificationToken(),
	}

	// The unique index is the authority on duplicates; a pre-check would
	// still race with concurrent signups.
	if err := ac.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.SendError(c, http.StatusConflict, "Email already exists")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	// Delivery failure must not roll back the account; the token stays
	// valid for a resend.
	go func() {
		if err := ac.mailer.SendVerificationEmail(user.Email, user.Name, user.VerificationToken); err != nil {
			fmt.Printf("Failed to send verification email: %v\n", err)
		}
	}()

	user.Password = ""
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created, verification email sent",
		"user":    user,
	})
}

func (ac *AuthController) VerifyEmail(c *gin.Context) {
	token := c.Param("verificationToken")
	if token == "" {
		utils.SendError(c, http.StatusBadRequest, "Verification token is required")
		return
	}

	var user models.User
	if err := ac.db.Where("verification_token = ?", token).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Invalid verification link")
		return
	}

	if err := ac.db.Model(&user).Update("email_verified", true).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error updating status")
		return
	}

	go func() {
		if err := ac.mailer.SendWelcomeEmail(user.Email, user.Name); err != nil {
			fmt.Printf("Failed to send welcome email: %v\n", err)
		}
	}()

	utils.SendSuccess(c, "Email successfully verified", nil)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := ac.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !user.EmailVerified {
		utils.SendError(c, http.StatusForbidden, "Please verify your email")
		return
	}

	token, err := ac.generateJWT(user.ID, user.Email)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, AuthResponse{
		Message: "Success",
		Token:   token,
		User:    user,
	})
}

// DeleteAccount removes the authenticated user's account together with all
// owned eco score records in one transaction.
func (ac *AuthController) DeleteAccount(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.SendError(c, http.StatusBadRequest, "User ID not found in token")
		return
	}

	err := ac.db.Transaction(func(tx *gorm.DB) error {
		if err := ac.scoreRepo.DeleteAllByUser(tx, userID); err != nil {
			return err
		}

		result := tx.Where("id = ?", userID).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return utils.ErrNotFound
		}
		return nil
	})
	if err != nil {
		utils.SendError(c, utils.StatusFor(err), "Failed to delete account")
		return
	}

	utils.SendSuccess(c, "Success", nil)
}

func (ac *AuthController) generateJWT(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}

func generateVerificationToken() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
