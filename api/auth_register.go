package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"speakwell/practice-api/internal/model"
	"speakwell/practice-api/pkg/security"
	"speakwell/practice-api/validators"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

type registerBody struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	NativeLanguage   string `json:"nativeLanguage"`
	LearningLanguage string `json:"learningLanguage"`
}

func (a *API) AuthRegister(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data registerBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.LanguagePairValidator(data.NativeLanguage, data.LearningLanguage); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	email := strings.ToLower(data.Email)

	var found bool

	r := a.DB.Model(model.User{}).
		Select("count(*) > 0").
		Where("email = ?", email).
		Find(&found)
	if r.Error != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Registration failed",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if user is registered", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if found {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"error":     "This email is already registered. Please login or use a different email",
			"requestID": requestID,
		})
		return
	}

	hash, err := a.Hasher.GenerateFromPassword(data.Password)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Registration failed",
			"requestID": requestID,
		})

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	userID, err := gonanoid.Generate(idCharset, 16)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Registration failed",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate user ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	verifToken, err := security.GenerateOpaqueToken()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Registration failed",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate verification token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Unverified accounts are swept after a week
	expiry := time.Now().Add(time.Hour * 24 * 7)

	err = a.DB.Create(&model.User{
		ID:                userID,
		Email:             email,
		PasswordHash:      hash,
		FirstName:         data.FirstName,
		LastName:          data.LastName,
		NativeLanguage:    data.NativeLanguage,
		LearningLanguage:  data.LearningLanguage,
		VerificationToken: &verifToken,
		ExpiresAt:         &expiry,
	}).Error
	if err != nil {
		// Concurrent registration with the same email loses here, the
		// unique constraint resolves the race at the storage layer
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error":     "This email is already registered. Please login or use a different email",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Registration failed",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	verificationURL := fmt.Sprintf("%s/auth/verify-email?token=%s", viper.GetString("frontend.url"), verifToken)

	// Mail is best effort. Registration already succeeded and the link
	// is still reachable through the response in dev setups.
	if err := a.Mailer.SendVerificationMail(email, data.FirstName, verificationURL); err != nil {
		zap.L().Warn("Failed to send verification email", zap.Error(err), zap.String("requestID", requestID))
	}

	resp := gin.H{
		"message": "Registered. Verify your email.",
		"userId":  userID,
	}

	if viper.GetBool("mail.expose_links") {
		resp["verificationUrl"] = verificationURL
	}

	c.JSON(http.StatusCreated, resp)
}
