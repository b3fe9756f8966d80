package controllers

import (
	"vhts/dto"
	"vhts/response"
	"vhts/services"
	"vhts/validator"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(authService *services.AuthService) AuthController {
	return AuthController{
		Auth: authService,
	}
}

// tiga hari, sama dengan masa berlaku cookie dashboard lama
const tokenExpiryMinutes = 60 * 24 * 3

func (a AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := a.Auth.Authenticate(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if user == nil {
		// Password salah dan username tidak dikenal sengaja tidak dibedakan
		response.BadRequest(c, "Username atau password salah")
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{
		UserID: user.ID,
		Role:   user.Role,
	}, tokenExpiryMinutes)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"user_info": dto.UserLoginResponse{
			UserID:    user.ID,
			Username:  user.Username,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
		"accessToken": accessToken,
	})
}

func (a AuthController) RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateRegister(&input); err != nil {
		handleServiceError(c, err)
		return
	}

	user, err := a.Auth.Register(c.Request.Context(), input.Username, input.Password, input.Role)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.UserLoginResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	})
}

func (a AuthController) Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}
