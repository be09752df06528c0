package controllers

import (
	"net/http"

	"chatbox/dto"
	"chatbox/errors"
	"chatbox/middleware"
	"chatbox/response"
	"chatbox/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	sessions services.SessionStore
}

func NewAuthController(sessions services.SessionStore) *AuthController {
	return &AuthController{sessions: sessions}
}

// LoginPage renders the login form. Authenticated visitors go straight to
// the chat page.
func (ac *AuthController) LoginPage(c *gin.Context) {
	if _, ok := middleware.CurrentSession(c); ok {
		c.Redirect(http.StatusSeeOther, "/chat")
		return
	}

	data := gin.H{}
	if c.Query("registered") == "1" {
		data["notice"] = "Registration successful! Please log in."
	}
	if c.Query("loggedout") == "1" {
		data["notice"] = "Logged out successfully."
	}
	c.HTML(http.StatusOK, "index.html", data)
}

// Login handles the login form post.
func (ac *AuthController) Login(c *gin.Context) {
	if _, ok := middleware.CurrentSession(c); ok {
		c.Redirect(http.StatusSeeOther, "/chat")
		return
	}

	var input dto.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.HTML(http.StatusBadRequest, "index.html", gin.H{"error": "Username and password are required."})
		return
	}

	user, err := services.Authenticate(input.Username, input.Password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "index.html", gin.H{"error": "Invalid username or password."})
		return
	}

	sess, err := ac.sessions.Create(c.Request.Context(), user)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "index.html", gin.H{"error": "Could not start a session. Please try again."})
		return
	}

	setSessionCookie(c, sess.ID, int(services.SessionTTL().Seconds()))
	c.Redirect(http.StatusSeeOther, "/chat")
}

// SignupPage renders the signup form.
func (ac *AuthController) SignupPage(c *gin.Context) {
	if _, ok := middleware.CurrentSession(c); ok {
		c.Redirect(http.StatusSeeOther, "/chat")
		return
	}
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

// Signup handles the signup form post.
func (ac *AuthController) Signup(c *gin.Context) {
	if _, ok := middleware.CurrentSession(c); ok {
		c.Redirect(http.StatusSeeOther, "/chat")
		return
	}

	var input dto.SignupInput
	if err := c.ShouldBind(&input); err != nil {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{"error": "All fields are required."})
		return
	}

	if _, err := services.CreateUser(input); err != nil {
		c.HTML(signupStatus(err), "signup.html", gin.H{"error": signupMessage(err)})
		return
	}

	c.Redirect(http.StatusSeeOther, "/?registered=1")
}

// Logout clears the session and returns to the login page.
func (ac *AuthController) Logout(c *gin.Context) {
	if id, err := c.Cookie(middleware.SessionCookieName); err == nil && id != "" {
		ac.sessions.Delete(c.Request.Context(), id)
	}
	setSessionCookie(c, "", -1)
	c.Redirect(http.StatusSeeOther, "/?loggedout=1")
}

// APILogin authenticates a JSON client and returns a bearer token for the
// chat API.
func (ac *AuthController) APILogin(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "username and password are required")
		return
	}

	user, err := services.Authenticate(input.Username, input.Password)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserID: user.ID, Username: user.Username}, services.SessionTTL())
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.TokenResponse{Token: token})
}

func setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetCookie(middleware.SessionCookieName, value, maxAge, "/", "", false, true)
}

func signupStatus(err error) int {
	if errors.HasCode(err, errors.ErrCodeUserExists) {
		return http.StatusConflict
	}
	if errors.IsAppError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func signupMessage(err error) string {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Message + "."
	}
	return "Could not complete registration. Please try again."
}
