package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"feedback-analysis/database"
	"feedback-analysis/models"
)

func RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

// Register creates an account. Every validation failure re-renders the form
// with an inline message and writes nothing.
func Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	password := strings.TrimSpace(c.PostForm("password"))

	if username == "" || email == "" || password == "" {
		c.HTML(http.StatusOK, "register.html", gin.H{"Error": "Please fill in all required fields."})
		return
	}

	db := database.GetDB()

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		c.HTML(http.StatusOK, "register.html", gin.H{"Error": "Email already exists."})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{"Error": "Registration failed, please try again."})
		return
	}

	user := models.User{Username: username, Email: email, Password: string(hashed)}
	if err := db.Create(&user).Error; err != nil {
		// The unique index is the backstop for a concurrent duplicate.
		c.HTML(http.StatusOK, "register.html", gin.H{"Error": "Email already exists."})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login authenticates and opens a session. An unknown email and a wrong
// password produce the same message.
func Login(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	password := strings.TrimSpace(c.PostForm("password"))

	db := database.GetDB()

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"Error": "Incorrect email or password."})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	session.Set("email", user.Email)
	if err := session.Save(); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Error": "Login failed, please try again."})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
	c.Redirect(http.StatusFound, "/login")
}
