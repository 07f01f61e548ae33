package marketapi

import (
	"errors"
	"net/http"

	"github.com/araddon/dateparse"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/greenstall/greenmarket/internal/domain"
	"github.com/greenstall/greenmarket/internal/webserver"
	"github.com/greenstall/greenmarket/pkg/common"
)

type credentialPayload struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type userPayload struct {
	Name        string `json:"name" form:"name"`
	Dob         string `json:"dob" form:"dob"`
	Password    string `json:"password" form:"password"`
	Email       string `json:"email" form:"email"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber"`
	Location    string `json:"location" form:"location"`
}

func registerUserRoutes() {
	webserver.ApiPOST("/add-user", addUser)
	webserver.ApiGET("/get-user", getUser)
	webserver.ApiPOST("/login", login)
	webserver.ApiPOST("/flogin", flogin)
	webserver.ApiPOST("/CLDET", captureCustomer)
	webserver.ApiPOST("/add-fuser", addFUser)
}

// normalizeDob leniently reparses the free-text date-of-birth. The input is
// kept verbatim when it cannot be parsed; signup never fails on a date.
func normalizeDob(dob string) string {
	if t, err := dateparse.ParseAny(dob); err == nil {
		return t.Format("2006-01-02")
	}
	return dob
}

// addUser creates a customer account. All fields are required by the stored
// schema; a short record fails the save and collapses into the generic
// failure body, exactly as the legacy backend behaved.
func addUser(c echo.Context) error {
	var payload userPayload
	if err := c.Bind(&payload); err != nil {
		return c.String(http.StatusInternalServerError, "Failed to add user")
	}
	if payload.Name == "" || payload.Dob == "" || payload.Password == "" ||
		payload.Email == "" || payload.PhoneNumber == "" || payload.Location == "" {
		return c.String(http.StatusInternalServerError, "Failed to add user")
	}
	user := domain.User{
		ID:          common.UUIDint64(),
		Name:        payload.Name,
		Dob:         normalizeDob(payload.Dob),
		Password:    payload.Password,
		Email:       payload.Email,
		PhoneNumber: payload.PhoneNumber,
		Location:    payload.Location,
	}
	if err := GetDB(c).Create(&user).Error; err != nil {
		return c.String(http.StatusInternalServerError, "Failed to add user")
	}
	return c.String(http.StatusCreated, "User added")
}

// getUser returns the first stored customer record.
func getUser(c echo.Context) error {
	var user domain.User
	if err := GetDB(c).Order("id").First(&user).Error; err != nil {
		return c.String(http.StatusInternalServerError, "Failed to fetch user")
	}
	return c.JSON(http.StatusOK, user)
}

// login is a bare credential-equality check against customer accounts.
// Passwords are stored and compared as plaintext; no session or token is
// issued. This is the legacy contract, not an auth system.
func login(c echo.Context) error {
	var payload credentialPayload
	if err := c.Bind(&payload); err != nil {
		return c.String(http.StatusInternalServerError, "Error processing request")
	}
	var user domain.User
	err := GetDB(c).Where("email = ? AND password = ?", payload.Email, payload.Password).First(&user).Error
	switch {
	case err == nil:
		return c.String(http.StatusOK, "Login successful")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.String(http.StatusUnauthorized, "Invalid credentials")
	default:
		return c.String(http.StatusInternalServerError, "Error processing request")
	}
}

// flogin is the farmer-side credential check.
func flogin(c echo.Context) error {
	var payload credentialPayload
	if err := c.Bind(&payload); err != nil {
		return c.String(http.StatusInternalServerError, "Error processing request")
	}
	var fuser domain.FUser
	err := GetDB(c).Where("email = ? AND password = ?", payload.Email, payload.Password).First(&fuser).Error
	switch {
	case err == nil:
		return c.String(http.StatusOK, "Login successful")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.String(http.StatusUnauthorized, "Invalid credentials")
	default:
		return c.String(http.StatusInternalServerError, "Error processing request")
	}
}

// captureCustomer stores the credential record posted on customer login.
func captureCustomer(c echo.Context) error {
	var payload credentialPayload
	if err := c.Bind(&payload); err != nil {
		return c.String(http.StatusInternalServerError, "Failed to receive customer user")
	}
	cu := domain.CustomerUser{
		ID:       common.UUIDint64(),
		Email:    payload.Email,
		Password: payload.Password,
	}
	if err := GetDB(c).Create(&cu).Error; err != nil {
		return c.String(http.StatusInternalServerError, "Failed to receive customer user")
	}
	return c.String(http.StatusCreated, "Customer User Received")
}

// addFUser creates a farmer account from a multipart form. The profile
// image, when present, goes to the image store and only its generated
// filename is persisted.
func addFUser(c echo.Context) error {
	filename := ""
	if file, err := c.FormFile("image"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error saving user to the database"})
		}
		defer src.Close()
		filename, err = images.Save(file.Filename, src)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error saving user to the database"})
		}
	}

	fuser := domain.FUser{
		ID:          common.UUIDint64(),
		Name:        c.FormValue("name"),
		Dob:         normalizeDob(c.FormValue("dob")),
		Email:       c.FormValue("email"),
		PhoneNumber: c.FormValue("phoneNumber"),
		Password:    c.FormValue("password"),
		Location:    c.FormValue("location"),
		Image:       filename,
	}
	if err := GetDB(c).Create(&fuser).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error saving user to the database"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "User added successfully"})
}
