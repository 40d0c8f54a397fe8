package stubserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Yui-Mika/Clothing-website/internal/domain"
)

type handlers struct {
	store *Store
}

const userKey = "stub.user"

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// requireUser resolves the bearer token to a user record. Any miss is a 401,
// which the client treats as a dead session.
func (h *handlers) requireUser(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not Authorized Login Again"})
		return
	}
	user := h.store.userByToken(token)
	if user == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not Authorized Login Again"})
		return
	}
	c.Set(userKey, user)
	c.Next()
}

// requireStaff gates back-office endpoints on the role carried by the user
// record, the same derivation the client uses for its privilege flag.
func (h *handlers) requireStaff(c *gin.Context) {
	user := currentUser(c)
	if user == nil || (user.Role != domain.RoleStaff && user.Role != domain.RoleAdmin) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Staff access required"})
		return
	}
	c.Next()
}

func currentUser(c *gin.Context) *userRecord {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*userRecord)
	return user
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *handlers) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid payload"})
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Name and email are required"})
		return
	}
	if len(strings.TrimSpace(req.Password)) < 8 {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Please Enter a Strong password"})
		return
	}
	id, err := h.store.createUser(req.Name, req.Email, req.Password, domain.RoleCustomer)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "User already exists"})
		return
	}
	token := h.store.issueToken(id)
	user := h.store.userByToken(token)
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": h.store.identityOf(user)})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid payload"})
		return
	}
	user, err := h.store.authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "User doesn't Exist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}
	token := h.store.issueToken(user.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": h.store.identityOf(user)})
}

func (h *handlers) isAuth(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": h.store.identityOf(user)})
}

// logout revokes the presented token if any. It succeeds either way so the
// client's best-effort teardown is never blocked.
func (h *handlers) logout(c *gin.Context) {
	if token := bearerToken(c); token != "" {
		h.store.revokeToken(token)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Successfully Logged Out"})
}
