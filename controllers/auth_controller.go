package controllers

import (
	"github.com/BETACRD01/delibery-sub000/pkg/resp"
	"github.com/BETACRD01/delibery-sub000/services"
	"github.com/BETACRD01/delibery-sub000/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(svc *services.AuthService) *AuthController { return &AuthController{Svc: svc} }

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Svc.Register(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{
		"id": user.ID, "email": user.Email, "firstName": user.FirstName,
		"lastName": user.LastName, "phone": user.Phone, "role": user.Role,
	})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{
		"token": token,
		"user": gin.H{
			"id": user.ID, "email": user.Email, "firstName": user.FirstName,
			"lastName": user.LastName, "role": user.Role,
		},
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, user)
}

type UpdateMeRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
}

// PATCH /auth/me
func (a *AuthController) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	user, err := a.Svc.UpdateProfile(utils.CurrentUserID(c), updates)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, user)
}

type ChangePasswordRequest struct {
	Current string `json:"current" binding:"required"`
	Next    string `json:"next" binding:"required,min=6"`
}

// POST /auth/me/password
func (a *AuthController) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := a.Svc.ChangePassword(utils.CurrentUserID(c), req.Current, req.Next); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"changed": true})
}
