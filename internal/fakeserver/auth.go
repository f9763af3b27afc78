package fakeserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the credential-issuance endpoint. The issued token is
// the user's email, exactly like the real auth service.
func (c *Cluster) AuthHandler() http.Handler {
	r := gin.New()
	r.POST("/token", c.issueToken)
	return r
}

func (c *Cluster) issueToken(ctx *gin.Context) {
	if ctx.PostForm("grant_type") != "password" {
		ctx.JSON(http.StatusBadRequest, detail("unsupported grant type"))
		return
	}
	email := ctx.PostForm("username")
	password := ctx.PostForm("password")

	c.mu.Lock()
	stored, ok := c.users[email]
	c.mu.Unlock()
	if !ok || stored != password {
		ctx.JSON(http.StatusBadRequest, detail("Incorrect email or password"))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"access_token": email,
		"token_type":   "bearer",
	})
}
