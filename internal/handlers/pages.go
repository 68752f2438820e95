package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func IndexPage(c *gin.Context) {
	c.Redirect(http.StatusFound, "/budgets/new")
}
