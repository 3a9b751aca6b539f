package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mishana2007/podarok/logic"
	"github.com/Mishana2007/podarok/pkg/logging"
)

// GiftController handles HTTP requests
type GiftController struct {
	giftLogic *logic.GiftLogic
}

func NewGiftController(giftLogic *logic.GiftLogic) *GiftController {
	return &GiftController{giftLogic: giftLogic}
}

// Health handles GET /api/health
func (c *GiftController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Claim handles POST /api/gift
func (c *GiftController) Claim(ctx *gin.Context) {
	type Request struct {
		TelegramID string `json:"telegram_id" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "telegram_id is required"})
		return
	}

	gift, err := c.giftLogic.Claim(req.TelegramID)
	if err != nil {
		switch {
		case errors.Is(err, logic.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, logic.ErrAlreadyClaimed):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Gift already received today"})
		default:
			logging.Error("Failed to issue gift", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"gift": gift})
}
