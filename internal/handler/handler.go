package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/koungkub/serverchan-notification-service/internal/service"
	"go.uber.org/fx"
)

var Module = fx.Module("handler",
	fx.Provide(
		NewNotificationHandler,
	),
)

type Notification struct {
	services service.NotificationProvider
}

type NotificationParams struct {
	fx.In

	Services service.NotificationProvider
}

func NewNotificationHandler(params NotificationParams) *Notification {
	return &Notification{
		services: params.Services,
	}
}

func (n *Notification) NotifyHandler(c *gin.Context) {
	ctx := c.Request.Context()
	channel := c.Param("channel")

	var req NotifyRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, GetRequestError(err))
		return
	}

	sent, err := n.services.Send(ctx, channel, req.Title, req.Content)
	switch {
	case errors.Is(err, service.ErrUnsupportedChannel):
		c.JSON(http.StatusNotFound, GetChannelError(err))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, GetInternalError(err))
		return
	case !sent:
		c.JSON(http.StatusBadGateway, GetDeliveryError(channel))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "notification sent",
	})
}

func (n *Notification) ChannelsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"channels": n.services.Channels(),
	})
}
