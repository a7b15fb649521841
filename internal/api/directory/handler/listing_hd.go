package directoryHandler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	contextPkg "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/context"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/handlerUtil"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/log"
)

func (h *DirectoryHandler) GetListings(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	trade := ctx.Params("trade")
	city := ctx.Params("city")

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"trade":      trade,
		"city":       city,
	}).Debug("Processing listings request")

	page, err := strconv.Atoi(ctx.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.Query("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	result, err := h.directoryService.GetListings(c, trade, city, page, limit)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "directory_get_listings")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *DirectoryHandler) GetCatalog(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.directoryService.GetCatalog(contextPkg.FromFiberCtx(ctx)))
}

func (h *DirectoryHandler) GetNearestCity(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	lat, latErr := strconv.ParseFloat(ctx.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(ctx.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("lat and lon query parameters are required"), ctx.Path())
	}

	result, err := h.directoryService.GetNearestCity(contextPkg.FromFiberCtx(ctx), lat, lon)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "directory_nearest_city")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
}
