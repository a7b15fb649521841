package directoryService

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	directoryDomain "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/directory"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/entity"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/catalog"
	contextPkg "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/context"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/geo"
)

const (
	listingKeyPrefix = "directory:listing:"
	listingTTL       = 5 * time.Minute
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// resolveCity accepts either a display name ("Milton Keynes") or a route
// slug ("milton-keynes"), since listing URLs carry the lowercased form.
func resolveCity(name string) (catalog.City, bool) {
	if city, ok := catalog.CityByName(name); ok {
		return city, true
	}
	for _, c := range catalog.Cities() {
		if catalog.CitySlug(c.Name) == name {
			return c, true
		}
	}
	return catalog.City{}, false
}

func (s *directoryService) GetListings(ctx context.Context, tradeSlug, citySlug string, page, limit int) (*directoryDomain.ListingResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	trade, ok := catalog.TradeBySlug(tradeSlug)
	if !ok {
		return nil, directoryDomain.ErrUnknownTrade
	}
	city, ok := resolveCity(citySlug)
	if !ok {
		return nil, directoryDomain.ErrUnknownCity
	}

	page, limit, offset := normalizePage(page, limit)
	cacheKey := fmt.Sprintf("%s%s:%s:%d:%d", listingKeyPrefix, trade.Slug, catalog.CitySlug(city.Name), page, limit)

	if payload, err := s.redis.GetJSON(ctx, cacheKey); err == nil {
		var cached directoryDomain.ListingResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	repo, err := s.directoryRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	businesses, total, err := repo.Businesses.GetBusinessesByTradeCity(ctx, trade.Slug, city.Name, limit, offset)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"trade_slug": trade.Slug,
			"city":       city.Name,
			"error":      err.Error(),
		}).Error("Failed to get listings")
		return nil, err
	}

	resp := &directoryDomain.ListingResponse{
		TradeSlug:  trade.Slug,
		TradeName:  trade.DisplayName,
		City:       city.Name,
		Route:      catalog.ListingPath(trade.Slug, city.Name),
		Businesses: make([]directoryDomain.BusinessResponse, 0, len(businesses)),
		Total:      total,
	}
	for _, b := range businesses {
		resp.Businesses = append(resp.Businesses, makeBusinessResponse(b, nil))
	}

	if payload, err := json.Marshal(resp); err == nil {
		if err := s.redis.SetJSON(ctx, cacheKey, payload, listingTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to cache listing")
		}
	}

	return resp, nil
}

func (s *directoryService) GetCatalog(ctx context.Context) *directoryDomain.CatalogResponse {
	trades := catalog.Trades()
	cities := catalog.Cities()

	resp := &directoryDomain.CatalogResponse{
		Trades: make([]directoryDomain.TradeResponse, 0, len(trades)),
		Cities: make([]directoryDomain.CityResponse, 0, len(cities)),
	}
	for _, t := range trades {
		resp.Trades = append(resp.Trades, directoryDomain.TradeResponse{
			Slug:        t.Slug,
			DisplayName: t.DisplayName,
			Icon:        t.Icon,
			Synonyms:    t.Synonyms,
		})
	}
	for _, c := range cities {
		resp.Cities = append(resp.Cities, makeCityResponse(c))
	}

	return resp
}

func (s *directoryService) GetNearestCity(ctx context.Context, lat, lon float64) (*directoryDomain.NearestCityResponse, error) {
	city, err := geo.NearestCity(lat, lon, catalog.Cities())
	if err != nil {
		return nil, directoryDomain.ErrUnknownCity
	}

	return &directoryDomain.NearestCityResponse{City: makeCityResponse(city)}, nil
}

// invalidateListings drops cached listing pages for a business's trade and
// city after a mutation.
func (s *directoryService) invalidateListings(ctx context.Context, business entity.Business) {
	pattern := fmt.Sprintf("%s%s:%s:*", listingKeyPrefix, business.TradeSlug, catalog.CitySlug(business.City))
	if err := s.redis.DeleteByPattern(ctx, pattern); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"pattern":    pattern,
			"error":      err.Error(),
		}).Warn("Failed to invalidate listing cache")
	}
}

func makeCityResponse(c catalog.City) directoryDomain.CityResponse {
	return directoryDomain.CityResponse{
		Name: c.Name,
		Slug: catalog.CitySlug(c.Name),
		Lat:  c.Lat,
		Lon:  c.Lon,
	}
}

func makeBusinessResponse(b entity.Business, photos []directoryDomain.PhotoResponse) directoryDomain.BusinessResponse {
	return directoryDomain.BusinessResponse{
		ID:               b.ID,
		Name:             b.Name,
		TradeSlug:        b.TradeSlug,
		City:             b.City,
		Phone:            b.Phone,
		Email:            b.Email,
		Description:      b.Description,
		Website:          b.Website,
		Rating:           b.Rating,
		ReviewCount:      b.ReviewCount,
		Verified:         b.Verified,
		EmergencyCallout: b.EmergencyCallout,
		CalloutFeePence:  b.CalloutFeePence,
		Photos:           photos,
		CreatedAt:        b.CreatedAt,
	}
}
