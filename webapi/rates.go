package webapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ratedesk/ratedesk/pkg/convert"
	"github.com/ratedesk/ratedesk/pkg/currency"
	"github.com/ratedesk/ratedesk/pkg/domain"
	"github.com/ratedesk/ratedesk/pkg/rates"
)

// Routes registers HTTP routes for rate and conversion operations.
func Routes(app *fiber.App, rateSvc *rates.Service, units *currency.UnitRegistry) {
	api := app.Group("/api")

	api.Get("/rates", GetRates(rateSvc))
	api.Post("/convert", Convert(rateSvc, units))
	api.Delete("/cache", ClearCache(rateSvc))
	api.Get("/currencies", ListUnits(units))
}

// GetRates returns a Fiber handler serving the current rate snapshot.
func GetRates(rateSvc *rates.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snapshot, err := rateSvc.GetRates(c.Context())
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to get rates", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Rates fetched successfully", RatesResponse{
			FiatRates:          snapshot.FiatRates,
			CryptoUSDPrice:     snapshot.CryptoUSDPrice,
			MetalUSDPricePerOz: snapshot.MetalUSDPricePerOz,
			FetchedAt:          snapshot.FetchedAt,
			Origin:             string(snapshot.Origin),
		})
	}
}

// Convert returns a Fiber handler performing a conversion between two
// supported units using the current snapshot.
func Convert(rateSvc *rates.Service, units *currency.UnitRegistry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[ConvertRequest](c)
		if err != nil {
			return nil // Error already written by BindAndValidate
		}

		if !units.IsSupported(input.From) {
			return ErrorResponseJSON(c, fiber.StatusUnprocessableEntity, "Unsupported unit", input.From)
		}
		if !units.IsSupported(input.To) {
			return ErrorResponseJSON(c, fiber.StatusUnprocessableEntity, "Unsupported unit", input.To)
		}

		snapshot, err := rateSvc.GetRates(c.Context())
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to get rates", err.Error())
		}

		result, err := convert.Convert(snapshot, domain.ConversionRequest{
			Amount:   *input.Amount,
			FromUnit: input.From,
			ToUnit:   input.To,
		})
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Conversion failed", err.Error())
		}

		return SuccessResponseJSON(c, fiber.StatusOK, "Conversion completed", ConvertResponse{
			Value:  result.Value,
			To:     result.ToUnit,
			Origin: string(snapshot.Origin),
		})
	}
}

// ClearCache returns a Fiber handler wiping the in-memory and durable caches.
func ClearCache(rateSvc *rates.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := rateSvc.ClearCache(c.Context()); err != nil {
			return ErrorResponseJSON(c, fiber.StatusInternalServerError, "Failed to clear cache", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Rate cache cleared", nil)
	}
}

// ListUnits returns a Fiber handler listing the closed supported unit set.
func ListUnits(units *currency.UnitRegistry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		codes := units.ListSupported()
		metas := make([]currency.UnitMeta, 0, len(codes))
		for _, code := range codes {
			metas = append(metas, units.Get(code))
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Supported units fetched successfully", metas)
	}
}
