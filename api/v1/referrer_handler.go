package v1

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"refsource/internal/http/middleware"
	"refsource/internal/pkg/async"
	"refsource/internal/pkg/referrers"
	"refsource/pkg/referrer"
)

const (
	errInvalidRequest = "Invalid request"
	errEmptyBatch     = "No URLs to classify"
	errBatchTooLarge  = "Too many URLs in batch"
)

// ReferrerResponse is a ReferrerInfo plus a display name for its host.
type ReferrerResponse struct {
	referrer.ReferrerInfo
	DisplayName string `json:"display_name,omitempty"`
}

// BatchRequest lists referrer URLs to classify.
type BatchRequest struct {
	URLs []string `json:"urls"`
}

// BatchResponse holds one result per requested URL, in request order.
type BatchResponse struct {
	Results []ReferrerResponse `json:"results"`
}

// BatchOptions bounds the batch endpoint.
type BatchOptions struct {
	Workers int
	MaxURLs int
}

func newReferrerResponse(info referrer.ReferrerInfo) ReferrerResponse {
	return ReferrerResponse{
		ReferrerInfo: info,
		DisplayName:  referrers.FriendlyName(info),
	}
}

// ReferrerInfoHandler classifies the url query parameter, or the request's
// own Referer header when the parameter is absent.
func ReferrerInfoHandler(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl := middleware.Classifier(c)
		info := cl.Info(strings.Clone(c.Query("url")))

		logger.Debug("Classified referrer",
			slog.String("url", info.URL),
			slog.String("traffic_source", info.TrafficSource.String()))

		return c.JSON(newReferrerResponse(info))
	}
}

// MatchHandler reports whether the comma-separated criteria match the
// url query parameter or the request's referrer.
func MatchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl := middleware.Classifier(c)
		criteria := strings.Split(c.Query("criteria"), ",")
		rawURL := strings.Clone(c.Query("url"))

		return c.JSON(fiber.Map{
			"match":          cl.IsMatch(criteria, rawURL),
			"traffic_source": cl.TrafficSource(rawURL),
		})
	}
}

// BatchHandler classifies a list of URLs concurrently. Empty entries are
// classified as absent referrers; they are not resolved from the request.
func BatchHandler(engine *referrer.Engine, opts BatchOptions, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req BatchRequest
		if err := c.BodyParser(&req); err != nil {
			logger.Debug("Failed to parse batch request", slog.Any("error", err))
			return handleError(c, fiber.NewError(http.StatusBadRequest, errInvalidRequest))
		}
		if len(req.URLs) == 0 {
			return handleError(c, fiber.NewError(http.StatusBadRequest, errEmptyBatch))
		}
		if len(req.URLs) > opts.MaxURLs {
			logger.Info("Rejected oversized batch",
				slog.Int("urls", len(req.URLs)),
				slog.Int("max", opts.MaxURLs))
			return handleError(c, fiber.NewError(http.StatusBadRequest, errBatchTooLarge))
		}

		domain := middleware.Classifier(c).CurrentDomain()
		pool := async.NewPool(opts.Workers, func(rawURL string) referrer.ReferrerInfo {
			return engine.Info(rawURL, domain)
		})

		infos, err := pool.Classify(c.UserContext(), req.URLs)
		if err != nil {
			logger.Warn("Batch classification interrupted", slog.Any("error", err))
			return handleError(c, err)
		}

		results := make([]ReferrerResponse, len(infos))
		for i, info := range infos {
			results[i] = newReferrerResponse(info)
		}

		logger.Info("Classified referrer batch", slog.Int("urls", len(results)))
		return c.JSON(BatchResponse{Results: results})
	}
}

// errorCode maps handler errors to stable machine codes.
func errorCode(err error) string {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Message {
		case errEmptyBatch:
			return "EMPTY_BATCH"
		case errBatchTooLarge:
			return "BATCH_TOO_LARGE"
		}
		return "INVALID_REQUEST"
	}
	return "CLASSIFICATION_ERROR"
}
