package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/nutri-audit-sync/internal/config"
	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
	"github.com/MKhiriev/nutri-audit-sync/internal/utils"
	"github.com/MKhiriev/nutri-audit-sync/models"
)

// Remote API routes.
const (
	healthPath = "/api/health/"
	foodsPath  = "/api/nutricion/alimentos/"

	institutionsPath = "/api/auditoria/instituciones/"
	visitsPath       = "/api/auditoria/visitas/"
	dishesPath       = "/api/auditoria/platos/"
	ingredientsPath  = "/api/auditoria/ingredientes/"

	bulkSyncSuffix = "sync/"
)

// CycleIDHeader carries the sync cycle identifier on outbound requests.
const CycleIDHeader = "X-Sync-Cycle"

type httpGateway struct {
	client      *utils.HTTPClient
	credentials CredentialStore

	pageSize int
	maxPages int

	logger *logger.Logger
}

// NewHTTPGateway constructs the HTTP/REST implementation of [RemoteGateway].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPGateway(cfg config.Adapter, credentials CredentialStore, logger *logger.Logger) (RemoteGateway, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpGateway{
		client:      utils.NewJSONClient(baseURL, cfg.RequestTimeout),
		credentials: credentials,
		pageSize:    cfg.PageSize,
		maxPages:    cfg.MaxPages,
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request returns an unauthenticated request carrying the cycle id, if any.
func (h *httpGateway) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if cycleID, ok := utils.GetCycleIDFromContext(ctx); ok {
		req.SetHeader(CycleIDHeader, cycleID)
	}
	return req
}

// authedRequest reads the token from the credential store on every call so
// a token replaced by the login flow is picked up immediately.
func (h *httpGateway) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := h.credentials.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	return h.request(ctx).SetAuthToken(token), nil
}

// do sends req and maps transport failures and non-2xx statuses. A 401
// invalidates the stored credential.
func (h *httpGateway) do(ctx context.Context, req *resty.Request, method, path, fn string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", fn).
			Str("path", path).
			Msg("remote request failed")
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	if err := mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			if invErr := h.credentials.Invalidate(ctx); invErr != nil {
				logger.FromContext(ctx).Err(invErr).
					Str("func", fn).
					Msg("failed to invalidate rejected credential")
			}
		}
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", fn).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("remote api returned an error")
		return nil, err
	}

	return resp, nil
}

func (h *httpGateway) Ping(ctx context.Context) error {
	_, err := h.do(ctx, h.request(ctx), resty.MethodGet, healthPath, "httpGateway.Ping")
	return err
}

func (h *httpGateway) PushInstitutions(ctx context.Context, items []models.InstitutionDTO) ([]models.PushResult, error) {
	return pushBulk(ctx, h, institutionsPath, items)
}

func (h *httpGateway) PushVisits(ctx context.Context, items []models.VisitDTO) ([]models.PushResult, error) {
	return pushBulk(ctx, h, visitsPath, items)
}

func (h *httpGateway) PushDishes(ctx context.Context, items []models.DishDTO) ([]models.PushResult, error) {
	return pushBulk(ctx, h, dishesPath, items)
}

func (h *httpGateway) PushIngredients(ctx context.Context, items []models.IngredientDTO) ([]models.PushResult, error) {
	return pushBulk(ctx, h, ingredientsPath, items)
}

func (h *httpGateway) ListInstitutions(ctx context.Context) ([]models.InstitutionDTO, error) {
	return listAll[models.InstitutionDTO](ctx, h, institutionsPath)
}

func (h *httpGateway) ListVisits(ctx context.Context) ([]models.VisitDTO, error) {
	return listAll[models.VisitDTO](ctx, h, visitsPath)
}

func (h *httpGateway) ListDishes(ctx context.Context) ([]models.DishDTO, error) {
	return listAll[models.DishDTO](ctx, h, dishesPath)
}

func (h *httpGateway) ListIngredients(ctx context.Context) ([]models.IngredientDTO, error) {
	return listAll[models.IngredientDTO](ctx, h, ingredientsPath)
}

func (h *httpGateway) GetInstitution(ctx context.Context, id int64) (models.InstitutionDTO, error) {
	return getOne[models.InstitutionDTO](ctx, h, institutionsPath, id)
}

func (h *httpGateway) GetVisit(ctx context.Context, id int64) (models.VisitDTO, error) {
	return getOne[models.VisitDTO](ctx, h, visitsPath, id)
}

func (h *httpGateway) ListFoods(ctx context.Context) ([]models.Food, error) {
	return listAll[models.Food](ctx, h, foodsPath)
}

// pushBulk posts items to the bulk sync endpoint under base. The response
// is either a bare array or a paged envelope of results.
func pushBulk[T any](ctx context.Context, h *httpGateway, base string, items []T) ([]models.PushResult, error) {
	if len(items) == 0 {
		return nil, nil
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	path := base + bulkSyncSuffix
	resp, err := h.do(ctx, req.SetBody(items), resty.MethodPost, path, "httpGateway.pushBulk")
	if err != nil {
		return nil, err
	}

	page, err := models.DecodePage[models.PushResult](resp.Body())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedResponse, path, err)
	}

	if len(page.Results) != len(items) && !anyEchoesLocalID(page.Results) {
		return nil, fmt.Errorf("%w: %s: sent %d rows, got %d results",
			ErrResultMismatch, path, len(items), len(page.Results))
	}

	return page.Results, nil
}

// anyEchoesLocalID reports whether results can be matched by local id rather
// than by position.
func anyEchoesLocalID(results []models.PushResult) bool {
	for _, res := range results {
		if res.LocalID != "" {
			return true
		}
	}
	return false
}

// listAll reads a collection, following next links until the last page or
// the configured page limit.
func listAll[T any](ctx context.Context, h *httpGateway, path string) ([]T, error) {
	var all []T

	next := path
	for page := 0; next != ""; page++ {
		if h.maxPages > 0 && page >= h.maxPages {
			return nil, fmt.Errorf("%w: %s after %d pages", ErrPageLimit, path, page)
		}

		req, err := h.authedRequest(ctx)
		if err != nil {
			return nil, err
		}
		if page == 0 && h.pageSize > 0 {
			req.SetQueryParam("page_size", strconv.Itoa(h.pageSize))
		}

		resp, err := h.do(ctx, req, resty.MethodGet, next, "httpGateway.listAll")
		if err != nil {
			return nil, err
		}

		decoded, err := models.DecodePage[T](resp.Body())
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedResponse, path, err)
		}
		all = append(all, decoded.Results...)

		next = ""
		if decoded.Next != nil {
			next = *decoded.Next
		}
	}

	return all, nil
}

func getOne[T any](ctx context.Context, h *httpGateway, base string, id int64) (T, error) {
	var item T

	req, err := h.authedRequest(ctx)
	if err != nil {
		return item, err
	}

	path := base + strconv.FormatInt(id, 10) + "/"
	resp, err := h.do(ctx, req, resty.MethodGet, path, "httpGateway.getOne")
	if err != nil {
		return item, err
	}

	if err := json.Unmarshal(resp.Body(), &item); err != nil {
		return item, fmt.Errorf("%w: %s: %w", ErrMalformedResponse, path, err)
	}

	return item, nil
}
