package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ordenes_campo/internal/domain/entities"
	"ordenes_campo/internal/domain/session"
	"ordenes_campo/internal/usecase/interfaces"
)

const gatewayTag = "[backend][gateway]"

// OrderBackendGateway is the JSON/HTTP client of the work-order backend. Each call forwards
// the bearer token of the session in ctx and is sent exactly once.
type OrderBackendGateway struct {
	baseURL    string
	httpClient *http.Client
	loc        *time.Location
}

var _ interfaces.IOrderBackend = (*OrderBackendGateway)(nil)

// NewOrderBackendGateway builds the gateway. loc is the zone used for zone-less timestamps
// sent by the backend.
func NewOrderBackendGateway(baseURL string, timeout time.Duration, loc *time.Location) *OrderBackendGateway {
	if loc == nil {
		loc = time.UTC
	}
	return &OrderBackendGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		loc:        loc,
	}
}

func (g *OrderBackendGateway) GetOrder(ctx context.Context, orderID int64) (entities.Order, error) {
	var out orderDTO
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/api/ordenes/%d", orderID), nil, &out); err != nil {
		return entities.Order{}, err
	}
	return out.toEntity(g.loc), nil
}

func (g *OrderBackendGateway) UpdateStatus(ctx context.Context, update entities.StatusUpdate) error {
	body := statusUpdateDTO{
		NuevoEstado:        string(update.NewStatus),
		FechaInicioTrabajo: update.WorkStartedAt,
		FechaFinTrabajo:    update.WorkEndedAt,
	}
	return g.do(ctx, http.MethodPatch, fmt.Sprintf("/api/ordenes/%d/estado", update.OrderID), body, nil)
}

func (g *OrderBackendGateway) SearchMaterial(ctx context.Context, code, name string) (entities.CatalogMaterial, error) {
	q := url.Values{}
	q.Set("codigo", code)
	q.Set("nombre", name)

	var out *materialDTO
	err := g.do(ctx, http.MethodGet, "/api/materiales/buscar?"+q.Encode(), nil, &out)
	if err != nil {
		var be *interfaces.BackendError
		if errors.As(err, &be) && be.StatusCode == http.StatusNotFound {
			return entities.CatalogMaterial{}, nil
		}
		return entities.CatalogMaterial{}, err
	}
	if out == nil {
		return entities.CatalogMaterial{}, nil
	}
	return out.toEntity(), nil
}

func (g *OrderBackendGateway) ListCatalog(ctx context.Context, query entities.CatalogQuery) ([]entities.CatalogMaterial, error) {
	q := url.Values{}
	if query.OnlyActive {
		q.Set("activo", "true")
	}
	if query.Search != "" {
		q.Set("q", query.Search)
	}
	endpoint := "/api/materiales"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var out []materialDTO
	if err := g.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	items := make([]entities.CatalogMaterial, 0, len(out))
	for _, m := range out {
		items = append(items, m.toEntity())
	}
	return items, nil
}

func (g *OrderBackendGateway) AddMaterial(ctx context.Context, addition entities.MaterialAddition) error {
	body := materialAdditionDTO{MaterialID: addition.MaterialID, Cantidad: addition.Quantity}
	return g.do(ctx, http.MethodPost, fmt.Sprintf("/api/ordenes/%d/materiales", addition.OrderID), body, nil)
}

func (g *OrderBackendGateway) DeleteMaterial(ctx context.Context, orderID, lineID int64) error {
	endpoint := fmt.Sprintf("/api/ordenes/%d/materiales/%s", orderID, strconv.FormatInt(lineID, 10))
	return g.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

func (g *OrderBackendGateway) do(ctx context.Context, method, endpoint string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+endpoint, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := session.CurrentToken(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("%s %s %s transport error err=%v", gatewayTag, method, endpoint, err)
		return err
	}
	defer resp.Body.Close()
	log.Printf("%s %s %s status=%d elapsed=%s", gatewayTag, method, endpoint, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		var e errorDTO
		_ = json.Unmarshal(b, &e)
		return &interfaces.BackendError{StatusCode: resp.StatusCode, Message: e.text()}
	}
	if out == nil {
		return nil
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, endpoint, err)
	}
	return nil
}
