package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/citizengeo/sites/internal/domain"
	"github.com/citizengeo/sites/internal/present/rest/presenter"
	"github.com/citizengeo/sites/internal/service"
	"github.com/citizengeo/sites/internal/usecase"
)

// RealtimeSource feeds site events to connected websocket clients. It is
// satisfied by service.SignalService.
type RealtimeSource interface {
	Realtime(ctx context.Context, output chan<- domain.SiteEvent)
}

type Handler struct {
	site     *usecase.SiteUsecase
	siteType *usecase.SiteTypeUsecase
	media    *service.MediaService
	signal   RealtimeSource
}

func NewHandler(
	site *usecase.SiteUsecase,
	siteType *usecase.SiteTypeUsecase,
	media *service.MediaService,
	signal RealtimeSource,
) *Handler {
	return &Handler{
		site:     site,
		siteType: siteType,
		media:    media,
		signal:   signal,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/types", h.handleListTypes)
	g.GET("", h.handleListSites)
	g.GET("/", h.handleListSites)
	g.GET("/programs/:id", h.handleListSitesByProgram)
	g.POST("", h.handleCreateSite)
	g.POST("/", h.handleCreateSite)
	if h.signal != nil {
		g.GET("/realtime", h.handleRealtime)
	}
	g.GET("/:pk", h.handleGetSite)
}

func (h *Handler) handleListTypes(c echo.Context) error {
	ctx := c.Request().Context()

	types, err := h.siteType.List(ctx)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, echo.Map{
		"count": len(types),
		"datas": types,
	})
}

func (h *Handler) handleGetSite(c echo.Context) error {
	ctx := c.Request().Context()

	pk, err := strconv.Atoi(c.Param("pk"))
	if err != nil {
		return presenter.Error(c, err)
	}

	site, err := h.site.Get(ctx, pk)
	if err != nil {
		// a missing row also answers 400, matching the historical
		// contract of this endpoint
		return presenter.Error(c, err)
	}

	return presenter.OK(c, echo.Map{
		"features": []domain.Feature{site.AsFeature()},
	})
}

func (h *Handler) handleListSites(c echo.Context) error {
	ctx := c.Request().Context()

	sites, err := h.site.List(ctx)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, sitesToCollection(sites))
}

func (h *Handler) handleListSitesByProgram(c echo.Context) error {
	ctx := c.Request().Context()

	idProgram, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}

	sites, err := h.site.ListByProgram(ctx, idProgram)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, sitesToCollection(sites))
}

// createSiteRequest carries the recognized site columns. Binding drops
// unrecognized body fields.
type createSiteRequest struct {
	IDProgram int             `json:"id_program"`
	IDType    int             `json:"id_type"`
	Name      string          `json:"name"`
	ObsTxt    string          `json:"obs_txt"`
	Email     string          `json:"email"`
	Geometry  json.RawMessage `json:"geometry"`
}

func (h *Handler) handleCreateSite(c echo.Context) error {
	ctx := c.Request().Context()

	req, photoName, err := h.bindCreateSite(c)
	if err != nil {
		return presenter.Error(c, err)
	}

	identity, _ := ctx.Value(domain.RequesterCtxKey).(*domain.Identity)

	site, err := h.site.Create(ctx, usecase.CreateSiteInput{
		IDProgram: req.IDProgram,
		IDType:    req.IDType,
		Name:      req.Name,
		ObsTxt:    req.ObsTxt,
		Email:     req.Email,
		Photo:     photoName,
		Geometry:  req.Geometry,
		Identity:  identity,
	})
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, echo.Map{
		"message":  "New site created.",
		"features": []domain.Feature{site.AsFeature()},
	})
}

// bindCreateSite reads the creation payload from either a JSON body or a
// multipart form (fields plus an optional "photo" file).
func (h *Handler) bindCreateSite(c echo.Context) (createSiteRequest, *string, error) {
	var req createSiteRequest

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		err := c.Bind(&req)
		return req, nil, err
	}

	if v := c.FormValue("id_program"); v != "" {
		idProgram, err := strconv.Atoi(v)
		if err != nil {
			return req, nil, err
		}
		req.IDProgram = idProgram
	}
	if v := c.FormValue("id_type"); v != "" {
		idType, err := strconv.Atoi(v)
		if err != nil {
			return req, nil, err
		}
		req.IDType = idType
	}
	req.Name = c.FormValue("name")
	req.ObsTxt = c.FormValue("obs_txt")
	req.Email = c.FormValue("email")
	if v := c.FormValue("geometry"); v != "" {
		req.Geometry = json.RawMessage(v)
	}

	var photoName *string
	if file, err := c.FormFile("photo"); err == nil && file != nil {
		photoName, err = h.media.SavePhoto(file)
		if err != nil {
			return req, nil, err
		}
	}

	return req, photoName, nil
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleRealtime streams site-created events to the client until it
// disconnects. The client may send {"type":"h"} heartbeats.
func (h *Handler) handleRealtime(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"Failed to upgrade WebSocket",
			slog.String("error", err.Error()),
			slog.String("module", "socket"),
		)
		return err
	}
	defer func() {
		ws.Close()
	}()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	output := make(chan domain.SiteEvent)

	go h.signal.Realtime(ctx, output)

	quit := make(chan struct{})

	go func() {
		for {
			var req struct {
				Type string `json:"type"`
			}
			err := ws.ReadJSON(&req)
			if err != nil {

				wsErr, ok := err.(*websocket.CloseError)
				if ok {
					if !(wsErr.Code == websocket.CloseNormalClosure || wsErr.Code == websocket.CloseGoingAway) {
						slog.DebugContext(
							ctx, "WebSocket closed",
							slog.String("error", wsErr.Error()),
							slog.String("module", "socket"),
						)
					}
				} else {
					slog.ErrorContext(
						ctx, "Error reading message",
						slog.String("error", err.Error()),
						slog.String("module", "socket"),
					)
				}

				// closing lets the writer loop notice the disconnect
				// even after it already returned on a write error
				close(quit)
				break
			}

			switch req.Type {
			case "h": // heartbeat
				// do nothing
			default:
				slog.InfoContext(
					ctx, "Unknown request type",
					slog.String("type", req.Type),
					slog.String("module", "socket"),
				)
			}
		}
	}()

	for {
		select {
		case <-quit:
			return nil
		case event := <-output:
			err := ws.WriteJSON(event)
			if err != nil {
				slog.ErrorContext(
					ctx, "Error writing message",
					slog.String("error", err.Error()),
					slog.String("module", "socket"),
				)
				return nil
			}
		}
	}
}

func sitesToCollection(sites []domain.Site) domain.FeatureCollection {
	features := make([]domain.Feature, 0, len(sites))
	for i := range sites {
		features = append(features, sites[i].AsFeature())
	}
	return domain.NewFeatureCollection(features)
}
