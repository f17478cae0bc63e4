package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/aayush0444/Cine-Suggest/internal/service"

	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc  *service.RecommendService
	meta *service.MetadataService
}

func NewRecommendHandler(s *service.RecommendService, meta *service.MetadataService) *RecommendHandler {
	return &RecommendHandler{svc: s, meta: meta}
}

// mapea los errores del servicio a códigos HTTP
func writeRecError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMovieNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidParam):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func parseMinSim(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// @Summary Recomendaciones por película seed
// @Tags recommend
// @Produce json
// @Param title query string true "título exacto de la película seed"
// @Param k query int false "cantidad de recomendaciones (default 5, máx 50)"
// @Param min_similarity query number false "umbral de similitud en [0,1]"
// @Param enrich query bool false "si true, agrega poster/rating desde TMDB"
// @Success 200 {array} models.RecItem
// @Failure 400 {string} string "parámetro inválido"
// @Failure 404 {string} string "película no encontrada"
// @Router /recommend [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	title := r.URL.Query().Get("title")
	if title == "" {
		http.Error(w, "title es requerido", http.StatusBadRequest)
		return
	}

	k := service.DefaultK
	if raw := r.URL.Query().Get("k"); raw != "" {
		k, _ = strconv.Atoi(raw)
	}

	minSim, err := parseMinSim(r.URL.Query().Get("min_similarity"))
	if err != nil {
		http.Error(w, "min_similarity inválido", http.StatusBadRequest)
		return
	}

	items, err := h.svc.Recommend(r.Context(), service.RecRequest{
		Titles: []string{title},
		K:      k,
		MinSim: minSim,
	})
	if err != nil {
		writeRecError(w, err)
		return
	}

	if r.URL.Query().Get("enrich") == "true" {
		h.meta.Decorate(r.Context(), items)
	}

	_ = json.NewEncoder(w).Encode(items)
}

// body del modo multi-seed
type batchRecommendRequest struct {
	Titles        []string `json:"titles"`
	K             int      `json:"k"`
	MinSimilarity *float64 `json:"minSimilarity,omitempty"`
	Enrich        bool     `json:"enrich,omitempty"`
}

// @Summary Recomendaciones por varias películas seed (2 a 5)
// @Tags recommend
// @Accept json
// @Produce json
// @Param body body batchRecommendRequest true "seeds y parámetros"
// @Success 200 {array} models.RecItem
// @Failure 400 {string} string "parámetro inválido"
// @Failure 404 {string} string "película no encontrada"
// @Router /recommend/batch [post]
func (h *RecommendHandler) PostBatchRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req batchRecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}
	if len(req.Titles) < 2 {
		http.Error(w, "el modo batch necesita entre 2 y 5 títulos", http.StatusBadRequest)
		return
	}

	if req.K == 0 {
		req.K = service.DefaultK
	}

	items, err := h.svc.Recommend(r.Context(), service.RecRequest{
		Titles: req.Titles,
		K:      req.K,
		MinSim: req.MinSimilarity,
	})
	if err != nil {
		writeRecError(w, err)
		return
	}

	if req.Enrich {
		h.meta.Decorate(r.Context(), items)
	}

	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Descubrir películas al azar (sin similitud)
// @Tags recommend
// @Produce json
// @Param n query int false "cantidad (default 5)"
// @Success 200 {array} models.MovieDoc
// @Failure 400 {string} string "parámetro inválido"
// @Router /discover [get]
func (h *RecommendHandler) Discover(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	n := service.DefaultK
	if raw := r.URL.Query().Get("n"); raw != "" {
		n, _ = strconv.Atoi(raw)
	}

	movies, err := h.svc.Discover(r.Context(), n)
	if err != nil {
		writeRecError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(movies)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Tags recommend
// @Produce json
// @Param title query string true "título exacto de la película seed"
// @Param k query int false "cantidad de recomendaciones"
// @Success 200 {object} map[string]interface{}
// @Router /ws/recommend [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	title := r.URL.Query().Get("title")
	k := service.DefaultK
	if raw := r.URL.Query().Get("k"); raw != "" {
		k, _ = strconv.Atoi(raw)
	}

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, buscando similares…",
	})

	stages := []string{"resolviendo seed", "leyendo matriz", "rankeando"}
	for i, stage := range stages {
		time.Sleep(150 * time.Millisecond)
		conn.WriteJSON(map[string]any{
			"type":  "progress",
			"stage": i + 1,
			"msg":   stage,
		})
	}

	items, err := h.svc.Recommend(r.Context(), service.RecRequest{
		Titles: []string{title},
		K:      k,
	})
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"seed":        title,
		"items":       items,
		"generatedAt": time.Now(),
	})
}
