package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client habla con la API de TMDB. Es la única dependencia de red del
// camino de servicio y por eso va acotada: timeout corto y como mucho
// UN reintento. Si igual falla, el caller degrada a placeholder.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

const requestTimeout = 5 * time.Second

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// MovieDetails es la parte de la respuesta de GET /movie/{id} que usamos.
type MovieDetails struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date"`
	Overview    string  `json:"overview"`
	Genres      []struct {
		Name string `json:"name"`
	} `json:"genres"`
}

// GetMovie consulta GET /movie/{id}. Si la primera llamada falla
// reintenta una sola vez (salvo contexto cancelado).
func (c *Client) GetMovie(ctx context.Context, movieID int) (*MovieDetails, error) {
	details, err := c.getMovieOnce(ctx, movieID)
	if err == nil {
		return details, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}
	return c.getMovieOnce(ctx, movieID)
}

func (c *Client) getMovieOnce(ctx context.Context, movieID int) (*MovieDetails, error) {
	url := fmt.Sprintf("%s/movie/%d?api_key=%s&language=en-US", c.baseURL, movieID, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb: status %d para movie %d", resp.StatusCode, movieID)
	}

	var details MovieDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, err
	}
	return &details, nil
}
