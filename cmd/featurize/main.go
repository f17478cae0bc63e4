package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aayush0444/Cine-Suggest/internal/cache"
	"github.com/aayush0444/Cine-Suggest/internal/config"
	"github.com/aayush0444/Cine-Suggest/internal/db"
	"github.com/aayush0444/Cine-Suggest/internal/feature"
	"github.com/aayush0444/Cine-Suggest/internal/models"
	"github.com/aayush0444/Cine-Suggest/internal/repository"
	"github.com/aayush0444/Cine-Suggest/internal/similarity"
	"github.com/aayush0444/Cine-Suggest/internal/tfidf"
)

// Etapa offline: lee los CSV estilo TMDB-5000, arma la bolsa de tags
// por película, vectoriza con TF-IDF, calcula la matriz de similitud
// coseno completa y escribe catálogo + matriz en Mongo. Corre una vez,
// fuera del camino de servicio; agregar películas = volver a correr.
func main() {
	moviesPath := flag.String("movies", "data/tmdb_5000_movies.csv", "CSV de películas (formato TMDB 5000)")
	creditsPath := flag.String("credits", "data/tmdb_5000_credits.csv", "CSV de créditos (cast/crew)")
	maxFeatures := flag.Int("max-features", tfidf.DefaultMaxFeatures, "tope del vocabulario TF-IDF")
	topCast := flag.Int("top-cast", feature.DefaultTopCast, "cuántos nombres del elenco entran a la bolsa")
	limit := flag.Int("limit", 0, "procesar solo las primeras N películas (0 = todas)")
	reportPath := flag.String("report", "featurize_report.txt", "archivo de reporte de la corrida")
	dryRun := flag.Bool("dry-run", false, "no escribir en Mongo (solo calcular y reportar)")
	flag.Parse()

	start := time.Now()

	// 1) Carga de CSVs
	log.Printf("[featurize] leyendo %s", *moviesPath)
	raws, err := loadMoviesCSV(*moviesPath)
	if err != nil {
		log.Fatalf("[featurize] error leyendo movies: %v", err)
	}

	log.Printf("[featurize] leyendo %s", *creditsPath)
	credits, err := loadCreditsCSV(*creditsPath)
	if err != nil {
		log.Fatalf("[featurize] error leyendo credits: %v", err)
	}

	// 2) Catálogo: orden de aparición en el CSV == iIdx == fila de la matriz
	catalog, docs := buildCatalog(raws, credits, *topCast, *limit)
	log.Printf("[featurize] catálogo con %d películas", len(catalog))

	// 3) TF-IDF sobre el corpus completo (el vocabulario se ajusta UNA vez)
	vectorizer := tfidf.NewVectorizer(*maxFeatures)
	vectors, err := vectorizer.FitTransform(docs)
	if err != nil {
		log.Fatalf("[featurize] error vectorizando: %v", err)
	}
	log.Printf("[featurize] vocabulario: %d términos (tope %d)", vectorizer.VocabSize(), *maxFeatures)

	// 4) Matriz de similitud coseno (una pasada síncrona)
	log.Printf("[featurize] calculando matriz %dx%d…", len(catalog), len(catalog))
	matrix := similarity.Compute(vectors)

	elapsedCompute := time.Since(start)
	log.Printf("[featurize] matriz lista en %s", formatDuration(elapsedCompute))

	// 5) Persistir artefactos
	if !*dryRun {
		cfg := config.Load()
		db.InitMongo(cfg)
		cache.InitRedis(cfg)
		defer db.Close(context.Background())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		if err := persistArtifacts(ctx, catalog, matrix, vectorizer.VocabSize(), *maxFeatures, *topCast); err != nil {
			log.Fatalf("[featurize] error escribiendo artefactos: %v", err)
		}
		log.Printf("[featurize] artefactos escritos en Mongo")

		// las recomendaciones cacheadas se calcularon con la matriz vieja
		if n, err := cache.InvalidatePrefix(ctx, "rec:"); err != nil {
			log.Printf("[featurize] no se pudo invalidar la cache: %v", err)
		} else if n > 0 {
			log.Printf("[featurize] %d recomendaciones cacheadas invalidadas", n)
		}
	} else {
		log.Printf("[featurize] dry-run: no se escribió nada en Mongo")
	}

	// 6) Reporte
	elapsed := time.Since(start)
	if err := writeReport(*reportPath, len(catalog), vectorizer.VocabSize(), *maxFeatures, *topCast, *dryRun, elapsed); err != nil {
		log.Printf("[featurize] no se pudo escribir el reporte: %v", err)
	}

	log.Printf("[featurize] listo en %s", formatDuration(elapsed))
}

// ====== carga de CSVs (columnas con JSON embebido) ======

type namedEntity struct {
	Name string `json:"name"`
}

type castEntry struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

type crewEntry struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

type rawMovie struct {
	MovieID  int
	Title    string
	Year     *int
	Genres   []string
	Keywords []string
	Overview string
}

type rawCredits struct {
	Cast     []string // ya ordenado por billing
	Director string
}

func loadMoviesCSV(path string) ([]rawMovie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("leyendo encabezado: %w", err)
	}
	col := indexColumns(header)

	required := []string{"id", "title", "genres", "keywords", "overview"}
	for _, c := range required {
		if _, ok := col[c]; !ok {
			return nil, fmt.Errorf("falta la columna %q en %s", c, path)
		}
	}

	var out []rawMovie
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// fila rota: se salta, igual que en el ETL original
			continue
		}

		id, err := strconv.Atoi(field(rec, col, "id"))
		if err != nil {
			continue
		}

		m := rawMovie{
			MovieID:  id,
			Title:    strings.TrimSpace(field(rec, col, "title")),
			Genres:   parseNames(field(rec, col, "genres")),
			Keywords: parseNames(field(rec, col, "keywords")),
			Overview: field(rec, col, "overview"),
		}
		if m.Title == "" {
			continue
		}
		if date := field(rec, col, "release_date"); len(date) >= 4 {
			if y, err := strconv.Atoi(date[:4]); err == nil {
				m.Year = &y
			}
		}

		out = append(out, m)
	}
	return out, nil
}

func loadCreditsCSV(path string) (map[int]rawCredits, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("leyendo encabezado: %w", err)
	}
	col := indexColumns(header)

	out := make(map[int]rawCredits)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		id, err := strconv.Atoi(field(rec, col, "movie_id"))
		if err != nil {
			continue
		}

		var cast []castEntry
		_ = json.Unmarshal([]byte(field(rec, col, "cast")), &cast)
		names := make([]string, 0, len(cast))
		for _, c := range cast {
			if c.Name != "" {
				names = append(names, c.Name)
			}
		}

		var crew []crewEntry
		_ = json.Unmarshal([]byte(field(rec, col, "crew")), &crew)
		director := ""
		for _, c := range crew {
			if c.Job == "Director" {
				director = c.Name
				break
			}
		}

		out[id] = rawCredits{Cast: names, Director: director}
	}
	return out, nil
}

func indexColumns(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	return col
}

func field(rec []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

// parseNames decodifica una columna tipo [{"id":28,"name":"Action"},…]
func parseNames(raw string) []string {
	var entities []namedEntity
	if err := json.Unmarshal([]byte(raw), &entities); err != nil {
		return nil
	}
	names := make([]string, 0, len(entities))
	for _, e := range entities {
		if e.Name != "" {
			names = append(names, e.Name)
		}
	}
	return names
}

// ====== catálogo + bolsa de tags ======

// buildCatalog arma el catálogo ordenado y el corpus de documentos.
// La posición en el slice es el iIdx: ese orden es la única clave que
// conecta catálogo y matriz, por eso se fija acá y no se toca más.
func buildCatalog(
	raws []rawMovie,
	credits map[int]rawCredits,
	topCast, limit int,
) ([]models.MovieDoc, []string) {

	composer := feature.NewComposer(topCast)
	now := time.Now().UTC().Format(time.RFC3339)

	var catalog []models.MovieDoc
	var docs []string
	seen := make(map[int]bool)

	for _, raw := range raws {
		if limit > 0 && len(catalog) >= limit {
			break
		}
		if seen[raw.MovieID] {
			continue
		}
		seen[raw.MovieID] = true

		cr := credits[raw.MovieID]
		cast := cr.Cast
		if len(cast) > topCast {
			cast = cast[:topCast]
		}

		tags := composer.Compose(raw.Genres, raw.Keywords, cr.Cast, cr.Director, raw.Overview)

		catalog = append(catalog, models.MovieDoc{
			MovieID:   raw.MovieID,
			IIdx:      len(catalog),
			Title:     raw.Title,
			Year:      raw.Year,
			Genres:    raw.Genres,
			Keywords:  raw.Keywords,
			Cast:      cast,
			Director:  cr.Director,
			Overview:  raw.Overview,
			Tags:      tags,
			CreatedAt: now,
			UpdatedAt: now,
		})
		docs = append(docs, tags)
	}

	return catalog, docs
}

// ====== persistencia ======

func persistArtifacts(
	ctx context.Context,
	catalog []models.MovieDoc,
	matrix *similarity.Matrix,
	vocabSize, maxFeatures, topCast int,
) error {
	now := time.Now().UTC().Format(time.RFC3339)

	movieRepo := repository.NewMovieRepository()
	simRepo := repository.NewSimilarityRepository()

	if err := movieRepo.ReplaceAll(ctx, catalog); err != nil {
		return fmt.Errorf("catálogo: %w", err)
	}

	rows := make([]models.SimilarityRowDoc, matrix.Size())
	for i, scores := range matrix.Rows() {
		rows[i] = models.SimilarityRowDoc{
			ID:        fmt.Sprintf("%s:row:%d", repository.MetricCosine, i),
			IIdx:      i,
			MovieID:   catalog[i].MovieID,
			Scores:    scores,
			UpdatedAt: now,
		}
	}

	meta := &models.SimilarityMetaDoc{
		ID:          repository.MetricCosine,
		Metric:      repository.MetricCosine,
		Count:       matrix.Size(),
		VocabSize:   vocabSize,
		MaxFeatures: maxFeatures,
		TopCast:     topCast,
		UpdatedAt:   now,
	}

	if err := simRepo.ReplaceAll(ctx, rows, meta); err != nil {
		return fmt.Errorf("matriz: %w", err)
	}

	return db.EnsureIndexes(ctx)
}

// ====== reporte ======

func writeReport(path string, movies, vocab, maxFeatures, topCast int, dryRun bool, elapsed time.Duration) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	fmt.Fprintln(w, "================================================================================")
	fmt.Fprintln(w, "                 CINESUGGEST FEATURIZE - REPORTE DE EJECUCIÓN")
	fmt.Fprintln(w, "================================================================================")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Fecha de ejecución: %s\n", time.Now().Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "Tiempo total: %s\n", formatDuration(elapsed))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "RESULTADOS:")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	fmt.Fprintf(w, "  Películas en el catálogo : %d\n", movies)
	fmt.Fprintf(w, "  Matriz de similitud      : %dx%d (cosine)\n", movies, movies)
	fmt.Fprintf(w, "  Vocabulario TF-IDF       : %d términos (tope %d)\n", vocab, maxFeatures)
	fmt.Fprintf(w, "  Top cast por película    : %d\n", topCast)
	if dryRun {
		fmt.Fprintln(w, "  • dry-run: NO se escribió en Mongo")
	} else {
		fmt.Fprintln(w, "  ✓ Artefactos escritos en Mongo (movies, similarity_rows, similarity_meta)")
	}
	return nil
}

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	} else if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
