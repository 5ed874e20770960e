package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/swaramap/swaramap/pkg/catalog"
	"github.com/swaramap/swaramap/pkg/matcher"
	"github.com/swaramap/swaramap/pkg/search"
	"github.com/swaramap/swaramap/pkg/types"
)

// defaultSuggestLimit caps /suggest when no limit is given.
const defaultSuggestLimit = 10

// Routes holds the handlers over one catalog.
type Routes struct {
	core   *catalog.Core
	logger *zap.Logger
	now    func() time.Time
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Regions int    `json:"regions"`
}

// MatchResponse is the body of GET /match.
type MatchResponse struct {
	catalog.MatchOutcome
	Explanations []matcher.Explanation `json:"explanations,omitempty"`
}

// TokenResponse describes one convenience rhythm token.
type TokenResponse struct {
	Name        string   `json:"name"`
	Pattern     string   `json:"pattern"`
	Keywords    []string `json:"keywords,omitempty"`
	Description string   `json:"description,omitempty"`
}

// FacetsResponse lists the values available to the search filters.
type FacetsResponse struct {
	Instruments        []string `json:"instruments"`
	Genres             []string `json:"genres"`
	LinguisticFamilies []string `json:"linguisticFamilies"`
	Tempos             []string `json:"tempos"`
	ScaleTypes         []string `json:"scaleTypes"`
}

// Router returns the catalog routes.
func (rr *Routes) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/regions", rr.listRegions)
	r.Get("/regions/{id}", rr.getRegion)
	r.Get("/regions/{id}/artists", rr.listArtists)
	r.Get("/match", rr.match)
	r.Get("/map", rr.mapStates)
	r.Get("/search", rr.search)
	r.Get("/suggest", rr.suggest)
	r.Get("/facets", rr.facets)
	r.Get("/news", rr.news)
	r.Get("/stats", rr.stats)
	r.Get("/tokens", rr.tokens)

	return r
}

func (rr *Routes) health(w http.ResponseWriter, _ *http.Request) {
	writeJSONResponse(w, HealthResponse{Status: "ok", Regions: len(rr.core.Regions())}, http.StatusOK)
}

// matchQuery reads the instrument and rhythm parameters.
// The rhythm filter is passed through untrimmed so token names compare exactly.
func matchQuery(r *http.Request) types.MatchQuery {
	q := r.URL.Query()
	return types.MatchQuery{
		InstrumentQuery: q.Get("instrument"),
		RhythmFilter:    q.Get("rhythm"),
	}
}

// listRegions handles GET /regions, with emphasis when a query is given
func (rr *Routes) listRegions(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, rr.core.Emphasis(matchQuery(r)), http.StatusOK)
}

// getRegion handles GET /regions/{id}
func (rr *Routes) getRegion(w http.ResponseWriter, r *http.Request) {
	region, err := rr.core.Region(chi.URLParam(r, "id"))
	if err != nil {
		rr.writeError(w, err)
		return
	}
	writeJSONResponse(w, region, http.StatusOK)
}

// listArtists handles GET /regions/{id}/artists
func (rr *Routes) listArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := rr.core.Artists(chi.URLParam(r, "id"))
	if err != nil {
		rr.writeError(w, err)
		return
	}
	writeJSONResponse(w, artists, http.StatusOK)
}

// match handles GET /match?instrument=&rhythm=&explain=
func (rr *Routes) match(w http.ResponseWriter, r *http.Request) {
	explain, err := boolParam(r, "explain")
	if err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	q := matchQuery(r)
	resp := MatchResponse{MatchOutcome: rr.core.Match(q)}
	if explain {
		resp.Explanations = rr.core.Explain(q)
	}
	writeJSONResponse(w, resp, http.StatusOK)
}

// mapStates handles GET /map?instrument=&rhythm=
func (rr *Routes) mapStates(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, rr.core.MapStates(matchQuery(r)), http.StatusOK)
}

// search handles GET /search. List filters accept repeated or
// comma-separated values.
func (rr *Routes) search(w http.ResponseWriter, r *http.Request) {
	hereditary, err := boolParam(r, "hereditary")
	if err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	f := search.Filters{
		Query:              q.Get("q"),
		Regions:            listParam(r, "region"),
		Instruments:        listParam(r, "instrument"),
		Genres:             listParam(r, "genre"),
		LinguisticFamilies: listParam(r, "family"),
		HereditaryOnly:     hereditary,
		Tempo:              q.Get("tempo"),
		ScaleType:          q.Get("scale"),
	}
	writeJSONResponse(w, rr.core.Search(f), http.StatusOK)
}

// suggest handles GET /suggest?q=&limit=
func (rr *Routes) suggest(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", defaultSuggestLimit)
	if err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	out := search.Suggest(rr.core.Regions(), r.URL.Query().Get("q"), limit)
	if out == nil {
		out = []string{}
	}
	writeJSONResponse(w, out, http.StatusOK)
}

// facets handles GET /facets
func (rr *Routes) facets(w http.ResponseWriter, _ *http.Request) {
	regions := rr.core.Regions()
	writeJSONResponse(w, FacetsResponse{
		Instruments:        search.AllInstruments(regions),
		Genres:             search.AllGenres(regions),
		LinguisticFamilies: search.AllLinguisticFamilies(regions),
		Tempos:             search.AllTempos(regions),
		ScaleTypes:         search.AllScaleTypes(regions),
	}, http.StatusOK)
}

// news handles GET /news?region=&category=&limit=&upcoming=
func (rr *Routes) news(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", 0)
	if err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	upcoming, err := boolParam(r, "upcoming")
	if err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	f := catalog.NewsFilter{
		Region:   q.Get("region"),
		Category: types.NewsCategory(q.Get("category")),
		Limit:    limit,
	}
	if upcoming {
		f.UpcomingAt = rr.now()
	}
	writeJSONResponse(w, rr.core.News(f), http.StatusOK)
}

// stats handles GET /stats
func (rr *Routes) stats(w http.ResponseWriter, _ *http.Request) {
	writeJSONResponse(w, rr.core.Stats(), http.StatusOK)
}

// tokens handles GET /tokens
func (rr *Routes) tokens(w http.ResponseWriter, _ *http.Request) {
	tokens := rr.core.Matcher().Tokens()
	out := make([]TokenResponse, len(tokens))
	for i, t := range tokens {
		out[i] = TokenResponse{
			Name:        t.Name,
			Pattern:     t.Pattern,
			Keywords:    t.Keywords,
			Description: t.Description,
		}
	}
	writeJSONResponse(w, out, http.StatusOK)
}

// writeError maps catalog errors to status codes.
func (rr *Routes) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, catalog.ErrRegionNotFound) {
		writeErrorResponse(w, err.Error(), http.StatusNotFound)
		return
	}
	rr.logger.Error("request failed", zap.Error(err))
	writeErrorResponse(w, "internal server error", http.StatusInternalServerError)
}

func listParam(r *http.Request, name string) []string {
	var out []string
	for _, v := range r.URL.Query()[name] {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func boolParam(r *http.Request, name string) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s parameter: %q", name, v)
	}
	return b, nil
}

func intParam(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s parameter: %q", name, v)
	}
	return n, nil
}
