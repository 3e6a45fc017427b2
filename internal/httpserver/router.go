// Package httpserver exposes the analyzers and the material catalog
// over a JSON REST API.
package httpserver

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/alexiusacademia/structcalc/internal/matdb"
	"github.com/alexiusacademia/structcalc/internal/structural"
)

// Router dispatches API requests against one material catalog.
type Router struct {
	db *matdb.Database
}

// NewRouter builds the HTTP handler tree.
func NewRouter(db *matdb.Database) http.Handler {
	r := &Router{db: db}

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	mux.Route("/api", func(rt chi.Router) {
		rt.Post("/beam/analyze", r.wrap(r.handleBeamAnalyze))
		rt.Post("/column/analyze", r.wrap(r.handleColumnAnalyze))
		rt.Post("/materials/search", r.wrap(r.handleMaterialsSearch))
		rt.Post("/materials/recommend", r.wrap(r.handleMaterialsRecommend))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap maps handler errors onto the JSON error envelope. Engine faults
// and malformed bodies are client errors.
func (rt *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, structural.ErrInvalidGeometry) || isDecodeError(err) {
				status = http.StatusBadRequest
			}
			writeJSON(w, status, map[string]any{
				"success": false,
				"error":   err.Error(),
			})
		}
	}
}

type decodeError struct{ err error }

func (e decodeError) Error() string { return "invalid request payload: " + e.err.Error() }

func isDecodeError(err error) bool {
	var de decodeError
	return errors.As(err, &de)
}

func decode(req *http.Request, v any) error {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		return decodeError{err}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// resolveMaterial accepts either a catalog display name ("Steel A36")
// or a request tag ("steel_a36", "aluminum_6061"). Unknown names fall
// back to Steel A36.
func (rt *Router) resolveMaterial(name string) structural.Material {
	switch name {
	case "steel_a36":
		return structural.SteelA36()
	case "aluminum_6061":
		return structural.Aluminum6061()
	}
	if m, ok := rt.db.GetByName(name); ok {
		return m.Structural()
	}
	return structural.SteelA36()
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

type beamRequest struct {
	Material     string   `json:"material"`
	BeamType     string   `json:"beam_type"`
	Length       float64  `json:"length"`
	Load         float64  `json:"load"`
	LoadPosition *float64 `json:"load_position"`
	Width        float64  `json:"width"`
	Height       float64  `json:"height"`
}

func (rt *Router) handleBeamAnalyze(w http.ResponseWriter, req *http.Request) error {
	body := beamRequest{
		BeamType: "simply_supported",
		Length:   2.0,
		Load:     1000,
		Width:    0.05,
		Height:   0.1,
	}
	if err := decode(req, &body); err != nil {
		return err
	}

	ba := structural.NewBeamAnalyzer(rt.resolveMaterial(body.Material))

	var (
		res *structural.BeamAnalysisResult
		err error
	)
	switch body.BeamType {
	case "cantilever":
		res, err = ba.Cantilever(body.Length, body.Load, body.Width, body.Height)
	case "distributed":
		res, err = ba.UniformLoad(body.Length, body.Load, body.Width, body.Height)
	default:
		pos := body.Length / 2
		if body.LoadPosition != nil {
			pos = *body.LoadPosition
		}
		res, err = ba.SimplySupportedPointLoad(body.Length, body.Load, pos, body.Width, body.Height)
	}
	if err != nil {
		return err
	}

	return writeSuccess(w, map[string]any{
		"max_deflection": round(res.MaxDeflection, 3),
		"max_stress":     round(res.MaxStress, 2),
		"max_moment":     round(res.MaxMoment, 2),
		"max_shear":      round(res.MaxShear, 2),
		"safety_factor":  round(res.SafetyFactor, 2),
		"weight":         round(res.Weight, 3),
		"cost":           round(res.Cost, 2),
		"is_safe":        res.IsSafe(),
		"summary":        res.Summary(),
	})
}

type columnRequest struct {
	Material     string  `json:"material"`
	Length       float64 `json:"length"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	EndCondition string  `json:"end_condition"`
}

func (rt *Router) handleColumnAnalyze(w http.ResponseWriter, req *http.Request) error {
	body := columnRequest{
		Length: 3.0,
		Width:  0.1,
		Height: 0.1,
	}
	if err := decode(req, &body); err != nil {
		return err
	}

	ca := structural.NewColumnAnalyzer(rt.resolveMaterial(body.Material))
	res, err := ca.EulerBuckling(body.Length, body.Width, body.Height,
		structural.ParseEndCondition(body.EndCondition))
	if err != nil {
		return err
	}

	return writeSuccess(w, map[string]any{
		"critical_load_kn":  round(res.CriticalLoadKN, 2),
		"slenderness_ratio": round(res.SlendernessRatio, 2),
		"end_condition":     res.EndCondition.String(),
		"is_long_column":    res.IsLongColumn,
	})
}

type materialsRequest struct {
	MinStrength         float64 `json:"min_strength"`
	MaxCost             float64 `json:"max_cost"`
	MinTemp             float64 `json:"min_temp"`
	Category            string  `json:"category"`
	CorrosionResistance string  `json:"corrosion_resistance"`
	OptimizeFor         string  `json:"optimize_for"`
}

func (r materialsRequest) filter() matdb.Filter {
	return matdb.Filter{
		MinYieldStrength: r.MinStrength,
		MaxCostPerKg:     r.MaxCost,
		MinServiceTemp:   r.MinTemp,
		Category:         matdb.Category(r.Category),
		MinCorrosion:     matdb.Level(r.CorrosionResistance),
	}
}

func materialJSON(m matdb.MaterialProperties) map[string]any {
	return map[string]any{
		"name":                 m.Name,
		"grade":                m.Grade,
		"yield_strength":       m.YieldStrength,
		"ultimate_strength":    m.UltimateStrength,
		"density":              m.Density,
		"cost_per_kg":          m.CostPerKg,
		"max_service_temp":     m.MaxServiceTemp,
		"corrosion_resistance": string(m.CorrosionResistance),
		"machinability":        string(m.Machinability),
		"weldability":          string(m.Weldability),
	}
}

func (rt *Router) handleMaterialsSearch(w http.ResponseWriter, req *http.Request) error {
	var body materialsRequest
	if err := decode(req, &body); err != nil {
		return err
	}

	results := rt.db.Search(body.filter())
	materials := make([]map[string]any, 0, len(results))
	for _, m := range results {
		materials = append(materials, materialJSON(m))
	}

	return writeSuccess(w, nil, func(env map[string]any) {
		env["count"] = len(materials)
		env["materials"] = materials
	})
}

func (rt *Router) handleMaterialsRecommend(w http.ResponseWriter, req *http.Request) error {
	body := materialsRequest{OptimizeFor: "cost"}
	if err := decode(req, &body); err != nil {
		return err
	}

	selector := &matdb.Selector{DB: rt.db}
	m, ok := selector.Recommend(body.filter(), matdb.Objective(body.OptimizeFor))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"error":   "No materials found matching criteria",
		})
		return nil
	}

	return writeSuccess(w, nil, func(env map[string]any) {
		env["material"] = materialJSON(m)
	})
}

// writeSuccess emits the {"success": true, ...} envelope. results (when
// non-nil) lands under "results"; extra mutators add sibling fields.
func writeSuccess(w http.ResponseWriter, results map[string]any, extra ...func(map[string]any)) error {
	env := map[string]any{"success": true}
	if results != nil {
		env["results"] = results
	}
	for _, fn := range extra {
		fn(env)
	}
	writeJSON(w, http.StatusOK, env)
	return nil
}
