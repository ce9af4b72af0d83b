package web

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"hueshift/internal/colorspace"
	"hueshift/internal/metrics"
	"hueshift/internal/palette"
	"hueshift/internal/ui"
)

// PaletteResponse is the JSON body of /api/palette.
type PaletteResponse struct {
	Boldness palette.Boldness `json:"boldness"`
	Warmth   palette.Warmth   `json:"warmth"`
	Scheme   string           `json:"scheme"`
	Spread   float64          `json:"spread"`
	Swatches []palette.Swatch `json:"swatches"`
}

// ConvertResponse is the JSON body of /api/convert.
type ConvertResponse struct {
	Input string         `json:"input"`
	Hex   string         `json:"hex"`
	RGB   colorspace.RGB `json:"rgb"`
	HSL   colorspace.HSL `json:"hsl"`
	CSS   string         `json:"css"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type pageSwatch struct {
	palette.Swatch
	Style template.CSS
}

type pageOption struct {
	Value   string
	Label   string
	Checked bool
}

type pageData struct {
	Swatches []pageSwatch
	Boldness []pageOption
	Warmth   []pageOption
}

// handleIndex renders the first palette at the default spread; the
// configured boldness only preselects its radio.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	p, err := s.initialPalette()
	if err != nil {
		s.fail(w, "palette_failed", http.StatusInternalServerError, err)
		return
	}

	swatches, err := p.Swatches()
	if err != nil {
		s.fail(w, "render_failed", http.StatusInternalServerError, err)
		return
	}
	s.recordPalette(palette.BoldnessBalanced.Scheme(), palette.WarmthNone)

	data := pageData{
		Boldness: []pageOption{
			{Value: string(palette.BoldnessReserved), Label: "Reserved"},
			{Value: string(palette.BoldnessBalanced), Label: "Balanced"},
			{Value: string(palette.BoldnessBold), Label: "Bold"},
		},
		Warmth: []pageOption{
			{Value: "", Label: "Any", Checked: true},
			{Value: string(palette.WarmthCool), Label: "Cool"},
			{Value: string(palette.WarmthWarm), Label: "Warm"},
		},
	}
	for i := range data.Boldness {
		data.Boldness[i].Checked = data.Boldness[i].Value == string(s.defaultBoldness)
	}
	for _, sw := range swatches {
		// CSS strings are produced by colorspace, never from request input
		data.Swatches = append(data.Swatches, pageSwatch{
			Swatch: sw,
			Style:  template.CSS("background-color: " + sw.CSS + ";"),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := s.page.Execute(w, data); err != nil {
		ui.LogStatus("error", "Page render failed: "+err.Error())
	}
}

func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		p   palette.Palette
		err error
	)
	params := palette.Params{}

	if !q.Has("boldness") && !q.Has("warmth") {
		p, err = s.initialPalette()
		params.Boldness = palette.BoldnessBalanced
	} else {
		if params.Boldness, err = palette.ParseBoldness(q.Get("boldness")); err != nil {
			s.fail(w, "bad_request", http.StatusBadRequest, err)
			return
		}
		if params.Warmth, err = palette.ParseWarmth(q.Get("warmth")); err != nil {
			s.fail(w, "bad_request", http.StatusBadRequest, err)
			return
		}
		p, err = s.generatePalette(params)
	}
	if err != nil {
		s.fail(w, "palette_failed", http.StatusInternalServerError, err)
		return
	}

	swatches, err := p.Swatches()
	if err != nil {
		s.fail(w, "render_failed", http.StatusInternalServerError, err)
		return
	}

	s.recordPalette(params.Boldness.Scheme(), params.Warmth)
	writeJSON(w, http.StatusOK, PaletteResponse{
		Boldness: params.Boldness,
		Warmth:   params.Warmth,
		Scheme:   params.Boldness.Scheme(),
		Spread:   p.Spread,
		Swatches: swatches,
	})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("hex")

	rgb, err := colorspace.HexToRGB(input)
	if err != nil {
		metrics.ConversionsTotal.WithLabelValues("invalid").Inc()
		s.fail(w, "invalid_format", http.StatusBadRequest, err)
		return
	}
	hsl, err := colorspace.RGBToHSL(rgb)
	if err != nil {
		metrics.ConversionsTotal.WithLabelValues("invalid").Inc()
		s.fail(w, "out_of_range", http.StatusBadRequest, err)
		return
	}

	metrics.ConversionsTotal.WithLabelValues("ok").Inc()
	s.stats.RecordConversion()
	writeJSON(w, http.StatusOK, ConvertResponse{
		Input: input,
		Hex:   rgb.Hex(),
		RGB:   rgb,
		HSL:   hsl,
		CSS:   hsl.CSS(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) recordPalette(scheme string, warmth palette.Warmth) {
	label := string(warmth)
	if label == "" {
		label = "any"
	}
	metrics.PalettesTotal.WithLabelValues(scheme, label).Inc()
	s.stats.RecordPalette()
}

// fail logs err, counts it and writes a JSON error body. Server errors
// hide the detail from the client.
func (s *Server) fail(w http.ResponseWriter, kind string, status int, err error) {
	metrics.ErrorsTotal.WithLabelValues(kind).Inc()
	s.stats.RecordError()

	msg := err.Error()
	if status >= http.StatusInternalServerError {
		ui.LogStatus("error", kind+": "+msg)
		msg = http.StatusText(status)
	} else {
		ui.LogStatus("debug", kind+": "+msg)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
		ui.LogStatus("debug", "response write failed: "+err.Error())
	}
}
