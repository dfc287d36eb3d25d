package client

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/heartrisk/internal/client/models"
	"github.com/dmitrijs2005/heartrisk/internal/logging"
)

// Scorer produces a risk score in [0,100] for one set of inputs.
type Scorer interface {
	Score(ctx context.Context, req models.ScoreRequest) (float64, error)
}

// HeartRiskRequest is the XML document the predictor expects.
type HeartRiskRequest struct {
	XMLName        xml.Name `xml:"HeartRiskRequest"`
	Age            int      `xml:"Age"`
	Sex            string   `xml:"Sex"`
	ChestPainType  string   `xml:"ChestPainType"`
	RestingBP      int      `xml:"RestingBP"`
	Cholesterol    int      `xml:"Cholesterol"`
	MaxHR          int      `xml:"MaxHR"`
	ExerciseAngina string   `xml:"ExerciseAngina"`
	Oldpeak        string   `xml:"Oldpeak"`
	STSlope        string   `xml:"ST_Slope"`
}

// NewHeartRiskRequest maps a score request onto the wire document. Oldpeak
// always carries one decimal ("1.5", "0.0").
func NewHeartRiskRequest(r models.ScoreRequest) HeartRiskRequest {
	return HeartRiskRequest{
		Age:            r.Age,
		Sex:            r.Sex,
		ChestPainType:  string(r.ChestPainType),
		RestingBP:      r.RestingBP,
		Cholesterol:    r.Cholesterol,
		MaxHR:          r.MaxHR,
		ExerciseAngina: string(r.ExerciseAngina),
		Oldpeak:        strconv.FormatFloat(r.Oldpeak, 'f', 1, 64),
		STSlope:        string(r.STSlope),
	}
}

const maxResponseBytes = 1 << 20

// HTTPScorer POSTs HeartRiskRequest documents to a fixed endpoint.
type HTTPScorer struct {
	endpoint string
	http     *http.Client
	logger   logging.Logger
}

// NewHTTPScorer creates a scorer for endpoint. timeout bounds one whole
// round-trip; zero means no limit beyond ctx.
func NewHTTPScorer(endpoint string, timeout time.Duration, logger logging.Logger) *HTTPScorer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &HTTPScorer{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Score sends req and returns the <RiskScore> value of the reply. Transport
// errors, non-2xx statuses and unreadable bodies are ErrUnavailable; a body
// without a usable score yields 0.
func (s *HTTPScorer) Score(ctx context.Context, req models.ScoreRequest) (float64, error) {
	body, err := xml.Marshal(NewHeartRiskRequest(req))
	if err != nil {
		return 0, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/xml")
	if id := GetRequestID(ctx); id != "" {
		httpReq.Header.Set(RequestIDHeader, id)
	}

	start := time.Now()
	resp, err := s.http.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	s.logger.Debug(ctx, "scorer replied",
		"request_id", GetRequestID(ctx),
		"status", resp.StatusCode,
		"elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	return ParseRiskScore(string(data)), nil
}

var riskScoreRe = regexp.MustCompile(`(?s)<RiskScore>(.*?)</RiskScore>`)

// ParseRiskScore extracts the first <RiskScore> value of body. Missing tags,
// non-numeric and non-finite values all give 0.
func ParseRiskScore(body string) float64 {
	m := riskScoreRe.FindStringSubmatch(body)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(m[1]), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
