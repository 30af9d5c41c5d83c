package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sws10436/Smart-E-Buggy/module/core/domain"
)

type ingestService interface {
	Ingest(ctx context.Context, sample *domain.LocationSample) error
}

// IngestHandler accepts one location sample per call from device
// firmware. Payloads arrive as JSON or form-encoded, with a few field
// aliases in the wild (older firmware revisions), so fields are pulled
// from a generic map rather than a fixed binding struct.
type IngestHandler struct {
	ingestSvc ingestService
	apiKey    string // empty disables the check
}

func NewIngestHandler(ingestSvc ingestService, apiKey string) *IngestHandler {
	return &IngestHandler{ingestSvc: ingestSvc, apiKey: apiKey}
}

func (h *IngestHandler) Register(r *gin.RouterGroup) {
	r.POST("/api/location", h.PostLocation)
}

func (h *IngestHandler) PostLocation(c *gin.Context) {
	data := payloadMap(c)

	key, _ := stringField(data, "api_key")
	if key == "" {
		key = c.GetHeader("X-API-KEY")
	}
	if h.apiKey != "" && key != h.apiKey {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "invalid api key"})
		return
	}

	deviceID, _ := stringField(data, "device_id", "deviceId", "device")
	lat, latOK := floatField(data, "lat", "latitude")
	lon, lonOK := floatField(data, "lon", "longitude")
	if deviceID == "" || !latOK || !lonOK {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "lat/lon missing or invalid"})
		return
	}

	speed, ok := floatField(data, "speed_kmh", "speed")
	if !ok {
		speed = 0
	}

	// absent or unparseable timestamps fall back to now, never rejected
	ts, _ := parseTimestamp(data)

	sample := &domain.LocationSample{
		DeviceID:  deviceID,
		Lat:       lat,
		Lon:       lon,
		SpeedKmh:  speed,
		Timestamp: ts,
	}

	if err := h.ingestSvc.Ingest(c.Request.Context(), sample); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to store location"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// payloadMap reads the request body into a flat map, accepting either
// JSON or form encoding.
func payloadMap(c *gin.Context) map[string]any {
	data := map[string]any{}
	if strings.Contains(c.ContentType(), "json") {
		_ = c.ShouldBindJSON(&data)
		return data
	}
	if err := c.Request.ParseForm(); err != nil {
		return data
	}
	for k, vs := range c.Request.PostForm {
		if len(vs) > 0 {
			data[k] = vs[0]
		}
	}
	return data
}

// stringField returns the first non-empty alias as a string.
func stringField(data map[string]any, keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := data[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}

// floatField returns the first alias that holds a number or a
// float-parseable string.
func floatField(data map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		v, ok := data[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n, true
		case string:
			f, err := strconv.ParseFloat(n, 64)
			if err != nil {
				continue
			}
			return f, true
		}
	}
	return 0, false
}

// parseTimestamp reads the sample timestamp under its aliases: an
// ISO-8601 string or a Unix epoch number. Absent or unparseable values
// fall back to the current UTC time; fellBack reports that the
// fallback was taken.
func parseTimestamp(data map[string]any) (ts time.Time, fellBack bool) {
	for _, k := range []string{"timestamp", "time"} {
		v, ok := data[k]
		if !ok {
			continue
		}
		switch raw := v.(type) {
		case float64:
			return time.Unix(int64(raw), 0).UTC(), false
		case string:
			if t, err := time.Parse(time.RFC3339, raw); err == nil {
				return t.UTC(), false
			}
			if epoch, err := strconv.ParseFloat(raw, 64); err == nil {
				return time.Unix(int64(epoch), 0).UTC(), false
			}
		}
	}
	return time.Now().UTC(), true
}
