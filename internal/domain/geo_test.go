package domain

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestPointEWKBRoundTrip(t *testing.T) {
	p := Point{Lon: 5.0, Lat: 45.0}

	value, err := p.Value()
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}

	encoded, ok := value.(string)
	if !ok {
		t.Fatalf("expected string value, got %T", value)
	}

	var decoded Point
	if err := decoded.Scan(encoded); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if math.Abs(decoded.Lon-5.0) > 1e-9 || math.Abs(decoded.Lat-45.0) > 1e-9 {
		t.Fatalf("expected (5, 45), got (%f, %f)", decoded.Lon, decoded.Lat)
	}
}

func TestPointScanBytes(t *testing.T) {
	p := Point{Lon: -1.5, Lat: 47.25}
	value, _ := p.Value()

	var decoded Point
	if err := decoded.Scan([]byte(value.(string))); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if decoded != p {
		t.Fatalf("expected %v got %v", p, decoded)
	}
}

func TestPointScanRejectsGarbage(t *testing.T) {
	var p Point
	if err := p.Scan("zz-not-hex"); err == nil {
		t.Fatalf("expected error for non-hex input")
	}
	if err := p.Scan(42); err == nil {
		t.Fatalf("expected error for unsupported source type")
	}
}

func TestParseGeoJSONPoint(t *testing.T) {
	point, err := ParseGeoJSONPoint(json.RawMessage(`{"type":"Point","coordinates":[5,45]}`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if point.Lon != 5 || point.Lat != 45 {
		t.Fatalf("expected (5, 45), got (%f, %f)", point.Lon, point.Lat)
	}
}

func TestParseGeoJSONPointMalformed(t *testing.T) {
	cases := map[string]string{
		"missing coordinates": `{"type":"Point"}`,
		"wrong type":          `{"type":"Polygon","coordinates":[5,45]}`,
		"one coordinate":      `{"type":"Point","coordinates":[5]}`,
		"not json":            `{{`,
		"empty":               ``,
	}

	for name, raw := range cases {
		_, err := ParseGeoJSONPoint(json.RawMessage(raw))
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if !errors.Is(err, ErrInvalidGeometry) {
			t.Fatalf("%s: expected InvalidGeometryError, got %v", name, err)
		}
	}
}

func TestNewFeatureCollection(t *testing.T) {
	collection := NewFeatureCollection(nil)
	if collection.Type != "FeatureCollection" {
		t.Fatalf("unexpected type %q", collection.Type)
	}
	if collection.Count != 0 {
		t.Fatalf("expected count 0, got %d", collection.Count)
	}
	if collection.Features == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}
