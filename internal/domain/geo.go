package domain

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
)

// SRID4326 is the WGS84 geographic coordinate reference system used for
// all stored point geometry.
const SRID4326 = 4326

const (
	ewkbPointType = 1
	ewkbSRIDFlag  = 0x20000000
)

// Point is a WGS84 point geometry. It maps to a PostGIS
// geometry(Point,4326) column via hex-encoded EWKB.
type Point struct {
	Lon float64
	Lat float64
}

// Value encodes the point as hex EWKB, which PostGIS accepts as input for
// geometry columns.
func (p Point) Value() (driver.Value, error) {
	buf := make([]byte, 25)
	buf[0] = 1 // little endian
	binary.LittleEndian.PutUint32(buf[1:5], ewkbPointType|ewkbSRIDFlag)
	binary.LittleEndian.PutUint32(buf[5:9], SRID4326)
	binary.LittleEndian.PutUint64(buf[9:17], math.Float64bits(p.Lon))
	binary.LittleEndian.PutUint64(buf[17:25], math.Float64bits(p.Lat))
	return hex.EncodeToString(buf), nil
}

// Scan decodes hex EWKB as returned by PostGIS for geometry columns.
func (p *Point) Scan(src any) error {
	var encoded string
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		encoded = v
	case []byte:
		encoded = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Point", src)
	}

	raw, err := hex.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("malformed geometry encoding: %w", err)
	}
	if len(raw) < 21 {
		return fmt.Errorf("geometry too short: %d bytes", len(raw))
	}

	var order binary.ByteOrder = binary.LittleEndian
	if raw[0] == 0 {
		order = binary.BigEndian
	}

	gtype := order.Uint32(raw[1:5])
	offset := 5
	if gtype&ewkbSRIDFlag != 0 {
		offset += 4 // skip SRID, always stored as 4326
	}
	if gtype&0xFFFF != ewkbPointType {
		return fmt.Errorf("unexpected geometry type %d, want point", gtype&0xFFFF)
	}
	if len(raw) < offset+16 {
		return fmt.Errorf("geometry too short: %d bytes", len(raw))
	}

	p.Lon = math.Float64frombits(order.Uint64(raw[offset : offset+8]))
	p.Lat = math.Float64frombits(order.Uint64(raw[offset+8 : offset+16]))
	return nil
}

// GormDataType tells the migrator which column type to create.
func (Point) GormDataType() string {
	return fmt.Sprintf("geometry(Point,%d)", SRID4326)
}

// Geometry is the GeoJSON geometry object rendered in responses.
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// GeoJSON returns the point as a GeoJSON geometry object.
func (p Point) GeoJSON() Geometry {
	return Geometry{Type: "Point", Coordinates: []float64{p.Lon, p.Lat}}
}

// ParseGeoJSONPoint converts a GeoJSON geometry payload into a Point.
// Anything that is not a valid two-coordinate point yields
// InvalidGeometryError.
func ParseGeoJSONPoint(raw json.RawMessage) (Point, error) {
	if len(raw) == 0 {
		return Point{}, InvalidGeometryError{Reason: "missing geometry"}
	}

	var geom struct {
		Type        string    `json:"type"`
		Coordinates []float64 `json:"coordinates"`
	}
	if err := json.Unmarshal(raw, &geom); err != nil {
		return Point{}, InvalidGeometryError{Reason: err.Error()}
	}
	if geom.Type != "Point" {
		return Point{}, InvalidGeometryError{Reason: fmt.Sprintf("unsupported geometry type %q", geom.Type)}
	}
	if len(geom.Coordinates) < 2 {
		return Point{}, InvalidGeometryError{Reason: "point requires two coordinates"}
	}

	return Point{Lon: geom.Coordinates[0], Lat: geom.Coordinates[1]}, nil
}

// Feature pairs a geometry with serialized row properties.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// FeatureCollection groups features and carries the row count expected by
// the REST contract.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Count    int       `json:"count"`
	Features []Feature `json:"features"`
}

// NewFeatureCollection builds a collection from the given features,
// normalizing nil slices to empty ones.
func NewFeatureCollection(features []Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return FeatureCollection{
		Type:     "FeatureCollection",
		Count:    len(features),
		Features: features,
	}
}
