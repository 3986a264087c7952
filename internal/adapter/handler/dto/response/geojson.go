package response

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/marcos-nsantos/quadtree-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/quadtree-backend/internal/quadtree"
)

// PointsToFeatureCollection renders query results as GeoJSON points. Index
// coordinates are written as-is; they are not assumed to be lon/lat.
func PointsToFeatureCollection(points []valueobject.Point) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, p := range points {
		fc.Append(geojson.NewFeature(orb.Point{p.X, p.Y}))
	}
	return fc
}

// NodesToFeatureCollection renders each node boundary as a polygon, tagged
// with its depth, own point count and divided flag.
func NodesToFeatureCollection(nodes []quadtree.NodeInfo) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, n := range nodes {
		feature := geojson.NewFeature(boxPolygon(n.Boundary))
		feature.Properties["depth"] = n.Depth
		feature.Properties["points"] = n.Points
		feature.Properties["divided"] = n.Divided
		fc.Append(feature)
	}
	return fc
}

func boxPolygon(bb valueobject.BoundingBox) orb.Polygon {
	ring := orb.Ring{
		{bb.MinX(), bb.MinY()},
		{bb.MaxX(), bb.MinY()},
		{bb.MaxX(), bb.MaxY()},
		{bb.MinX(), bb.MaxY()},
		{bb.MinX(), bb.MinY()},
	}
	return orb.Polygon{ring}
}
