// Package geodatum converts between geographic coordinates and the
// UTM, MGRS, British National Grid and Japan Plane-Rectangular Grid
// projections, shifts points between reference datums via a
// seven-parameter Helmert transform, and solves the geodesic direct
// and inverse problems on an ellipsoid.
package geodatum
