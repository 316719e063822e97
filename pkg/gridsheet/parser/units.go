// Package parser converts grids to and from excelize workbooks.
package parser

// PointsPerPixel is the number of typographic points per CSS pixel at 96 DPI.
// 1 inch = 72 points, 1 inch = 96 pixels at 96 DPI
// Therefore: 72 / 96 = 0.75 points per pixel
const PointsPerPixel = 72.0 / 96.0

// PixelsToPoints converts a font size in pixels to the points Excel uses.
func PixelsToPoints(px int) float64 {
	return float64(px) * PointsPerPixel
}
