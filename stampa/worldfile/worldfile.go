// Package worldfile reads and writes six parameter ESRI world files; the
// .tfw companion that spatially locates an exported raster. The parameters
// are an affine transform from pixel space to world coordinates:
//
//	x = A*px + B*py + C
//	y = D*px + E*py + F
//
// where (C,F) is the world coordinate of the center of the upper left pixel.
package worldfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gdey/errors"
	"github.com/go-spatial/geom"
)

// ErrShortFile is returned when the file has fewer than six parameter lines.
const ErrShortFile = errors.String("world file needs six lines")

// ErrBadParameter is returned when a line does not parse as a float.
type ErrBadParameter struct {
	Line int
	Err  error
}

func (e ErrBadParameter) Error() string {
	return fmt.Sprintf("world file line %v: %v", e.Line, e.Err)
}

// WorldFile holds the six affine parameters, in file order.
type WorldFile struct {
	A float64 // pixel size in the x-direction
	D float64 // rotation about the y-axis
	B float64 // rotation about the x-axis
	E float64 // pixel size in the y-direction, almost always negative
	C float64 // x-coordinate of the center of the upper left pixel
	F float64 // y-coordinate of the center of the upper left pixel
}

// New returns a world file for a north-up raster without rotation.
func New(pixelSize float64, originX, originY float64) WorldFile {
	return WorldFile{
		A: pixelSize,
		E: -pixelSize,
		C: originX,
		F: originY,
	}
}

// Decode reads the six parameters, one per line.
func Decode(r io.Reader) (wf WorldFile, err error) {
	params := [...]*float64{&wf.A, &wf.D, &wf.B, &wf.E, &wf.C, &wf.F}
	scanner := bufio.NewScanner(r)
	for i := range params {
		if !scanner.Scan() {
			return wf, ErrShortFile
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
		if err != nil {
			return wf, ErrBadParameter{Line: i + 1, Err: err}
		}
		*params[i] = v
	}
	return wf, scanner.Err()
}

// Encode writes the six parameters, one per line.
func (wf WorldFile) Encode(w io.Writer) error {
	for _, v := range [...]float64{wf.A, wf.D, wf.B, wf.E, wf.C, wf.F} {
		if _, err := fmt.Fprintf(w, "%v\n", v); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a world file from the file system.
func Load(filename string) (WorldFile, error) {
	f, err := os.Open(filename)
	if err != nil {
		return WorldFile{}, err
	}
	defer f.Close()
	return Decode(f)
}

// Save writes the world file to the file system.
func (wf WorldFile) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return wf.Encode(f)
}

// pixel maps a pixel coordinate to its world coordinate.
func (wf WorldFile) pixel(px, py float64) (x, y float64) {
	return wf.A*px + wf.B*py + wf.C, wf.D*px + wf.E*py + wf.F
}

// Extent returns the georeferenced extent of a raster with the given pixel
// dimensions. The parameters locate pixel centers, so the extent is grown by
// half a pixel on every side.
func (wf WorldFile) Extent(width, height int) *geom.Extent {
	var ext *geom.Extent
	// The four outer corners, in pixel space.
	corners := [...][2]float64{
		{-0.5, -0.5},
		{float64(width) - 0.5, -0.5},
		{-0.5, float64(height) - 0.5},
		{float64(width) - 0.5, float64(height) - 0.5},
	}
	for _, c := range corners {
		x, y := wf.pixel(c[0], c[1])
		if ext == nil {
			ext = &geom.Extent{x, y, x, y}
			continue
		}
		ext[0] = math.Min(ext[0], x)
		ext[1] = math.Min(ext[1], y)
		ext[2] = math.Max(ext[2], x)
		ext[3] = math.Max(ext[3], y)
	}
	return ext
}
