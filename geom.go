package tally

import (
	"image"
	"image/draw"
	"os"

	//Formats the GRAPH command may be rendered to.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

//Pixel rectangle of the plotting region inside an image rendered by the
//TRIPOLI-4 GRAPH command. A fixed convention of that tool, not derived from
//the mesh.
const (
	geomCropX0 = 25
	geomCropY0 = 26
	geomCropX1 = 514
	geomCropY1 = 514
)

//readGeomPlot loads a geometry graph image, crops it to the GRAPH plotting
//region and reduces it to grayscale. The result is only used as auxiliary
//overlay data by the tallyplot package.
func readGeomPlot(name string) (*image.Gray, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, ParseError{UnableToOpen, name, []string{"readGeomPlot"}, true}
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, ParseError{"Could not decode geometry image: " + err.Error(), name, []string{"readGeomPlot"}, true}
	}
	gray := image.NewGray(image.Rect(0, 0, geomCropX1-geomCropX0, geomCropY1-geomCropY0))
	draw.Draw(gray, gray.Bounds(), img, image.Pt(geomCropX0, geomCropY0), draw.Src)
	return gray, nil
}
