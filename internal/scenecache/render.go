package scenecache

import (
	"bytes"

	"vector3d-calc/internal/imageio"
	"vector3d-calc/internal/raster"
)

// Encoded renders the scene and encodes it; it is the Renderer used outside
// tests.
func Encoded(arrows []raster.Arrow, opts raster.Options, f imageio.Format) ([]byte, error) {
	img := raster.RenderScene(arrows, opts)
	var buf bytes.Buffer
	if err := imageio.Encode(&buf, img, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
