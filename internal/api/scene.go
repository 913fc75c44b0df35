package api

import (
	"net/http"
	"strconv"

	"vector3d-calc/internal/imageio"
	"vector3d-calc/internal/raster"
	"vector3d-calc/internal/vecinput"
	"vector3d-calc/internal/vecmath"
)

const maxSceneSize = 2048

// scene renders ?v=x,y,z vectors (repeatable) as an image. Optional
// parameters: format, size, persp, grid=0, labels=0.
func (s *Server) scene(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f, err := imageio.ParseFormat(q.Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	opts := s.render
	if v := q.Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxSceneSize {
			http.Error(w, "invalid size", http.StatusBadRequest)
			return
		}
		opts.Width, opts.Height = n, n
	}
	opts.Perspective = opts.Perspective || q.Get("persp") == "1"
	opts.NoGrid = opts.NoGrid || q.Get("grid") == "0"
	opts.NoLabels = opts.NoLabels || q.Get("labels") == "0"

	vs := make([]vecmath.Vec3, 0, len(q["v"]))
	for _, text := range q["v"] {
		vs = append(vs, vecinput.ParseVec3(text))
	}
	arrows := raster.ArrowsFromNamed(vecinput.FromVecs(vs))

	data, err := s.scenes.Get(arrows, opts, f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}
