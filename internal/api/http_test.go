package api

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vector3d-calc/internal/history"
	"vector3d-calc/internal/imageio"
	"vector3d-calc/internal/raster"
	"vector3d-calc/internal/scenecache"
)

func newTestServer(t *testing.T) (*httptest.Server, *history.MemoryStore) {
	t.Helper()
	store := history.NewMemoryStore()
	s := NewServer(store, scenecache.New(8, scenecache.Encoded), Options{
		Render: raster.Options{Width: 64, Height: 64, Supersample: 1},
	})
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv, store
}

func do(t *testing.T, srv *httptest.Server, method, path, user, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if user != "" {
		req.Header.Set(UserHeader, user)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatal(err)
	}
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := do(t, srv, http.MethodGet, "/health", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
}

func TestOperation(t *testing.T) {
	srv, store := newTestServer(t)

	var mag struct{ Magnitude float64 }
	decode(t, do(t, srv, http.MethodPost, "/ops/magnitude", "u1", `{"vectors":[{"x":3,"y":4,"z":0}]}`), &mag)
	if mag.Magnitude != 5 {
		t.Fatalf("magnitude %v", mag.Magnitude)
	}

	var cross struct {
		Vector struct{ X, Y, Z float64 }
	}
	decode(t, do(t, srv, http.MethodPost, "/ops/cross", "u1", `{"vectors":[{"x":1},{"y":1}]}`), &cross)
	if cross.Vector.Z != 1 {
		t.Fatalf("cross %+v", cross)
	}

	recs, _ := store.List(t.Context(), "u1", 0)
	if len(recs) != 2 || recs[0].Kind != history.KindCrossProduct {
		t.Fatalf("recorded %+v", recs)
	}
}

func TestOperationErrors(t *testing.T) {
	srv, _ := newTestServer(t)
	if resp := do(t, srv, http.MethodPost, "/ops/curl", "", `{}`); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown op status %d", resp.StatusCode)
	}
	if resp := do(t, srv, http.MethodPost, "/ops/dot", "", `{"vectors":[{"x":1}]}`); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("short input status %d", resp.StatusCode)
	}
	if resp := do(t, srv, http.MethodPost, "/ops/sum", "", `{`); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad json status %d", resp.StatusCode)
	}
	if resp := do(t, srv, http.MethodGet, "/ops/sum", "", ""); resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("GET status %d", resp.StatusCode)
	}
}

func TestAnonymousNotRecorded(t *testing.T) {
	srv, store := newTestServer(t)
	do(t, srv, http.MethodPost, "/ops/sum", "", `{"vectors":[{"x":1}]}`)
	do(t, srv, http.MethodPost, "/solve/field", "", "")
	if recs, _ := store.List(t.Context(), "", 0); len(recs) != 0 {
		t.Fatalf("anonymous calls recorded: %+v", recs)
	}
}

func TestOperationsReport(t *testing.T) {
	srv, store := newTestServer(t)
	var rep struct {
		Magnitudes []struct{ Name string }
		Pair       *struct{ Dot float64 }
	}
	decode(t, do(t, srv, http.MethodPost, "/ops", "u1", `{"vectors":[{"x":1,"y":2,"z":3},{"x":4,"y":5,"z":6}]}`), &rep)
	if len(rep.Magnitudes) != 2 || rep.Magnitudes[1].Name != "v2" || rep.Pair == nil || rep.Pair.Dot != 32 {
		t.Fatalf("report %+v", rep)
	}
	if recs, _ := store.List(t.Context(), "u1", 0); len(recs) != 0 {
		t.Fatal("report was recorded")
	}
}

func TestSolveDefaultsAndBody(t *testing.T) {
	srv, _ := newTestServer(t)

	var cable struct {
		ResultantMagnitude float64
	}
	decode(t, do(t, srv, http.MethodPost, "/solve/cable-tension", "", ""), &cable)
	if math.Abs(cable.ResultantMagnitude-164.77) > 0.01 {
		t.Fatalf("default cable resultant %v", cable.ResultantMagnitude)
	}

	var field struct {
		Intensity float64
	}
	decode(t, do(t, srv, http.MethodPost, "/solve/field", "", `{"field":{"x":0,"y":3,"z":4}}`), &field)
	if field.Intensity != 5 {
		t.Fatalf("field intensity %v", field.Intensity)
	}

	var robot struct{ Work float64 }
	decode(t, do(t, srv, http.MethodPost, "/solve/robot", "", ""), &robot)
	if robot.Work != -20 {
		t.Fatalf("robot work %v", robot.Work)
	}

	if resp := do(t, srv, http.MethodPost, "/solve/orbit", "", ""); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown problem status %d", resp.StatusCode)
	}
}

func TestHistoryEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	if resp := do(t, srv, http.MethodGet, "/history", "", ""); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous list status %d", resp.StatusCode)
	}
	if resp := do(t, srv, http.MethodDelete, "/history/x", "", ""); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous delete status %d", resp.StatusCode)
	}

	for i := 0; i < 3; i++ {
		do(t, srv, http.MethodPost, "/solve/structure", "u1", "")
	}
	do(t, srv, http.MethodPost, "/solve/structure", "u2", "")

	var list []struct {
		ID    string `json:"id"`
		Kind  string `json:"operation_type"`
		Label string `json:"label"`
	}
	decode(t, do(t, srv, http.MethodGet, "/history?limit=2", "u1", ""), &list)
	if len(list) != 2 || list[0].Kind != "structure_analysis" || list[0].Label == "" {
		t.Fatalf("list %+v", list)
	}

	if resp := do(t, srv, http.MethodGet, "/history?limit=abc", "u1", ""); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad limit status %d", resp.StatusCode)
	}

	if resp := do(t, srv, http.MethodDelete, "/history/"+list[0].ID, "u2", ""); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("cross-user delete status %d", resp.StatusCode)
	}
	if resp := do(t, srv, http.MethodDelete, "/history/"+list[0].ID, "u1", ""); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status %d", resp.StatusCode)
	}
	decode(t, do(t, srv, http.MethodGet, "/history", "u1", ""), &list)
	if len(list) != 2 {
		t.Fatalf("after delete %d records", len(list))
	}
}

func TestScene(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := do(t, srv, http.MethodGet, "/scene?v=1,2,3&v=(4%205%206)&format=png&size=40", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type %q", ct)
	}
	var buf bytes.Buffer
	buf.ReadFrom(resp.Body)
	img, err := imageio.Decode(&buf, imageio.PNG)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 40 {
		t.Fatalf("width %d", img.Bounds().Dx())
	}

	if resp := do(t, srv, http.MethodGet, "/scene?format=gif", "", ""); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad format status %d", resp.StatusCode)
	}
	if resp := do(t, srv, http.MethodGet, "/scene?size=99999", "", ""); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad size status %d", resp.StatusCode)
	}
}

func TestHugeVectorsAnswerWithABody(t *testing.T) {
	srv, _ := newTestServer(t)

	var ang struct{ Degrees float64 }
	decode(t, do(t, srv, http.MethodPost, "/ops/angle", "", `{"vectors":[{"x":1e200},{"x":1e200}]}`), &ang)
	if ang.Degrees != 0 {
		t.Fatalf("angle %v", ang.Degrees)
	}

	var proj struct{ Scalar float64 }
	decode(t, do(t, srv, http.MethodPost, "/ops/projection", "", `{"vectors":[{"x":1e200},{"x":1e200}]}`), &proj)
	if proj.Scalar != 1e200 {
		t.Fatalf("projection %v", proj.Scalar)
	}

	// 1e200·1e200 overflows to +Inf, which JSON cannot carry.
	resp := do(t, srv, http.MethodPost, "/ops/dot", "", `{"vectors":[{"x":1e200},{"x":1e200}]}`)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("dot status %d", resp.StatusCode)
	}
	var buf bytes.Buffer
	buf.ReadFrom(resp.Body)
	if buf.Len() == 0 {
		t.Fatal("empty error body")
	}
}

func TestSolveRejectsWrongVectorCount(t *testing.T) {
	srv, store := newTestServer(t)
	for _, tc := range []struct{ path, body string }{
		{"/solve/cable", `{"cables":[{"x":1}]}`},
		{"/solve/cable", `{"cables":[{"x":1},{"x":2},{"x":3},{"x":4}]}`},
		{"/solve/structure", `{"vectors":[]}`},
		{"/solve/robot", `{"moves":[{"x":1},{"y":1}]}`},
	} {
		if resp := do(t, srv, http.MethodPost, tc.path, "u1", tc.body); resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s %s: status %d", tc.path, tc.body, resp.StatusCode)
		}
	}
	if recs, _ := store.List(t.Context(), "u1", 0); len(recs) != 0 {
		t.Fatalf("rejected input recorded: %+v", recs)
	}

	var torque struct{ TorqueMagnitude float64 }
	decode(t, do(t, srv, http.MethodPost, "/solve/structure", "", `{"vectors":[{"x":1},{"y":2}]}`), &torque)
	if torque.TorqueMagnitude != 2 {
		t.Fatalf("torque %+v", torque)
	}
}
