package postprocessing

import (
	"strings"
	"testing"
)

func TestDefinesKernelConstants(t *testing.T) {
	cfg := NewBlurConfig(WithKernelSize(3))
	defs := cfg.Defines()

	want := map[string]string{
		"KERNEL_SIZE":         "3",
		"KERNEL_SIZE_HALF":    "1",
		"KERNEL_SIZE_SQ":      "9",
		"KERNEL_SIZE_SQ_HALF": "4",
		"INV_KERNEL_SIZE_SQ":  "0.111111",
		"BILATERAL":           "false",
		"DEPTH_PACKING":       "0",
		"MAX_VARYING_VECTORS": "8",
		"PERSPECTIVE_CAMERA":  "false",
		"USE_NORMAL_DEPTH":    "false",
	}
	for name, wantVal := range want {
		got, ok := defs.Get(name)
		if !ok {
			t.Errorf("define %s missing", name)
			continue
		}
		if got != wantVal {
			t.Errorf("define %s = %q, want %q", name, got, wantVal)
		}
	}
}

func TestDefinesDeterministicOrder(t *testing.T) {
	a := NewBlurConfig().Defines()
	b := NewBlurConfig().Defines()

	if len(a) != len(b) {
		t.Fatalf("define counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("define %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
	if a.WGSLHeader() != b.WGSLHeader() {
		t.Error("equal configs rendered different headers")
	}
}

func TestDefinesChangeWithConfig(t *testing.T) {
	cfg := NewBlurConfig()
	before := cfg.Defines().WGSLHeader()

	cfg.SetBilateral(true)
	after := cfg.Defines().WGSLHeader()
	if before == after {
		t.Error("define header unchanged after SetBilateral")
	}

	// Uniform-level mutations must not touch the define set.
	cfg.SetSize(640, 480)
	cfg.SetScale(2)
	if got := cfg.Defines().WGSLHeader(); got != after {
		t.Error("uniform setters changed the define header")
	}
}

func TestDefinesThresholdPrecision(t *testing.T) {
	cfg := NewBlurConfig()
	cfg.SyncCamera(&CameraState{Near: 1, Far: 100, Projection: ProjectionPerspective})
	cfg.SetWorldDistanceThreshold(5)

	got, ok := cfg.Defines().Get("DISTANCE_THRESHOLD")
	if !ok {
		t.Fatal("DISTANCE_THRESHOLD missing")
	}
	// (5 - 1) / 99 with twelve decimal digits.
	if got != "0.040404040404" {
		t.Errorf("DISTANCE_THRESHOLD = %q, want 0.040404040404", got)
	}
}

func TestWGSLHeaderShape(t *testing.T) {
	header := NewBlurConfig().Defines().WGSLHeader()

	lines := strings.Split(strings.TrimSuffix(header, "\n"), "\n")
	if len(lines) != len(NewBlurConfig().Defines()) {
		t.Fatalf("header has %d lines, want %d", len(lines), len(NewBlurConfig().Defines()))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "const ") || !strings.HasSuffix(line, ";") {
			t.Errorf("malformed const declaration: %q", line)
		}
	}
	if !strings.Contains(header, "const KERNEL_SIZE: i32 = 5;") {
		t.Errorf("header missing kernel size declaration:\n%s", header)
	}
}

func TestDefinesGetMissing(t *testing.T) {
	if _, ok := NewBlurConfig().Defines().Get("NO_SUCH_DEFINE"); ok {
		t.Error("Get returned ok for a missing define")
	}
}
