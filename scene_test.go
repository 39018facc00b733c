package glade

import "testing"

func testScene(t *testing.T) *Scene {
	t.Helper()
	s, err := NewScene(SceneConfig{
		WorldWidth:     2400,
		ViewportWidth:  800,
		ViewportHeight: 600,
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewSceneValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  SceneConfig
	}{
		{"zero viewport", SceneConfig{WorldWidth: 2400}},
		{"negative height", SceneConfig{WorldWidth: 2400, ViewportWidth: 800, ViewportHeight: -1}},
		{"world not wider than viewport", SceneConfig{WorldWidth: 800, ViewportWidth: 800, ViewportHeight: 600}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewScene(tt.cfg); err == nil {
				t.Error("NewScene() = nil error, want validation error")
			}
		})
	}
}

func TestNewSceneDefaults(t *testing.T) {
	s := testScene(t)
	cfg := s.Config()
	if cfg.ParticleCount != defaultParticleCount {
		t.Errorf("ParticleCount = %d, want %d", cfg.ParticleCount, defaultParticleCount)
	}
	if cfg.Seed != 1 {
		t.Errorf("Seed = %d, want 1", cfg.Seed)
	}
	if len(s.particles.particles) != defaultParticleCount {
		t.Errorf("particle field size = %d, want %d", len(s.particles.particles), defaultParticleCount)
	}
}

func TestNewSceneDeterministic(t *testing.T) {
	cfg := SceneConfig{WorldWidth: 2400, ViewportWidth: 800, ViewportHeight: 600, Seed: 9}
	a, err := NewScene(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewScene(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a.particles.particles[0] != b.particles.particles[0] {
		t.Error("same seed produced different particle layouts")
	}
	if len(a.trees) != len(b.trees) || a.trees[0] != b.trees[0] {
		t.Error("same seed produced different tree layouts")
	}
	if a.stars[0] != b.stars[0] {
		t.Error("same seed produced different star fields")
	}
}

func TestSceneLayerOrderFixed(t *testing.T) {
	s := testScene(t)
	want := []struct {
		name     string
		parallax float64
	}{
		{"sky", 0},
		{"stars", 0},
		{"clouds", 0.15},
		{"farhills", 0.35},
		{"midhills", 0.62},
		{"ground", 1.0},
		{"trees", 1.0},
		{"flowers", 1.0},
		{"particles", 1.0},
		{"symbols", 1.0},
	}
	layers := s.Layers()
	if len(layers) != len(want) {
		t.Fatalf("layer count = %d, want %d", len(layers), len(want))
	}
	for i, w := range want {
		if layers[i].Name != w.name {
			t.Errorf("layer %d = %q, want %q", i, layers[i].Name, w.name)
		}
		if layers[i].Parallax != w.parallax {
			t.Errorf("layer %q parallax = %v, want %v", w.name, layers[i].Parallax, w.parallax)
		}
		if layers[i].Draw == nil {
			t.Errorf("layer %q has no draw function", w.name)
		}
	}
}

func TestSceneSymbolPlacement(t *testing.T) {
	s := testScene(t)
	syms := s.Symbols()
	if len(syms) != 4 {
		t.Fatalf("symbol count = %d, want 4", len(syms))
	}
	wantOrder := []SymbolType{SymbolSun, SymbolLeaf, SymbolStar, SymbolMoon}
	for i, typ := range wantOrder {
		if syms[i].Type != typ {
			t.Errorf("symbol %d type = %v, want %v", i, syms[i].Type, typ)
		}
	}
	// The leaf must sit inside the fast middle segment of the tod curve:
	// its reveal coincides with the quickest sky change.
	leaf := syms[1]
	scroll := s.Camera().ScrollRange()
	p := (leaf.X - 400) / scroll
	if p < 0.22 || p >= 0.52 {
		t.Errorf("leaf at range fraction %v, want inside [0.22, 0.52)", p)
	}
	// Pulse phases are staggered so no two symbols ever sync.
	for i := 0; i < len(syms); i++ {
		for j := i + 1; j < len(syms); j++ {
			if syms[i].phase == syms[j].phase {
				t.Errorf("symbols %d and %d share initial phase %v", i, j, syms[i].phase)
			}
		}
	}
}

func TestSceneUpdateAdvancesCameraAndClock(t *testing.T) {
	s := testScene(t)
	s.Update(Input{Autoscroll: true})
	if s.camera.Position == 0 {
		t.Error("autoscroll did not move the camera")
	}
	if s.frame.Clock != 1 {
		t.Errorf("clock = %v after one tick, want 1", s.frame.Clock)
	}
}

func TestSceneFrameSnapshotConsistent(t *testing.T) {
	s := testScene(t)
	for i := 0; i < 200; i++ {
		s.Update(Input{Autoscroll: true})
	}
	fr := s.Frame()
	if fr.CamX != s.camera.Position {
		t.Errorf("snapshot CamX = %v, camera at %v", fr.CamX, s.camera.Position)
	}
	wantTod := TimeOfDay(s.camera.Position, 2400, 800)
	if !approxEqual(fr.Tod, wantTod, epsilon) {
		t.Errorf("snapshot Tod = %v, want %v", fr.Tod, wantTod)
	}
	if !approxEqual(fr.NightFactor, NightFactor(wantTod), epsilon) {
		t.Errorf("snapshot NightFactor = %v, want %v", fr.NightFactor, NightFactor(wantTod))
	}
	if !approxEqual(fr.NightScale, NightScale(wantTod), epsilon) {
		t.Errorf("snapshot NightScale = %v, want %v", fr.NightScale, NightScale(wantTod))
	}
}

func TestSceneCulledSymbolsStillPulse(t *testing.T) {
	s := testScene(t)
	// Camera parked at 0: the moon (near the far end) is culled.
	moon := s.Symbols()[3]
	if moon.Visible(0, 800) {
		t.Fatal("moon unexpectedly visible at camera 0")
	}
	before := moon.phase
	for i := 0; i < 10; i++ {
		s.Update(Input{})
	}
	want := before + 10*symbolPhaseStep
	if !approxEqual(moon.phase, want, 1e-9) {
		t.Errorf("culled moon phase = %v, want %v (must keep pulsing off-screen)", moon.phase, want)
	}
}

func TestSceneTimeOfDayEndToEnd(t *testing.T) {
	s := testScene(t)
	checkpoints := []struct {
		position, want float64
	}{
		{0, 0},
		{352, 0.12},
		{832, 0.88},
		{1600, 1.0},
	}
	for _, cp := range checkpoints {
		s.camera.Position = cp.position
		s.snapshot()
		if !approxEqual(s.TimeOfDay(), cp.want, 1e-6) {
			t.Errorf("tod at position %v = %v, want %v", cp.position, s.TimeOfDay(), cp.want)
		}
	}
}

func TestSceneManualInputRespected(t *testing.T) {
	s := testScene(t)
	s.Update(Input{Direction: DirectionRight})
	right := s.camera.Position
	if right <= 0 {
		t.Fatal("manual right input did not move the camera")
	}
	s.Update(Input{Direction: DirectionLeft})
	if s.camera.Position >= right {
		t.Error("manual left input did not move the camera back")
	}
}

func TestSceneTreesRootedToGround(t *testing.T) {
	s := testScene(t)
	if len(s.trees) == 0 {
		t.Fatal("no trees generated")
	}
	for i, tr := range s.trees {
		want := s.ground.ElevationAt(tr.x) + 4
		if !approxEqual(tr.baseY, want, epsilon) {
			t.Errorf("tree %d base %v, want ground line %v", i, tr.baseY, want)
		}
		if tr.height <= 0 || tr.width <= 0 {
			t.Errorf("tree %d has degenerate shape %vx%v", i, tr.width, tr.height)
		}
	}
}
