package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/calderov/miniray/types"
)

func testHitRecord() HitRecord {
	return HitRecord{
		Point:     types.XYZ(0, 0, -1),
		Normal:    types.XYZ(0, 0, 1),
		T:         1,
		FrontFace: true,
	}
}

func TestLambertianScatter(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	mat := Lambertian{Albedo: types.XYZ(0.5, 0.6, 0.7)}
	rec := testHitRecord()

	for i := 0; i < 100; i++ {
		att, out, ok := mat.Scatter(types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1)), rec, rng)
		if !ok {
			t.Fatal("expected lambertian to always scatter")
		}
		if att != mat.Albedo {
			t.Fatalf("expected attenuation %v; got %v", mat.Albedo, att)
		}
		if out.Origin != rec.Point {
			t.Fatalf("expected scattered ray origin at hit point; got %v", out.Origin)
		}
		// Scatter directions stay within the normal-centered unit sphere.
		if out.Dir.Sub(rec.Normal).Len() >= 1.0+1e-9 {
			t.Fatalf("scatter direction %v outside expected bound", out.Dir)
		}
	}
}

func TestMetalScatter(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	mat := Metal{Albedo: types.XYZ(0.8, 0.8, 0.8)}
	rec := testHitRecord()

	in := types.NewRay(types.XYZ(0, 0, 0), types.XYZ(1, 0, -1))
	_, out, ok := mat.Scatter(in, rec, rng)
	if !ok {
		t.Fatal("expected reflection off metal surface")
	}
	exp := types.XYZ(1, 0, 1).Normalize()
	if out.Dir.Sub(exp).Len() > 1e-9 {
		t.Fatalf("expected mirror reflection %v; got %v", exp, out.Dir)
	}

	// Grazing rays fuzzed into the surface are absorbed.
	fuzzy := Metal{Albedo: types.XYZ(0.8, 0.8, 0.8), Fuzz: 1.0}
	grazing := types.NewRay(types.XYZ(0, 0, 0), types.XYZ(1, 0, -1e-6))
	absorbed := false
	for i := 0; i < 100; i++ {
		if _, _, ok := fuzzy.Scatter(grazing, rec, rng); !ok {
			absorbed = true
			break
		}
	}
	if !absorbed {
		t.Fatal("expected fuzzed grazing reflection to be absorbed at least once")
	}
}

func TestDielectricScatter(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	mat := Dielectric{RefIdx: 1.5}
	rec := testHitRecord()

	// Head-on rays transmit straight through regardless of reflectance.
	in := types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1))
	att, out, ok := mat.Scatter(in, rec, rng)
	if !ok {
		t.Fatal("expected dielectric to always scatter")
	}
	if att != types.XYZ(1, 1, 1) {
		t.Fatalf("expected no attenuation; got %v", att)
	}
	if math.Abs(out.Dir[2]) < 1e-9 {
		t.Fatalf("expected transmission or reflection along z; got %v", out.Dir)
	}

	// Shallow exit angles from a dense medium reflect internally.
	internal := HitRecord{
		Point:     types.XYZ(0, 0, -1),
		Normal:    types.XYZ(0, 0, 1),
		FrontFace: false,
	}
	in = types.NewRay(types.XYZ(0, 0, 0), types.XYZ(1, 0, -0.1))
	_, out, ok = mat.Scatter(in, internal, rng)
	if !ok {
		t.Fatal("expected total internal reflection to scatter")
	}
	if out.Dir[2] <= 0 {
		t.Fatalf("expected reflected direction with positive z; got %v", out.Dir)
	}
}

func TestAbsorberScatter(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	if _, _, ok := (Absorber{}).Scatter(types.Ray{}, testHitRecord(), rng); ok {
		t.Fatal("expected absorber to never scatter")
	}
}

func TestRandomUnitVector(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		v := randomUnitVector(rng)
		if math.Abs(v.Len()-1.0) > 1e-9 {
			t.Fatalf("[draw %d] expected unit length; got %f", i, v.Len())
		}
	}
}

func TestPresetLookup(t *testing.T) {
	for _, p := range Presets() {
		got, exists := Lookup(p.Name)
		if !exists {
			t.Fatalf("expected preset %q to resolve", p.Name)
		}
		if got.Build() == nil {
			t.Fatalf("expected preset %q to build a world", p.Name)
		}
	}

	if _, exists := Lookup("no-such-scene"); exists {
		t.Fatal("expected unknown preset lookup to fail")
	}
}
