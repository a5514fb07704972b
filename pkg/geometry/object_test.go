package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dcarlson/go-pathtracer/pkg/core"
	"github.com/dcarlson/go-pathtracer/pkg/material"
)

func TestObject_CheckCollision_Delegates(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	object := NewObject(sphere, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	hit, isHit := object.CheckCollision(ray, core.ZeroInfinite, nil)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	direct, _ := sphere.Hit(ray, core.ZeroInfinite, nil)
	if *hit != *direct {
		t.Errorf("Object hit %+v differs from direct shape hit %+v", hit, direct)
	}
}

func TestObject_CheckCollision_ShrunkenRange(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	object := NewObject(sphere, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	// A closer hit at t=3 was already found elsewhere
	hit, isHit := object.CheckCollision(ray, core.NewInterval(0.001, 3), nil)
	if isHit {
		t.Errorf("Expected miss with shrunken range, but got hit at t=%f", hit.T)
	}
}

func TestObject_ScatterRay_Lambertian(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.6, 0.2)
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	object := NewObject(sphere, material.NewLambertian(albedo))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	hit, isHit := object.CheckCollision(ray, core.ZeroInfinite, nil)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	scatter, didScatter := object.ScatterRay(ray, *hit, sampler)
	if !didScatter {
		t.Fatal("Lambertian should always scatter")
	}

	if scatter.Attenuation != albedo {
		t.Errorf("Attenuation = %v, want albedo %v", scatter.Attenuation, albedo)
	}
	if scatter.Scattered.Origin != hit.Point {
		t.Errorf("Scattered origin = %v, want hit point %v", scatter.Scattered.Origin, hit.Point)
	}
}

func TestObject_ScatterRay_Absorber(t *testing.T) {
	quad := NewQuad(core.NewVec3(-1, 0, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2))
	object := NewObject(quad, material.NewAbsorber())
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit, isHit := object.CheckCollision(ray, core.ZeroInfinite, nil)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if _, didScatter := object.ScatterRay(ray, *hit, sampler); didScatter {
		t.Error("Absorber should decline to scatter")
	}
}

func TestObject_BoundingBox_Delegates(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0)
	object := NewObject(sphere, material.NewAbsorber())

	bbox := object.BoundingBox()
	if bbox != sphere.BoundingBox() {
		t.Errorf("Object bounding box %v differs from shape's %v", bbox, sphere.BoundingBox())
	}
	if math.Abs(bbox.X.Size()-4) > 1e-9 {
		t.Errorf("X extent = %v, want 4", bbox.X.Size())
	}
}
