package core

// Material is the shading response attached to a surface.
// Geometry only holds and forwards it; the shading code owns its behavior.
// One material value may be shared by any number of shapes and hits.
type Material interface{}

// Hittable interface for objects that can be hit by rays
type Hittable interface {
	// Hit returns the closest intersection whose t lies strictly inside rayT.
	// It must not modify the ray, the interval or the receiver.
	Hit(ray Ray, rayT Interval) (*HitRecord, bool)
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Point    // Point of intersection
	Normal    Vec3     // Unit surface normal, facing against the ray
	Material  Material // Material of the hit object
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether ray hit the outside of the surface
}

// NewHitRecord builds a complete hit record, orienting outwardNormal against the ray
func NewHitRecord(ray Ray, point Point, outwardNormal Vec3, material Material, t float64) *HitRecord {
	rec := &HitRecord{
		Point:    point,
		Material: material,
		T:        t,
	}
	rec.SetFaceNormal(ray, outwardNormal)
	return rec
}

// SetFaceNormal sets the normal vector and determines front/back face.
// A ray travelling along the outward normal is inside the surface, so the
// normal is flipped. A ray perpendicular to it counts as a front face hit.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) <= 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
