package core

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultRotationCacheSize bounds the number of cached bases
	DefaultRotationCacheSize = 100000
	// DefaultRotationCacheTTL is how long a cached basis stays valid after it is written
	DefaultRotationCacheTTL = 10 * time.Second

	degenerateAxis = 1e-12
)

// Rotation is a 3x3 orthonormal basis mapping local coordinates into world
// coordinates. Rotations are immutable once built and safe to share between goroutines.
type Rotation struct {
	m *mat.Dense
}

// Identity returns the identity rotation
func Identity() Rotation {
	return Rotation{m: mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})}
}

// NewRotationFromColumns builds a rotation whose columns are x, y and z
func NewRotationFromColumns(x, y, z Vec3) Rotation {
	return Rotation{m: mat.NewDense(3, 3, []float64{
		x.X, y.X, z.X,
		x.Y, y.Y, z.Y,
		x.Z, y.Z, z.Z,
	})}
}

// Apply transforms v by the rotation
func (r Rotation) Apply(v Vec3) Vec3 {
	m := r.m
	return Vec3{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z,
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z,
		Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z,
	}
}

// Mul returns the matrix product r·other
func (r Rotation) Mul(other Rotation) Rotation {
	var out mat.Dense
	out.Mul(r.m, other.m)
	return Rotation{m: &out}
}

// Transpose returns the transposed basis, which is the inverse of an orthonormal rotation
func (r Rotation) Transpose() Rotation {
	return Rotation{m: mat.DenseCopyOf(r.m.T())}
}

// Column returns column j as a vector
func (r Rotation) Column(j int) Vec3 {
	return Vec3{r.m.At(0, j), r.m.At(1, j), r.m.At(2, j)}
}

// Row returns row i as a vector
func (r Rotation) Row(i int) Vec3 {
	return Vec3{r.m.At(i, 0), r.m.At(i, 1), r.m.At(i, 2)}
}

// Equal reports whether two rotations match within tolerance
func (r Rotation) Equal(other Rotation, tolerance float64) bool {
	return mat.EqualApprox(r.m, other.m, tolerance)
}

// IsNaN reports whether any entry of the basis is NaN or infinite
func (r Rotation) IsNaN() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if v := r.m.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return true
			}
		}
	}
	return false
}

// ComputeRotation builds the basis whose third axis points along angle.
// The first axis is perpendicular to up and angle; when angle is parallel to up
// the fallback is used in its place, and when that is parallel too the world
// axis least aligned with angle is used. The basis is returned with the axes
// as columns so it maps camera-local coordinates to world coordinates.
func ComputeRotation(angle, up, fallback Vec3) Rotation {
	w := angle.Normalize()
	u := up.Normalize().Cross(w)
	if degenerate(u) {
		u = fallback.Cross(w)
	}
	if degenerate(u) {
		u = leastAligned(w).Cross(w)
	}
	u = u.Normalize()
	v := w.Cross(u)

	return NewRotationFromColumns(u, v, w)
}

func degenerate(v Vec3) bool {
	return v.IsNaN() || v.Length() < degenerateAxis
}

// leastAligned returns the world axis with the smallest component along w
func leastAligned(w Vec3) Vec3 {
	x, y, z := math.Abs(w.X), math.Abs(w.Y), math.Abs(w.Z)
	switch {
	case x <= y && x <= z:
		return NewVec3(1, 0, 0)
	case y <= z:
		return NewVec3(0, 1, 0)
	default:
		return NewVec3(0, 0, 1)
	}
}

// Rotator produces rotation bases
type Rotator interface {
	Rotate(angle, up, fallback Vec3) Rotation
}

type rotationKey struct {
	angle, up, fallback Vec3
}

// RotationCache memoizes ComputeRotation. It is bounded in size and entries
// expire a fixed time after they are written. Entries are pure functions of
// their key, so a miss only costs a recomputation. A RotationCache is safe for
// concurrent use; a nil *RotationCache computes every basis directly.
type RotationCache struct {
	entries *expirable.LRU[rotationKey, Rotation]
	hits    atomic.Int64
	misses  atomic.Int64
}

// NewRotationCache creates a cache holding at most size bases for ttl each
func NewRotationCache(size int, ttl time.Duration) *RotationCache {
	return &RotationCache{
		entries: expirable.NewLRU[rotationKey, Rotation](size, nil, ttl),
	}
}

// NewDefaultRotationCache creates a cache with the default bounds
func NewDefaultRotationCache() *RotationCache {
	return NewRotationCache(DefaultRotationCacheSize, DefaultRotationCacheTTL)
}

// Rotate returns the cached basis for the exact (angle, up, fallback) triple,
// computing and storing it on a miss
func (c *RotationCache) Rotate(angle, up, fallback Vec3) Rotation {
	if c == nil {
		return ComputeRotation(angle, up, fallback)
	}

	key := rotationKey{angle: angle, up: up, fallback: fallback}
	if rotation, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		return rotation
	}

	c.misses.Add(1)
	rotation := ComputeRotation(angle, up, fallback)
	c.entries.Add(key, rotation)
	return rotation
}

// RotationCacheStats is a point-in-time view of cache effectiveness
type RotationCacheStats struct {
	Hits    int64
	Misses  int64
	Entries int
}

// HitRate returns the fraction of lookups served from the cache
func (s RotationCacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns hit and miss counters and the current entry count
func (c *RotationCache) Stats() RotationCacheStats {
	if c == nil {
		return RotationCacheStats{}
	}
	return RotationCacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.entries.Len(),
	}
}

// Purge drops every cached basis
func (c *RotationCache) Purge() {
	if c == nil {
		return
	}
	c.entries.Purge()
}
