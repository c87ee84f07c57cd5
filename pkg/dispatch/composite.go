package dispatch

// Composite types apply every operation to each field independently.
// Shifts broadcast the same amount to all fields.

// Vec2 is a 2-component coordinate vector.
type Vec2[T Numeric[T]] struct {
	X, Y T
}

// Vec3 is a 3-component coordinate vector.
type Vec3[T Numeric[T]] struct {
	X, Y, Z T
}

// Vec4 is a 4-component coordinate vector.
type Vec4[T Numeric[T]] struct {
	X, Y, Z, W T
}

// RGB is a 3-channel color.
type RGB[T Numeric[T]] struct {
	R, G, B T
}

// RGBA is a 4-channel color.
type RGBA[T Numeric[T]] struct {
	R, G, B, A T
}

// Extent2 is a 2-dimensional size.
type Extent2[T Numeric[T]] struct {
	Width, Height T
}

// Extent3 is a 3-dimensional size.
type Extent3[T Numeric[T]] struct {
	Width, Height, Depth T
}

func (v Vec2[T]) FastAdd(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X.FastAdd(w.X), v.Y.FastAdd(w.Y)} }
func (v Vec2[T]) FastSub(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X.FastSub(w.X), v.Y.FastSub(w.Y)} }
func (v Vec2[T]) FastMul(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X.FastMul(w.X), v.Y.FastMul(w.Y)} }
func (v Vec2[T]) FastDiv(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X.FastDiv(w.X), v.Y.FastDiv(w.Y)} }
func (v Vec2[T]) FastRem(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X.FastRem(w.X), v.Y.FastRem(w.Y)} }
func (v Vec2[T]) FastShl(n uint32) Vec2[T] { return Vec2[T]{v.X.FastShl(n), v.Y.FastShl(n)} }
func (v Vec2[T]) FastShr(n uint32) Vec2[T] { return Vec2[T]{v.X.FastShr(n), v.Y.FastShr(n)} }
func (v Vec2[T]) Invoke(m Method, rhs any) (any, error) { return invoke(v, m, rhs) }

func (v Vec3[T]) FastAdd(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X.FastAdd(w.X), v.Y.FastAdd(w.Y), v.Z.FastAdd(w.Z)} }
func (v Vec3[T]) FastSub(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X.FastSub(w.X), v.Y.FastSub(w.Y), v.Z.FastSub(w.Z)} }
func (v Vec3[T]) FastMul(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X.FastMul(w.X), v.Y.FastMul(w.Y), v.Z.FastMul(w.Z)} }
func (v Vec3[T]) FastDiv(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X.FastDiv(w.X), v.Y.FastDiv(w.Y), v.Z.FastDiv(w.Z)} }
func (v Vec3[T]) FastRem(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X.FastRem(w.X), v.Y.FastRem(w.Y), v.Z.FastRem(w.Z)} }
func (v Vec3[T]) FastShl(n uint32) Vec3[T] { return Vec3[T]{v.X.FastShl(n), v.Y.FastShl(n), v.Z.FastShl(n)} }
func (v Vec3[T]) FastShr(n uint32) Vec3[T] { return Vec3[T]{v.X.FastShr(n), v.Y.FastShr(n), v.Z.FastShr(n)} }
func (v Vec3[T]) Invoke(m Method, rhs any) (any, error) { return invoke(v, m, rhs) }

func (v Vec4[T]) FastAdd(w Vec4[T]) Vec4[T] { return Vec4[T]{v.X.FastAdd(w.X), v.Y.FastAdd(w.Y), v.Z.FastAdd(w.Z), v.W.FastAdd(w.W)} }
func (v Vec4[T]) FastSub(w Vec4[T]) Vec4[T] { return Vec4[T]{v.X.FastSub(w.X), v.Y.FastSub(w.Y), v.Z.FastSub(w.Z), v.W.FastSub(w.W)} }
func (v Vec4[T]) FastMul(w Vec4[T]) Vec4[T] { return Vec4[T]{v.X.FastMul(w.X), v.Y.FastMul(w.Y), v.Z.FastMul(w.Z), v.W.FastMul(w.W)} }
func (v Vec4[T]) FastDiv(w Vec4[T]) Vec4[T] { return Vec4[T]{v.X.FastDiv(w.X), v.Y.FastDiv(w.Y), v.Z.FastDiv(w.Z), v.W.FastDiv(w.W)} }
func (v Vec4[T]) FastRem(w Vec4[T]) Vec4[T] { return Vec4[T]{v.X.FastRem(w.X), v.Y.FastRem(w.Y), v.Z.FastRem(w.Z), v.W.FastRem(w.W)} }
func (v Vec4[T]) FastShl(n uint32) Vec4[T] { return Vec4[T]{v.X.FastShl(n), v.Y.FastShl(n), v.Z.FastShl(n), v.W.FastShl(n)} }
func (v Vec4[T]) FastShr(n uint32) Vec4[T] { return Vec4[T]{v.X.FastShr(n), v.Y.FastShr(n), v.Z.FastShr(n), v.W.FastShr(n)} }
func (v Vec4[T]) Invoke(m Method, rhs any) (any, error) { return invoke(v, m, rhs) }

func (v RGB[T]) FastAdd(w RGB[T]) RGB[T] { return RGB[T]{v.R.FastAdd(w.R), v.G.FastAdd(w.G), v.B.FastAdd(w.B)} }
func (v RGB[T]) FastSub(w RGB[T]) RGB[T] { return RGB[T]{v.R.FastSub(w.R), v.G.FastSub(w.G), v.B.FastSub(w.B)} }
func (v RGB[T]) FastMul(w RGB[T]) RGB[T] { return RGB[T]{v.R.FastMul(w.R), v.G.FastMul(w.G), v.B.FastMul(w.B)} }
func (v RGB[T]) FastDiv(w RGB[T]) RGB[T] { return RGB[T]{v.R.FastDiv(w.R), v.G.FastDiv(w.G), v.B.FastDiv(w.B)} }
func (v RGB[T]) FastRem(w RGB[T]) RGB[T] { return RGB[T]{v.R.FastRem(w.R), v.G.FastRem(w.G), v.B.FastRem(w.B)} }
func (v RGB[T]) FastShl(n uint32) RGB[T] { return RGB[T]{v.R.FastShl(n), v.G.FastShl(n), v.B.FastShl(n)} }
func (v RGB[T]) FastShr(n uint32) RGB[T] { return RGB[T]{v.R.FastShr(n), v.G.FastShr(n), v.B.FastShr(n)} }
func (v RGB[T]) Invoke(m Method, rhs any) (any, error) { return invoke(v, m, rhs) }

func (v RGBA[T]) FastAdd(w RGBA[T]) RGBA[T] { return RGBA[T]{v.R.FastAdd(w.R), v.G.FastAdd(w.G), v.B.FastAdd(w.B), v.A.FastAdd(w.A)} }
func (v RGBA[T]) FastSub(w RGBA[T]) RGBA[T] { return RGBA[T]{v.R.FastSub(w.R), v.G.FastSub(w.G), v.B.FastSub(w.B), v.A.FastSub(w.A)} }
func (v RGBA[T]) FastMul(w RGBA[T]) RGBA[T] { return RGBA[T]{v.R.FastMul(w.R), v.G.FastMul(w.G), v.B.FastMul(w.B), v.A.FastMul(w.A)} }
func (v RGBA[T]) FastDiv(w RGBA[T]) RGBA[T] { return RGBA[T]{v.R.FastDiv(w.R), v.G.FastDiv(w.G), v.B.FastDiv(w.B), v.A.FastDiv(w.A)} }
func (v RGBA[T]) FastRem(w RGBA[T]) RGBA[T] { return RGBA[T]{v.R.FastRem(w.R), v.G.FastRem(w.G), v.B.FastRem(w.B), v.A.FastRem(w.A)} }
func (v RGBA[T]) FastShl(n uint32) RGBA[T] { return RGBA[T]{v.R.FastShl(n), v.G.FastShl(n), v.B.FastShl(n), v.A.FastShl(n)} }
func (v RGBA[T]) FastShr(n uint32) RGBA[T] { return RGBA[T]{v.R.FastShr(n), v.G.FastShr(n), v.B.FastShr(n), v.A.FastShr(n)} }
func (v RGBA[T]) Invoke(m Method, rhs any) (any, error) { return invoke(v, m, rhs) }

func (v Extent2[T]) FastAdd(w Extent2[T]) Extent2[T] { return Extent2[T]{v.Width.FastAdd(w.Width), v.Height.FastAdd(w.Height)} }
func (v Extent2[T]) FastSub(w Extent2[T]) Extent2[T] { return Extent2[T]{v.Width.FastSub(w.Width), v.Height.FastSub(w.Height)} }
func (v Extent2[T]) FastMul(w Extent2[T]) Extent2[T] { return Extent2[T]{v.Width.FastMul(w.Width), v.Height.FastMul(w.Height)} }
func (v Extent2[T]) FastDiv(w Extent2[T]) Extent2[T] { return Extent2[T]{v.Width.FastDiv(w.Width), v.Height.FastDiv(w.Height)} }
func (v Extent2[T]) FastRem(w Extent2[T]) Extent2[T] { return Extent2[T]{v.Width.FastRem(w.Width), v.Height.FastRem(w.Height)} }
func (v Extent2[T]) FastShl(n uint32) Extent2[T] { return Extent2[T]{v.Width.FastShl(n), v.Height.FastShl(n)} }
func (v Extent2[T]) FastShr(n uint32) Extent2[T] { return Extent2[T]{v.Width.FastShr(n), v.Height.FastShr(n)} }
func (v Extent2[T]) Invoke(m Method, rhs any) (any, error) { return invoke(v, m, rhs) }

func (v Extent3[T]) FastAdd(w Extent3[T]) Extent3[T] { return Extent3[T]{v.Width.FastAdd(w.Width), v.Height.FastAdd(w.Height), v.Depth.FastAdd(w.Depth)} }
func (v Extent3[T]) FastSub(w Extent3[T]) Extent3[T] { return Extent3[T]{v.Width.FastSub(w.Width), v.Height.FastSub(w.Height), v.Depth.FastSub(w.Depth)} }
func (v Extent3[T]) FastMul(w Extent3[T]) Extent3[T] { return Extent3[T]{v.Width.FastMul(w.Width), v.Height.FastMul(w.Height), v.Depth.FastMul(w.Depth)} }
func (v Extent3[T]) FastDiv(w Extent3[T]) Extent3[T] { return Extent3[T]{v.Width.FastDiv(w.Width), v.Height.FastDiv(w.Height), v.Depth.FastDiv(w.Depth)} }
func (v Extent3[T]) FastRem(w Extent3[T]) Extent3[T] { return Extent3[T]{v.Width.FastRem(w.Width), v.Height.FastRem(w.Height), v.Depth.FastRem(w.Depth)} }
func (v Extent3[T]) FastShl(n uint32) Extent3[T] { return Extent3[T]{v.Width.FastShl(n), v.Height.FastShl(n), v.Depth.FastShl(n)} }
func (v Extent3[T]) FastShr(n uint32) Extent3[T] { return Extent3[T]{v.Width.FastShr(n), v.Height.FastShr(n), v.Depth.FastShr(n)} }
func (v Extent3[T]) Invoke(m Method, rhs any) (any, error) { return invoke(v, m, rhs) }
