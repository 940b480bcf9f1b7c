package ausar

import (
	"encoding/binary"
	"io"
)

// This file catalogs the tag format's primitive field kinds: the leaf
// types that a TagStructure's fixed-width fields are built from. Each
// kind's numeric comment (_0, _8, _1A, ...) is the kind tag used
// upstream to identify it in a tag structure's layout metadata.

// FieldString is tag field kind _0: a 32-byte fixed-width string,
// usually a short name.
type FieldString struct{ Value string }

func (f *FieldString) Read(r io.Reader) error {
	v, err := readFixedString(r, 32)
	if err != nil {
		return err
	}
	f.Value = v
	return nil
}

// FieldLongString is tag field kind _1: a 256-byte fixed-width string,
// usually a path.
type FieldLongString struct{ Value string }

func (f *FieldLongString) Read(r io.Reader) error {
	v, err := readFixedString(r, 256)
	if err != nil {
		return err
	}
	f.Value = v
	return nil
}

// FieldStringID is tag field kind _2: a 32-bit MurmurHash3_x86 value.
type FieldStringID struct{ Value int32 }

func (f *FieldStringID) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldCharInteger is tag field kind _4: a signed 8-bit integer.
type FieldCharInteger struct{ Value int8 }

func (f *FieldCharInteger) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldShortInteger is tag field kind _5: a signed 16-bit integer.
type FieldShortInteger struct{ Value int16 }

func (f *FieldShortInteger) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldLongInteger is tag field kind _6: a signed 32-bit integer.
type FieldLongInteger struct{ Value int32 }

func (f *FieldLongInteger) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldInt64Integer is tag field kind _7: a signed 64-bit integer.
type FieldInt64Integer struct{ Value int64 }

func (f *FieldInt64Integer) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldAngle is tag field kind _8: an angle stored as a 32-bit float.
type FieldAngle struct{ Value float32 }

func (f *FieldAngle) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldCharEnum is tag field kind _A: an 8-bit enum value. T is the
// caller's named enum type over an 8-bit underlying type; the raw byte
// is not validated against T's declared variants.
type FieldCharEnum[T ~uint8] struct{ Value T }

func (f *FieldCharEnum[T]) Read(r io.Reader) error {
	var raw uint8
	if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
		return err
	}
	f.Value = T(raw)
	return nil
}

// FieldShortEnum is tag field kind _B: a 16-bit enum value.
type FieldShortEnum[T ~uint16] struct{ Value T }

func (f *FieldShortEnum[T]) Read(r io.Reader) error {
	var raw uint16
	if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
		return err
	}
	f.Value = T(raw)
	return nil
}

// FieldLongEnum is tag field kind _C: a 32-bit enum value.
type FieldLongEnum[T ~uint32] struct{ Value T }

func (f *FieldLongEnum[T]) Read(r io.Reader) error {
	var raw uint32
	if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
		return err
	}
	f.Value = T(raw)
	return nil
}

// FieldLongFlags is tag field kind _D: 32-bit bitflags.
type FieldLongFlags[T ~uint32] struct{ Value T }

func (f *FieldLongFlags[T]) Read(r io.Reader) error {
	var raw uint32
	if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
		return err
	}
	f.Value = T(raw)
	return nil
}

// FieldWordFlags is tag field kind _E: 16-bit bitflags.
type FieldWordFlags[T ~uint16] struct{ Value T }

func (f *FieldWordFlags[T]) Read(r io.Reader) error {
	var raw uint16
	if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
		return err
	}
	f.Value = T(raw)
	return nil
}

// FieldByteFlags is tag field kind _F: 8-bit bitflags.
type FieldByteFlags[T ~uint8] struct{ Value T }

func (f *FieldByteFlags[T]) Read(r io.Reader) error {
	var raw uint8
	if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
		return err
	}
	f.Value = T(raw)
	return nil
}

// FieldPoint2D is tag field kind _10: a 2D point of unsigned shorts.
type FieldPoint2D struct{ X, Y uint16 }

func (f *FieldPoint2D) Read(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &f.X); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, &f.Y)
}

// FieldRectangle2D is tag field kind _11: a 2D rectangle of unsigned
// shorts.
type FieldRectangle2D struct{ X, Y uint16 }

func (f *FieldRectangle2D) Read(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &f.X); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, &f.Y)
}

// FieldRGBColor is tag field kind _12: an RGB color with an unused alpha
// byte, stored as four unsigned bytes.
type FieldRGBColor struct{ R, G, B, A uint8 }

func (f *FieldRGBColor) Read(r io.Reader) error {
	buf := []*uint8{&f.R, &f.G, &f.B, &f.A}
	for _, p := range buf {
		if err := binary.Read(r, binary.LittleEndian, p); err != nil {
			return err
		}
	}
	return nil
}

// FieldARGBColor is tag field kind _13: an ARGB color stored as four
// unsigned bytes.
type FieldARGBColor struct{ R, G, B, A uint8 }

func (f *FieldARGBColor) Read(r io.Reader) error {
	buf := []*uint8{&f.R, &f.G, &f.B, &f.A}
	for _, p := range buf {
		if err := binary.Read(r, binary.LittleEndian, p); err != nil {
			return err
		}
	}
	return nil
}

// FieldReal is tag field kind _14: a real number stored as a 32-bit
// float.
type FieldReal struct{ Value float32 }

func (f *FieldReal) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldRealFraction is tag field kind _15: a fractional real value
// stored as a 32-bit float.
type FieldRealFraction struct{ Value float32 }

func (f *FieldRealFraction) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldRealPoint2D is tag field kind _16: a 2D point of floats.
type FieldRealPoint2D struct{ X, Y float32 }

func (f *FieldRealPoint2D) Read(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &f.X); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, &f.Y)
}

// FieldRealPoint3D is tag field kind _17: a 3D point of floats.
type FieldRealPoint3D struct{ X, Y, Z float32 }

func (f *FieldRealPoint3D) Read(r io.Reader) error {
	vals := []*float32{&f.X, &f.Y, &f.Z}
	for _, v := range vals {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return nil
}

// FieldRealVector2D is tag field kind _18: a 2D vector of floats.
type FieldRealVector2D struct{ X, Y float32 }

func (f *FieldRealVector2D) Read(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &f.X); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, &f.Y)
}

// FieldRealVector3D is tag field kind _19: a 3D vector of floats.
type FieldRealVector3D struct{ X, Y, Z float32 }

func (f *FieldRealVector3D) Read(r io.Reader) error {
	vals := []*float32{&f.X, &f.Y, &f.Z}
	for _, v := range vals {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return nil
}

// FieldRealQuaternion is tag field kind _1A: a rotation quaternion of
// four floats.
type FieldRealQuaternion struct{ X, Y, Z, W float32 }

func (f *FieldRealQuaternion) Read(r io.Reader) error {
	vals := []*float32{&f.X, &f.Y, &f.Z, &f.W}
	for _, v := range vals {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return nil
}

// FieldRealEulerAngles2D is tag field kind _1B: a 2D Euler angle of
// floats.
type FieldRealEulerAngles2D struct{ X, Y float32 }

func (f *FieldRealEulerAngles2D) Read(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &f.X); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, &f.Y)
}

// FieldRealEularAngles3D is tag field kind _1C: a 3D Euler angle of
// floats. The name preserves the upstream format's typo.
type FieldRealEularAngles3D struct{ X, Y, Z float32 }

func (f *FieldRealEularAngles3D) Read(r io.Reader) error {
	vals := []*float32{&f.X, &f.Y, &f.Z}
	for _, v := range vals {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return nil
}

// FieldRealPlane2D is tag field kind _1D: a 2D plane (x, y, d) of
// floats.
type FieldRealPlane2D struct{ X, Y, D float32 }

func (f *FieldRealPlane2D) Read(r io.Reader) error {
	vals := []*float32{&f.X, &f.Y, &f.D}
	for _, v := range vals {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return nil
}

// FieldRealPlane3D is tag field kind _1E: a 3D plane (x, y, z, d) of
// floats.
type FieldRealPlane3D struct{ X, Y, Z, D float32 }

func (f *FieldRealPlane3D) Read(r io.Reader) error {
	vals := []*float32{&f.X, &f.Y, &f.Z, &f.D}
	for _, v := range vals {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return nil
}

// FieldRealRGBColor is tag field kind _1F: an RGB color of floats.
type FieldRealRGBColor struct{ R, G, B float32 }

func (f *FieldRealRGBColor) Read(r io.Reader) error {
	vals := []*float32{&f.R, &f.G, &f.B}
	for _, v := range vals {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return nil
}

// FieldRealARGBColor is tag field kind _20: an ARGB color of floats.
type FieldRealARGBColor struct{ A, R, G, B float32 }

func (f *FieldRealARGBColor) Read(r io.Reader) error {
	vals := []*float32{&f.A, &f.R, &f.G, &f.B}
	for _, v := range vals {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return nil
}

// FieldRealHSVColor is tag field kind _21: an HSV color packed into a
// single float; how the components decompose from it is not documented
// upstream.
type FieldRealHSVColor struct{ Value float32 }

func (f *FieldRealHSVColor) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldRealAHSVColor is tag field kind _22: an AHSV color packed into a
// single float.
type FieldRealAHSVColor struct{ Value float32 }

func (f *FieldRealAHSVColor) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldShortBounds is tag field kind _23: a min/max bound of unsigned
// shorts.
type FieldShortBounds struct{ Min, Max uint16 }

func (f *FieldShortBounds) Read(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &f.Min); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, &f.Max)
}

// FieldAngleBounds is tag field kind _24: a min/max bound of angles.
type FieldAngleBounds struct{ Min, Max float32 }

func (f *FieldAngleBounds) Read(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &f.Min); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, &f.Max)
}

// FieldRealBounds is tag field kind _25: a min/max bound of real
// values.
type FieldRealBounds struct{ Min, Max float32 }

func (f *FieldRealBounds) Read(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &f.Min); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, &f.Max)
}

// FieldRealFractionBounds is tag field kind _26: a min/max bound of
// fractional real values.
type FieldRealFractionBounds struct{ Min, Max float32 }

func (f *FieldRealFractionBounds) Read(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &f.Min); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, &f.Max)
}

// FieldLongBlockFlags is tag field kind _29: block flags stored as an
// unsigned 32-bit integer.
type FieldLongBlockFlags struct{ Value uint32 }

func (f *FieldLongBlockFlags) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldWordBlockFlags is tag field kind _2A: block flags stored as an
// unsigned 32-bit integer.
type FieldWordBlockFlags struct{ Value uint32 }

func (f *FieldWordBlockFlags) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldByteBlockFlags is tag field kind _2B: block flags stored as an
// unsigned 32-bit integer.
type FieldByteBlockFlags struct{ Value uint32 }

func (f *FieldByteBlockFlags) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldCharBlockIndex is tag field kind _2C: a signed 8-bit index into a
// sibling tag block.
type FieldCharBlockIndex struct{ Value int8 }

func (f *FieldCharBlockIndex) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldCustomCharBlockIndex is tag field kind _2D: a signed 8-bit index
// into a custom (external resource) tag block.
type FieldCustomCharBlockIndex struct{ Value int8 }

func (f *FieldCustomCharBlockIndex) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldShortBlockIndex is tag field kind _2E: a signed 16-bit index into
// a sibling tag block.
type FieldShortBlockIndex struct{ Value int16 }

func (f *FieldShortBlockIndex) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldCustomShortBlockIndex is tag field kind _2F: a signed 16-bit
// index into a custom tag block.
type FieldCustomShortBlockIndex struct{ Value int16 }

func (f *FieldCustomShortBlockIndex) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldLongBlockIndex is tag field kind _30: a signed 32-bit index into
// a sibling tag block.
type FieldLongBlockIndex struct{ Value int32 }

func (f *FieldLongBlockIndex) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldCustomLongBlockIndex is tag field kind _31: a signed 32-bit index
// into a custom tag block.
type FieldCustomLongBlockIndex struct{ Value int32 }

func (f *FieldCustomLongBlockIndex) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldPad is tag field kind _34: a run of padding bytes with no data.
type FieldPad struct{}

func (FieldPad) Read(r io.ReadSeeker, length int64) error {
	_, err := r.Seek(length, io.SeekCurrent)
	return err
}

// FieldByteInteger is tag field kind _3C: an unsigned 8-bit integer.
type FieldByteInteger struct{ Value uint8 }

func (f *FieldByteInteger) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldWordInteger is tag field kind _3D: an unsigned 16-bit integer.
type FieldWordInteger struct{ Value uint16 }

func (f *FieldWordInteger) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldDwordInteger is tag field kind _3E: an unsigned 32-bit integer.
type FieldDwordInteger struct{ Value uint32 }

func (f *FieldDwordInteger) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}

// FieldQwordInteger is tag field kind _3F: an unsigned 64-bit integer.
type FieldQwordInteger struct{ Value uint64 }

func (f *FieldQwordInteger) Read(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, &f.Value)
}
