package fieldaccess_test

import (
	"time"
)

// gauge exposes its fields through the pointer lookup form of the contract.
type gauge struct {
	c64  complex64
	c128 complex128
	i    int
	i8   int8
	i16  int16
	i32  int32
	i64  int64
	u    uint
	u8   uint8
	u16  uint16
	u32  uint32
	u64  uint64
	up   uintptr
	f32  float32
	f64  float64
	b    bool
	s    string
	raw  []byte
	v    any
	dur  time.Duration
}

var gaugeNames = []string{
	"c64", "c128", "i", "i8", "i16", "i32", "i64", "u", "u8", "u16", "u32", "u64", "up",
	"f32", "f64", "b", "s", "raw", "v", "dur",
}

func (g *gauge) FieldPointer(name string) (any, bool) {
	switch name {
	case "c64":
		return &g.c64, true
	case "c128":
		return &g.c128, true
	case "i":
		return &g.i, true
	case "i8":
		return &g.i8, true
	case "i16":
		return &g.i16, true
	case "i32":
		return &g.i32, true
	case "i64":
		return &g.i64, true
	case "u":
		return &g.u, true
	case "u8":
		return &g.u8, true
	case "u16":
		return &g.u16, true
	case "u32":
		return &g.u32, true
	case "u64":
		return &g.u64, true
	case "up":
		return &g.up, true
	case "f32":
		return &g.f32, true
	case "f64":
		return &g.f64, true
	case "b":
		return &g.b, true
	case "s":
		return &g.s, true
	case "raw":
		return &g.raw, true
	case "v":
		return &g.v, true
	case "dur":
		return &g.dur, true
	default:
		return nil, false
	}
}

func (g *gauge) FieldNames() []string {
	return gaugeNames
}

// broken reports fields it cannot point to.
type broken struct{}

func (broken) FieldPointer(name string) (any, bool) {
	switch name {
	case "value":
		return 42, true
	case "nil":
		var p *int
		return p, true
	default:
		return nil, false
	}
}

func (broken) FieldNames() []string {
	return []string{"value", "nil"}
}
