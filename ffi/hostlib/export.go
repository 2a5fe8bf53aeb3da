package hostlib

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/pangobind/ffi"
)

var (
	valI32 = api.ValueTypeI32
	valPtr = api.ValueTypeI32
)

type hostFunc struct {
	name    string
	params  []api.ValueType
	results []api.ValueType
	fn      func(stack []uint64)
}

func argPtr(stack []uint64, i int) ffi.Ptr { return ffi.Ptr(api.DecodeU32(stack[i])) }

func b2u(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

// hostFuncs lists every entry point with its wasm32 signature. Pointers and
// gboolean are i32.
func (l *Library) hostFuncs() []hostFunc {
	retPtr := func(name string, call func() ffi.Ptr) hostFunc {
		return hostFunc{name, nil, []api.ValueType{valPtr}, func(s []uint64) {
			s[0] = api.EncodeU32(uint32(call()))
		}}
	}
	ptrToPtr := func(name string, call func(ffi.Ptr) ffi.Ptr) hostFunc {
		return hostFunc{name, []api.ValueType{valPtr}, []api.ValueType{valPtr}, func(s []uint64) {
			s[0] = api.EncodeU32(uint32(call(argPtr(s, 0))))
		}}
	}
	ptrToVoid := func(name string, call func(ffi.Ptr)) hostFunc {
		return hostFunc{name, []api.ValueType{valPtr}, nil, func(s []uint64) {
			call(argPtr(s, 0))
		}}
	}
	ptrToBool := func(name string, call func(ffi.Ptr) bool) hostFunc {
		return hostFunc{name, []api.ValueType{valPtr}, []api.ValueType{valI32}, func(s []uint64) {
			s[0] = b2u(call(argPtr(s, 0)))
		}}
	}
	ptrToI32 := func(name string, call func(ffi.Ptr) int32) hostFunc {
		return hostFunc{name, []api.ValueType{valPtr}, []api.ValueType{valI32}, func(s []uint64) {
			s[0] = api.EncodeI32(call(argPtr(s, 0)))
		}}
	}
	setI32 := func(name string, call func(ffi.Ptr, int32)) hostFunc {
		return hostFunc{name, []api.ValueType{valPtr, valI32}, nil, func(s []uint64) {
			call(argPtr(s, 0), api.DecodeI32(s[1]))
		}}
	}
	outPair := func(name string, call func(ffi.Ptr, ffi.Ptr, ffi.Ptr)) hostFunc {
		return hostFunc{name, []api.ValueType{valPtr, valPtr, valPtr}, nil, func(s []uint64) {
			call(argPtr(s, 0), argPtr(s, 1), argPtr(s, 2))
		}}
	}

	return []hostFunc{
		{ffi.SymMalloc, []api.ValueType{valI32}, []api.ValueType{valPtr}, func(s []uint64) {
			s[0] = api.EncodeU32(uint32(l.Malloc(api.DecodeU32(s[0]))))
		}},
		ptrToVoid(ffi.SymFree, l.Free),

		ptrToPtr(ffi.SymObjectRef, l.ObjectRef),
		ptrToVoid(ffi.SymObjectUnref, l.ObjectUnref),

		retPtr(ffi.SymCoverageNew, l.CoverageNew),
		ptrToPtr(ffi.SymCoverageRef, l.CoverageRef),
		ptrToVoid(ffi.SymCoverageUnref, l.CoverageUnref),
		ptrToPtr(ffi.SymCoverageCopy, l.CoverageCopy),
		{ffi.SymCoverageGet, []api.ValueType{valPtr, valI32}, []api.ValueType{valI32}, func(s []uint64) {
			s[0] = api.EncodeI32(l.CoverageGet(argPtr(s, 0), api.DecodeI32(s[1])))
		}},
		{ffi.SymCoverageSet, []api.ValueType{valPtr, valI32, valI32}, nil, func(s []uint64) {
			l.CoverageSet(argPtr(s, 0), api.DecodeI32(s[1]), api.DecodeI32(s[2]))
		}},
		{ffi.SymCoverageMax, []api.ValueType{valPtr, valPtr}, nil, func(s []uint64) {
			l.CoverageMax(argPtr(s, 0), argPtr(s, 1))
		}},
		outPair(ffi.SymCoverageToBytes, l.CoverageToBytes),
		{ffi.SymCoverageFromBytes, []api.ValueType{valPtr, valI32}, []api.ValueType{valPtr}, func(s []uint64) {
			s[0] = api.EncodeU32(uint32(l.CoverageFromBytes(argPtr(s, 0), api.DecodeI32(s[1]))))
		}},

		retPtr(ffi.SymFontMapGetDefault, l.FontMapGetDefault),
		outPair(ffi.SymFontMapListFamilies, l.FontMapListFamilies),
		ptrToPtr(ffi.SymFontFamilyGetName, l.FontFamilyGetName),
		ptrToBool(ffi.SymFontFamilyIsMonospace, l.FontFamilyIsMonospace),
		outPair(ffi.SymFontFamilyListFaces, l.FontFamilyListFaces),
		ptrToPtr(ffi.SymFontFaceDescribe, l.FontFaceDescribe),
		ptrToPtr(ffi.SymFontFaceGetFaceName, l.FontFaceGetFaceName),
		ptrToBool(ffi.SymFontFaceIsSynthesized, l.FontFaceIsSynthesized),
		outPair(ffi.SymFontFaceListSizes, l.FontFaceListSizes),

		retPtr(ffi.SymFontDescriptionNew, l.FontDescriptionNew),
		ptrToPtr(ffi.SymFontDescriptionCopy, l.FontDescriptionCopy),
		ptrToVoid(ffi.SymFontDescriptionFree, l.FontDescriptionFree),
		{ffi.SymFontDescriptionEqual, []api.ValueType{valPtr, valPtr}, []api.ValueType{valI32}, func(s []uint64) {
			s[0] = b2u(l.FontDescriptionEqual(argPtr(s, 0), argPtr(s, 1)))
		}},
		{ffi.SymFontDescriptionHash, []api.ValueType{valPtr}, []api.ValueType{valI32}, func(s []uint64) {
			s[0] = api.EncodeU32(l.FontDescriptionHash(argPtr(s, 0)))
		}},
		ptrToPtr(ffi.SymFontDescriptionGetFamily, l.FontDescriptionGetFamily),
		{ffi.SymFontDescriptionSetFamily, []api.ValueType{valPtr, valPtr}, nil, func(s []uint64) {
			l.FontDescriptionSetFamily(argPtr(s, 0), argPtr(s, 1))
		}},
		ptrToI32(ffi.SymFontDescriptionGetSize, l.FontDescriptionGetSize),
		setI32(ffi.SymFontDescriptionSetSize, l.FontDescriptionSetSize),
		ptrToI32(ffi.SymFontDescriptionGetWeight, l.FontDescriptionGetWeight),
		setI32(ffi.SymFontDescriptionSetWeight, l.FontDescriptionSetWeight),
		ptrToI32(ffi.SymFontDescriptionGetStyle, l.FontDescriptionGetStyle),
		setI32(ffi.SymFontDescriptionSetStyle, l.FontDescriptionSetStyle),
		ptrToI32(ffi.SymFontDescriptionGetVariant, l.FontDescriptionGetVariant),
		setI32(ffi.SymFontDescriptionSetVariant, l.FontDescriptionSetVariant),
		ptrToI32(ffi.SymFontDescriptionGetStretch, l.FontDescriptionGetStretch),
		setI32(ffi.SymFontDescriptionSetStretch, l.FontDescriptionSetStretch),
		{ffi.SymFontDescriptionGetSetFields, []api.ValueType{valPtr}, []api.ValueType{valI32}, func(s []uint64) {
			s[0] = api.EncodeU32(l.FontDescriptionGetSetFields(argPtr(s, 0)))
		}},
		ptrToPtr(ffi.SymFontDescriptionToString, l.FontDescriptionToString),
		ptrToPtr(ffi.SymFontDescriptionFromString, l.FontDescriptionFromString),
	}
}

// Export instantiates the library as a host module named moduleName, so
// that wasm code importing the Pango symbols, or ffi/wasmlib, can call it.
// Pointers are i32. The library must share memory with its callers; create
// it WithMemory on the memory those callers use.
func (l *Library) Export(ctx context.Context, r wazero.Runtime, moduleName string) (api.Module, error) {
	builder := r.NewHostModuleBuilder(moduleName)
	for _, f := range l.hostFuncs() {
		fn := f.fn
		builder.NewFunctionBuilder().
			WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
				fn(stack)
			}), f.params, f.results).
			WithName(f.name).
			Export(f.name)
	}
	return builder.Instantiate(ctx)
}
