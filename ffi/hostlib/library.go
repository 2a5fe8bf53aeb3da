package hostlib

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/pangobind/ffi"
	"github.com/wippyai/pangobind/resource"
)

// objectBase is the lowest object pointer. Object pointers are
// objectBase + handle<<4 and never fall inside linear memory.
const objectBase = 0x8000_0000

// ObjectType identifies the class of a heap object.
type ObjectType uint32

const (
	TypeCoverage ObjectType = iota + 1
	TypeFontMap
	TypeFontFamily
	TypeFontFace
	TypeFontDescription
)

func (t ObjectType) String() string {
	switch t {
	case TypeCoverage:
		return "PangoCoverage"
	case TypeFontMap:
		return "PangoFontMap"
	case TypeFontFamily:
		return "PangoFontFamily"
	case TypeFontFace:
		return "PangoFontFace"
	case TypeFontDescription:
		return "PangoFontDescription"
	}
	return "unknown"
}

func (t ObjectType) isGObject() bool {
	return t == TypeFontMap || t == TypeFontFamily || t == TypeFontFace
}

// Violation is a misuse reported by the library, the equivalent of a GLib
// critical warning.
type Violation struct {
	Symbol string
	Ptr    ffi.Ptr
	Detail string
}

// Library is the in-process foreign library.
type Library struct {
	heap  *resource.Heap
	mem   LinearMemory
	alloc *allocator
	log   *zap.Logger

	seed       []FamilySpec
	defaultMap ffi.Ptr
	closing    bool

	mu         sync.Mutex
	calls      map[string]int
	finalized  map[ffi.Ptr]int
	violations []Violation
	failNext   map[string]int
	failAfter  map[string]int
	symbol     string // entry point being executed, for heap violations
}

var _ ffi.Library = (*Library)(nil)

// Option configures a Library.
type Option func(*config)

type config struct {
	mem      LinearMemory
	memBase  uint32
	pages    uint32
	maxPages uint32
	families []FamilySpec
	logger   *zap.Logger
}

// WithMemory places strings and arrays in mem, allocating from base
// upwards. Use it to share a wasm module's memory.
func WithMemory(mem LinearMemory, base uint32) Option {
	return func(c *config) {
		c.mem = mem
		c.memBase = base
	}
}

// WithPages sets the initial and maximum size of the built-in memory in
// 64KiB pages.
func WithPages(initial, max uint32) Option {
	return func(c *config) {
		c.pages = initial
		c.maxPages = max
	}
}

// WithFamilies replaces the font families of the default font map.
func WithFamilies(families ...FamilySpec) Option {
	return func(c *config) {
		c.families = families
	}
}

// WithLogger sets the logger criticals are reported to.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// New creates a library.
func New(opts ...Option) *Library {
	cfg := config{
		pages:    1,
		maxPages: 256,
		families: DefaultFamilies(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.mem == nil {
		cfg.mem = newSliceMemory(cfg.pages, cfg.maxPages)
	}

	l := &Library{
		heap:      resource.NewHeap(),
		mem:       cfg.mem,
		alloc:     newAllocator(cfg.mem, cfg.memBase),
		log:       cfg.logger,
		seed:      cfg.families,
		calls:     make(map[string]int),
		finalized: make(map[ffi.Ptr]int),
		failNext:  make(map[string]int),
		failAfter: make(map[string]int),
	}
	l.heap.Subscribe(resource.ObserverFunc(l.onEvent))
	return l
}

func (l *Library) onEvent(e resource.Event) {
	switch e.Type {
	case resource.EventFreed:
		l.mu.Lock()
		l.finalized[ptrOf(e.Handle)]++
		l.mu.Unlock()
	case resource.EventViolation:
		l.mu.Lock()
		sym := l.symbol
		l.mu.Unlock()
		l.critical(sym, ptrOf(e.Handle), e.Detail)
	}
}

// critical records and logs a misuse.
func (l *Library) critical(sym string, p ffi.Ptr, detail string) {
	l.mu.Lock()
	l.violations = append(l.violations, Violation{Symbol: sym, Ptr: p, Detail: detail})
	l.mu.Unlock()
	l.log.Error("critical",
		zap.String("symbol", sym),
		zap.Stringer("ptr", p),
		zap.String("detail", detail))
}

// enter counts a call of sym and reports whether it must fail.
func (l *Library) enter(sym string) (fail bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls[sym]++
	l.symbol = sym
	if n := l.failNext[sym]; n > 0 {
		l.failNext[sym] = n - 1
		return true
	}
	if n, ok := l.failAfter[sym]; ok {
		if n == 0 {
			delete(l.failAfter, sym)
			return true
		}
		l.failAfter[sym] = n - 1
	}
	return false
}

func ptrOf(h resource.Handle) ffi.Ptr {
	if h == 0 {
		return 0
	}
	return ffi.Ptr(objectBase + uint64(h)<<4)
}

func handleOf(p ffi.Ptr) (resource.Handle, bool) {
	if uint64(p) < objectBase || (uint64(p)-objectBase)&0xf != 0 {
		return 0, false
	}
	h := (uint64(p) - objectBase) >> 4
	if h == 0 || h > 0xffff_ffff {
		return 0, false
	}
	return resource.Handle(h), true
}

func (l *Library) insert(t ObjectType, v any) ffi.Ptr {
	return ptrOf(l.heap.Insert(uint32(t), v))
}

// object resolves p to a live object of type t, reporting a critical
// otherwise.
func (l *Library) object(sym string, p ffi.Ptr, t ObjectType) (any, bool) {
	if p.IsNull() {
		l.critical(sym, p, "assertion '"+t.String()+" != NULL' failed")
		return nil, false
	}
	h, ok := handleOf(p)
	if !ok {
		l.critical(sym, p, "not an object pointer")
		return nil, false
	}
	v, ok := l.heap.GetTyped(h, uint32(t))
	if !ok {
		if _, live := l.heap.Get(h); live {
			l.critical(sym, p, "object is not a "+t.String())
		} else {
			l.critical(sym, p, "object already finalized")
		}
		return nil, false
	}
	return v, true
}

func (l *Library) typeOf(p ffi.Ptr) (ObjectType, bool) {
	h, ok := handleOf(p)
	if !ok {
		return 0, false
	}
	t, ok := l.heap.TypeID(h)
	return ObjectType(t), ok
}

func (l *Library) ref(p ffi.Ptr) ffi.Ptr {
	h, _ := handleOf(p)
	if _, ok := l.heap.Ref(h); !ok {
		return 0
	}
	return p
}

func (l *Library) unref(p ffi.Ptr) {
	h, _ := handleOf(p)
	l.heap.Unref(h)
}

// ObjectRef implements g_object_ref.
func (l *Library) ObjectRef(p ffi.Ptr) ffi.Ptr {
	if l.enter(ffi.SymObjectRef) {
		return 0
	}
	if !l.isGObject(ffi.SymObjectRef, p) {
		return 0
	}
	return l.ref(p)
}

// ObjectUnref implements g_object_unref.
func (l *Library) ObjectUnref(p ffi.Ptr) {
	l.enter(ffi.SymObjectUnref)
	if !l.isGObject(ffi.SymObjectUnref, p) {
		return
	}
	l.unref(p)
}

func (l *Library) isGObject(sym string, p ffi.Ptr) bool {
	if p.IsNull() {
		l.critical(sym, p, "assertion 'G_IS_OBJECT (object)' failed")
		return false
	}
	t, ok := l.typeOf(p)
	if !ok {
		l.critical(sym, p, "object already finalized")
		return false
	}
	if !t.isGObject() {
		l.critical(sym, p, "assertion 'G_IS_OBJECT (object)' failed")
		return false
	}
	return true
}

// FailNext makes the next n calls of sym return NULL, for entry points
// that may return nothing.
func (l *Library) FailNext(sym string, n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failNext[sym] += n
}

// FailAfter lets skip calls of sym succeed, then fails the one after.
func (l *Library) FailAfter(sym string, skip int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failAfter[sym] = skip
}

// Calls returns how many times sym was called.
func (l *Library) Calls(sym string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[sym]
}

// RefCount returns the count of a live object.
func (l *Library) RefCount(p ffi.Ptr) (int32, bool) {
	h, ok := handleOf(p)
	if !ok {
		return 0, false
	}
	return l.heap.Count(h)
}

// Finalized returns how many times the object at p was finalized. Any
// value above one is a double free.
func (l *Library) Finalized(p ffi.Ptr) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.finalized[p]
}

// Violations returns the criticals reported so far.
func (l *Library) Violations() []Violation {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Violation(nil), l.violations...)
}

// Live returns the number of live objects of type t.
func (l *Library) Live(t ObjectType) int {
	n := 0
	l.heap.Each(func(_ resource.Handle, typeID uint32, _ any) bool {
		if ObjectType(typeID) == t {
			n++
		}
		return true
	})
	return n
}

// Allocated returns the number of live g_malloc blocks.
func (l *Library) Allocated() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.alloc.count()
}

// Close finalizes every object, including the default font map.
func (l *Library) Close() error {
	l.closing = true
	return l.heap.Close()
}
