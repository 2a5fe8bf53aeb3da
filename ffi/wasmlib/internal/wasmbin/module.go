package wasmbin

import "fmt"

// MemoryModule returns a module that defines one memory with limits l and
// exports it under name.
func MemoryModule(name string, l Limits) ([]byte, error) {
	if l.Max != nil && *l.Max < l.Min {
		return nil, fmt.Errorf("memory limits: max %d below min %d", *l.Max, l.Min)
	}
	if l.Shared && l.Max == nil {
		return nil, fmt.Errorf("memory limits: shared memory needs a max")
	}

	var w Writer
	w.WriteU32LE(magic)
	w.WriteU32LE(version)
	w.Section(sectionMemory, func(s *Writer) {
		s.WriteU32(1)
		s.limits(l)
	})
	w.Section(sectionExport, func(s *Writer) {
		s.WriteU32(1)
		s.WriteName(name)
		s.Byte(kindMemory)
		s.WriteU32(0)
	})
	return w.Bytes(), nil
}
