package pool

// Handle encodes a 32-bit slot index in the lower bits and a 32-bit
// generation in the upper bits. The generation increments on destroy so a
// handle held past its formation's disposal is detectably stale.
type Handle uint64

func NewHandle(index uint32, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index))
}

func (h Handle) Index() uint32      { return uint32(h) }
func (h Handle) Generation() uint32 { return uint32(h >> 32) }

// Pool allocates formation handles with generational indices and a free list.
// Accessed only from the engine tick goroutine.
type Pool struct {
	generations []uint32
	freeList    []uint32
	nextIndex   uint32
}

func New() *Pool {
	return &Pool{
		generations: make([]uint32, 0, 64),
		freeList:    make([]uint32, 0, 16),
	}
}

func (p *Pool) Create() Handle {
	if len(p.freeList) > 0 {
		idx := p.freeList[len(p.freeList)-1]
		p.freeList = p.freeList[:len(p.freeList)-1]
		return NewHandle(idx, p.generations[idx])
	}
	idx := p.nextIndex
	p.nextIndex++
	if int(idx) >= len(p.generations) {
		p.generations = append(p.generations, 0)
	}
	return NewHandle(idx, p.generations[idx])
}

func (p *Pool) Alive(h Handle) bool {
	idx := h.Index()
	if idx >= p.nextIndex {
		return false
	}
	return p.generations[idx] == h.Generation()
}

func (p *Pool) Destroy(h Handle) {
	idx := h.Index()
	if idx >= p.nextIndex {
		return
	}
	if p.generations[idx] != h.Generation() {
		return // already destroyed (stale handle)
	}
	p.generations[idx]++
	p.freeList = append(p.freeList, idx)
}
