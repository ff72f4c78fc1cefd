package hashing

import "sync"

// Signature identifies a final position.
type Signature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// WeakHash is a fast checksum for additional confidence
	WeakHash uint32
	// Plies is the number of half-moves played to reach it
	Plies int
	// Name labels the script or game the position came from
	Name string
}

// DuplicateDetector remembers final positions and reports repeats.
// It is safe for concurrent use.
type DuplicateDetector struct {
	mu             sync.RWMutex
	hashTable      map[uint64][]Signature
	exactPlies     bool // also require equal ply counts
	duplicateCount int
}

// NewDuplicateDetector creates a detector. With exactPlies two positions only
// match if they were reached in the same number of plies.
func NewDuplicateDetector(exactPlies bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:  make(map[uint64][]Signature),
		exactPlies: exactPlies,
	}
}

// CheckAndAdd records sig. If an earlier signature matches, it returns that
// one and true, and sig is not recorded.
func (d *DuplicateDetector) CheckAndAdd(sig Signature) (Signature, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing, true
		}
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return Signature{}, false
}

func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	return !d.exactPlies || a.Plies == b.Plies
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the detector.
func (d *DuplicateDetector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hashTable = make(map[uint64][]Signature)
	d.duplicateCount = 0
}
