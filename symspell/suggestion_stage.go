package symspell

// SuggestionStage accumulates delete-hash -> word associations during a bulk
// dictionary load, so the live DeleteIndex is only touched once per load
// rather than once per (word, delete-variant) pair.
type SuggestionStage struct {
	deletes map[uint64]stageEntry
	nodes   chunkArrayNode
}

type stageEntry struct {
	count int
	first int
}

type stageNode struct {
	suggestion string
	next       int
}

// NewSuggestionStage returns a stage sized for roughly initialCapacity
// distinct delete hashes.
func NewSuggestionStage(initialCapacity int) *SuggestionStage {
	return &SuggestionStage{
		deletes: make(map[uint64]stageEntry, initialCapacity),
		nodes:   newChunkArrayNode(initialCapacity * 2),
	}
}

// DeleteCount returns the count of distinct delete hashes staged.
func (ss *SuggestionStage) DeleteCount() int {
	return len(ss.deletes)
}

// NodeCount returns the total number of staged (hash, word) associations.
func (ss *SuggestionStage) NodeCount() int {
	return ss.nodes.Count()
}

// Clear drops all staged data.
func (ss *SuggestionStage) Clear() {
	ss.deletes = make(map[uint64]stageEntry)
	ss.nodes.Clear()
}

// Add records that word is a candidate reachable via deleteHash.
func (ss *SuggestionStage) Add(deleteHash uint64, word string) {
	entry, found := ss.deletes[deleteHash]
	if !found {
		entry = stageEntry{first: -1}
	}
	next := entry.first
	entry.count++
	entry.first = ss.nodes.Count()
	ss.deletes[deleteHash] = entry
	ss.nodes.Add(stageNode{suggestion: word, next: next})
}

// CommitTo merges every staged association into permanentDeletes, appending
// to any existing bucket rather than overwriting it.
func (ss *SuggestionStage) CommitTo(permanentDeletes map[uint64][]string) {
	for key, entry := range ss.deletes {
		words := make([]string, entry.count)
		i := entry.count - 1
		next := entry.first
		for next >= 0 {
			node := ss.nodes.Get(next)
			words[i] = node.suggestion
			next = node.next
			i--
		}
		permanentDeletes[key] = append(permanentDeletes[key], words...)
	}
}

// chunkArrayNode is a growable list of stageNode values, chunked so
// appending never has to copy previously written elements.
type chunkArrayNode struct {
	values [][]stageNode
	count  int
}

const (
	chunkSize = 4096
	divShift  = 12
)

func newChunkArrayNode(initialCapacity int) chunkArrayNode {
	chunks := (initialCapacity + chunkSize - 1) / chunkSize
	if chunks < 1 {
		chunks = 1
	}
	values := make([][]stageNode, chunks)
	for i := range values {
		values[i] = make([]stageNode, chunkSize)
	}
	return chunkArrayNode{values: values}
}

func (ca *chunkArrayNode) Add(value stageNode) int {
	if ca.count == ca.capacity() {
		newValues := make([][]stageNode, len(ca.values)+1)
		copy(newValues, ca.values)
		newValues[len(ca.values)] = make([]stageNode, chunkSize)
		ca.values = newValues
	}
	row := ca.row(ca.count)
	col := ca.col(ca.count)
	ca.values[row][col] = value
	ca.count++
	return ca.count - 1
}

func (ca *chunkArrayNode) Count() int {
	return ca.count
}

func (ca *chunkArrayNode) Get(index int) stageNode {
	return ca.values[ca.row(index)][ca.col(index)]
}

func (ca *chunkArrayNode) Clear() {
	ca.count = 0
}

func (ca *chunkArrayNode) capacity() int {
	return len(ca.values) * chunkSize
}

func (ca *chunkArrayNode) row(index int) int {
	return index >> divShift
}

func (ca *chunkArrayNode) col(index int) int {
	return index & (chunkSize - 1)
}
