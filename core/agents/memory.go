package agents

import (
	"sync"

	"github.com/counterline/voice-core/core/llms"
)

// conversationMemory keeps per-thread conversation history. Each
// specialized agent gets its own history under "<threadID>_<agent>" so
// switching agents mid-conversation doesn't leak context between them.
type conversationMemory struct {
	mu      sync.Mutex
	threads map[string][]llms.Turn
}

func newConversationMemory() *conversationMemory {
	return &conversationMemory{threads: map[string][]llms.Turn{}}
}

func (m *conversationMemory) history(key string) []llms.Turn {
	m.mu.Lock()
	defer m.mu.Unlock()

	turns := m.threads[key]
	copied := make([]llms.Turn, len(turns))
	copy(copied, turns)
	return copied
}

func (m *conversationMemory) append(key string, turns ...llms.Turn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.threads[key] = append(m.threads[key], turns...)
}
