package memory

import (
	"sync"

	"github.com/mohitkumar/playback/persistence"
)

var _ persistence.Queue = new(memoryQueue)

// memoryQueue is a single partition FIFO per queue name. The key is ignored.
type memoryQueue struct {
	mu     sync.Mutex
	queues map[string][]string
}

func NewMemoryQueue() *memoryQueue {
	return &memoryQueue{
		queues: make(map[string][]string),
	}
}

func (mq *memoryQueue) Push(queueName string, key string, message []byte) error {
	mq.mu.Lock()
	defer mq.mu.Unlock()
	mq.queues[queueName] = append(mq.queues[queueName], string(message))
	return nil
}

func (mq *memoryQueue) Pop(queueName string, batchSize int) ([]string, error) {
	mq.mu.Lock()
	defer mq.mu.Unlock()
	q := mq.queues[queueName]
	if batchSize > len(q) {
		batchSize = len(q)
	}
	res := make([]string, batchSize)
	copy(res, q[:batchSize])
	mq.queues[queueName] = q[batchSize:]
	return res, nil
}
